package utils

import (
	"fmt"
	"strings"
)

// FormatCurrencyBRL formats an amount in Brazilian convention: thousands
// separated by dots, decimals by a comma. Example: 15000.5 -> "15.000,50".
func FormatCurrencyBRL(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	negative := strings.HasPrefix(integerPart, "-")
	if negative {
		integerPart = integerPart[1:]
	}

	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	out := strings.Join(groups, ".") + "," + decimalPart
	if negative {
		out = "-" + out
	}
	return out
}
