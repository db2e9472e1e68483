package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cvargas352/Projeto-integrador-final/models"
	"github.com/cvargas352/Projeto-integrador-final/statemachine"
	"github.com/cvargas352/Projeto-integrador-final/utils"
)

// OrderItemInput is one line of an incoming order. ProductName and
// UnitPrice are the snapshot values computed by the pricing engine; they
// are stored as-is and never revalidated against the current catalog.
type OrderItemInput struct {
	ProductID   uint
	ProductName string
	Quantity    int
	UnitPrice   float64
}

// OrderService persists orders atomically and drives status changes
// through the workflow state machine.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// CreateOrder writes the order header and every line item in a single
// transaction. Any failure rolls the whole thing back; a partial order is
// never observable. The stored total is items subtotal plus deliveryFee
// and is frozen from this point on.
func (s *OrderService) CreateOrder(userID uint, deliveryAddress *string, deliveryFee float64, items []OrderItemInput) (*models.Order, error) {
	if userID == 0 {
		return nil, ErrInvalidUser
	}
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	var total float64
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		if item.UnitPrice < 0 {
			return nil, ErrInvalidUnitPrice
		}
		total += float64(item.Quantity) * item.UnitPrice
	}
	total += deliveryFee

	order := models.Order{
		Reference:       uuid.NewString(),
		UserID:          userID,
		Status:          models.StatusCreated,
		Total:           total,
		DeliveryFee:     deliveryFee,
		DeliveryAddress: deliveryAddress,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	for _, item := range items {
		orderItem := models.OrderItem{
			OrderID:     order.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
		if err := tx.Create(&orderItem).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		order.Items = append(order.Items, orderItem)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order #%d (%s) created for user %d, total R$ %s",
		order.ID, order.Reference, order.UserID, utils.FormatCurrencyBRL(order.Total))

	return &order, nil
}

// ListOrders returns orders newest-first, each with its items attached.
// When userID is non-nil only that user's orders are returned. Items are
// attached in a second pass keyed by order id; an item whose parent is
// not among the loaded headers is silently dropped.
func (s *OrderService) ListOrders(userID *uint) ([]models.Order, error) {
	query := s.db.Model(&models.Order{}).Order("created_at desc")
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return []models.Order{}, nil
	}

	index := make(map[uint]*models.Order, len(orders))
	ids := make([]uint, 0, len(orders))
	for i := range orders {
		orders[i].Items = []models.OrderItem{}
		index[orders[i].ID] = &orders[i]
		ids = append(ids, orders[i].ID)
	}

	var items []models.OrderItem
	if err := s.db.Where("order_id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	for _, item := range items {
		parent, ok := index[item.OrderID]
		if !ok {
			continue
		}
		parent.Items = append(parent.Items, item)
	}

	return orders, nil
}

// GetOrder loads one order with its items.
func (s *OrderService) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// UpdateStatus moves an order to the target status. The target must be a
// recognized status and the change must be allowed by the transition
// table; the stored total is never touched here. Zero affected rows means
// the order vanished between read and write, reported as not found.
func (s *OrderService) UpdateStatus(orderID uint, target models.OrderStatus) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if err := statemachine.CanTransition(order.Status, target); err != nil {
			return fmt.Errorf("%w: %v", ErrIllegalTransition, err)
		}

		result := tx.Model(&models.Order{}).
			Where("id = ?", orderID).
			Updates(map[string]interface{}{"status": target, "updated_at": time.Now()})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrOrderNotFound
		}

		utils.InfoLogger.Printf("Order #%d status: %s -> %s", orderID, order.Status, target)
		return nil
	})
}
