package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cvargas352/Projeto-integrador-final/controllers"
	"github.com/cvargas352/Projeto-integrador-final/database"
	"github.com/cvargas352/Projeto-integrador-final/models"
	"github.com/cvargas352/Projeto-integrador-final/pricing"
)

func setupOrderRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	orderCtrl := controllers.NewOrderController(db, pricing.DefaultFeePolicy())
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders", orderCtrl.GetAllOrders)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	r.PUT("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
	return r, db
}

func TestCreateOrderWithDeliveryFee(t *testing.T) {
	r, db := setupOrderRouter(t)

	w := postJSON(t, r, "POST", "/orders", map[string]interface{}{
		"user_id":          1,
		"delivery_address": "Rua das Flores, 100",
		"fulfillment":      "delivery",
		"postal_code":      "01310100",
		"items": []map[string]interface{}{
			{"product_id": 7, "product_name": "X-Burger", "quantity": 2, "unit_price": 25.40},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.InDelta(t, 55.80, data["total"].(float64), 0.001)
	assert.InDelta(t, 5.00, data["delivery_fee"].(float64), 0.001)
	assert.Equal(t, "created", data["status"])
	assert.NotEmpty(t, data["reference"])
	assert.Len(t, data["items"].([]interface{}), 1)

	var count int64
	db.Model(&models.OrderItem{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateOrderPickupPaysNoFee(t *testing.T) {
	r, _ := setupOrderRouter(t)

	w := postJSON(t, r, "POST", "/orders", map[string]interface{}{
		"user_id":     1,
		"fulfillment": "pickup",
		"postal_code": "99999999",
		"items": []map[string]interface{}{
			{"product_id": 1, "product_name": "Fries", "quantity": 1, "unit_price": 9.90},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.InDelta(t, 9.90, data["total"].(float64), 0.001)
	assert.Zero(t, data["delivery_fee"].(float64))
}

func TestCreateOrderRejectsEmptyItemsAndBadUser(t *testing.T) {
	r, db := setupOrderRouter(t)

	w := postJSON(t, r, "POST", "/orders", map[string]interface{}{
		"user_id": 1,
		"items":   []map[string]interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, r, "POST", "/orders", map[string]interface{}{
		"user_id": 0,
		"items": []map[string]interface{}{
			{"product_id": 1, "product_name": "Fries", "quantity": 1, "unit_price": 9.90},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, r, "POST", "/orders", map[string]interface{}{
		"user_id": -4,
		"items": []map[string]interface{}{
			{"product_id": 1, "product_name": "Fries", "quantity": 1, "unit_price": 9.90},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// None of the rejections may leave rows behind.
	var orders, items int64
	db.Model(&models.Order{}).Count(&orders)
	db.Model(&models.OrderItem{}).Count(&items)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestListOrdersFilteredByUser(t *testing.T) {
	r, _ := setupOrderRouter(t)

	for _, userID := range []int{1, 1, 2} {
		w := postJSON(t, r, "POST", "/orders", map[string]interface{}{
			"user_id":     userID,
			"fulfillment": "pickup",
			"items": []map[string]interface{}{
				{"product_id": 1, "product_name": "Fries", "quantity": 1, "unit_price": 9.90},
			},
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	req, _ := http.NewRequest("GET", "/orders?user_id=1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp["data"].([]interface{}), 2)

	req, _ = http.NewRequest("GET", "/orders?user_id=zero", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderStatusEndpoint(t *testing.T) {
	r, _ := setupOrderRouter(t)

	w := postJSON(t, r, "POST", "/orders", map[string]interface{}{
		"user_id":     1,
		"fulfillment": "pickup",
		"items": []map[string]interface{}{
			{"product_id": 1, "product_name": "Fries", "quantity": 1, "unit_price": 9.90},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Unknown status strings are rejected outright.
	w = postJSON(t, r, "PUT", "/orders/1/status", map[string]interface{}{"status": "teleported"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Legal workflow walk.
	for _, status := range []string{"awaiting_delivery", "out_for_delivery", "delivered"} {
		w = postJSON(t, r, "PUT", "/orders/1/status", map[string]interface{}{"status": status})
		assert.Equal(t, http.StatusNoContent, w.Code, "transition to %s", status)
	}

	// Terminal: going back is an unprocessable request.
	w = postJSON(t, r, "PUT", "/orders/1/status", map[string]interface{}{"status": "awaiting_delivery"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = postJSON(t, r, "PUT", "/orders/999/status", map[string]interface{}{"status": "awaiting_delivery"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrderDetailExposesNextStatuses(t *testing.T) {
	r, _ := setupOrderRouter(t)

	postJSON(t, r, "POST", "/orders", map[string]interface{}{
		"user_id":     1,
		"fulfillment": "pickup",
		"items": []map[string]interface{}{
			{"product_id": 1, "product_name": "Fries", "quantity": 1, "unit_price": 9.90},
		},
	})

	req, _ := http.NewRequest("GET", "/orders/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	next := data["next_statuses"].([]interface{})
	assert.ElementsMatch(t, []interface{}{"awaiting_delivery", "cancelled"}, next)

	req, _ = http.NewRequest("GET", "/orders/999", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
