package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cvargas352/Projeto-integrador-final/models"
	"github.com/cvargas352/Projeto-integrador-final/pricing"
	"github.com/cvargas352/Projeto-integrador-final/services"
	"github.com/cvargas352/Projeto-integrador-final/statemachine"
	"github.com/cvargas352/Projeto-integrador-final/utils"
)

type OrderController struct {
	Orders *services.OrderService
	Fees   pricing.FeePolicy
}

func NewOrderController(db *gorm.DB, fees pricing.FeePolicy) *OrderController {
	return &OrderController{
		Orders: services.NewOrderService(db),
		Fees:   fees,
	}
}

// CreateOrder submits a cart. The items carry snapshot names and unit
// prices computed by the pricing engine; the server recomputes the
// authoritative total (items plus delivery fee) before persisting.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type itemReq struct {
		ProductID   uint    `json:"product_id" binding:"required"`
		ProductName string  `json:"product_name" binding:"required"`
		Quantity    int     `json:"quantity"`
		UnitPrice   float64 `json:"unit_price"`
	}
	var req struct {
		UserID          int64     `json:"user_id"`
		DeliveryAddress string    `json:"delivery_address"`
		Fulfillment     string    `json:"fulfillment"`
		PostalCode      string    `json:"postal_code"`
		Items           []itemReq `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.UserID <= 0 {
		utils.RespondError(c, http.StatusBadRequest, services.ErrInvalidUser)
		return
	}

	mode := pricing.FulfillmentMode(req.Fulfillment)
	if mode != pricing.ModeDelivery && mode != pricing.ModePickup {
		// Older clients send only the address; an empty or sentinel
		// address means pickup.
		if req.DeliveryAddress == "" || req.DeliveryAddress == models.PickupAddress {
			mode = pricing.ModePickup
		} else {
			mode = pricing.ModeDelivery
		}
	}
	fee := oc.Fees.Fee(mode, req.PostalCode)

	var address *string
	if mode == pricing.ModeDelivery && req.DeliveryAddress != "" {
		address = &req.DeliveryAddress
	}

	items := make([]services.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, services.OrderItemInput{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	order, err := oc.Orders.CreateOrder(uint(req.UserID), address, fee, items)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyOrder),
			errors.Is(err, services.ErrInvalidQuantity),
			errors.Is(err, services.ErrInvalidUnitPrice),
			errors.Is(err, services.ErrInvalidUser):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetAllOrders lists orders with their items, newest first. The customer
// front-end scopes the list with ?user_id=, the dashboard reads all.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var userID *uint
	if raw := c.Query("user_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid user_id filter"))
			return
		}
		id := uint(parsed)
		userID = &id
	}

	orders, err := oc.Orders.ListOrders(userID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID returns one order plus the statuses it may move to, so
// the dashboard knows which action buttons to render.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	order, err := oc.Orders.GetOrder(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
		} else {
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", gin.H{
		"order":         order,
		"next_statuses": statemachine.NextStatuses(order.Status),
	})
}

// UpdateOrderStatus moves an order through the workflow. Unknown status
// strings and illegal transitions are both client errors; the relaxed
// write-anything behavior of the first backend is gone on purpose.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	target, err := models.ParseOrderStatus(req.Status)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := oc.Orders.UpdateStatus(uint(id), target); err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			utils.RespondError(c, http.StatusNotFound, err)
		case errors.Is(err, services.ErrIllegalTransition):
			utils.RespondError(c, http.StatusUnprocessableEntity, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}
	utils.RespondNoContent(c)
}
