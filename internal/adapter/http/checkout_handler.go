package http

import (
	"context"
	"net/http"
	"time"

	"github.com/bellj/connect-api-examples/internal/adapter/http/view"
	"github.com/bellj/connect-api-examples/internal/usecase"
	"github.com/gin-gonic/gin"
)

const (
	readTimeout  = 5 * time.Second
	writeTimeout = 10 * time.Second
)

// CheckoutHandler serves the four checkout steps. All state lives on the
// Square side; every step re-fetches by the ids threaded through the URL.
type CheckoutHandler struct {
	place  *usecase.PlaceOrder
	load   *usecase.LoadCheckout
	setFul *usecase.SetFulfillment
	pay    *usecase.SubmitPayment
	appID  string // Square application id, needed by the card form to tokenize
}

func NewCheckoutHandler(
	place *usecase.PlaceOrder,
	load *usecase.LoadCheckout,
	setFul *usecase.SetFulfillment,
	pay *usecase.SubmitPayment,
	applicationID string,
) *CheckoutHandler {
	return &CheckoutHandler{place: place, load: load, setFul: setFul, pay: pay, appID: applicationID}
}

type createOrderReq struct {
	ItemVarID    string `form:"item_var_id" binding:"required"`
	ItemQuantity string `form:"item_quantity" binding:"required"`
	LocationID   string `form:"location_id" binding:"required"`
}

// CreateOrder handles POST /checkout/create-order.
func (h *CheckoutHandler) CreateOrder(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBind(&req); err != nil {
		failBadRequest(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), writeTimeout)
	defer cancel()

	out, err := h.place.Execute(ctx, usecase.PlaceOrderInput{
		CatalogObjectID: req.ItemVarID,
		Quantity:        req.ItemQuantity,
		LocationID:      req.LocationID,
	})
	if err != nil {
		fail(c, err)
		return
	}

	redirectToStep(c, "/checkout/choose-delivery-pickup", out.OrderID, out.LocationID)
}

type checkoutRef struct {
	OrderID    string `form:"order_id" binding:"required"`
	LocationID string `form:"location_id" binding:"required"`
}

// ChooseDeliveryPickup handles GET /checkout/choose-delivery-pickup.
func (h *CheckoutHandler) ChooseDeliveryPickup(c *gin.Context) {
	var ref checkoutRef
	if err := c.ShouldBindQuery(&ref); err != nil {
		failBadRequest(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readTimeout)
	defer cancel()

	state, err := h.load.Execute(ctx, ref.OrderID, ref.LocationID)
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "choose-delivery-pickup", gin.H{
		"OrderInfo":    view.NewOrderInfo(state.Order),
		"LocationInfo": view.NewLocationInfo(state.Location),
		"PickupTimes":  view.NewPickupTimes().Options(),
	})
}

type setFulfillmentReq struct {
	OrderID         string `form:"order_id" binding:"required"`
	LocationID      string `form:"location_id" binding:"required"`
	PickupName      string `form:"pickup_name" binding:"required"`
	PickupEmail     string `form:"pickup_email" binding:"required"`
	PickupNumber    string `form:"pickup_number" binding:"required"`
	PickupTime      string `form:"pickup_time" binding:"required"`
	FulfillmentType string `form:"fulfillment_type" binding:"required"`
}

// SetDeliveryPickup handles POST /checkout/choose-delivery-pickup.
func (h *CheckoutHandler) SetDeliveryPickup(c *gin.Context) {
	var req setFulfillmentReq
	if err := c.ShouldBind(&req); err != nil {
		failBadRequest(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), writeTimeout)
	defer cancel()

	out, err := h.setFul.Execute(ctx, usecase.SetFulfillmentInput{
		OrderID:         req.OrderID,
		LocationID:      req.LocationID,
		FulfillmentType: req.FulfillmentType,
		RecipientName:   req.PickupName,
		RecipientEmail:  req.PickupEmail,
		RecipientPhone:  req.PickupNumber,
		PickupAt:        req.PickupTime,
	})
	if err != nil {
		fail(c, err)
		return
	}

	redirectToStep(c, "/checkout/payment", out.OrderID, out.LocationID)
}

// PaymentForm handles GET /checkout/payment. An order with no fulfillment
// bounces back to delivery/pickup; the redirect must be the last thing this
// handler does.
func (h *CheckoutHandler) PaymentForm(c *gin.Context) {
	var ref checkoutRef
	if err := c.ShouldBindQuery(&ref); err != nil {
		failBadRequest(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readTimeout)
	defer cancel()

	state, err := h.load.Execute(ctx, ref.OrderID, ref.LocationID)
	if err != nil {
		fail(c, err)
		return
	}

	if !state.Stage.CanPay() {
		redirectToStep(c, "/checkout/choose-delivery-pickup", ref.OrderID, ref.LocationID)
		return
	}

	c.HTML(http.StatusOK, "payment", gin.H{
		"ApplicationID": h.appID,
		"OrderInfo":     view.NewOrderInfo(state.Order),
		"LocationInfo":  view.NewLocationInfo(state.Location),
	})
}

type payReq struct {
	OrderID    string `form:"order_id" binding:"required"`
	LocationID string `form:"location_id" binding:"required"`
	Nonce      string `form:"nonce" binding:"required"`
}

// Pay handles POST /checkout/payment.
func (h *CheckoutHandler) Pay(c *gin.Context) {
	var req payReq
	if err := c.ShouldBind(&req); err != nil {
		failBadRequest(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), writeTimeout)
	defer cancel()

	out, err := h.pay.Execute(ctx, usecase.SubmitPaymentInput{
		OrderID:    req.OrderID,
		LocationID: req.LocationID,
		Nonce:      req.Nonce,
	})
	if err != nil {
		fail(c, err)
		return
	}

	redirectToStep(c, "/order-status", out.OrderID, out.LocationID)
}
