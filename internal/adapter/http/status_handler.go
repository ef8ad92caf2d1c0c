package http

import (
	"context"
	"net/http"

	"github.com/bellj/connect-api-examples/internal/adapter/http/view"
	"github.com/bellj/connect-api-examples/internal/usecase"
	"github.com/gin-gonic/gin"
)

// StatusHandler serves the read-only order summary.
type StatusHandler struct {
	load *usecase.LoadCheckout
}

func NewStatusHandler(load *usecase.LoadCheckout) *StatusHandler {
	return &StatusHandler{load: load}
}

// Show handles GET /order-status.
func (h *StatusHandler) Show(c *gin.Context) {
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

	c.HTML(http.StatusOK, "order-status", gin.H{
		"OrderInfo":    view.NewOrderInfo(state.Order),
		"LocationInfo": view.NewLocationInfo(state.Location),
		"Stage":        state.Stage.String(),
	})
}
