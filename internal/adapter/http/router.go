package http

import (
	"github.com/bellj/connect-api-examples/internal/adapter/http/middleware"
	"github.com/bellj/connect-api-examples/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(h *CheckoutHandler, sh *StatusHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Metrics())
	r.Use(middleware.Logging(logging.New("http")))
	r.Use(ErrorPage())
	r.SetHTMLTemplate(loadTemplates())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	checkout := r.Group("/checkout")
	{
		checkout.POST("/create-order", h.CreateOrder)
		checkout.GET("/choose-delivery-pickup", h.ChooseDeliveryPickup)
		checkout.POST("/choose-delivery-pickup", h.SetDeliveryPickup)
		checkout.GET("/payment", h.PaymentForm)
		checkout.POST("/payment", h.Pay)
	}

	r.GET("/order-status", sh.Show)

	return r
}
