package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bellj/connect-api-examples/internal/logging"
	"github.com/bellj/connect-api-examples/internal/square"
	"github.com/bellj/connect-api-examples/internal/usecase"
	"github.com/gin-gonic/gin"
)

var errBadRequest = errors.New("bad request")

// fail hands the error to the centralized error page middleware. Always
// `return` right after calling it.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func failBadRequest(c *gin.Context, err error) {
	fail(c, fmt.Errorf("%w: %v", errBadRequest, err))
}

// redirectToStep issues a 302 carrying the checkout identifiers. The caller
// must return immediately; nothing may run after a redirect.
func redirectToStep(c *gin.Context, path, orderID, locationID string) {
	q := url.Values{}
	q.Set("order_id", orderID)
	q.Set("location_id", locationID)
	c.Redirect(http.StatusFound, path+"?"+q.Encode())
}

// ErrorPage renders the error template for any error a handler attached.
// Handlers never render errors themselves; they fail(c, err) and return,
// mirroring how the flow forwards everything to one place.
func ErrorPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		status := http.StatusInternalServerError
		message := "Something went wrong. Please try again."
		var apiErr *square.APIError

		switch {
		case errors.Is(err, errBadRequest):
			status = http.StatusBadRequest
			message = "The request was missing required fields."
		case errors.Is(err, usecase.ErrOrderNotFound):
			status = http.StatusNotFound
			message = "We couldn't find that order."
		case errors.As(err, &apiErr):
			status = http.StatusBadGateway
			message = "The payment service rejected the request."
		}

		logging.From(c).Error("checkout error", "status", status, "err", err.Error())
		c.HTML(status, "error", gin.H{"Message": message})
	}
}
