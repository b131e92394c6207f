// Package issuing exposes the Bridgecard issuing surface over gin. Every
// handler follows the same shape: validate the request locally, forward it to
// Bridgecard through bridge_fields.Invoke, and write the normalized envelope
// back with the mapped status code. The service itself keeps no state about
// cardholders or cards.
package issuing

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-redis/redis/v7"
	"github.com/sirupsen/logrus"

	"github.com/payli/payli/bridge_fields"
)

// Service holds the handlers' shared dependencies. Redis is optional; when it
// is nil the fx-rate cache is simply skipped.
type Service struct {
	Config bridge_fields.Config
	Redis  *redis.Client
	Logger *logrus.Logger
}

var barePinPattern = regexp.MustCompile(`^\d{4}$`)

// respond writes env with okCode on success and 400 otherwise. Validation
// rejections and Bridgecard errors look the same to the caller: an error
// envelope under a 400.
func respond[T any](c *gin.Context, okCode int, env bridge_fields.Envelope[T]) {
	if env.Status != bridge_fields.StatusSuccess {
		c.JSON(http.StatusBadRequest, env)
		return
	}
	c.JSON(okCode, env)
}

// badRequest short circuits a handler with a single-message error envelope.
func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, bridge_fields.ErrorEnvelope[any](msg))
}

// bindJSON decodes the request body into obj and returns a caller-facing
// message when the body cannot be parsed, "" otherwise.
func bindJSON(c *gin.Context, obj any) string {
	if err := c.ShouldBindWith(obj, binding.JSON); err != nil {
		return bridge_fields.BindingErrorMessage(err)
	}
	return ""
}
