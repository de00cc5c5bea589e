package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/openhired/jobboard/internal/apperr"
)

// respondError translates a service error into the wire envelope.
// Internal causes are logged; clients only see the opaque code.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	appErr := apperr.From(err)
	if appErr.Kind == apperr.KindInternal {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(appErr))
	}
	c.JSON(appErr.HTTPStatus(), gin.H{
		"error":             appErr.Code,
		"error_description": appErr.Message,
	})
}

// respondBindError reports the first violated constraint of a failed
// request binding.
func respondBindError(c *gin.Context, err error) {
	description := "Invalid request payload."
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		description = fmt.Sprintf("Field %q failed on the %q rule.", first.Field(), first.Tag())
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"error":             "validation_failed",
		"error_description": description,
	})
}

// pathID parses a numeric path parameter.
func pathID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.Validation("invalid_id", fmt.Sprintf("%s must be a positive integer.", name))
	}
	return uint(id), nil
}

// HealthCheck reports liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
