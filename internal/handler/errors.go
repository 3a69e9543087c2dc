package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"sathorn/internal/model"
)

// respondError maps a service error to its status code and logs it once.
// message is the user-facing text for failures that are not the caller's fault.
func respondError(c *gin.Context, logger *logrus.Logger, err error, message string) {
	entry := logger.WithError(err).WithFields(logrus.Fields{
		"path":       c.FullPath(),
		"request_id": c.GetString(requestIDKey),
	})

	switch {
	case errors.Is(err, model.ErrNotFound):
		entry.Debug("Not found")
		c.JSON(http.StatusNotFound, model.ErrorResponse{Message: message})
	case errors.Is(err, model.ErrInvalidInput):
		entry.Debug("Invalid input")
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: message, Error: err.Error()})
	default:
		entry.Error(message)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Message: message, Error: err.Error()})
	}
}

func badRequest(c *gin.Context, message string, err error) {
	resp := model.ErrorResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}
