package controllers

import (
	"errors"
	"net/http"

	"github.com/adangerfield1026/Capstone/services"

	"github.com/gin-gonic/gin"
)

// respondErr maps service sentinel errors to HTTP statuses.
func respondErr(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrInvalidAmount):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrFoodNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrDuplicateEntry):
		status = http.StatusConflict
	case errors.Is(err, services.ErrRateLimited):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
