package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"estate-service/internal/repository"
	"estate-service/internal/service"
)

// writeError maps service and repository errors onto HTTP statuses. Anything
// unrecognized is a 500; store failures are not retried.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, repository.ErrNotPending):
		c.JSON(http.StatusConflict, gin.H{"error": "request already decided"})
	case errors.Is(err, service.ErrNotAvailable):
		c.JSON(http.StatusConflict, gin.H{"error": "property is not available"})
	case errors.Is(err, service.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, service.ErrRoleNotAllowed):
		c.JSON(http.StatusBadRequest, gin.H{"error": "role not allowed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
