package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/middleware"
	"shop_backend/internal/models"
)

// principal returns the authenticated caller, aborting with 401 when the
// auth middleware did not run.
func principal(c *gin.Context) (models.Principal, bool) {
	p, ok := middleware.CurrentUser(c)
	if !ok {
		apperrors.Respond(c, apperrors.Unauthorized("Authentication required."))
	}
	return p, ok
}

// idParam parses a positive integer path parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || value == 0 {
		apperrors.Respond(c, apperrors.Validation("Invalid "+name+" parameter."))
		return 0, false
	}
	return uint(value), true
}
