package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dentaldesk/clinic-queue/internal/httperr"
)

// writeBusinessError maps BusinessError codes onto HTTP statuses: missing
// things are 404, illegal transitions 409, everything else a 400. Unknown
// errors become a plain 500.
func writeBusinessError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "unexpected error")
		return
	}

	switch {
	case strings.HasSuffix(be.Code, "_not_found"):
		httperr.NotFound(c, be.Code, be.Code)
	case be.Code == "invalid_transition":
		httperr.Write(c, 409, be.Code, "status change not allowed from the current state")
	default:
		httperr.BadRequest(c, be.Code, be.Code)
	}
}
