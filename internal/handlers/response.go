package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/todolist-backend/internal/data/repos/repoerr"
	"github.com/yungbote/todolist-backend/internal/platform/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondRepoError maps a repository error onto its HTTP shape:
// NotFound to 404, Duplicate to 409, anything else to 500.
func RespondRepoError(c *gin.Context, err error) {
	var ae *apierr.Error
	switch {
	case repoerr.IsNotFound(err):
		ae = apierr.New(http.StatusNotFound, "not_found", err)
	case repoerr.IsDuplicate(err):
		ae = apierr.New(http.StatusConflict, "duplicate", err)
	default:
		ae = apierr.New(http.StatusInternalServerError, "internal", err)
	}
	RespondError(c, ae.Status, ae.Code, ae.Err)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
