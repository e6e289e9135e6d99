package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mpcastro/recipebook-backend/internal/apperr"
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

// RespondAppError maps an apperr kind to its HTTP status and error code.
func RespondAppError(c *gin.Context, err error) {
	code := string(apperr.KindOf(err))
	if code == "" {
		code = "internal"
	}
	RespondError(c, apperr.HTTPStatus(err), code, err)
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
