package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// DataEnvelope wraps every successful body as {"data": ...}.
type DataEnvelope struct {
	Data any `json:"data"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{
		Error: APIError{Message: msg, Code: code},
	})
}

func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, DataEnvelope{Data: data})
}

func RespondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, DataEnvelope{Data: data})
}
