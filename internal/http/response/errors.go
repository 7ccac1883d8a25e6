package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/propdesk-backend/internal/domain/entity"
)

var statusByCode = map[entity.ErrorCode]int{
	entity.CodeUnrecognizedName:   http.StatusNotFound,
	entity.CodeNotFound:           http.StatusNotFound,
	entity.CodeIncompletePayload:  http.StatusBadRequest,
	entity.CodeInvalidField:       http.StatusBadRequest,
	entity.CodeConflict:           http.StatusConflict,
	entity.CodePreconditionFailed: http.StatusUnprocessableEntity,
	entity.CodePaymentFailed:      http.StatusBadGateway,
	entity.CodeUndefinedOperation: http.StatusInternalServerError,
	entity.CodeUnrecognizedKind:   http.StatusInternalServerError,
	entity.CodeInternal:           http.StatusInternalServerError,
}

// StatusFor maps a dispatch error to an HTTP status. Uncoded errors are 500.
func StatusFor(err error) int {
	if status, ok := statusByCode[entity.CodeOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// RespondEntityError writes err with the status and code its entity code
// implies.
func RespondEntityError(c *gin.Context, err error) {
	code := entity.CodeOf(err)
	if code == "" {
		code = entity.CodeInternal
	}
	RespondError(c, StatusFor(err), string(code), err)
}
