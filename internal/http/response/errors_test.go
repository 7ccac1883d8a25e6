package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/propdesk-backend/internal/domain/entity"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{entity.NewError(entity.CodeUnrecognizedName, "op", "", nil), http.StatusNotFound},
		{entity.NewError(entity.CodeNotFound, "op", "", nil), http.StatusNotFound},
		{entity.NewError(entity.CodeIncompletePayload, "op", "", nil), http.StatusBadRequest},
		{entity.NewError(entity.CodeInvalidField, "op", "", nil), http.StatusBadRequest},
		{entity.NewError(entity.CodeConflict, "op", "", nil), http.StatusConflict},
		{entity.NewError(entity.CodePreconditionFailed, "op", "", nil), http.StatusUnprocessableEntity},
		{entity.NewError(entity.CodePaymentFailed, "op", "", nil), http.StatusBadGateway},
		{entity.NewError(entity.CodeUndefinedOperation, "op", "", nil), http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := StatusFor(tc.err); got != tc.want {
			t.Fatalf("StatusFor(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestRespondEntityErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	RespondEntityError(c, entity.NewError(entity.CodeIncompletePayload, "dispatch.create", "missing required fields: email", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var body ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Code != "incomplete_payload" {
		t.Fatalf("code = %q", body.Error.Code)
	}
	if body.Error.Message == "" {
		t.Fatalf("empty message")
	}
}
