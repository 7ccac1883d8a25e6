package services

import (
	"strings"

	"github.com/yungbote/propdesk-backend/internal/domain/entity"
)

const (
	idKey           = "id"
	paymentTokenKey = "payment_token"
)

// UpdateRequest is an update with the reserved keys already split out of the
// field set.
type UpdateRequest struct {
	ID           uint
	Fields       map[string]any
	PaymentToken *string
}

// ParseUpdateRequest splits "id" and "payment_token" out of a generic update
// payload for kind. The token is validated only for kinds that accept
// payments; every other kind drops it unread. The payload is not modified.
func ParseUpdateRequest(kind entity.Kind, payload map[string]any) (UpdateRequest, error) {
	const op = "dispatch.parse_update"

	rawID, ok := payload[idKey]
	if !ok {
		return UpdateRequest{}, entity.NewError(entity.CodeIncompletePayload, op, "missing required fields: id", nil)
	}
	id, err := entity.AsID(rawID)
	if err != nil {
		return UpdateRequest{}, entity.NewError(entity.CodeInvalidField, op, "id: "+err.Error(), err)
	}

	req := UpdateRequest{ID: id, Fields: make(map[string]any, len(payload))}
	for k, v := range payload {
		switch k {
		case idKey:
		case paymentTokenKey:
			if v == nil || !kind.AcceptsPayments() {
				continue
			}
			tok, ok := v.(string)
			if !ok {
				return UpdateRequest{}, entity.NewError(entity.CodeInvalidField, op, "payment_token must be a string", nil)
			}
			if strings.TrimSpace(tok) == "" {
				return UpdateRequest{}, entity.NewError(entity.CodeInvalidField, op, "payment_token must not be empty", nil)
			}
			req.PaymentToken = &tok
		default:
			req.Fields[k] = v
		}
	}
	return req, nil
}
