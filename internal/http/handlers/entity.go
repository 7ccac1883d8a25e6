package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/propdesk-backend/internal/http/response"
	"github.com/yungbote/propdesk-backend/internal/services"
)

type EntityHandler struct {
	actions services.ActionService
}

func NewEntityHandler(actions services.ActionService) *EntityHandler {
	return &EntityHandler{actions: actions}
}

// GET /api/entities
func (h *EntityHandler) ListEntities(c *gin.Context) {
	response.RespondOK(c, h.actions.Names())
}

// GET /api/:entity
func (h *EntityHandler) QueryAll(c *gin.Context) {
	d, err := h.actions.Resolve(c.Param("entity"))
	if err != nil {
		response.RespondEntityError(c, err)
		return
	}
	recs, err := d.QueryAll(c.Request.Context())
	if err != nil {
		response.RespondEntityError(c, err)
		return
	}
	response.RespondOK(c, recs)
}

// POST /api/:entity
func (h *EntityHandler) Create(c *gin.Context) {
	d, err := h.actions.Resolve(c.Param("entity"))
	if err != nil {
		response.RespondEntityError(c, err)
		return
	}
	payload, err := decodePayload(c.Request.Body)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_json", err)
		return
	}
	rec, err := d.Create(c.Request.Context(), payload)
	if err != nil {
		response.RespondEntityError(c, err)
		return
	}
	response.RespondCreated(c, rec)
}

// PUT /api/:entity and PUT /api/:entity/:id
func (h *EntityHandler) Update(c *gin.Context) {
	d, err := h.actions.Resolve(c.Param("entity"))
	if err != nil {
		response.RespondEntityError(c, err)
		return
	}
	payload, err := decodePayload(c.Request.Body)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_json", err)
		return
	}
	if id := strings.TrimSpace(c.Param("id")); id != "" {
		payload["id"] = id
	}
	req, err := services.ParseUpdateRequest(d.Kind(), payload)
	if err != nil {
		response.RespondEntityError(c, err)
		return
	}
	rec, err := d.Update(c.Request.Context(), req)
	if err != nil {
		response.RespondEntityError(c, err)
		return
	}
	response.RespondOK(c, rec)
}

// decodePayload reads a JSON object, keeping numbers as json.Number so ids
// and amounts are not rounded through float64.
func decodePayload(body io.Reader) (map[string]any, error) {
	if body == nil {
		return nil, errors.New("request body is required")
	}
	dec := json.NewDecoder(body)
	dec.UseNumber()
	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("request body is required")
		}
		return nil, err
	}
	if payload == nil {
		return nil, errors.New("request body must be a JSON object")
	}
	if dec.More() {
		return nil, errors.New("request body must hold a single JSON object")
	}
	return payload, nil
}
