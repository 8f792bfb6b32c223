package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/narendranaragani/printmaania/internal/whatsapp"
	"github.com/narendranaragani/printmaania/pkg/logger"
)

type WhatsAppHandler struct {
	builder *whatsapp.Builder
	logger  logger.ZapLogger
}

func NewWhatsAppHandler(builder *whatsapp.Builder, log logger.ZapLogger) *WhatsAppHandler {
	return &WhatsAppHandler{
		builder: builder,
		logger:  log,
	}
}

func (h *WhatsAppHandler) Register(r gin.IRouter) {
	r.POST("/whatsapp/link", h.GenerateLink)
}

type linkRequest struct {
	Kind string          `json:"kind" binding:"required,oneof=bulk normal product"`
	Data json.RawMessage `json:"data" binding:"required"`
}

// GenerateLink validates the form for the requested kind before any message
// is built; invalid input never reaches the builder.
func (h *WhatsAppHandler) GenerateLink(c *gin.Context) {
	var req linkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	payload, err := decodePayload(req.Kind, req.Data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"link":    h.builder.BuildLink(payload),
		"message": whatsapp.BuildMessage(payload),
	})
}

func decodePayload(kind string, data json.RawMessage) (whatsapp.Payload, error) {
	switch kind {
	case "bulk":
		var p whatsapp.BulkOrder
		if err := unmarshalValid(data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case "product":
		var p whatsapp.ProductOrder
		if err := unmarshalValid(data, &p); err != nil {
			return nil, err
		}
		return p, nil
	default:
		var p whatsapp.NormalOrder
		if err := unmarshalValid(data, &p); err != nil {
			return nil, err
		}
		return p, nil
	}
}

func unmarshalValid(data json.RawMessage, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(v)
}
