package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narendranaragani/printmaania/internal/whatsapp"
	"github.com/narendranaragani/printmaania/pkg/logger"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewWhatsAppHandler(whatsapp.NewBuilder("919876543210"), logger.NewNop()).Register(r)
	return r
}

func post(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/whatsapp/link", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateLinkBulk(t *testing.T) {
	r := newTestRouter()

	w := post(t, r, `{
		"kind": "bulk",
		"data": {
			"product_category": "T-Shirts",
			"quantity": 100,
			"type": "Polo",
			"color": "White",
			"fabric": "Cotton"
		}
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Link    string `json:"link"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.Link, "https://wa.me/919876543210?text="))
	assert.Contains(t, resp.Message, "*New Bulk Order Request* 📦")
}

func TestGenerateLinkRejectsUnknownKind(t *testing.T) {
	r := newTestRouter()

	w := post(t, r, `{"kind": "fax", "data": {}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateLinkRejectsIncompleteForm(t *testing.T) {
	r := newTestRouter()

	// Bulk form without the mandatory fabric field.
	w := post(t, r, `{
		"kind": "bulk",
		"data": {"product_category": "T-Shirts", "quantity": 100, "type": "Polo", "color": "White"}
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
