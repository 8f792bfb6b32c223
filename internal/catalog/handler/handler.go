package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/narendranaragani/printmaania/internal/catalog"
	"github.com/narendranaragani/printmaania/internal/catalog/dto"
	"github.com/narendranaragani/printmaania/pkg/logger"
)

type CatalogHandler struct {
	uc     catalog.UseCase
	logger logger.ZapLogger
}

func NewCatalogHandler(uc catalog.UseCase, log logger.ZapLogger) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: log}
}

func (h *CatalogHandler) Register(r gin.IRouter) {
	r.GET("/products", h.ListProducts)
	r.GET("/products/:slug", h.GetProduct)
	r.GET("/categories", h.ListCategories)
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	input := &dto.ListInput{
		Query:  c.Query("q"),
		SortBy: dto.SortOption(c.DefaultQuery("sort", string(dto.SortRelevance))),
	}

	filters := &dto.FilterOptions{
		Category:  c.QueryArray("category"),
		Sizes:     c.QueryArray("size"),
		Colors:    c.QueryArray("color"),
		Materials: c.QueryArray("material"),
		Tags:      c.QueryArray("tag"),
	}
	if v, ok := parseFloatQuery(c, "min_price"); ok {
		filters.MinPrice = &v
	}
	if v, ok := parseFloatQuery(c, "max_price"); ok {
		filters.MaxPrice = &v
	}
	if v, ok := parseBoolQuery(c, "best_seller"); ok {
		filters.IsBestSeller = &v
	}
	if v, ok := parseBoolQuery(c, "trending"); ok {
		filters.IsTrending = &v
	}
	input.Filters = filters

	products, count, err := h.uc.List(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    count,
	})
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.uc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.logger.Error("failed to get product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get product"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.uc.Categories(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func parseFloatQuery(c *gin.Context, key string) (float64, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseBoolQuery(c *gin.Context, key string) (bool, bool) {
	raw := c.Query(key)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
