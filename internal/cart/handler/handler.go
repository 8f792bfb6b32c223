package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/narendranaragani/printmaania/internal/cart"
	"github.com/narendranaragani/printmaania/internal/cart/dto"
	"github.com/narendranaragani/printmaania/internal/model"
	"github.com/narendranaragani/printmaania/pkg/logger"
)

type CartHandler struct {
	uc       cart.UseCase
	store    cart.Store
	wishlist cart.WishlistStore
	saved    cart.SaveForLaterStore
	logger   logger.ZapLogger
}

func NewCartHandler(uc cart.UseCase, store cart.Store, wishlist cart.WishlistStore, saved cart.SaveForLaterStore, log logger.ZapLogger) *CartHandler {
	return &CartHandler{
		uc:       uc,
		store:    store,
		wishlist: wishlist,
		saved:    saved,
		logger:   log,
	}
}

func (h *CartHandler) Register(r gin.IRouter) {
	r.GET("/cart", h.GetCart)
	r.POST("/cart/items", h.AddItem)
	r.PATCH("/cart/items/:productId", h.UpdateItem)
	r.DELETE("/cart/items/:productId", h.RemoveItem)
	r.DELETE("/cart", h.ClearCart)
	r.GET("/cart/totals", h.GetTotals)

	r.GET("/wishlist", h.GetWishlist)
	r.POST("/wishlist/items", h.AddWishlistItem)
	r.DELETE("/wishlist/items/:productId", h.RemoveWishlistItem)

	r.GET("/saved", h.GetSaved)
	r.POST("/saved/:productId", h.SaveForLater)
	r.POST("/saved/:productId/move-to-cart", h.MoveToCart)
	r.DELETE("/saved/:productId", h.RemoveSaved)
}

func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items":       h.store.Items(),
		"total_items": h.store.TotalItems(),
	})
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	item := model.CartItem{
		ProductID:      req.ProductID,
		ProductSlug:    req.ProductSlug,
		ProductTitle:   req.ProductTitle,
		Quantity:       req.Quantity,
		Color:          req.Color,
		Size:           req.Size,
		Material:       req.Material,
		CustomOptions:  req.CustomOptions,
		DesignUploaded: req.DesignUploaded,
		DesignFileName: req.DesignFileName,
		Notes:          req.Notes,
		UnitPrice:      req.UnitPrice,
	}
	if err := h.store.Add(item); err != nil {
		h.logger.Error("failed to add cart item", zap.String("product_id", req.ProductID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"items": h.store.Items()})
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req dto.UpdateItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	updates := cart.ItemUpdate{
		Quantity:       req.Quantity,
		Color:          req.Color,
		Size:           req.Size,
		Material:       req.Material,
		CustomOptions:  req.CustomOptions,
		DesignUploaded: req.DesignUploaded,
		DesignFileName: req.DesignFileName,
		Notes:          req.Notes,
	}
	if err := h.store.Update(c.Param("productId"), updates); err != nil {
		h.logger.Error("failed to update cart item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": h.store.Items()})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	if err := h.store.Remove(c.Param("productId")); err != nil {
		h.logger.Error("failed to remove cart item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.store.Items()})
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.store.Clear(); err != nil {
		h.logger.Error("failed to clear cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) GetTotals(c *gin.Context) {
	totals, err := h.uc.Totals(c.Request.Context(), h.store.Items())
	if err != nil {
		h.logger.Error("failed to compute cart totals", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute totals"})
		return
	}
	c.JSON(http.StatusOK, totals)
}

func (h *CartHandler) GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": h.wishlist.Items(),
		"count": h.wishlist.Count(),
	})
}

func (h *CartHandler) AddWishlistItem(c *gin.Context) {
	var req dto.AddWishlistInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.wishlist.Add(req.ProductID, req.ProductSlug); err != nil {
		h.logger.Error("failed to add wishlist item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"count": h.wishlist.Count()})
}

func (h *CartHandler) RemoveWishlistItem(c *gin.Context) {
	if err := h.wishlist.Remove(c.Param("productId")); err != nil {
		h.logger.Error("failed to remove wishlist item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": h.wishlist.Count()})
}

func (h *CartHandler) GetSaved(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.saved.Items()})
}

// SaveForLater parks a cart line: the line moves out of the cart untouched.
func (h *CartHandler) SaveForLater(c *gin.Context) {
	productID := c.Param("productId")

	item, ok := h.store.Get(productID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not in cart"})
		return
	}

	if err := h.saved.Add(item); err != nil {
		h.logger.Error("failed to save item for later", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save item"})
		return
	}
	if err := h.store.Remove(productID); err != nil {
		h.logger.Error("failed to remove saved item from cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": h.saved.Items()})
}

func (h *CartHandler) MoveToCart(c *gin.Context) {
	item, ok, err := h.saved.MoveToCart(c.Param("productId"))
	if err != nil {
		h.logger.Error("failed to move saved item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to move item"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not saved"})
		return
	}

	if err := h.store.Add(item); err != nil {
		h.logger.Error("failed to add moved item to cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to move item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.store.Items()})
}

func (h *CartHandler) RemoveSaved(c *gin.Context) {
	if err := h.saved.Remove(c.Param("productId")); err != nil {
		h.logger.Error("failed to remove saved item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.saved.Items()})
}
