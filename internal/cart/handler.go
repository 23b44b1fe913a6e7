package cart

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nadafaclean/store-service/internal/catalog"
)

type cartHandler struct {
	log            *logrus.Entry
	service        CartService
	catalogService catalog.CatalogService
}

func NewHandler(service CartService, catalogService catalog.CatalogService, log *logrus.Entry) *cartHandler {
	return &cartHandler{
		log:            log,
		service:        service,
		catalogService: catalogService,
	}
}

func (h *cartHandler) Register(router *gin.Engine) {
	api := router.Group("/api/cart")
	{
		api.GET("", h.getCart)
		api.POST("/items", h.addItem)
		api.PUT("/items/:productId", h.updateItem)
		api.DELETE("/items/:productId", h.removeItem)
		api.DELETE("", h.clearCart)
	}
}

func (h *cartHandler) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items":      h.service.Items(),
		"itemCount":  h.service.ItemCount(),
		"totalPrice": h.service.TotalPrice(),
	})
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

func (h *cartHandler) addItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, err := h.catalogService.GetProductByID(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.AddToCart(*product, req.Quantity); err != nil {
		h.respondError(c, err)
		return
	}
	h.getCart(c)
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *cartHandler) updateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.UpdateQuantity(c.Param("productId"), req.Quantity); err != nil {
		h.respondError(c, err)
		return
	}
	h.getCart(c)
}

func (h *cartHandler) removeItem(c *gin.Context) {
	if err := h.service.RemoveFromCart(c.Param("productId")); err != nil {
		h.respondError(c, err)
		return
	}
	h.getCart(c)
}

func (h *cartHandler) clearCart(c *gin.Context) {
	if err := h.service.ClearCart(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.getCart(c)
}

func (h *cartHandler) respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, ErrNotInCart):
		status = http.StatusNotFound
	case errors.Is(err, ErrInsufficientStock):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
