package order

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nadafaclean/store-service/internal/auth"
	"github.com/nadafaclean/store-service/pkg/notify"
)

type orderHandler struct {
	log         *logrus.Entry
	service     OrderService
	authService auth.AuthService
	hub         *notify.Hub
}

func NewHandler(service OrderService, authService auth.AuthService, hub *notify.Hub, log *logrus.Entry) *orderHandler {
	return &orderHandler{
		log:         log,
		service:     service,
		authService: authService,
		hub:         hub,
	}
}

func (h *orderHandler) Register(router *gin.Engine) {
	api := router.Group("/api/orders")
	{
		api.POST("", h.createOrder)
		api.GET("", h.ordersForCustomer)
		api.GET("/:id", h.getOrder)
	}

	admin := router.Group("/api/admin/orders", auth.RequireAdmin(h.authService))
	{
		admin.GET("", h.listOrders)
		admin.PATCH("/:id/status", h.updateStatus)
	}

	// the event feed carries customer details, so it is admin-only; browser
	// clients authenticate with ?token=
	router.GET("/ws/notifications", auth.RequireAdmin(h.authService), h.hub.HandleWS)
}

type createOrderRequest struct {
	Customer struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Phone   string `json:"phone" binding:"required"`
		Address string `json:"address" binding:"required"`
		City    string `json:"city" binding:"required"`
		Notes   string `json:"notes"`
	} `json:"customer" binding:"required"`
	DeliveryOptionID string `json:"deliveryOptionId" binding:"required"`
	DeliveryZoneID   string `json:"deliveryZoneId" binding:"required"`
}

func (h *orderHandler) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.service.CreateOrder(CustomerInfo{
		Name:    req.Customer.Name,
		Email:   req.Customer.Email,
		Phone:   req.Customer.Phone,
		Address: req.Customer.Address,
		City:    req.Customer.City,
		Notes:   req.Customer.Notes,
	}, req.DeliveryOptionID, req.DeliveryZoneID)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrDeliveryUnavailable) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *orderHandler) ordersForCustomer(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}
	c.JSON(http.StatusOK, h.service.GetOrdersForCustomer(email))
}

func (h *orderHandler) getOrder(c *gin.Context) {
	order, err := h.service.GetOrderByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *orderHandler) listOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Orders())
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *orderHandler) updateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.service.UpdateOrderStatus(c.Param("id"), req.Status)
	if err != nil {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, ErrOrderNotFound):
			status = http.StatusNotFound
		case errors.Is(err, ErrInvalidTransition):
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
