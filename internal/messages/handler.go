package messages

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nadafaclean/store-service/internal/auth"
)

type messagesHandler struct {
	log         *logrus.Entry
	service     MessagesService
	authService auth.AuthService
}

func NewHandler(service MessagesService, authService auth.AuthService, log *logrus.Entry) *messagesHandler {
	return &messagesHandler{
		log:         log,
		service:     service,
		authService: authService,
	}
}

func (h *messagesHandler) Register(router *gin.Engine) {
	router.POST("/api/contact", h.submit)

	admin := router.Group("/api/admin/messages", auth.RequireAdmin(h.authService))
	{
		admin.GET("", h.list)
		admin.PUT("/:id", h.update)
		admin.DELETE("/:id", h.delete)
		admin.PATCH("/:id/read", h.markRead)
		admin.PATCH("/:id/reply", h.reply)
		admin.PATCH("/:id/star", h.toggleStar)
	}
}

type submitRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

func (h *messagesHandler) submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.service.AddMessage(MessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, msg)
}

func (h *messagesHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Messages())
}

func (h *messagesHandler) update(c *gin.Context) {
	var upd MessageUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateMessage(c.Param("id"), upd); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *messagesHandler) delete(c *gin.Context) {
	if err := h.service.DeleteMessage(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *messagesHandler) markRead(c *gin.Context) {
	if err := h.service.MarkAsRead(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type replyRequest struct {
	Reply string `json:"reply" binding:"required"`
}

func (h *messagesHandler) reply(c *gin.Context) {
	var req replyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.MarkAsReplied(c.Param("id"), req.Reply); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *messagesHandler) toggleStar(c *gin.Context) {
	if err := h.service.ToggleStar(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *messagesHandler) respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, ErrMessageNotFound) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
