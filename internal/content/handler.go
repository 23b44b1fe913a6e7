package content

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nadafaclean/store-service/internal/auth"
)

type contentHandler struct {
	log         *logrus.Entry
	service     ContentService
	authService auth.AuthService
}

func NewHandler(service ContentService, authService auth.AuthService, log *logrus.Entry) *contentHandler {
	return &contentHandler{
		log:         log,
		service:     service,
		authService: authService,
	}
}

func (h *contentHandler) Register(router *gin.Engine) {
	router.GET("/api/content", h.listBlocks)
	router.GET("/api/settings", h.getSettings)

	admin := router.Group("/api/admin", auth.RequireSuperAdmin(h.authService))
	{
		admin.POST("/content", h.addBlock)
		admin.PUT("/content/:id", h.updateBlock)
		admin.DELETE("/content/:id", h.deleteBlock)
		admin.PUT("/settings", h.updateSettings)
	}
}

func (h *contentHandler) listBlocks(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Blocks(c.Query("page")))
}

func (h *contentHandler) getSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Settings())
}

func (h *contentHandler) addBlock(c *gin.Context) {
	var b Block
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.service.AddBlock(b)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *contentHandler) updateBlock(c *gin.Context) {
	var b Block
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateBlock(c.Param("id"), b); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrBlockNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *contentHandler) deleteBlock(c *gin.Context) {
	if err := h.service.DeleteBlock(c.Param("id")); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrBlockNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *contentHandler) updateSettings(c *gin.Context) {
	var s Settings
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateSettings(s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
