package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type authHandler struct {
	log     *logrus.Entry
	service AuthService
}

func NewHandler(service AuthService, log *logrus.Entry) *authHandler {
	return &authHandler{
		log:     log,
		service: service,
	}
}

func (h *authHandler) Register(router *gin.Engine) {
	api := router.Group("/api/auth")
	{
		api.POST("/register", h.register)
		api.POST("/login", h.login)
		api.POST("/admin/login", h.adminLogin)
		api.POST("/logout", h.logout)
		api.GET("/me", RequireAuth(h.service), h.me)
	}

	roster := router.Group("/api/admin/admins", RequireSuperAdmin(h.service))
	{
		roster.GET("", h.listAdmins)
		roster.POST("", h.addAdmin)
		roster.PUT("/:id", h.updateAdmin)
		roster.DELETE("/:id", h.removeAdmin)
	}
}

type userResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

func toUserResponse(u *User) userResponse {
	return userResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    u.Role,
		Phone:   u.Phone,
		Address: u.Address,
	}
}

type adminResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name,omitempty"`
}

func toAdminResponse(a *Admin) adminResponse {
	return adminResponse{
		ID:       a.ID,
		Username: a.Username,
		Role:     a.Role,
		Name:     a.Name,
	}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

func (h *authHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.service.Register(RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrEmailTaken) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": toUserResponse(user)})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *authHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": toUserResponse(user)})
}

type adminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *authHandler) adminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, admin, err := h.service.AdminLogin(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "admin": toAdminResponse(admin)})
}

// Tokens are stateless, logout is client-side. The endpoint exists so the
// front end has something to call.
func (h *authHandler) logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *authHandler) me(c *gin.Context) {
	claims := ClaimsFromContext(c)
	c.JSON(http.StatusOK, gin.H{
		"id":           claims.Subject,
		"name":         claims.Name,
		"role":         claims.Role,
		"isAdmin":      claims.IsAdmin(),
		"isSuperAdmin": claims.IsSuperAdmin(),
	})
}

func (h *authHandler) listAdmins(c *gin.Context) {
	admins := h.service.Admins()
	out := make([]adminResponse, 0, len(admins))
	for i := range admins {
		out = append(out, toAdminResponse(&admins[i]))
	}
	c.JSON(http.StatusOK, out)
}

type addAdminRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Name     string `json:"name"`
}

func (h *authHandler) addAdmin(c *gin.Context) {
	var req addAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := h.service.AddAdmin(AdminInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
		Name:     req.Name,
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrUsernameTaken) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toAdminResponse(admin))
}

func (h *authHandler) updateAdmin(c *gin.Context) {
	var upd AdminUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.UpdateAdmin(c.Param("id"), upd); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrAdminNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *authHandler) removeAdmin(c *gin.Context) {
	claims := ClaimsFromContext(c)

	err := h.service.RemoveAdmin(claims.Subject, c.Param("id"))
	if err != nil {
		status := http.StatusConflict
		if errors.Is(err, ErrAdminNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
