package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/tealeg/xlsx"

	"github.com/nadafaclean/store-service/internal/auth"
)

type catalogHandler struct {
	log         *logrus.Entry
	service     CatalogService
	authService auth.AuthService
}

func NewHandler(service CatalogService, log *logrus.Entry, authService auth.AuthService) *catalogHandler {
	return &catalogHandler{
		log:         log,
		service:     service,
		authService: authService,
	}
}

func (h *catalogHandler) Register(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)
		api.GET("/categories", h.listCategories)
		api.GET("/subcategories", h.listSubcategories)
		api.GET("/sizes", h.listSizes)
		api.GET("/colors", h.listColors)
		api.GET("/smells", h.listSmells)
		api.GET("/delivery-options", h.listDeliveryOptions)
		api.GET("/delivery-zones", h.listDeliveryZones)
	}

	admin := router.Group("/api/admin", auth.RequireAdmin(h.authService))
	{
		admin.POST("/products", h.addProduct)
		admin.PUT("/products/:id", h.updateProduct)
		admin.DELETE("/products/:id", h.deleteProduct)
		admin.GET("/products/export/xlsx", h.exportProductsXLSX)

		admin.POST("/categories", h.addCategory)
		admin.PUT("/categories/:id", h.updateCategory)
		admin.DELETE("/categories/:id", h.deleteCategory)

		admin.POST("/subcategories", h.addSubcategory)
		admin.PUT("/subcategories/:id", h.updateSubcategory)
		admin.DELETE("/subcategories/:id", h.deleteSubcategory)

		admin.POST("/sizes", h.addSize)
		admin.PUT("/sizes/:id", h.updateSize)
		admin.DELETE("/sizes/:id", h.deleteSize)

		admin.POST("/colors", h.addColor)
		admin.PUT("/colors/:id", h.updateColor)
		admin.DELETE("/colors/:id", h.deleteColor)

		admin.POST("/smells", h.addSmell)
		admin.PUT("/smells/:id", h.updateSmell)
		admin.DELETE("/smells/:id", h.deleteSmell)

		admin.POST("/delivery-options", h.addDeliveryOption)
		admin.PUT("/delivery-options/:id", h.updateDeliveryOption)
		admin.DELETE("/delivery-options/:id", h.deleteDeliveryOption)

		admin.POST("/delivery-zones", h.addDeliveryZone)
		admin.PUT("/delivery-zones/:id", h.updateDeliveryZone)
		admin.DELETE("/delivery-zones/:id", h.deleteDeliveryZone)

		admin.GET("/export", h.exportData)
	}

	router.POST("/api/admin/import", auth.RequireSuperAdmin(h.authService), h.importData)
}

func (h *catalogHandler) respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case IsInUse(err):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (h *catalogHandler) listProducts(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		c.JSON(http.StatusOK, h.service.SearchProducts(q))
		return
	}
	if id := c.Query("category"); id != "" {
		c.JSON(http.StatusOK, h.service.ProductsByCategory(id))
		return
	}
	if id := c.Query("subcategory"); id != "" {
		c.JSON(http.StatusOK, h.service.ProductsBySubcategory(id))
		return
	}
	if c.Query("featured") == "true" {
		c.JSON(http.StatusOK, h.service.FeaturedProducts())
		return
	}
	c.JSON(http.StatusOK, h.service.Products())
}

func (h *catalogHandler) getProduct(c *gin.Context) {
	product, err := h.service.GetProductByID(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *catalogHandler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Categories())
}

func (h *catalogHandler) listSubcategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Subcategories())
}

func (h *catalogHandler) listSizes(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Sizes())
}

func (h *catalogHandler) listColors(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Colors())
}

func (h *catalogHandler) listSmells(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Smells())
}

func (h *catalogHandler) listDeliveryOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.DeliveryOptions())
}

func (h *catalogHandler) listDeliveryZones(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.DeliveryZones())
}

func (h *catalogHandler) addProduct(c *gin.Context) {
	var p Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.service.AddProduct(p)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *catalogHandler) updateProduct(c *gin.Context) {
	var upd ProductUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateProduct(c.Param("id"), upd); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *catalogHandler) deleteProduct(c *gin.Context) {
	if err := h.service.DeleteProduct(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *catalogHandler) addCategory(c *gin.Context) {
	var cat Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.service.AddCategory(cat)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *catalogHandler) updateCategory(c *gin.Context) {
	var upd CategoryUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateCategory(c.Param("id"), upd); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *catalogHandler) deleteCategory(c *gin.Context) {
	if err := h.service.DeleteCategory(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *catalogHandler) addSubcategory(c *gin.Context) {
	var sc Subcategory
	if err := c.ShouldBindJSON(&sc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.service.AddSubcategory(sc)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *catalogHandler) updateSubcategory(c *gin.Context) {
	var upd SubcategoryUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateSubcategory(c.Param("id"), upd); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *catalogHandler) deleteSubcategory(c *gin.Context) {
	if err := h.service.DeleteSubcategory(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *catalogHandler) addSize(c *gin.Context) {
	var sz Size
	if err := c.ShouldBindJSON(&sz); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.service.AddSize(sz)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *catalogHandler) updateSize(c *gin.Context) {
	var upd SizeUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateSize(c.Param("id"), upd); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *catalogHandler) deleteSize(c *gin.Context) {
	if err := h.service.DeleteSize(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *catalogHandler) addColor(c *gin.Context) {
	var col Color
	if err := c.ShouldBindJSON(&col); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.service.AddColor(col)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *catalogHandler) updateColor(c *gin.Context) {
	var upd ColorUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateColor(c.Param("id"), upd); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *catalogHandler) deleteColor(c *gin.Context) {
	if err := h.service.DeleteColor(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *catalogHandler) addSmell(c *gin.Context) {
	var sm Smell
	if err := c.ShouldBindJSON(&sm); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.service.AddSmell(sm)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *catalogHandler) updateSmell(c *gin.Context) {
	var upd SmellUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateSmell(c.Param("id"), upd); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *catalogHandler) deleteSmell(c *gin.Context) {
	if err := h.service.DeleteSmell(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *catalogHandler) addDeliveryOption(c *gin.Context) {
	var o DeliveryOption
	if err := c.ShouldBindJSON(&o); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.service.AddDeliveryOption(o)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *catalogHandler) updateDeliveryOption(c *gin.Context) {
	var upd DeliveryOptionUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateDeliveryOption(c.Param("id"), upd); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *catalogHandler) deleteDeliveryOption(c *gin.Context) {
	if err := h.service.DeleteDeliveryOption(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *catalogHandler) addDeliveryZone(c *gin.Context) {
	var z DeliveryZone
	if err := c.ShouldBindJSON(&z); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.service.AddDeliveryZone(z)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *catalogHandler) updateDeliveryZone(c *gin.Context) {
	var upd DeliveryZoneUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.UpdateDeliveryZone(c.Param("id"), upd); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *catalogHandler) deleteDeliveryZone(c *gin.Context) {
	if err := h.service.DeleteDeliveryZone(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *catalogHandler) exportData(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Export())
}

func (h *catalogHandler) importData(c *gin.Context) {
	var snap Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Import(snap); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *catalogHandler) exportProductsXLSX(c *gin.Context) {
	products := h.service.Products()

	categoryNames := make(map[string]string)
	for _, cat := range h.service.Categories() {
		categoryNames[cat.ID] = cat.Name
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create sheet"})
		return
	}

	headers := []string{
		"ID", "Name", "NameEn", "Description", "Price",
		"Category", "Stock", "Featured", "CreatedAt",
	}
	headerRow := sheet.AddRow()
	for _, hd := range headers {
		headerRow.AddCell().SetValue(hd)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.NameEn)
		row.AddCell().SetValue(p.Description)
		row.AddCell().SetValue(p.Price)
		row.AddCell().SetValue(categoryNames[p.CategoryID])
		row.AddCell().SetValue(p.Stock)
		row.AddCell().SetValue(strconv.FormatBool(p.Featured))
		row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	c.Header("Content-Disposition", "attachment; filename=products.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := file.Write(c.Writer); err != nil {
		h.log.Errorf("failed to write xlsx: %v", err)
	}
}
