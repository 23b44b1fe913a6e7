package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadafaclean/store-service/pkg/kvstore"
	"github.com/nadafaclean/store-service/pkg/logger"
	"github.com/nadafaclean/store-service/pkg/notify"
)

func setup(t *testing.T) (CatalogService, *kvstore.MemStore) {
	t.Helper()
	store := kvstore.NewMemStore()
	log := logger.NewLogger("error", &CatalogLogHook{})
	service := NewService(NewStorage(store, log), log, notify.Nop{})
	return service, store
}

func TestSeedDataLoaded(t *testing.T) {
	service, store := setup(t)

	products := service.Products()
	require.NotEmpty(t, products)

	floor, err := service.GetProductByID("2001")
	require.NoError(t, err)
	assert.Equal(t, "Multi-Surface Floor Cleaner", floor.NameEn)
	assert.Equal(t, 15.99, floor.Price)
	assert.Equal(t, 50, floor.Stock)
	assert.Equal(t, "1001", floor.CategoryID)

	// seed is persisted on first construction, so a second instance reads
	// the store rather than reseeding
	log := logger.NewLogger("error", &CatalogLogHook{})
	second := NewService(NewStorage(store, log), log, notify.Nop{})
	assert.Len(t, second.Products(), len(products))
}

func TestAddProductRoundTrip(t *testing.T) {
	service, _ := setup(t)

	created, err := service.AddProduct(Product{
		Name:       "ملمع زجاج",
		NameEn:     "Glass Polish",
		Price:      9.25,
		CategoryID: "1002",
		Stock:      30,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	fetched, err := service.GetProductByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Glass Polish", fetched.NameEn)
	assert.Equal(t, 9.25, fetched.Price)
	assert.Equal(t, 30, fetched.Stock)
	assert.Equal(t, "1002", fetched.CategoryID)
}

func TestAddProductValidation(t *testing.T) {
	service, _ := setup(t)

	_, err := service.AddProduct(Product{Price: 5, CategoryID: "1001"})
	assert.ErrorIs(t, err, errNameRequired)

	_, err = service.AddProduct(Product{Name: "x", Price: -1, CategoryID: "1001"})
	assert.ErrorIs(t, err, errNegativePrice)

	_, err = service.AddProduct(Product{Name: "x", Price: 1})
	assert.ErrorIs(t, err, errCategoryRequired)
}

func TestGeneratedIDsAreUnique(t *testing.T) {
	service, _ := setup(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		p, err := service.AddProduct(Product{Name: "صابون", Price: 1, CategoryID: "1002"})
		require.NoError(t, err)
		require.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestUpdateProduct(t *testing.T) {
	service, _ := setup(t)

	price := 19.99
	stock := 10
	err := service.UpdateProduct("2001", ProductUpdate{Price: &price, Stock: &stock})
	require.NoError(t, err)

	p, err := service.GetProductByID("2001")
	require.NoError(t, err)
	assert.Equal(t, 19.99, p.Price)
	assert.Equal(t, 10, p.Stock)
	assert.Equal(t, "Multi-Surface Floor Cleaner", p.NameEn)

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		err := service.UpdateProduct("no-such-id", ProductUpdate{Price: &price})
		assert.NoError(t, err)
	})

	t.Run("negative price refused", func(t *testing.T) {
		bad := -5.0
		err := service.UpdateProduct("2001", ProductUpdate{Price: &bad})
		assert.ErrorIs(t, err, errNegativePrice)
	})
}

func TestDeleteCategoryReferentialIntegrity(t *testing.T) {
	service, _ := setup(t)

	// "Floor Cleaners" is referenced by the seeded floor cleaner
	err := service.DeleteCategory("1001")
	assert.ErrorIs(t, err, ErrCategoryInUse)

	var found bool
	for _, c := range service.Categories() {
		if c.ID == "1001" {
			found = true
		}
	}
	assert.True(t, found, "refused delete must leave the category in place")

	// remove the referencing products and subcategories, then retry
	require.NoError(t, service.DeleteProduct("2001"))
	require.NoError(t, service.DeleteSubcategory("1101"))
	require.NoError(t, service.DeleteSubcategory("1102"))

	require.NoError(t, service.DeleteCategory("1001"))
	for _, c := range service.Categories() {
		assert.NotEqual(t, "1001", c.ID)
	}
}

func TestDeleteAttributeInUse(t *testing.T) {
	service, _ := setup(t)

	assert.ErrorIs(t, service.DeleteSize("1202"), ErrSizeInUse)
	assert.ErrorIs(t, service.DeleteSmell("1401"), ErrSmellInUse)
	assert.ErrorIs(t, service.DeleteColor("1302"), ErrColorInUse)

	// 2003 is the only product using color 1302
	require.NoError(t, service.DeleteProduct("2003"))
	assert.NoError(t, service.DeleteColor("1302"))
}

func TestDeleteProductUnconditional(t *testing.T) {
	service, _ := setup(t)

	require.NoError(t, service.DeleteProduct("2002"))
	_, err := service.GetProductByID("2002")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, service.DeleteProduct("2002"), ErrNotFound)
}

func TestSearchAndFilters(t *testing.T) {
	service, _ := setup(t)

	results := service.SearchProducts("floor")
	require.Len(t, results, 1)
	assert.Equal(t, "2001", results[0].ID)

	arabic := service.SearchProducts("صحون")
	require.Len(t, arabic, 1)
	assert.Equal(t, "2002", arabic[0].ID)

	byCat := service.ProductsByCategory("1001")
	require.Len(t, byCat, 1)

	featured := service.FeaturedProducts()
	assert.Len(t, featured, 2)
}

func TestExportImportRoundTrip(t *testing.T) {
	service, _ := setup(t)

	_, err := service.AddProduct(Product{Name: "منظف سجاد", Price: 22, CategoryID: "1001", Stock: 5})
	require.NoError(t, err)
	snapshot := service.Export()

	// import into a fresh manager over a fresh store
	freshStore := kvstore.NewMemStore()
	log := logger.NewLogger("error", &CatalogLogHook{})
	fresh := NewService(NewStorage(freshStore, log), log, notify.Nop{})

	require.NoError(t, fresh.Import(snapshot))

	assert.ElementsMatch(t, snapshot.Products, fresh.Products())
	assert.ElementsMatch(t, snapshot.Categories, fresh.Categories())
	assert.ElementsMatch(t, snapshot.Subcategories, fresh.Subcategories())
	assert.ElementsMatch(t, snapshot.Sizes, fresh.Sizes())
	assert.ElementsMatch(t, snapshot.Colors, fresh.Colors())
	assert.ElementsMatch(t, snapshot.Smells, fresh.Smells())
	assert.ElementsMatch(t, snapshot.DeliveryOptions, fresh.DeliveryOptions())
	assert.ElementsMatch(t, snapshot.DeliveryZones, fresh.DeliveryZones())
}

func TestDeliveryZoneValidation(t *testing.T) {
	service, _ := setup(t)

	_, err := service.AddDeliveryZone(DeliveryZone{Name: "جدة", Active: true})
	assert.ErrorIs(t, err, errCitiesRequired)

	fee := -2.0
	err = service.UpdateDeliveryZone("3101", DeliveryZoneUpdate{AdditionalFee: &fee})
	assert.ErrorIs(t, err, errNegativeFee)

	zone, err := service.AddDeliveryZone(DeliveryZone{Name: "جدة", Cities: []string{"جدة"}, AdditionalFee: 10, Active: true})
	require.NoError(t, err)
	require.NoError(t, service.DeleteDeliveryZone(zone.ID))
}
