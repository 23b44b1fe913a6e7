package catalog

import "errors"

var (
	ErrNotFound = errors.New("record not found")

	errNameRequired     = errors.New("name is required")
	errNegativePrice    = errors.New("price must not be negative")
	errNegativeStock    = errors.New("stock must not be negative")
	errNegativeFee      = errors.New("additional fee must not be negative")
	errCategoryRequired = errors.New("category is required")
	errCitiesRequired   = errors.New("zone must list at least one city")
	errValueRequired    = errors.New("value is required")
	errHexRequired      = errors.New("hex code is required")

	ErrCategoryInUse    = errors.New("category is referenced by products or subcategories")
	ErrSubcategoryInUse = errors.New("subcategory is referenced by products")
	ErrSizeInUse        = errors.New("size is referenced by products")
	ErrColorInUse       = errors.New("color is referenced by products")
	ErrSmellInUse       = errors.New("smell is referenced by products")
)

// IsInUse reports whether err is a referential-integrity refusal.
func IsInUse(err error) bool {
	return errors.Is(err, ErrCategoryInUse) ||
		errors.Is(err, ErrSubcategoryInUse) ||
		errors.Is(err, ErrSizeInUse) ||
		errors.Is(err, ErrColorInUse) ||
		errors.Is(err, ErrSmellInUse)
}
