package cart

import "github.com/nadafaclean/store-service/internal/catalog"

// Item pairs a product snapshot with a quantity. The snapshot is captured at
// add time so later catalog edits do not alter the cart.
type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}
