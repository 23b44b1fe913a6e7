package cart

import "errors"

var (
	ErrNotInCart         = errors.New("product is not in the cart")
	ErrInsufficientStock = errors.New("requested quantity exceeds available stock")
)
