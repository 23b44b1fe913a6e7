package cart

import (
	"math"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/nadafaclean/store-service/internal/catalog"
)

type CartService interface {
	Items() []Item
	AddToCart(product catalog.Product, quantity int) error
	RemoveFromCart(productID string) error
	UpdateQuantity(productID string, quantity int) error
	ClearCart() error

	ItemCount() int
	TotalPrice() float64
}

type cartService struct {
	mu      sync.Mutex
	storage *Storage
	log     *logrus.Entry

	items []Item
}

func NewService(storage *Storage, log *logrus.Entry) CartService {
	s := &cartService{
		storage: storage,
		log:     log,
	}

	var ok bool
	if s.items, ok = storage.LoadItems(); !ok {
		s.items = []Item{}
		storage.SaveItems(s.items)
	}

	return s
}

func (s *cartService) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Item(nil), s.items...)
}

// AddToCart collapses repeated adds of the same product into one entry. A
// non-positive quantity is a no-op; a quantity beyond the snapshot's stock is
// refused.
func (s *cartService) AddToCart(product catalog.Product, quantity int) error {
	if quantity <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			next := s.items[i].Quantity + quantity
			if next > s.items[i].Product.Stock {
				return ErrInsufficientStock
			}
			s.items[i].Quantity = next
			s.storage.SaveItems(s.items)
			return nil
		}
	}

	if quantity > product.Stock {
		return ErrInsufficientStock
	}
	s.items = append(s.items, Item{Product: product, Quantity: quantity})
	s.storage.SaveItems(s.items)
	return nil
}

func (s *cartService) RemoveFromCart(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(productID)
}

func (s *cartService) removeLocked(productID string) error {
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.storage.SaveItems(s.items)
			return nil
		}
	}
	return ErrNotInCart
}

// UpdateQuantity with a non-positive quantity removes the entry.
func (s *cartService) UpdateQuantity(productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.removeLocked(productID)
	}

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			if quantity > s.items[i].Product.Stock {
				return ErrInsufficientStock
			}
			s.items[i].Quantity = quantity
			s.storage.SaveItems(s.items)
			return nil
		}
	}
	return ErrNotInCart
}

func (s *cartService) ClearCart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []Item{}
	s.storage.SaveItems(s.items)
	return nil
}

func (s *cartService) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *cartService) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return math.Round(total*100) / 100
}
