package order

import (
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nadafaclean/store-service/internal/cart"
	"github.com/nadafaclean/store-service/internal/catalog"
	"github.com/nadafaclean/store-service/pkg/notify"
)

type OrderService interface {
	CreateOrder(customer CustomerInfo, deliveryOptionID, deliveryZoneID string) (*Order, error)
	Orders() []Order
	GetOrderByID(id string) (*Order, error)
	GetOrdersForCustomer(email string) []Order
	UpdateOrderStatus(id, status string) error
}

type orderService struct {
	mu       sync.Mutex
	storage  *Storage
	log      *logrus.Entry
	notifier notify.Notifier

	cartService    cart.CartService
	catalogService catalog.CatalogService

	orders []Order
}

func NewService(storage *Storage, cartService cart.CartService, catalogService catalog.CatalogService, log *logrus.Entry, notifier notify.Notifier) OrderService {
	s := &orderService{
		storage:        storage,
		log:            log,
		notifier:       notifier,
		cartService:    cartService,
		catalogService: catalogService,
	}

	var ok bool
	if s.orders, ok = storage.LoadOrders(); !ok {
		s.orders = []Order{}
		storage.SaveOrders(s.orders)
	}

	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CreateOrder snapshots the cart into denormalized line items, prices the
// delivery from the selected option and zone, and clears the cart. Clearing
// is a required side effect: it prevents the same cart contents from being
// submitted twice.
func (s *orderService) CreateOrder(customer CustomerInfo, deliveryOptionID, deliveryZoneID string) (*Order, error) {
	items := s.cartService.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	option, err := s.catalogService.GetDeliveryOption(deliveryOptionID)
	if err != nil || !option.Active {
		return nil, ErrDeliveryUnavailable
	}
	zone, err := s.catalogService.GetDeliveryZone(deliveryZoneID)
	if err != nil || !zone.Active {
		return nil, ErrDeliveryUnavailable
	}

	lines := make([]Item, 0, len(items))
	subtotal := 0.0
	for _, item := range items {
		lines = append(lines, Item{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			NameEn:    item.Product.NameEn,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price,
		})
		subtotal += item.Product.Price * float64(item.Quantity)
	}

	fee := option.Price + zone.AdditionalFee
	order := Order{
		ID:                 uuid.NewString(),
		Items:              lines,
		Customer:           customer,
		DeliveryOptionName: option.Name,
		DeliveryZoneName:   zone.Name,
		Subtotal:           round2(subtotal),
		DeliveryFee:        round2(fee),
		Total:              round2(subtotal + fee),
		Status:             StatusPending,
		CreatedAt:          time.Now(),
	}

	s.mu.Lock()
	s.orders = append(s.orders, order)
	s.storage.SaveOrders(s.orders)
	s.mu.Unlock()

	if err := s.cartService.ClearCart(); err != nil {
		s.log.Errorf("failed to clear cart after order %s: %v", order.ID, err)
	}

	s.notifier.Notify("order.created", order)
	return &order, nil
}

func (s *orderService) Orders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := append([]Order(nil), s.orders...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *orderService) GetOrderByID(id string) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			o := s.orders[i]
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (s *orderService) GetOrdersForCustomer(email string) []Order {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Order
	for _, o := range s.orders {
		if strings.ToLower(o.Customer.Email) == email {
			out = append(out, o)
		}
	}
	return out
}

func (s *orderService) UpdateOrderStatus(id, status string) error {
	if _, ok := statusTransitions[status]; !ok {
		return ErrUnknownStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if !transitionAllowed(s.orders[i].Status, status) {
			return ErrInvalidTransition
		}
		s.orders[i].Status = status
		s.storage.SaveOrders(s.orders)
		s.notifier.Notify("order.statusChanged", s.orders[i])
		return nil
	}
	return ErrOrderNotFound
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
