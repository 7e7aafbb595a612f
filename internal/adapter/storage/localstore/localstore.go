// Package localstore is the offline backing store: one JSON file per
// collection under a data directory. It mirrors the key-value layout the
// browser build keeps in local storage, so a shop can run the app with no
// database at all. Failures degrade to empty collections instead of
// propagating; writes are best-effort.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/adinugroho/laundryhub/internal/core/domain"
	"github.com/adinugroho/laundryhub/internal/core/port"
	"go.uber.org/zap"
)

// Fixed collection keys, one file per key.
const (
	keyUsers         = "users"
	keyCustomers     = "customers"
	keyServices      = "services"
	keyOrders        = "orders"
	keyNotifications = "notifications"
	keySettings      = "settings"
)

type settings struct {
	NextID uint64 `json:"next_id"`
}

type Store struct {
	mu     sync.RWMutex
	dir    string
	logger *zap.Logger

	users         []*domain.User
	customers     []*domain.Customer
	services      []*domain.ServiceItem
	orders        []*domain.Order
	notifications []*domain.Notification
	settings      settings
}

var _ port.Repository = (*Store)(nil)

func New(dir string, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	s := &Store{
		dir:    dir,
		logger: logger,
	}

	s.load(keyUsers, &s.users)
	s.load(keyCustomers, &s.customers)
	s.load(keyServices, &s.services)
	s.load(keyOrders, &s.orders)
	s.load(keyNotifications, &s.notifications)
	s.load(keySettings, &s.settings)

	return s, nil
}

// load fills target from the collection file. A missing file is a fresh
// store; a corrupt one degrades to the empty collection.
func (s *Store) load(key string, target any) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("read collection, starting empty",
				zap.String("collection", key), zap.Error(err))
		}
		return
	}
	if err := json.Unmarshal(data, target); err != nil {
		s.logger.Warn("corrupt collection, starting empty",
			zap.String("collection", key), zap.Error(err))
	}
}

func (s *Store) save(key string, value any) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		s.logger.Error("marshal collection", zap.String("collection", key), zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		s.logger.Error("write collection", zap.String("collection", key), zap.Error(err))
	}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// nextID is the monotonic local counter shared by every collection.
func (s *Store) nextID() uint64 {
	s.settings.NextID++
	s.save(keySettings, &s.settings)
	return s.settings.NextID
}

func (s *Store) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Login == user.Login {
			return nil, domain.ErrConflictingData
		}
	}

	stored := *user
	stored.ID = s.nextID()
	s.users = append(s.users, &stored)
	s.save(keyUsers, s.users)

	result := stored
	return &result, nil
}

func (s *Store) GetUserByLogin(_ context.Context, login string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Login == login {
			result := *u
			return &result, nil
		}
	}
	return nil, domain.ErrDataNotFound
}

func (s *Store) UpdateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == user.ID {
			stored := *user
			s.users[i] = &stored
			s.save(keyUsers, s.users)
			result := stored
			return &result, nil
		}
	}
	return nil, domain.ErrDataNotFound
}

func (s *Store) ListUsers(_ context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		result := *u
		list = append(list, &result)
	}
	return list, nil
}

func (s *Store) DeleteAllUsers(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = nil
	s.save(keyUsers, s.users)
	return nil
}

func (s *Store) CreateCustomer(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *customer
	stored.ID = s.nextID()
	s.customers = append(s.customers, &stored)
	s.save(keyCustomers, s.customers)

	result := stored
	return &result, nil
}

func (s *Store) ListCustomersByUser(_ context.Context, userID uint64) ([]*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*domain.Customer, 0)
	for _, c := range s.customers {
		if c.UserID == userID {
			result := *c
			list = append(list, &result)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (s *Store) CreateService(_ context.Context, item *domain.ServiceItem) (*domain.ServiceItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *item
	stored.ID = s.nextID()
	s.services = append(s.services, &stored)
	s.save(keyServices, s.services)

	result := stored
	return &result, nil
}

func (s *Store) ListServicesByUser(_ context.Context, userID uint64) ([]*domain.ServiceItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*domain.ServiceItem, 0)
	for _, item := range s.services {
		if item.UserID == userID {
			result := *item
			list = append(list, &result)
		}
	}
	return list, nil
}

func (s *Store) CreateOrder(_ context.Context, order *domain.Order) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneOrder(order)
	stored.ID = s.nextID()
	s.orders = append(s.orders, stored)
	s.save(keyOrders, s.orders)

	return cloneOrder(stored), nil
}

func (s *Store) ReadOrder(_ context.Context, userID uint64, orderID uint64) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order := s.findOrder(userID, orderID)
	if order == nil {
		return nil, domain.ErrDataNotFound
	}
	return cloneOrder(order), nil
}

func (s *Store) ListOrdersByUser(_ context.Context, userID uint64) ([]*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*domain.Order, 0)
	for _, order := range s.orders {
		if order.UserID == userID {
			list = append(list, cloneOrder(order))
		}
	}

	// Newest first is the display convention.
	sort.Slice(list, func(i, j int) bool {
		if !list[i].OrderDate.Equal(list[j].OrderDate) {
			return list[i].OrderDate.After(list[j].OrderDate)
		}
		return list[i].ID > list[j].ID
	})

	return list, nil
}

func (s *Store) UpdateOrderStatus(_ context.Context, userID uint64, orderID uint64, status domain.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.findOrder(userID, orderID)
	if order == nil {
		return domain.ErrDataNotFound
	}

	order.Status = status
	s.save(keyOrders, s.orders)
	return nil
}

func (s *Store) AddPayment(_ context.Context, userID uint64, orderID uint64, payment domain.Payment) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.findOrder(userID, orderID)
	if order == nil {
		return nil, domain.ErrDataNotFound
	}

	paid, err := order.AmountPaid.Add(payment.Amount)
	if err != nil {
		return nil, err
	}

	order.Payments = append(order.Payments, payment)
	order.AmountPaid = paid
	s.save(keyOrders, s.orders)

	return cloneOrder(order), nil
}

func (s *Store) DeleteOrdersByUser(_ context.Context, userID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.orders[:0]
	for _, order := range s.orders {
		if order.UserID != userID {
			kept = append(kept, order)
		}
	}
	s.orders = kept
	s.save(keyOrders, s.orders)
	return nil
}

func (s *Store) CreateNotification(_ context.Context, notification *domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *notification
	s.notifications = append(s.notifications, &stored)
	s.save(keyNotifications, s.notifications)
	return nil
}

func (s *Store) ListNotificationsByUser(_ context.Context, userID uint64) ([]*domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*domain.Notification, 0)
	for _, n := range s.notifications {
		if n.UserID == userID {
			result := *n
			list = append(list, &result)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (s *Store) MarkNotificationsRead(_ context.Context, userID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.notifications {
		if n.UserID == userID {
			n.Read = true
		}
	}
	s.save(keyNotifications, s.notifications)
	return nil
}

// findOrder must be called with the lock held.
func (s *Store) findOrder(userID uint64, orderID uint64) *domain.Order {
	for _, order := range s.orders {
		if order.ID == orderID && order.UserID == userID {
			return order
		}
	}
	return nil
}

func cloneOrder(order *domain.Order) *domain.Order {
	clone := *order
	clone.Items = append([]domain.OrderItem(nil), order.Items...)
	clone.Payments = append([]domain.Payment(nil), order.Payments...)
	return &clone
}
