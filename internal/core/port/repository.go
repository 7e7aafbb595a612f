package port

import (
	"context"

	"github.com/adinugroho/laundryhub/internal/core/domain"
)

// Repository is the persistence strategy behind the order store. Two
// implementations share this contract: the JSON file store for offline
// single-shop use and the postgres store for the hosted mode. The service
// layer never branches on which one is active.
//
//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// User
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByLogin(ctx context.Context, login string) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	DeleteAllUsers(ctx context.Context) error

	// Customer
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	ListCustomersByUser(ctx context.Context, userID uint64) ([]*domain.Customer, error)

	// Service catalog
	CreateService(ctx context.Context, item *domain.ServiceItem) (*domain.ServiceItem, error)
	ListServicesByUser(ctx context.Context, userID uint64) ([]*domain.ServiceItem, error)

	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, userID uint64, orderID uint64) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, userID uint64, orderID uint64, status domain.OrderStatus) error
	AddPayment(ctx context.Context, userID uint64, orderID uint64, payment domain.Payment) (*domain.Order, error)
	DeleteOrdersByUser(ctx context.Context, userID uint64) error

	// Notification
	CreateNotification(ctx context.Context, notification *domain.Notification) error
	ListNotificationsByUser(ctx context.Context, userID uint64) ([]*domain.Notification, error)
	MarkNotificationsRead(ctx context.Context, userID uint64) error
}
