package port

import (
	"context"

	"github.com/adinugroho/laundryhub/internal/core/domain"
	"github.com/govalues/decimal"
)

// OrderReport is the aggregation consumed by the spreadsheet/PDF export
// surface. Formatting is up to the consumer.
type OrderReport struct {
	Orders      []OrderReportRow
	OrderCount  int
	Revenue     decimal.Decimal
	Collected   decimal.Decimal
	Outstanding decimal.Decimal
}

type OrderReportRow struct {
	Order   *domain.Order
	Balance domain.Balance
}

type Service interface {
	// Account
	RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error)
	LoginUser(ctx context.Context, login string, password string) (string, error)
	VerifyEmail(ctx context.Context, login string, code string) error
	ResendVerification(ctx context.Context, login string) error
	ListUsers(ctx context.Context) ([]*domain.User, error)
	ClearUsers(ctx context.Context) error

	// Orders
	CreateOrder(ctx context.Context, userID uint64, customer domain.CustomerInfo, items []domain.OrderItem) (*domain.Order, error)
	GetOrder(ctx context.Context, userID uint64, orderID uint64) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, userID uint64, orderID uint64, status string) error
	AddPayment(ctx context.Context, userID uint64, orderID uint64, amount decimal.Decimal, method string) (*domain.Order, error)
	ResetOrders(ctx context.Context, userID uint64) error
	OrderReport(ctx context.Context, userID uint64) (*OrderReport, error)

	// Customers and catalog
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	ListCustomersByUser(ctx context.Context, userID uint64) ([]*domain.Customer, error)
	ListServices(ctx context.Context, userID uint64) ([]*domain.ServiceItem, error)

	// Notifications
	ListNotifications(ctx context.Context, userID uint64) ([]*domain.Notification, error)
	MarkNotificationsRead(ctx context.Context, userID uint64) error
}
