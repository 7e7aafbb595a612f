package service

import (
	"context"
	"errors"
	"time"

	"github.com/adinugroho/laundryhub/internal/core/domain"
	"github.com/adinugroho/laundryhub/internal/core/port"
	"github.com/adinugroho/laundryhub/internal/core/utils"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// Service owns the order collection for authenticated shops and mediates
// every mutation. The persistence backend and the notification channel are
// injected, so the same logic runs against the local file store and the
// hosted postgres store.
type Service struct {
	repo         port.Repository
	tokenService port.TokenService
	notifier     port.Notifier
	mailer       port.Mailer
	backend      string
	logger       *zap.Logger
}

func NewService(repo port.Repository, tokenService port.TokenService,
	notifier port.Notifier, mailer port.Mailer,
	backend string, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:         repo,
		tokenService: tokenService,
		notifier:     notifier,
		mailer:       mailer,
		backend:      backend,
		logger:       logger,
	}, nil
}

func (s *Service) RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	exUser, err := s.repo.GetUserByLogin(ctx, user.Login)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if exUser != nil {
		return nil, domain.ErrConflictingData
	}

	user.CreatedAt = time.Now()
	newUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		s.logger.Error("Create user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if err := s.mailer.SendVerificationCode(ctx, newUser.Login); err != nil {
		s.logger.Error("Send verification code", zap.Error(err))
	}

	return newUser, nil
}

func (s *Service) LoginUser(ctx context.Context, login string, password string) (string, error) {
	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", domain.ErrInternal
	}

	err = utils.ComparePassword(password, user.Password)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	if !user.Verified {
		return "", domain.ErrEmailNotVerified
	}

	token, err := s.tokenService.CreateToken(user, s.backend)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

func (s *Service) VerifyEmail(ctx context.Context, login string, code string) error {
	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return domain.ErrDataNotFound
		}
		return domain.ErrInternal
	}

	if user.Verified {
		return nil
	}

	if err := s.mailer.CheckVerificationCode(ctx, login, code); err != nil {
		return domain.ErrBadVerificationCode
	}

	user.Verified = true
	if _, err := s.repo.UpdateUser(ctx, user); err != nil {
		s.logger.Error("Update user", zap.Error(err))
		return domain.ErrInternal
	}

	return nil
}

func (s *Service) ResendVerification(ctx context.Context, login string) error {
	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return domain.ErrDataNotFound
		}
		return domain.ErrInternal
	}

	if user.Verified {
		return nil
	}

	if err := s.mailer.SendVerificationCode(ctx, user.Login); err != nil {
		s.logger.Error("Send verification code", zap.Error(err))
		return domain.ErrInternal
	}

	return nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Service) ClearUsers(ctx context.Context) error {
	return s.repo.DeleteAllUsers(ctx)
}

func (s *Service) CreateOrder(ctx context.Context, userID uint64,
	customer domain.CustomerInfo, items []domain.OrderItem) (*domain.Order, error) {

	order := &domain.Order{
		UserID:   userID,
		Customer: customer,
		Items:    items,
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}

	for i := range order.Items {
		sub, err := order.Items[i].WeightKg.Mul(order.Items[i].PricePerKg)
		if err != nil {
			s.logger.Error("Item subtotal", zap.Error(err))
			return nil, domain.ErrInternal
		}
		order.Items[i].Subtotal = sub
	}

	total, err := domain.ComputeTotal(order.Items)
	if err != nil {
		s.logger.Error("Order total", zap.Error(err))
		return nil, domain.ErrInternal
	}

	order.Total = total
	order.AmountPaid = decimal.Zero
	order.Payments = nil
	order.Status = domain.OrderStatusNew
	order.OrderDate = time.Now()

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, err
	}

	// Notify with the persisted order so the message carries the real id.
	s.notify(ctx, newOrder, domain.NotificationNew)

	return newOrder, nil
}

func (s *Service) GetOrder(ctx context.Context, userID uint64, orderID uint64) (*domain.Order, error) {
	return s.repo.ReadOrder(ctx, userID, orderID)
}

func (s *Service) ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Get orders for user", zap.Error(err))
		return nil, err
	}
	return list, nil
}

// UpdateOrderStatus overwrites the status and emits the mapped
// notification. An unknown order id is a silent no-op.
func (s *Service) UpdateOrderStatus(ctx context.Context, userID uint64, orderID uint64, status string) error {
	canonical, ok := domain.CanonicalStatus(status)
	if !ok {
		return domain.ErrBadOrderStatus
	}

	err := s.repo.UpdateOrderStatus(ctx, userID, orderID, canonical)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Debug("Status update for unknown order",
				zap.Uint64("order", orderID))
			return nil
		}
		s.logger.Error("Update order status", zap.Error(err))
		return err
	}

	kind, _ := domain.NotificationKindForStatus(string(canonical))
	order, err := s.repo.ReadOrder(ctx, userID, orderID)
	if err != nil {
		s.logger.Error("Read order after status update", zap.Error(err))
		return nil
	}
	s.notify(ctx, order, kind)

	return nil
}

func (s *Service) AddPayment(ctx context.Context, userID uint64, orderID uint64,
	amount decimal.Decimal, method string) (*domain.Order, error) {

	if amount.Sign() <= 0 {
		return nil, domain.ErrPaymentAmountInvalid
	}

	payment := domain.Payment{
		ID:     uuid.NewString(),
		Date:   time.Now(),
		Amount: amount,
		Method: method,
		Status: domain.PaymentStatusPaid,
	}

	// Overpayment is intentionally not rejected here, see design notes.
	order, err := s.repo.AddPayment(ctx, userID, orderID, payment)
	if err != nil {
		s.logger.Error("Add payment", zap.Error(err))
		return nil, err
	}

	return order, nil
}

func (s *Service) ResetOrders(ctx context.Context, userID uint64) error {
	err := s.repo.DeleteOrdersByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Reset orders", zap.Error(err))
		return err
	}
	s.logger.Warn("All orders deleted", zap.Uint64("user", userID))
	return nil
}

func (s *Service) OrderReport(ctx context.Context, userID uint64) (*port.OrderReport, error) {
	orders, err := s.repo.ListOrdersByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Orders for report", zap.Error(err))
		return nil, err
	}

	report := &port.OrderReport{
		Orders:      make([]port.OrderReportRow, 0, len(orders)),
		OrderCount:  len(orders),
		Revenue:     decimal.Zero,
		Collected:   decimal.Zero,
		Outstanding: decimal.Zero,
	}

	for _, order := range orders {
		balance, err := domain.CalculateBalance(order)
		if err != nil {
			s.logger.Error("Balance for report", zap.Error(err))
			return nil, domain.ErrInternal
		}
		report.Orders = append(report.Orders, port.OrderReportRow{Order: order, Balance: balance})

		if report.Revenue, err = report.Revenue.Add(balance.Total); err != nil {
			return nil, domain.ErrInternal
		}
		if report.Collected, err = report.Collected.Add(balance.AmountPaid); err != nil {
			return nil, domain.ErrInternal
		}
		if report.Outstanding, err = report.Outstanding.Add(balance.Remaining); err != nil {
			return nil, domain.ErrInternal
		}
	}

	return report, nil
}

func (s *Service) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if customer.Name == "" {
		return nil, domain.ErrCustomerNameRequired
	}
	newCustomer, err := s.repo.CreateCustomer(ctx, customer)
	if err != nil {
		s.logger.Error("Create customer", zap.Error(err))
		return nil, err
	}
	return newCustomer, nil
}

func (s *Service) ListCustomersByUser(ctx context.Context, userID uint64) ([]*domain.Customer, error) {
	return s.repo.ListCustomersByUser(ctx, userID)
}

// ListServices returns the shop's catalog, seeding the defaults on first
// use so a fresh shop can take orders immediately.
func (s *Service) ListServices(ctx context.Context, userID uint64) ([]*domain.ServiceItem, error) {
	list, err := s.repo.ListServicesByUser(ctx, userID)
	if err != nil {
		s.logger.Error("List services", zap.Error(err))
		return nil, err
	}
	if len(list) > 0 {
		return list, nil
	}

	for _, item := range domain.DefaultServices() {
		item.UserID = userID
		created, err := s.repo.CreateService(ctx, item)
		if err != nil {
			s.logger.Error("Seed service", zap.Error(err))
			return nil, err
		}
		list = append(list, created)
	}
	return list, nil
}

func (s *Service) ListNotifications(ctx context.Context, userID uint64) ([]*domain.Notification, error) {
	return s.repo.ListNotificationsByUser(ctx, userID)
}

func (s *Service) MarkNotificationsRead(ctx context.Context, userID uint64) error {
	return s.repo.MarkNotificationsRead(ctx, userID)
}

// notify is fire-and-forget: a failing notifier never fails the mutation.
func (s *Service) notify(ctx context.Context, order *domain.Order, kind domain.NotificationKind) {
	if err := s.notifier.Notify(ctx, order, kind); err != nil {
		s.logger.Error("Notify", zap.Error(err),
			zap.Uint64("order", order.ID), zap.String("kind", string(kind)))
	}
}
