package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/adinugroho/laundryhub/internal/adapter/config"
	"github.com/adinugroho/laundryhub/internal/core/domain"
	"github.com/adinugroho/laundryhub/internal/core/port/mock"
	"github.com/adinugroho/laundryhub/internal/core/service"
	"github.com/adinugroho/laundryhub/internal/core/utils"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type prepareMocks func(repo *mock.MockRepository, notifier *mock.MockNotifier, mailer *mock.MockMailer)

func dec(t *testing.T, value int64, scale int) decimal.Decimal {
	t.Helper()
	d, err := decimal.New(value, scale)
	assert.NoError(t, err)
	return d
}

func newTestService(t *testing.T, mockCtrl *gomock.Controller, prepare prepareMocks) (
	*service.Service, *mock.MockTokenService) {
	t.Helper()

	repo := mock.NewMockRepository(mockCtrl)
	ts := mock.NewMockTokenService(mockCtrl)
	notifier := mock.NewMockNotifier(mockCtrl)
	mailer := mock.NewMockMailer(mockCtrl)
	if prepare != nil {
		prepare(repo, notifier, mailer)
	}

	logger, _ := zap.NewProduction()
	s, err := service.NewService(repo, ts, notifier, mailer,
		config.StorageBackendLocal, logger)
	assert.NoError(t, err)

	return s, ts
}

func TestService_UserRegister(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	hashedPass, _ := utils.HashPassword("test")
	user := domain.User{
		Login:    "test@laundry.id",
		Password: hashedPass,
		ID:       1,
	}

	tests := []struct {
		name      string
		user      domain.User
		mock      prepareMocks
		expError  error
		expResult *domain.User
	}{
		{
			name: "Register good",
			user: domain.User{Login: user.Login, Password: "test"},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, mailer *mock.MockMailer) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(&user, nil)
				mailer.EXPECT().SendVerificationCode(gomock.Any(), user.Login).Return(nil)
			},
			expError:  nil,
			expResult: &user,
		},
		{
			name: "Register already exists",
			user: domain.User{Login: user.Login, Password: "test"},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, mailer *mock.MockMailer) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(&user, nil)
			},
			expError:  domain.ErrConflictingData,
			expResult: nil,
		},
		{
			name: "Register with failing mailer still succeeds",
			user: domain.User{Login: user.Login, Password: "test"},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, mailer *mock.MockMailer) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(&user, nil)
				mailer.EXPECT().SendVerificationCode(gomock.Any(), user.Login).Return(domain.ErrInternal)
			},
			expError:  nil,
			expResult: &user,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, _ := newTestService(t, mockCtrl, test.mock)

			result, err := s.RegisterUser(context.Background(), &test.user)

			assert.Equal(t, test.expResult, result)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_UserLogin(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	hashedPass, _ := utils.HashPassword("test")
	verified := domain.User{ID: 1, Login: "shop@laundry.id", Password: hashedPass, Verified: true}
	unverified := domain.User{ID: 2, Login: "new@laundry.id", Password: hashedPass}

	tests := []struct {
		name      string
		login     string
		password  string
		mock      prepareMocks
		withToken bool
		expError  error
	}{
		{
			name:     "Login good",
			login:    verified.Login,
			password: "test",
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, mailer *mock.MockMailer) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), verified.Login).Return(&verified, nil)
			},
			withToken: true,
			expError:  nil,
		},
		{
			name:     "Login wrong password",
			login:    verified.Login,
			password: "wrong",
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, mailer *mock.MockMailer) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), verified.Login).Return(&verified, nil)
			},
			expError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Login unknown user",
			login:    "nobody@laundry.id",
			password: "test",
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, mailer *mock.MockMailer) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), "nobody@laundry.id").
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Login before verification",
			login:    unverified.Login,
			password: "test",
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, mailer *mock.MockMailer) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), unverified.Login).Return(&unverified, nil)
			},
			expError: domain.ErrEmailNotVerified,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, ts := newTestService(t, mockCtrl, test.mock)
			if test.withToken {
				ts.EXPECT().CreateToken(&verified, config.StorageBackendLocal).
					Return("token", nil)
			}

			token, err := s.LoginUser(context.Background(), test.login, test.password)

			assert.Equal(t, test.expError, err)
			if test.withToken {
				assert.Equal(t, "token", token)
			} else {
				assert.Empty(t, token)
			}
		})
	}
}

func TestService_VerifyEmail(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	user := domain.User{ID: 1, Login: "shop@laundry.id"}
	alreadyVerified := domain.User{ID: 2, Login: "old@laundry.id", Verified: true}

	tests := []struct {
		name     string
		login    string
		code     string
		mock     prepareMocks
		expError error
	}{
		{
			name:  "Verify good",
			login: user.Login,
			code:  "123456",
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, mailer *mock.MockMailer) {
				fresh := user
				repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(&fresh, nil)
				mailer.EXPECT().CheckVerificationCode(gomock.Any(), user.Login, "123456").Return(nil)
				repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
						assert.True(t, u.Verified)
						return u, nil
					})
			},
			expError: nil,
		},
		{
			name:  "Verify already verified is a no-op",
			login: alreadyVerified.Login,
			code:  "123456",
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, mailer *mock.MockMailer) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), alreadyVerified.Login).
					Return(&alreadyVerified, nil)
			},
			expError: nil,
		},
		{
			name:  "Verify bad code",
			login: user.Login,
			code:  "000000",
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, mailer *mock.MockMailer) {
				fresh := user
				repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(&fresh, nil)
				mailer.EXPECT().CheckVerificationCode(gomock.Any(), user.Login, "000000").
					Return(domain.ErrBadVerificationCode)
			},
			expError: domain.ErrBadVerificationCode,
		},
		{
			name:  "Verify unknown user",
			login: "nobody@laundry.id",
			code:  "123456",
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, mailer *mock.MockMailer) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), "nobody@laundry.id").
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrDataNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, _ := newTestService(t, mockCtrl, test.mock)

			err := s.VerifyEmail(context.Background(), test.login, test.code)

			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_CreateOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	customer := domain.CustomerInfo{Name: "Budi", Phone: "081234567890"}
	items := func() []domain.OrderItem {
		return []domain.OrderItem{
			{ServiceName: "Cuci Setrika", WeightKg: dec(t, 3, 0), PricePerKg: dec(t, 9000, 0)},
		}
	}

	persisted := domain.Order{
		ID:       7,
		UserID:   1,
		Customer: customer,
		Status:   domain.OrderStatusNew,
		Total:    dec(t, 27000, 0),
	}

	tests := []struct {
		name      string
		customer  domain.CustomerInfo
		items     []domain.OrderItem
		mock      prepareMocks
		expError  error
		expResult *domain.Order
	}{
		{
			name:     "Create good",
			customer: customer,
			items:    items(),
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, mailer *mock.MockMailer) {
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
						assert.Equal(t, domain.OrderStatusNew, order.Status)
						assert.Equal(t, 0, order.Total.Cmp(persisted.Total))
						assert.Equal(t, 0, order.Items[0].Subtotal.Cmp(persisted.Total))
						assert.Equal(t, 0, order.AmountPaid.Cmp(decimal.Zero))
						return &persisted, nil
					})
				notifier.EXPECT().Notify(gomock.Any(), &persisted, domain.NotificationNew).Return(nil)
			},
			expError:  nil,
			expResult: &persisted,
		},
		{
			name:      "Create without customer name",
			customer:  domain.CustomerInfo{Phone: "081234567890"},
			items:     items(),
			mock:      nil,
			expError:  domain.ErrCustomerNameRequired,
			expResult: nil,
		},
		{
			name:      "Create without items",
			customer:  customer,
			items:     nil,
			mock:      nil,
			expError:  domain.ErrOrderItemsRequired,
			expResult: nil,
		},
		{
			name:     "Create with failing notifier still succeeds",
			customer: customer,
			items:    items(),
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, mailer *mock.MockMailer) {
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(&persisted, nil)
				notifier.EXPECT().Notify(gomock.Any(), &persisted, domain.NotificationNew).
					Return(domain.ErrInternal)
			},
			expError:  nil,
			expResult: &persisted,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, _ := newTestService(t, mockCtrl, test.mock)

			result, err := s.CreateOrder(context.Background(), 1, test.customer, test.items)

			assert.Equal(t, test.expError, err)
			assert.Equal(t, test.expResult, result)
		})
	}
}

func TestService_UpdateOrderStatus(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	order := domain.Order{ID: 7, UserID: 1, Status: domain.OrderStatusCompleted}

	tests := []struct {
		name     string
		status   string
		mock     prepareMocks
		expError error
	}{
		{
			name:   "Update with english synonym",
			status: "completed",
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, mailer *mock.MockMailer) {
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), uint64(1), uint64(7),
					domain.OrderStatusCompleted).Return(nil)
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(1), uint64(7)).Return(&order, nil)
				notifier.EXPECT().Notify(gomock.Any(), &order, domain.NotificationCompleted).Return(nil)
			},
			expError: nil,
		},
		{
			name:   "Update with indonesian spelling",
			status: "sedang diproses",
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, mailer *mock.MockMailer) {
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), uint64(1), uint64(7),
					domain.OrderStatusProcessing).Return(nil)
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(1), uint64(7)).Return(&order, nil)
				notifier.EXPECT().Notify(gomock.Any(), &order, domain.NotificationProcessing).Return(nil)
			},
			expError: nil,
		},
		{
			name:     "Update with unrecognized status",
			status:   "refunded",
			mock:     nil,
			expError: domain.ErrBadOrderStatus,
		},
		{
			name:   "Update unknown order is silent",
			status: "selesai",
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, mailer *mock.MockMailer) {
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), uint64(1), uint64(7),
					domain.OrderStatusCompleted).Return(domain.ErrDataNotFound)
			},
			expError: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, _ := newTestService(t, mockCtrl, test.mock)

			err := s.UpdateOrderStatus(context.Background(), 1, 7, test.status)

			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_AddPayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	updated := domain.Order{
		ID:         7,
		UserID:     1,
		Total:      dec(t, 27000, 0),
		AmountPaid: dec(t, 27000, 0),
	}

	tests := []struct {
		name      string
		amount    decimal.Decimal
		mock      prepareMocks
		expError  error
		expResult *domain.Order
	}{
		{
			name:   "Payment good",
			amount: dec(t, 27000, 0),
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier, mailer *mock.MockMailer) {
				repo.EXPECT().AddPayment(gomock.Any(), uint64(1), uint64(7), gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ uint64, payment domain.Payment) (*domain.Order, error) {
						assert.NotEmpty(t, payment.ID)
						assert.Equal(t, "Cash", payment.Method)
						assert.Equal(t, domain.PaymentStatusPaid, payment.Status)
						assert.Equal(t, 0, payment.Amount.Cmp(dec(t, 27000, 0)))
						assert.WithinDuration(t, time.Now(), payment.Date, time.Minute)
						return &updated, nil
					})
			},
			expError:  nil,
			expResult: &updated,
		},
		{
			name:      "Payment zero amount",
			amount:    decimal.Zero,
			mock:      nil,
			expError:  domain.ErrPaymentAmountInvalid,
			expResult: nil,
		},
		{
			name:      "Payment negative amount",
			amount:    dec(t, -100, 0),
			mock:      nil,
			expError:  domain.ErrPaymentAmountInvalid,
			expResult: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, _ := newTestService(t, mockCtrl, test.mock)

			result, err := s.AddPayment(context.Background(), 1, 7, test.amount, "Cash")

			assert.Equal(t, test.expError, err)
			assert.Equal(t, test.expResult, result)
		})
	}
}

func TestService_ListServicesSeedsDefaults(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s, _ := newTestService(t, mockCtrl,
		func(repo *mock.MockRepository, notifier *mock.MockNotifier, mailer *mock.MockMailer) {
			repo.EXPECT().ListServicesByUser(gomock.Any(), uint64(1)).Return(nil, nil)
			repo.EXPECT().CreateService(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, item *domain.ServiceItem) (*domain.ServiceItem, error) {
					assert.Equal(t, uint64(1), item.UserID)
					return item, nil
				}).Times(len(domain.DefaultServices()))
		})

	list, err := s.ListServices(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, list, len(domain.DefaultServices()))

	names := make([]string, 0, len(list))
	for _, item := range list {
		names = append(names, item.Name)
	}
	assert.Contains(t, names, "Cuci Kering")
	assert.Contains(t, names, "Cuci Setrika")
}

func TestService_ListServicesExistingCatalog(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	existing := []*domain.ServiceItem{{ID: 1, UserID: 1, Name: "Cuci Karpet"}}

	s, _ := newTestService(t, mockCtrl,
		func(repo *mock.MockRepository, notifier *mock.MockNotifier, mailer *mock.MockMailer) {
			repo.EXPECT().ListServicesByUser(gomock.Any(), uint64(1)).Return(existing, nil)
		})

	list, err := s.ListServices(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, existing, list)
}

func TestService_OrderReport(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	orders := []*domain.Order{
		{
			ID:    1,
			Total: dec(t, 27000, 0),
			Payments: []domain.Payment{
				{Amount: dec(t, 27000, 0)},
			},
		},
		{
			ID:    2,
			Total: dec(t, 12000, 0),
			Payments: []domain.Payment{
				{Amount: dec(t, 5000, 0)},
			},
		},
	}

	s, _ := newTestService(t, mockCtrl,
		func(repo *mock.MockRepository, notifier *mock.MockNotifier, mailer *mock.MockMailer) {
			repo.EXPECT().ListOrdersByUser(gomock.Any(), uint64(1)).Return(orders, nil)
		})

	report, err := s.OrderReport(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, report.OrderCount)
	assert.Equal(t, 0, report.Revenue.Cmp(dec(t, 39000, 0)))
	assert.Equal(t, 0, report.Collected.Cmp(dec(t, 32000, 0)))
	assert.Equal(t, 0, report.Outstanding.Cmp(dec(t, 7000, 0)))
}

func TestService_CreateCustomer(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	customer := domain.Customer{UserID: 1, CustomerInfo: domain.CustomerInfo{Name: "Budi"}}

	s, _ := newTestService(t, mockCtrl,
		func(repo *mock.MockRepository, notifier *mock.MockNotifier, mailer *mock.MockMailer) {
			repo.EXPECT().CreateCustomer(gomock.Any(), &customer).Return(&customer, nil)
		})

	result, err := s.CreateCustomer(context.Background(), &customer)
	assert.NoError(t, err)
	assert.Equal(t, &customer, result)

	nameless := domain.Customer{UserID: 1}
	result, err = s.CreateCustomer(context.Background(), &nameless)
	assert.ErrorIs(t, err, domain.ErrCustomerNameRequired)
	assert.Nil(t, result)
}
