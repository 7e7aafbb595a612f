package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/adinugroho/laundryhub/internal/adapter/storage"
	"github.com/adinugroho/laundryhub/internal/core/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Repository is the hosted-mode backing store. Orders fan out over the
// orders, order_items and payments tables; multi-row writes go through one
// transaction so a failed payment insert cannot leave the running total
// ahead of the payment history.
type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func (r *Repository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Insert("users").
		Columns("login", "password", "shop_name", "verified", "created_at").
		Values(user.Login, user.Password, user.ShopName, user.Verified, user.CreatedAt).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return user, nil
}

func (r *Repository) GetUserByLogin(ctx context.Context, login string) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select("id", "login", "password", "shop_name", "verified", "created_at").
		From("users").
		Where(sq.Eq{"login": login})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	user := domain.User{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.Login,
		&user.Password,
		&user.ShopName,
		&user.Verified,
		&user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *Repository) UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Update("users").
		Set("password", user.Password).
		Set("shop_name", user.ShopName).
		Set("verified", user.Verified).
		Where(sq.Eq{"id": user.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}
	return user, nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select("id", "login", "password", "shop_name", "verified", "created_at").
		From("users").
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.User, 0)
	for rows.Next() {
		user := domain.User{}
		err := rows.Scan(
			&user.ID,
			&user.Login,
			&user.Password,
			&user.ShopName,
			&user.Verified,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &user)
	}

	return list, rows.Err()
}

func (r *Repository) DeleteAllUsers(ctx context.Context) error {
	sql, args, err := r.db.QueryBuilder.Delete("users").ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	statement := r.db.QueryBuilder.
		Insert("customers").
		Columns("user_id", "name", "phone", "address").
		Values(customer.UserID, customer.Name, customer.Phone, customer.Address).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&customer.ID)
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *Repository) ListCustomersByUser(ctx context.Context, userID uint64) ([]*domain.Customer, error) {
	statement := r.db.QueryBuilder.
		Select("id", "user_id", "name", "phone", "address").
		From("customers").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("name")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Customer, 0)
	for rows.Next() {
		customer := domain.Customer{}
		err := rows.Scan(
			&customer.ID,
			&customer.UserID,
			&customer.Name,
			&customer.Phone,
			&customer.Address,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &customer)
	}

	return list, rows.Err()
}

func (r *Repository) CreateService(ctx context.Context, item *domain.ServiceItem) (*domain.ServiceItem, error) {
	statement := r.db.QueryBuilder.
		Insert("services").
		Columns("user_id", "name", "price_per_kg", "unit_label").
		Values(item.UserID, item.Name, item.PricePerKg, item.UnitLabel).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&item.ID)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *Repository) ListServicesByUser(ctx context.Context, userID uint64) ([]*domain.ServiceItem, error) {
	statement := r.db.QueryBuilder.
		Select("id", "user_id", "name", "price_per_kg", "unit_label").
		From("services").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.ServiceItem, 0)
	for rows.Next() {
		item := domain.ServiceItem{}
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Name,
			&item.PricePerKg,
			&item.UnitLabel,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &item)
	}

	return list, rows.Err()
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		orderSt := r.db.QueryBuilder.
			Insert("orders").
			Columns("user_id", "customer_name", "customer_phone", "customer_address",
				"order_date", "status", "total", "amount_paid").
			Values(order.UserID, order.Customer.Name, order.Customer.Phone, order.Customer.Address,
				order.OrderDate, order.Status, order.Total, order.AmountPaid).
			Suffix("returning id")

		sql, args, err := orderSt.ToSql()
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&order.ID)
		if err != nil {
			return err
		}

		for _, item := range order.Items {
			itemSt := r.db.QueryBuilder.
				Insert("order_items").
				Columns("order_id", "service_name", "weight_kg", "price_per_kg", "subtotal").
				Values(order.ID, item.ServiceName, item.WeightKg, item.PricePerKg, item.Subtotal)

			sql, args, err := itemSt.ToSql()
			if err != nil {
				return err
			}
			_, err = tx.Exec(ctx, sql, args...)
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, userID uint64, orderID uint64) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("id", "user_id", "customer_name", "customer_phone", "customer_address",
			"order_date", "status", "total", "amount_paid").
		From("orders").
		Where(sq.Eq{"id": orderID, "user_id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&order.ID,
		&order.UserID,
		&order.Customer.Name,
		&order.Customer.Phone,
		&order.Customer.Address,
		&order.OrderDate,
		&order.Status,
		&order.Total,
		&order.AmountPaid,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	if err := r.loadOrderDetails(ctx, []*domain.Order{&order}); err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *Repository) ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("id", "user_id", "customer_name", "customer_phone", "customer_address",
			"order_date", "status", "total", "amount_paid").
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("order_date DESC", "id DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order := domain.Order{}
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.Customer.Name,
			&order.Customer.Phone,
			&order.Customer.Address,
			&order.OrderDate,
			&order.Status,
			&order.Total,
			&order.AmountPaid,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadOrderDetails(ctx, list); err != nil {
		return nil, err
	}

	return list, nil
}

// loadOrderDetails fills Items and Payments for the given orders with two
// queries instead of one pair per order.
func (r *Repository) loadOrderDetails(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[uint64]*domain.Order, len(orders))
	ids := make([]uint64, 0, len(orders))
	for _, order := range orders {
		byID[order.ID] = order
		ids = append(ids, order.ID)
	}

	itemSt := r.db.QueryBuilder.
		Select("order_id", "service_name", "weight_kg", "price_per_kg", "subtotal").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("id")

	sql, args, err := itemSt.ToSql()
	if err != nil {
		return err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	for rows.Next() {
		var orderID uint64
		item := domain.OrderItem{}
		err := rows.Scan(&orderID, &item.ServiceName, &item.WeightKg, &item.PricePerKg, &item.Subtotal)
		if err != nil {
			rows.Close()
			return err
		}
		if order, ok := byID[orderID]; ok {
			order.Items = append(order.Items, item)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	paymentSt := r.db.QueryBuilder.
		Select("id", "order_id", "paid_at", "amount", "method", "status").
		From("payments").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("paid_at", "id")

	sql, args, err = paymentSt.ToSql()
	if err != nil {
		return err
	}

	rows, err = r.db.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var orderID uint64
		payment := domain.Payment{}
		err := rows.Scan(&payment.ID, &orderID, &payment.Date, &payment.Amount, &payment.Method, &payment.Status)
		if err != nil {
			return err
		}
		if order, ok := byID[orderID]; ok {
			order.Payments = append(order.Payments, payment)
		}
	}

	return rows.Err()
}

func (r *Repository) UpdateOrderStatus(ctx context.Context, userID uint64, orderID uint64, status domain.OrderStatus) error {
	statement := r.db.QueryBuilder.
		Update("orders").
		Set("status", status).
		Where(sq.Eq{"id": orderID, "user_id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

// AddPayment appends the payment row and bumps the running total in one
// transaction.
func (r *Repository) AddPayment(ctx context.Context, userID uint64, orderID uint64, payment domain.Payment) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		lockSt := r.db.QueryBuilder.
			Select("id").
			From("orders").
			Where(sq.Eq{"id": orderID, "user_id": userID}).
			Suffix("for update")

		sql, args, err := lockSt.ToSql()
		if err != nil {
			return err
		}
		var id uint64
		if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
			if err == pgx.ErrNoRows {
				return domain.ErrDataNotFound
			}
			return err
		}

		paymentSt := r.db.QueryBuilder.
			Insert("payments").
			Columns("id", "order_id", "paid_at", "amount", "method", "status").
			Values(payment.ID, orderID, payment.Date, payment.Amount, payment.Method, payment.Status)

		sql, args, err = paymentSt.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		updateSt := r.db.QueryBuilder.
			Update("orders").
			Set("amount_paid", sq.Expr("amount_paid + ?", payment.Amount)).
			Where(sq.Eq{"id": orderID})

		sql, args, err = updateSt.ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		return nil, err
	}

	return r.ReadOrder(ctx, userID, orderID)
}

func (r *Repository) DeleteOrdersByUser(ctx context.Context, userID uint64) error {
	statement := r.db.QueryBuilder.
		Delete("orders").
		Where(sq.Eq{"user_id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) CreateNotification(ctx context.Context, notification *domain.Notification) error {
	statement := r.db.QueryBuilder.
		Insert("notifications").
		Columns("id", "user_id", "order_id", "kind", "message", "whatsapp_link", "created_at", "is_read").
		Values(notification.ID, notification.UserID, notification.OrderID, notification.Kind,
			notification.Message, notification.WhatsAppLink, notification.CreatedAt, notification.Read)

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) ListNotificationsByUser(ctx context.Context, userID uint64) ([]*domain.Notification, error) {
	statement := r.db.QueryBuilder.
		Select("id", "user_id", "order_id", "kind", "message", "whatsapp_link", "created_at", "is_read").
		From("notifications").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Notification, 0)
	for rows.Next() {
		n := domain.Notification{}
		err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.OrderID,
			&n.Kind,
			&n.Message,
			&n.WhatsAppLink,
			&n.CreatedAt,
			&n.Read,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &n)
	}

	return list, rows.Err()
}

func (r *Repository) MarkNotificationsRead(ctx context.Context, userID uint64) error {
	statement := r.db.QueryBuilder.
		Update("notifications").
		Set("is_read", true).
		Where(sq.Eq{"user_id": userID, "is_read": false})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
