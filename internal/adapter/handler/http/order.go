package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/adinugroho/laundryhub/internal/adapter/metrics"
	"github.com/adinugroho/laundryhub/internal/core/domain"
	"github.com/adinugroho/laundryhub/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

const confirmResetHeader = "X-Confirm-Reset"

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type customerInfoReq struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type orderItemReq struct {
	Service    string  `json:"service" binding:"required"`
	Weight     float64 `json:"weight"`
	PricePerKg float64 `json:"price_per_kg"`
}

type createOrderRequest struct {
	Customer customerInfoReq `json:"customer" binding:"required"`
	Items    []orderItemReq  `json:"items" binding:"required"`
}

type orderItemResp struct {
	Service    string          `json:"service"`
	Weight     decimal.Decimal `json:"weight"`
	PricePerKg decimal.Decimal `json:"price_per_kg"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

type paymentResp struct {
	ID     string          `json:"id"`
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	Status string          `json:"status"`
}

type orderResp struct {
	ID               uint64          `json:"id"`
	CustomerName     string          `json:"customer_name"`
	CustomerPhone    string          `json:"customer_phone,omitempty"`
	CustomerAddress  string          `json:"customer_address,omitempty"`
	OrderDate        time.Time       `json:"order_date"`
	Status           string          `json:"status"`
	Items            []orderItemResp `json:"items"`
	Total            decimal.Decimal `json:"total"`
	AmountPaid       decimal.Decimal `json:"amount_paid"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	Payments         []paymentResp   `json:"payments"`
}

func newOrderResp(order *domain.Order) (orderResp, error) {
	balance, err := domain.CalculateBalance(order)
	if err != nil {
		return orderResp{}, err
	}

	items := make([]orderItemResp, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResp{
			Service:    item.ServiceName,
			Weight:     item.WeightKg,
			PricePerKg: item.PricePerKg,
			Subtotal:   item.Subtotal,
		})
	}

	payments := make([]paymentResp, 0, len(order.Payments))
	for _, p := range order.Payments {
		payments = append(payments, paymentResp{
			ID:     p.ID,
			Date:   p.Date,
			Amount: p.Amount,
			Method: p.Method,
			Status: p.Status,
		})
	}

	return orderResp{
		ID:               order.ID,
		CustomerName:     order.Customer.Name,
		CustomerPhone:    order.Customer.Phone,
		CustomerAddress:  order.Customer.Address,
		OrderDate:        order.OrderDate,
		Status:           string(order.Status),
		Items:            items,
		Total:            balance.Total,
		AmountPaid:       balance.AmountPaid,
		RemainingBalance: balance.Remaining,
		Payments:         payments,
	}, nil
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	req := createOrderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		weight, err := decimal.NewFromFloat64(item.Weight)
		if err != nil {
			oh.handleValidationError(ctx, err)
			return
		}
		price, err := decimal.NewFromFloat64(item.PricePerKg)
		if err != nil {
			oh.handleValidationError(ctx, err)
			return
		}
		items = append(items, domain.OrderItem{
			ServiceName: item.Service,
			WeightKg:    weight,
			PricePerKg:  price,
		})
	}

	customer := domain.CustomerInfo{
		Name:    req.Customer.Name,
		Phone:   req.Customer.Phone,
		Address: req.Customer.Address,
	}

	order, err := oh.service.CreateOrder(ctx, userID, customer, items)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	metrics.OrdersCreated.Inc()

	resp, err := newOrderResp(order)
	if err != nil {
		oh.handleError(ctx, domain.ErrInternal)
		return
	}
	oh.handleSuccessWithStatus(ctx, resp, http.StatusCreated)
}

func (oh *OrderHandler) ListOrdersByUser(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	list, err := oh.service.ListOrdersByUser(ctx, userID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResp, 0, len(list))
	for _, order := range list {
		resp, err := newOrderResp(order)
		if err != nil {
			oh.handleError(ctx, domain.ErrInternal)
			return
		}
		result = append(result, resp)
	}

	oh.handleSuccess(ctx, result)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	orderID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, userID, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	resp, err := newOrderResp(order)
	if err != nil {
		oh.handleError(ctx, domain.ErrInternal)
		return
	}
	oh.handleSuccess(ctx, resp)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (oh *OrderHandler) UpdateOrderStatus(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	orderID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	req := updateStatusRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	// Unknown order ids answer 200 as well: the update is a silent no-op.
	if err := oh.service.UpdateOrderStatus(ctx, userID, orderID, req.Status); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusOK)
}

type addPaymentRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method" binding:"required"`
}

func (oh *OrderHandler) AddPayment(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	orderID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	req := addPaymentRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	amount, err := decimal.NewFromFloat64(req.Amount)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.AddPayment(ctx, userID, orderID, amount, req.Method)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}
	metrics.PaymentsRecorded.Inc()

	resp, err := newOrderResp(order)
	if err != nil {
		oh.handleError(ctx, domain.ErrInternal)
		return
	}
	oh.handleSuccess(ctx, resp)
}

// ResetOrders wipes the caller's whole order collection. The confirmation
// header is the guard the destructive path demands.
func (oh *OrderHandler) ResetOrders(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	if ctx.GetHeader(confirmResetHeader) != "yes" {
		oh.handleError(ctx, domain.ErrResetNotConfirmed)
		return
	}

	if err := oh.service.ResetOrders(ctx, userID); err != nil {
		oh.handleError(ctx, err)
		return
	}
	metrics.OrdersReset.Inc()

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

type reportRowResp struct {
	OrderID          uint64          `json:"order_id"`
	CustomerName     string          `json:"customer_name"`
	OrderDate        time.Time       `json:"order_date"`
	Status           string          `json:"status"`
	Total            decimal.Decimal `json:"total"`
	AmountPaid       decimal.Decimal `json:"amount_paid"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

type reportResp struct {
	Orders      []reportRowResp `json:"orders"`
	OrderCount  int             `json:"order_count"`
	Revenue     decimal.Decimal `json:"revenue"`
	Collected   decimal.Decimal `json:"collected"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// OrderReport supplies the data the spreadsheet/PDF export consumes.
func (oh *OrderHandler) OrderReport(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	report, err := oh.service.OrderReport(ctx, userID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	rows := make([]reportRowResp, 0, len(report.Orders))
	for _, row := range report.Orders {
		rows = append(rows, reportRowResp{
			OrderID:          row.Order.ID,
			CustomerName:     row.Order.Customer.Name,
			OrderDate:        row.Order.OrderDate,
			Status:           string(row.Order.Status),
			Total:            row.Balance.Total,
			AmountPaid:       row.Balance.AmountPaid,
			RemainingBalance: row.Balance.Remaining,
		})
	}

	oh.handleSuccess(ctx, reportResp{
		Orders:      rows,
		OrderCount:  report.OrderCount,
		Revenue:     report.Revenue,
		Collected:   report.Collected,
		Outstanding: report.Outstanding,
	})
}
