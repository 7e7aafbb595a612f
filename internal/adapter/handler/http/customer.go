package http

import (
	"net/http"

	"github.com/adinugroho/laundryhub/internal/core/domain"
	"github.com/adinugroho/laundryhub/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	Handler
	service port.Service
}

func NewCustomerHandler(service port.Service, logger *zap.Logger) (*CustomerHandler, error) {
	return &CustomerHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type createCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type customerResp struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

func (ch *CustomerHandler) CreateCustomer(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	req := createCustomerRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	customer := &domain.Customer{
		UserID: userID,
		CustomerInfo: domain.CustomerInfo{
			Name:    req.Name,
			Phone:   req.Phone,
			Address: req.Address,
		},
	}

	newCustomer, err := ch.service.CreateCustomer(ctx, customer)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, customerResp{
		ID:      newCustomer.ID,
		Name:    newCustomer.Name,
		Phone:   newCustomer.Phone,
		Address: newCustomer.Address,
	}, http.StatusCreated)
}

func (ch *CustomerHandler) ListCustomers(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	list, err := ch.service.ListCustomersByUser(ctx, userID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	result := make([]customerResp, 0, len(list))
	for _, c := range list {
		result = append(result, customerResp{
			ID:      c.ID,
			Name:    c.Name,
			Phone:   c.Phone,
			Address: c.Address,
		})
	}
	ch.handleSuccess(ctx, result)
}

type serviceItemResp struct {
	ID         uint64          `json:"id"`
	Name       string          `json:"name"`
	PricePerKg decimal.Decimal `json:"price_per_kg"`
	UnitLabel  string          `json:"unit_label"`
}

func (ch *CustomerHandler) ListServices(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	list, err := ch.service.ListServices(ctx, userID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	result := make([]serviceItemResp, 0, len(list))
	for _, item := range list {
		result = append(result, serviceItemResp{
			ID:         item.ID,
			Name:       item.Name,
			PricePerKg: item.PricePerKg,
			UnitLabel:  item.UnitLabel,
		})
	}
	ch.handleSuccess(ctx, result)
}
