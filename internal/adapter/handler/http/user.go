package http

import (
	"net/http"

	"github.com/adinugroho/laundryhub/internal/core/domain"
	"github.com/adinugroho/laundryhub/internal/core/port"
	"github.com/adinugroho/laundryhub/internal/core/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	Handler
	service port.Service
}

func NewUserHandler(service port.Service, logger *zap.Logger) (*UserHandler, error) {
	return &UserHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type UserRequest struct {
	Login    string `json:"login" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	ShopName string `json:"shop_name"`
}

func (uh *UserHandler) RegisterUser(ctx *gin.Context) {
	userReq := UserRequest{}
	err := ctx.ShouldBindBodyWithJSON(&userReq)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	// Hash password
	hashed, err := utils.HashPassword(userReq.Password)
	if err != nil {
		uh.handleError(ctx, domain.ErrInternal)
		return
	}

	user := &domain.User{
		Login:    userReq.Login,
		Password: hashed,
		ShopName: userReq.ShopName,
	}

	newUser, err := uh.service.RegisterUser(ctx, user)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	// No token yet: login is blocked until the email is verified.
	uh.handleSuccessWithStatus(ctx, gin.H{
		"login":        newUser.Login,
		"verification": "sent",
	}, http.StatusCreated)
}

type loginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (uh *UserHandler) LoginUser(ctx *gin.Context) {
	userReq := loginRequest{}
	err := ctx.ShouldBindBodyWithJSON(&userReq)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	token, err := uh.service.LoginUser(ctx, userReq.Login, userReq.Password)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, struct {
		Token string `json:"token"`
	}{Token: token})
}

type verifyEmailRequest struct {
	Login string `json:"login" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

func (uh *UserHandler) VerifyEmail(ctx *gin.Context) {
	req := verifyEmailRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	if err := uh.service.VerifyEmail(ctx, req.Login, req.Code); err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, gin.H{"verified": true})
}

type resendVerificationRequest struct {
	Login string `json:"login" binding:"required"`
}

func (uh *UserHandler) ResendVerification(ctx *gin.Context) {
	req := resendVerificationRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	if err := uh.service.ResendVerification(ctx, req.Login); err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, gin.H{"verification": "sent"})
}

type debugUserResp struct {
	ID       uint64 `json:"id"`
	Login    string `json:"login"`
	ShopName string `json:"shop_name"`
	Verified bool   `json:"verified"`
}

// ListUsers is a DEV-only endpoint for inspecting registered accounts.
func (uh *UserHandler) ListUsers(ctx *gin.Context) {
	users, err := uh.service.ListUsers(ctx)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	result := make([]debugUserResp, 0, len(users))
	for _, u := range users {
		result = append(result, debugUserResp{
			ID:       u.ID,
			Login:    u.Login,
			ShopName: u.ShopName,
			Verified: u.Verified,
		})
	}
	uh.handleSuccess(ctx, result)
}

// ClearUsers is a DEV-only endpoint wiping every account.
func (uh *UserHandler) ClearUsers(ctx *gin.Context) {
	if err := uh.service.ClearUsers(ctx); err != nil {
		uh.handleError(ctx, err)
		return
	}
	uh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
