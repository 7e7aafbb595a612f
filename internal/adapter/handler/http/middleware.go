package http

import (
	"strings"

	"github.com/adinugroho/laundryhub/internal/core/domain"
	"github.com/adinugroho/laundryhub/internal/core/port"
	"github.com/gin-gonic/gin"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"
const userPayloadKey = "user_payload"

// authCheck validates the bearer token and the storage backend it was
// minted under. A token from the other backend is invalid: switching the
// backend logs everyone out.
func authCheck(tokenService port.TokenService, backend string, h *Handler) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) == 0 {
			h.handleAbort(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		words := strings.Split(header, " ")
		if len(words) != 2 {
			h.handleAbort(ctx, domain.ErrInvalidAuthorizationHeader)
			return
		}
		if words[0] != authType {
			h.handleAbort(ctx, domain.ErrInvalidAuthorizationType)
			return
		}
		token := words[1]
		payload, err := tokenService.VerifyToken(token)
		if err != nil {
			h.handleAbort(ctx, domain.ErrInvalidToken)
			return
		}

		if payload.Backend != backend {
			h.handleAbort(ctx, domain.ErrInvalidToken)
			return
		}

		ctx.Set(userPayloadKey, payload)

		ctx.Next()
	}
}

func getAuthPayload(ctx *gin.Context) *port.TokenPayload {
	return ctx.MustGet(userPayloadKey).(*port.TokenPayload)
}
