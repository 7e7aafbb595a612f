package port

import "github.com/adinugroho/laundryhub/internal/core/domain"

// TokenPayload carries the authenticated user plus the storage backend the
// token was minted under. Tokens from a different backend are rejected by
// the middleware, which is what forces re-login when the backend toggle
// changes.
type TokenPayload struct {
	UserID  uint64
	Backend string
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(user *domain.User, backend string) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
