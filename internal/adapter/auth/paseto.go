package auth

import (
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/adinugroho/laundryhub/internal/core/domain"
	"github.com/adinugroho/laundryhub/internal/core/port"
)

type PasetoToken struct {
	parser *paseto.Parser
	key    *paseto.V4SymmetricKey
}

func New() (port.TokenService, error) {
	parser := paseto.NewParser()
	key := paseto.NewV4SymmetricKey()

	s := PasetoToken{
		parser: &parser,
		key:    &key,
	}

	return &s, nil
}

// CreateToken mints a session token bound to the storage backend the user
// logged in under. Flipping the backend invalidates every outstanding
// token, which is the forced-logout behavior of the backend toggle.
func (p *PasetoToken) CreateToken(user *domain.User, backend string) (string, error) {
	token := paseto.NewToken()
	token.SetExpiration(time.Now().Add(72 * time.Hour))

	payload := port.TokenPayload{UserID: user.ID, Backend: backend}
	err := token.Set("payload", payload)
	if err != nil {
		return "", domain.ErrTokenCreation
	}

	return token.V4Encrypt(*p.key, nil), nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsedToken, err := p.parser.ParseV4Local(*p.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	payload := port.TokenPayload{}
	err = parsedToken.Get("payload", &payload)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}
