package port

import "context"

// Mailer delivers and checks email verification codes. The shipped
// implementation is an in-memory simulator for local development, no
// durability guaranteed.
//
//go:generate mockgen -source=mailer.go -destination=mock/mailer.go -package=mock
type Mailer interface {
	SendVerificationCode(ctx context.Context, email string) error
	CheckVerificationCode(ctx context.Context, email string, code string) error
}
