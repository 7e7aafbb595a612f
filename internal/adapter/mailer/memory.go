// Package mailer ships the development email simulator: verification codes
// are held in memory and written to the log instead of being sent. Nothing
// here survives a restart.
package mailer

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/adinugroho/laundryhub/internal/core/domain"
	"github.com/adinugroho/laundryhub/internal/core/port"
	"go.uber.org/zap"
)

const codeTTL = 15 * time.Minute

type pendingCode struct {
	code    string
	expires time.Time
}

type MemoryMailer struct {
	mu     sync.Mutex
	codes  map[string]pendingCode
	logger *zap.Logger
}

func New(logger *zap.Logger) (*MemoryMailer, error) {
	return &MemoryMailer{
		codes:  make(map[string]pendingCode),
		logger: logger,
	}, nil
}

var _ port.Mailer = (*MemoryMailer)(nil)

func (m *MemoryMailer) SendVerificationCode(_ context.Context, email string) error {
	code := fmt.Sprintf("%06d", rand.IntN(1000000))

	m.mu.Lock()
	m.codes[email] = pendingCode{code: code, expires: time.Now().Add(codeTTL)}
	m.mu.Unlock()

	// Simulated delivery: the code lands in the log, not an inbox.
	m.logger.Info("verification email (simulated)",
		zap.String("email", email), zap.String("code", code))

	return nil
}

func (m *MemoryMailer) CheckVerificationCode(_ context.Context, email string, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	pending, ok := m.codes[email]
	if !ok || pending.code != code || time.Now().After(pending.expires) {
		return domain.ErrBadVerificationCode
	}

	delete(m.codes, email)
	return nil
}
