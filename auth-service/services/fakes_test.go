package services

import (
	"context"
	"sync"
	"time"

	"sitegate-backend/shared/database/models"
	"sitegate-backend/shared/database/models/auth"
	"sitegate-backend/shared/database/stores"
)

// memAccountStore is an in-memory AccountStore. An optional shared op
// recorder lets tests assert cross-store ordering.
type memAccountStore struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
	ops      *opRecorder
}

type opRecorder struct {
	mu  sync.Mutex
	ops []string
}

func (r *opRecorder) record(op string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, op)
}

func (r *opRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ops...)
}

func newMemAccountStore() *memAccountStore {
	return &memAccountStore{accounts: make(map[string]*models.Account)}
}

func (s *memAccountStore) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[username]
	if !ok {
		return nil, stores.ErrNotFound
	}
	copied := *account
	return &copied, nil
}

func (s *memAccountStore) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, account := range s.accounts {
		if account.Email == email {
			copied := *account
			return &copied, nil
		}
	}
	return nil, stores.ErrNotFound
}

func (s *memAccountStore) Create(ctx context.Context, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.Username]; ok {
		return stores.ErrDuplicate
	}
	for _, existing := range s.accounts {
		if existing.Email == account.Email {
			return stores.ErrDuplicate
		}
	}
	copied := *account
	s.accounts[account.Username] = &copied
	return nil
}

func (s *memAccountStore) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[username]
	if !ok {
		return stores.ErrNotFound
	}
	account.Password = passwordHash
	account.UpdatedAt = time.Now().UTC()
	s.ops.record("update-password")
	return nil
}

func (s *memAccountStore) Delete(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.accounts, username)
	return nil
}

// memResetTokenStore is an in-memory ResetTokenStore.
type memResetTokenStore struct {
	mu     sync.Mutex
	tokens map[string]*auth.PasswordResetToken
	ops    *opRecorder
}

func newMemResetTokenStore() *memResetTokenStore {
	return &memResetTokenStore{tokens: make(map[string]*auth.PasswordResetToken)}
}

func (s *memResetTokenStore) Get(ctx context.Context, token string) (*auth.PasswordResetToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	resetToken, ok := s.tokens[token]
	if !ok {
		return nil, stores.ErrNotFound
	}
	copied := *resetToken
	return &copied, nil
}

func (s *memResetTokenStore) Create(ctx context.Context, resetToken *auth.PasswordResetToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tokens[resetToken.Token]; ok {
		return stores.ErrDuplicate
	}
	copied := *resetToken
	s.tokens[resetToken.Token] = &copied
	return nil
}

func (s *memResetTokenStore) MarkUsed(ctx context.Context, token string, usedAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	resetToken, ok := s.tokens[token]
	if !ok || resetToken.Used {
		return false, nil
	}
	resetToken.Used = true
	resetToken.UsedAt = &usedAt
	s.ops.record("consume")
	return true, nil
}

func (s *memResetTokenStore) DeleteByAccount(ctx context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, resetToken := range s.tokens {
		if resetToken.AccountID == accountID {
			delete(s.tokens, token)
		}
	}
	return nil
}

func (s *memResetTokenStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}

func (s *memResetTokenStore) any() *auth.PasswordResetToken {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, resetToken := range s.tokens {
		copied := *resetToken
		return &copied
	}
	return nil
}

// fakeMailer records sends and can be told to fail.
type fakeMailer struct {
	mu    sync.Mutex
	sends []sentMail
	err   error
}

type sentMail struct {
	to       string
	username string
	resetURL string
}

func (m *fakeMailer) SendPasswordResetEmail(toEmail, username, resetURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sends = append(m.sends, sentMail{to: toEmail, username: username, resetURL: resetURL})
	return nil
}

func (m *fakeMailer) sent() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMail(nil), m.sends...)
}

// newTestAuthService wires an AuthService over in-memory fakes.
func newTestAuthService() (*AuthService, *memAccountStore, *memResetTokenStore, *fakeMailer) {
	recorder := &opRecorder{}
	accountStore := newMemAccountStore()
	accountStore.ops = recorder
	tokenStore := newMemResetTokenStore()
	tokenStore.ops = recorder

	mail := &fakeMailer{}
	registry := NewAccountService(accountStore)
	resetTokens := NewResetTokenService(tokenStore)
	authService := NewAuthService(registry, resetTokens, mail, "http://localhost:3000")
	return authService, accountStore, tokenStore, mail
}
