package accounts

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dayadevraha/devraha/internal/common"
)

// MemoryRepository keeps accounts in process memory. Returned accounts are
// copies; changes go through Update.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*Account
	byEmail map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[string]*Account),
		byEmail: make(map[string]string),
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *MemoryRepository) Create(_ context.Context, account *Account) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := emailKey(account.Email)
	if _, ok := r.byEmail[key]; ok {
		return nil, common.ErrorAlreadyExists
	}

	a := account.Clone()
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now().UTC()
	r.byID[a.ID] = a
	r.byEmail[key] = a.ID
	return a.Clone(), nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return a.Clone(), nil
}

func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return r.byID[id].Clone(), nil
}

func (r *MemoryRepository) Update(_ context.Context, account *Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[account.ID]
	if !ok {
		return common.ErrorNotFound
	}

	oldKey, newKey := emailKey(cur.Email), emailKey(account.Email)
	if oldKey != newKey {
		if _, taken := r.byEmail[newKey]; taken {
			return common.ErrorAlreadyExists
		}
		delete(r.byEmail, oldKey)
		r.byEmail[newKey] = account.ID
	}
	r.byID[account.ID] = account.Clone()
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	delete(r.byEmail, emailKey(a.Email))
	delete(r.byID, id)
	return nil
}

// MemoryTokenRepository keeps emailed tokens in process memory.
type MemoryTokenRepository struct {
	mu     sync.Mutex
	tokens map[string]*Token
	now    func() time.Time
}

func NewMemoryTokenRepository() *MemoryTokenRepository {
	return &MemoryTokenRepository{tokens: make(map[string]*Token), now: time.Now}
}

func (r *MemoryTokenRepository) Create(_ context.Context, accountID string, purpose Purpose, ttl time.Duration) (*Token, error) {
	value, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// one live token per account and purpose
	for v, t := range r.tokens {
		if t.AccountID == accountID && t.Purpose == purpose {
			delete(r.tokens, v)
		}
	}

	t := &Token{Value: value, AccountID: accountID, Purpose: purpose, Expires: r.now().Add(ttl)}
	r.tokens[value] = t
	c := *t
	return &c, nil
}

func (r *MemoryTokenRepository) Take(_ context.Context, value string, purpose Purpose) (*Token, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tokens[value]
	if !ok || t.Purpose != purpose {
		return nil, common.ErrInvalidToken
	}
	delete(r.tokens, value)
	if r.now().After(t.Expires) {
		return nil, common.ErrInvalidToken
	}
	return t, nil
}

func (r *MemoryTokenRepository) DeleteForAccount(_ context.Context, accountID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for v, t := range r.tokens {
		if t.AccountID == accountID {
			delete(r.tokens, v)
		}
	}
	return nil
}
