package accounts

import (
	"context"
	"sync"
)

type sentMail struct {
	Kind  string
	To    string
	Token string
	Code  string
	Type  string
}

// captureMailer records every message instead of sending it.
type captureMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *captureMailer) record(s sentMail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, s)
	return m.err
}

func (m *captureMailer) SendVerification(_ context.Context, kind, to, token string) error {
	return m.record(sentMail{Type: "verify", Kind: kind, To: to, Token: token})
}

func (m *captureMailer) SendPasswordReset(_ context.Context, kind, to, token string) error {
	return m.record(sentMail{Type: "reset", Kind: kind, To: to, Token: token})
}

func (m *captureMailer) SendOTP(_ context.Context, to, code string) error {
	return m.record(sentMail{Type: "otp", To: to, Code: code})
}

// last returns the most recent message of type typ.
func (m *captureMailer) last(typ string) (sentMail, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.sent) - 1; i >= 0; i-- {
		if m.sent[i].Type == typ {
			return m.sent[i], true
		}
	}
	return sentMail{}, false
}

func (m *captureMailer) count(typ string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, s := range m.sent {
		if s.Type == typ {
			n++
		}
	}
	return n
}
