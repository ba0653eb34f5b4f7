package services

import "github.com/dayadevraha/devraha/internal/client/models"

// Session is the client-side view of one kind's authentication.
//
// Authenticated implies Subject != nil. Loading is true while at least one
// action of this kind is in flight; Err holds the message of the last failed
// action and is cleared when the next one starts.
type Session struct {
	Subject       *models.Subject
	Authenticated bool
	// PendingEmail is set while a login waits for its one-time code.
	PendingEmail  string
	EmailVerified bool
	CheckingAuth  bool
	Loading       bool
	Err           string

	inflight int
}

func (s Session) clone() Session {
	s.Subject = s.Subject.Clone()
	return s
}

// State holds both sessions. Values returned by the store are copies and
// may be kept or modified freely.
type State struct {
	User  Session
	Admin Session

	lastErr models.Kind
}

func (s *State) session(kind models.Kind) *Session {
	if kind == models.KindAdmin {
		return &s.Admin
	}
	return &s.User
}

// Session returns the session of the given kind.
func (s State) Session(kind models.Kind) Session {
	return *s.session(kind)
}

func (s State) clone() State {
	s.User = s.User.clone()
	s.Admin = s.Admin.clone()
	return s
}

// IsLoading reports whether any action of either kind is in flight.
func (s State) IsLoading() bool {
	return s.User.Loading || s.Admin.Loading
}

// IsCheckingAuth reports whether a restoration probe of either kind runs.
func (s State) IsCheckingAuth() bool {
	return s.User.CheckingAuth || s.Admin.CheckingAuth
}

// LastError returns the most recent failure message still recorded on
// either session, or "".
func (s State) LastError() string {
	if s.lastErr != "" {
		if msg := s.session(s.lastErr).Err; msg != "" {
			return msg
		}
	}
	if s.User.Err != "" {
		return s.User.Err
	}
	return s.Admin.Err
}
