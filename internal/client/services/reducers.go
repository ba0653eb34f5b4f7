package services

import "github.com/dayadevraha/devraha/internal/client/models"

// reducer is one named state transition. The store applies reducers under
// its lock, so a dispatch of several reducers is observed as one change.
type reducer func(*State)

func begin(kind models.Kind) reducer {
	return func(st *State) {
		s := st.session(kind)
		s.inflight++
		s.Loading = true
		s.Err = ""
	}
}

func end(kind models.Kind) reducer {
	return func(st *State) {
		s := st.session(kind)
		if s.inflight > 0 {
			s.inflight--
		}
		s.Loading = s.inflight > 0
	}
}

func failWith(kind models.Kind, msg string) reducer {
	return func(st *State) {
		st.session(kind).Err = msg
		st.lastErr = kind
	}
}

// authenticate commits subj as the signed-in subject and mirrors its
// verification flag.
func authenticate(kind models.Kind, subj *models.Subject) reducer {
	return func(st *State) {
		s := st.session(kind)
		s.Subject = subj.Clone()
		s.Authenticated = s.Subject != nil
		if s.Subject != nil {
			s.EmailVerified = s.Subject.IsVerified
		}
	}
}

func signOut(kind models.Kind) reducer {
	return func(st *State) {
		s := st.session(kind)
		s.Subject = nil
		s.Authenticated = false
	}
}

func challenge(kind models.Kind, email string) reducer {
	return func(st *State) {
		st.session(kind).PendingEmail = email
	}
}

func clearPending(kind models.Kind) reducer {
	return challenge(kind, "")
}

func checking(kind models.Kind, on bool) reducer {
	return func(st *State) {
		st.session(kind).CheckingAuth = on
	}
}

// setVerified records the verification flag on the session and, when a
// subject is present, on the subject too.
func setVerified(kind models.Kind, verified bool) reducer {
	return func(st *State) {
		s := st.session(kind)
		s.EmailVerified = verified
		if s.Subject != nil {
			s.Subject.IsVerified = verified
		}
	}
}

// mergeSubject patches the current subject in place. Without a subject it
// does nothing, so a merge never creates a session.
func mergeSubject(kind models.Kind, patch func(*models.Subject)) reducer {
	return func(st *State) {
		if s := st.session(kind); s.Subject != nil {
			patch(s.Subject)
		}
	}
}
