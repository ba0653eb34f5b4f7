package models

import "fmt"

// Kind selects which family of endpoints and which session slot an action
// targets. Its value is the path segment used by the API.
type Kind string

const (
	KindUser  Kind = "user"
	KindAdmin Kind = "admin"
)

// Kinds lists every kind in display order.
var Kinds = []Kind{KindUser, KindAdmin}

func (k Kind) Valid() bool {
	return k == KindUser || k == KindAdmin
}

func (k Kind) String() string {
	return string(k)
}

// ParseKind accepts "user" or "admin".
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown kind %q", s)
	}
	return k, nil
}
