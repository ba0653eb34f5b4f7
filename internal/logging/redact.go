package logging

import "strings"

// Redacted replaces the value of any key that may carry a credential.
const Redacted = "[REDACTED]"

var sensitiveKeys = []string{"password", "otp", "token", "secret", "cookie"}

// sensitive matches a listed key or one ending in "_<key>", so
// "reset_token" is masked and "otp_pending" is not.
func sensitive(key string) bool {
	k := strings.ToLower(key)
	for _, s := range sensitiveKeys {
		if k == s || strings.HasSuffix(k, "_"+s) {
			return true
		}
	}
	return false
}

// redact returns args with the values of sensitive keys masked. args is
// never modified; it is returned as is when nothing needs masking.
func redact(args []any) []any {
	var out []any
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || !sensitive(key) {
			continue
		}
		if out == nil {
			out = append([]any(nil), args...)
		}
		out[i+1] = Redacted
	}
	if out == nil {
		return args
	}
	return out
}
