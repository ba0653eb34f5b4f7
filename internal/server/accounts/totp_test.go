package accounts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTOTPProvider(t *testing.T) {
	p := NewTOTPProvider("")
	secret, err := p.GenerateSecret("sita@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, secret)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	code, err := p.Code(secret, now)
	require.NoError(t, err)
	assert.Len(t, code, 6)

	assert.True(t, p.Validate(secret, code, now))
	assert.True(t, p.Validate(secret, code, now.Add(4*time.Minute)), "codes outlive a few minutes")
	assert.False(t, p.Validate(secret, code, now.Add(time.Hour)))
	assert.False(t, p.Validate(secret, "abcdef", now))

	other, err := p.GenerateSecret("sita@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, secret, other)
}
