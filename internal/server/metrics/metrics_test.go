package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", Outcome(200))
	assert.Equal(t, "ok", Outcome(302))
	assert.Equal(t, "client_error", Outcome(401))
	assert.Equal(t, "server_error", Outcome(500))
}
