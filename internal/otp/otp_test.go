package otp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	code, expiry, err := Generate(ConfirmTTL)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9')
	}
	assert.WithinDuration(t, time.Now().Add(ConfirmTTL), expiry, time.Second)
}

func TestMatches(t *testing.T) {
	future := time.Now().Add(time.Minute)
	past := time.Now().Add(-time.Minute)

	assert.True(t, Matches("123456", &future, "123456"))
	assert.False(t, Matches("123456", &future, "654321"), "wrong code")
	assert.False(t, Matches("123456", &past, "123456"), "expired")
	assert.False(t, Matches("", &future, ""), "cleared code never matches")
	assert.False(t, Matches("123456", nil, "123456"), "no expiry on record")
}
