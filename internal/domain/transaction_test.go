package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var uuidV4Pattern = regexp.MustCompile(
	`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestNewIdempotencyKeyFormat(t *testing.T) {
	key := NewIdempotencyKey()
	assert.Regexp(t, uuidV4Pattern, key)
}

func TestNewIdempotencyKeyUniqueness(t *testing.T) {
	const n = 10_000

	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		key := NewIdempotencyKey()
		require.False(t, seen[key], "duplicate key after %d generations: %s", i, key)
		seen[key] = true
	}
}
