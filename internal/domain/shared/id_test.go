package shared

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("matches prefix_millis_suffix format", func(t *testing.T) {
		id := NewID("sale")
		require.Regexp(t, regexp.MustCompile(`^sale_\d{13}_[a-z0-9]{6}$`), id)
	})

	t.Run("generates distinct IDs", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			id := NewID("prod")
			assert.False(t, seen[id], "duplicate ID %s", id)
			seen[id] = true
		}
	})
}
