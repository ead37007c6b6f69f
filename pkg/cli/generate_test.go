package cli

import (
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateIDs(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		parallel int
	}{
		{"sequential", 10, 1},
		{"parallel", 1000, 8},
		{"uneven split", 10, 3},
		{"more workers than ids", 3, 16},
		{"zero parallel", 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n atomic.Int64
			next := func() string {
				return strconv.FormatInt(n.Add(1), 10)
			}

			ids := generateIDs(next, tt.count, tt.parallel)

			assert.Len(t, ids, tt.count)
			assert.Equal(t, int64(tt.count), n.Load())
			seen := make(map[string]bool, len(ids))
			for _, id := range ids {
				assert.NotEmpty(t, id)
				assert.False(t, seen[id], "duplicate %s", id)
				seen[id] = true
			}
		})
	}
}

func TestGenerateIDs_SequentialOrder(t *testing.T) {
	var n int
	next := func() string {
		n++
		return strconv.Itoa(n)
	}

	assert.Equal(t, []string{"1", "2", "3"}, generateIDs(next, 3, 1))
}
