package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("x", 5*3600)
	assert.Equal(t, "2026-01-01", DateKey(time.Date(2026, 1, 2, 3, 0, 0, 0, loc)))
}

func TestRunKey(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-10-19", RunKey(0, now))
	assert.Equal(t, "42", RunKey(42, now))
	assert.Equal(t, "-7", RunKey(-7, now))
}

func TestForGame_DeterministicAndDistinct(t *testing.T) {
	seen := map[int64]int{}
	for i := 0; i < 200; i++ {
		s := ForGame("42", i)
		assert.Equal(t, s, ForGame("42", i))
		assert.Positive(t, s)
		if prev, dup := seen[s]; dup {
			t.Fatalf("games %d and %d share seed %d", prev, i, s)
		}
		seen[s] = i
	}
	assert.NotEqual(t, ForGame("42", 0), ForGame("43", 0))
}
