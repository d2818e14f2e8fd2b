package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a := New()
	b := New()

	require.False(t, a.IsZero())
	require.False(t, b.IsZero())
	require.NotEqual(t, a, b)
	require.Len(t, a.String(), 26)
}

func TestMonotonicOrdering(t *testing.T) {
	prev := New()
	for range 100 {
		next := New()
		require.Less(t, prev.String(), next.String(), "IDs should sort in creation order")
		prev = next
	}
}

func TestParse(t *testing.T) {
	valid := New()

	t.Run("valid", func(t *testing.T) {
		id, err := Parse(valid.String())
		require.NoError(t, err)
		require.Equal(t, valid, id)
	})

	t.Run("whitespace trimmed", func(t *testing.T) {
		id, err := Parse("  " + valid.String() + " ")
		require.NoError(t, err)
		require.Equal(t, valid, id)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{"", "nope", "0000000000000000000000000!"} {
			_, err := Parse(s)
			require.ErrorIs(t, err, ErrInvalid)
		}
	})
}

func TestTime(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	id := NewAt(at)

	require.WithinDuration(t, at, id.Time(), time.Millisecond)
	require.True(t, Zero.Time().IsZero())
}
