package idx

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewProducesUniqueSortedIDs(t *testing.T) {
	prev := New()
	for range 1000 {
		next := New()
		require.NotEqual(t, prev, next)
		require.Less(t, prev.String(), next.String())
		prev = next
	}
}

func TestNewIsSafeConcurrently(t *testing.T) {
	const n = 64
	ids := make([]ID, n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i] = New()
		}()
	}
	wg.Wait()

	seen := make(map[ID]struct{}, n)
	for _, id := range ids {
		require.NotContains(t, seen, id)
		seen[id] = struct{}{}
	}
}

func TestParse(t *testing.T) {
	id := New()

	parsed, err := Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	_, err = Parse("")
	require.ErrorIs(t, err, ErrInvalid)

	_, err = Parse("not-a-ulid")
	require.ErrorIs(t, err, ErrInvalid)
}

func TestTimeRoundTrip(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	id := NewAt(at)
	require.Equal(t, at, id.Time())

	require.True(t, ID("garbage").Time().IsZero())
}
