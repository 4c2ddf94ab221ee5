package identifier

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Generate_ShouldReturnValidIdentifier(t *testing.T) {
	id := Generate()

	assert.Len(t, id, 36)
	assert.True(t, Valid(id))
}

func Test_Generate_ShouldNotCollideAcrossGoroutines(t *testing.T) {
	const workers, perWorker = 8, 500

	var mu sync.Mutex
	seen := make(map[string]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := Generate()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, seen, workers*perWorker)
}

func Test_Valid_ShouldRejectNonIdentifiers(t *testing.T) {
	for _, s := range []string{
		"",
		"alice",
		"../../etc/passwd",
		"{6ba7b810-9dad-11d1-80b4-00c04fd430c8}",
		"urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"6ba7b8109dad11d180b400c04fd430c8",
	} {
		assert.False(t, Valid(s), s)
	}
	assert.True(t, Valid("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
}
