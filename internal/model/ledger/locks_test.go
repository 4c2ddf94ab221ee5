package ledger

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_LockMap_ShouldSerializeSameIdentifier(t *testing.T) {
	m := newLockMap()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := m.lock("a")
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
	assert.Equal(t, 0, m.size())
}

func Test_LockMap_ShouldNotBlockOtherIdentifiers(t *testing.T) {
	m := newLockMap()
	unlockA := m.lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := m.lock("b")
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on b waited for a")
	}
}
