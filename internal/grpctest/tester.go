package grpctest

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

var goroutineCheckFailed uint32

// Tester is an implementation of the x interface parameter to grpctest.RunSubTests with default Setup and Teardown
// behavior. Setup snapshots the running goroutines and Teardown reports any goroutine started by the test that is
// still running. Embed in a struct with tests defined to use.
type Tester struct{}

var (
	mu        sync.Mutex
	snapshots = make(map[*testing.T]goleak.Option)
)

// Setup records the goroutines running before t starts.
func (Tester) Setup(t *testing.T) {
	mu.Lock()
	defer mu.Unlock()
	snapshots[t] = goleak.IgnoreCurrent()
}

// Teardown performs a leak check. After the first failure the check is disabled for
// the remaining tests.
func (Tester) Teardown(t *testing.T) {
	mu.Lock()
	current, ok := snapshots[t]
	delete(snapshots, t)
	mu.Unlock()
	if !ok || atomic.LoadUint32(&goroutineCheckFailed) == 1 {
		return
	}

	// Connections torn down by the test can take a few seconds to exit.
	deadline := time.Now().Add(10 * time.Second)
	for {
		err := goleak.Find(current)
		if err == nil {
			return
		}
		if time.Now().After(deadline) {
			atomic.StoreUint32(&goroutineCheckFailed, 1)
			t.Errorf("grpctest: %v", err)
			t.Log("Goroutine check disabled for future tests")
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
}
