package cmd

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchDebouncesChanges(t *testing.T) {
	watchInterval = 10 * time.Millisecond
	watchSettle = 300 * time.Millisecond

	path := filepath.Join(t.TempDir(), "beat.json")
	require.NoError(t, os.WriteFile(path, []byte("[[36]]"), 0644))

	var calls int32
	stop := make(chan os.Signal)
	done := make(chan struct{})
	go func() {
		watch(path, stop, func(string) { atomic.AddInt32(&calls, 1) })
		close(done)
	}()

	// a burst of writes with distinct modification times
	base := time.Now()
	for i := 1; i <= 3; i++ {
		time.Sleep(30 * time.Millisecond)
		require.NoError(t, os.Chtimes(path, base, base.Add(time.Duration(i)*time.Second)))
	}

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 2
	}, 2*time.Second, 10*time.Millisecond)

	close(stop)
	<-done
	time.Sleep(400 * time.Millisecond)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestWatchDropsPendingChangeOnStop(t *testing.T) {
	watchInterval = 10 * time.Millisecond
	watchSettle = 300 * time.Millisecond

	path := filepath.Join(t.TempDir(), "beat.json")
	require.NoError(t, os.WriteFile(path, []byte("[[36]]"), 0644))

	var calls int32
	stop := make(chan os.Signal)
	done := make(chan struct{})
	go func() {
		watch(path, stop, func(string) { atomic.AddInt32(&calls, 1) })
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	base := time.Now()
	require.NoError(t, os.Chtimes(path, base, base.Add(time.Second)))

	// the change is seen but has not settled yet
	time.Sleep(60 * time.Millisecond)
	close(stop)
	<-done

	time.Sleep(400 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
