//go:build unix

package runner

import (
	"bytes"
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Not parallel: the test delivers a real SIGINT to this process and relies
// on Run's handler being the only one registered when it lands.
func TestRun_When_Interrupted_ForwardsSignalAndAborts(t *testing.T) {
	var out, errOut bytes.Buffer

	var code int
	var err error
	done := make(chan struct{})
	go func() {
		defer close(done)
		code, err = Run(context.Background(), "sh", []string{"-c", "sleep 10"}, newSink(&out), &errOut)
	}()

	// Give Run time to register its handler and start the child.
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("wrapper still running after SIGINT; signal was not forwarded")
	}

	require.ErrorIs(t, err, ErrInterrupted)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "[signal]")
}
