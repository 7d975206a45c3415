package standin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sandboxenv/internal/capability"
	"sandboxenv/internal/future"
)

// settled fails the test when f is not already done.
func settled[T any](t *testing.T, f *future.Future[T]) (T, error) {
	t.Helper()
	require.NotNil(t, f)
	select {
	case <-f.Done():
	default:
		t.Fatal("future is still pending")
	}
	return f.Await(context.Background())
}

func requireNotImplemented(t *testing.T, err error, id capability.ID, op string) {
	t.Helper()
	require.Error(t, err)
	var ni *capability.NotImplementedError
	require.True(t, errors.As(err, &ni), "expected NotImplementedError, got %v", err)
	assert.Equal(t, id, ni.Capability)
	assert.Equal(t, op, ni.Op)
}
