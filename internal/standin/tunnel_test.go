package standin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sandboxenv/internal/capability"
	"sandboxenv/internal/resource"
)

func TestTunnelsInert(t *testing.T) {
	svc := NewTunnels()

	tunnels, err := settled(t, svc.Tunnels())
	require.NoError(t, err)
	assert.Empty(t, tunnels)
	assert.NotNil(t, tunnels)
	assert.Same(t, svc.Tunnels(), svc.Tunnels())

	assert.False(t, svc.CanElevate())
	assert.False(t, svc.CanMakePublic())
	assert.False(t, svc.CanTunnel(resource.File("/simpleWorkspace")))

	opened := false
	svc.OnTunnelOpened().Subscribe(func(capability.RemoteTunnel) { opened = true })
	closed := false
	svc.OnTunnelClosed().Subscribe(func(capability.TunnelAddress) { closed = true })

	tunnel, err := settled(t, svc.OpenTunnel(nil, "localhost", 8080, 0))
	require.NoError(t, err)
	assert.Nil(t, tunnel)

	tunnel, err = settled(t, svc.OpenTunnel(nil, "", 22, 2222))
	require.NoError(t, err)
	assert.Nil(t, tunnel)

	changed, err := settled(t, svc.ChangeTunnelPrivacy("localhost", 8080, true))
	require.NoError(t, err)
	assert.Nil(t, changed)

	_, err = settled(t, svc.CloseTunnel("localhost", 8080))
	require.NoError(t, err)

	d := svc.SetTunnelProvider(nil, capability.TunnelProviderFeatures{Elevation: true, Public: true})
	require.NotNil(t, d)
	assert.NotPanics(t, d.Dispose)

	assert.False(t, opened)
	assert.False(t, closed)
}

func TestOpenTunnelResolvesUnderCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tunnel, err := NewTunnels().OpenTunnel(nil, "localhost", 8080, 0).Await(ctx)
	require.NoError(t, err)
	assert.Nil(t, tunnel)
}
