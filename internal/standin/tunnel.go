package standin

import (
	"sandboxenv/internal/capability"
	"sandboxenv/internal/event"
	"sandboxenv/internal/future"
	"sandboxenv/internal/resource"
)

// Tunnels never forwards a port. The tunnel list is resolved once, empty,
// when the service is built.
type Tunnels struct {
	tunnels *future.Future[[]capability.RemoteTunnel]
}

var _ capability.Tunnels = (*Tunnels)(nil)

// NewTunnels returns the tunnel stand-in.
func NewTunnels() *Tunnels {
	return &Tunnels{tunnels: future.Resolved([]capability.RemoteTunnel{})}
}

func (t *Tunnels) Tunnels() *future.Future[[]capability.RemoteTunnel] {
	return t.tunnels
}

func (*Tunnels) CanElevate() bool    { return false }
func (*Tunnels) CanMakePublic() bool { return false }

func (*Tunnels) OnTunnelOpened() event.Event[capability.RemoteTunnel] {
	return event.None[capability.RemoteTunnel]()
}

func (*Tunnels) OnTunnelClosed() event.Event[capability.TunnelAddress] {
	return event.None[capability.TunnelAddress]()
}

func (*Tunnels) CanTunnel(resource.URI) bool { return false }

// OpenTunnel reports "unsupported" by resolving to no tunnel.
func (*Tunnels) OpenTunnel(capability.AddressProvider, string, int, int) *future.Future[*capability.RemoteTunnel] {
	return future.Resolved[*capability.RemoteTunnel](nil)
}

func (*Tunnels) ChangeTunnelPrivacy(string, int, bool) *future.Future[*capability.RemoteTunnel] {
	return future.Resolved[*capability.RemoteTunnel](nil)
}

func (*Tunnels) CloseTunnel(string, int) *future.Future[struct{}] {
	return future.Resolved(struct{}{})
}

func (*Tunnels) SetTunnelProvider(capability.TunnelProvider, capability.TunnelProviderFeatures) event.Disposable {
	return event.NoopDisposable
}
