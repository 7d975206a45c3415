package capability

import (
	"sandboxenv/internal/event"
	"sandboxenv/internal/future"
	"sandboxenv/internal/resource"
)

// RemoteTunnel is an open port forward.
type RemoteTunnel struct {
	RemoteHost   string
	RemotePort   int
	LocalAddress string
	Public       bool
}

// TunnelAddress identifies a tunnel by its remote end.
type TunnelAddress struct {
	Host string
	Port int
}

// TunnelOptions describe the port a provider should forward.
type TunnelOptions struct {
	RemoteAddress TunnelAddress
	LocalPort     int
	Label         string
	Public        bool
}

// TunnelProviderFeatures advertise what a provider can do.
type TunnelProviderFeatures struct {
	Elevation bool
	Public    bool
}

// TunnelProvider forwards ports on behalf of the tunnel service.
type TunnelProvider interface {
	ForwardPort(options TunnelOptions) *future.Future[*RemoteTunnel]
}

// AddressProvider resolves the remote endpoint tunnels connect through.
type AddressProvider interface {
	Address() (host string, port int, err error)
}

// Tunnels manages port forwards to remote hosts.
type Tunnels interface {
	Tunnels() *future.Future[[]RemoteTunnel]
	CanElevate() bool
	CanMakePublic() bool
	OnTunnelOpened() event.Event[RemoteTunnel]
	OnTunnelClosed() event.Event[TunnelAddress]
	CanTunnel(uri resource.URI) bool
	// OpenTunnel forwards remotePort. localPort 0 lets the service choose.
	OpenTunnel(addressProvider AddressProvider, remoteHost string, remotePort int, localPort int) *future.Future[*RemoteTunnel]
	ChangeTunnelPrivacy(remoteHost string, remotePort int, public bool) *future.Future[*RemoteTunnel]
	CloseTunnel(remoteHost string, remotePort int) *future.Future[struct{}]
	SetTunnelProvider(provider TunnelProvider, features TunnelProviderFeatures) event.Disposable
}
