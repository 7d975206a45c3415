package capability

import (
	"sandboxenv/internal/event"
	"sandboxenv/internal/future"
	"sandboxenv/internal/resource"
)

// ExtensionDescription identifies one installed extension.
type ExtensionDescription struct {
	Identifier string
	Name       string
	Version    string
	Location   resource.URI
}

// ExtensionStatus reports activation details for one extension.
type ExtensionStatus struct {
	Activated bool
	Messages  []string
}

// ExtensionsDelta is delivered when the set of extensions changes.
type ExtensionsDelta struct {
	Added   []ExtensionDescription
	Removed []ExtensionDescription
}

// ExtensionHost runs extensions.
type ExtensionHost interface {
	OnDidRegisterExtensions() event.Event[struct{}]
	OnDidChangeExtensionsStatus() event.Event[[]string]
	OnDidChangeExtensions() event.Event[ExtensionsDelta]
	OnWillActivateByEvent() event.Event[string]
	OnDidChangeResponsiveChange() event.Event[bool]

	ActivateByEvent(activationEvent string) *future.Future[struct{}]
	WhenInstalledExtensionsRegistered() *future.Future[bool]
	Extensions() *future.Future[[]ExtensionDescription]
	Extension(id string) *future.Future[*ExtensionDescription]
	CanAddExtension(ext ExtensionDescription) bool
	CanRemoveExtension(ext ExtensionDescription) bool
	ExtensionsStatus() map[string]ExtensionStatus
	InspectPort() int
	StartExtensionHosts()
	StopExtensionHosts()
	RestartExtensionHost() *future.Future[struct{}]
	SetRemoteEnvironment(env map[string]string) *future.Future[struct{}]
}
