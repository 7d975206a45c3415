package standin

import (
	"sandboxenv/internal/capability"
	"sandboxenv/internal/event"
	"sandboxenv/internal/future"
)

// ExtensionHost hosts no extensions. Everything it is asked resolves to
// "nothing installed".
type ExtensionHost struct{}

var _ capability.ExtensionHost = (*ExtensionHost)(nil)

// NewExtensionHost returns the null extension host.
func NewExtensionHost() *ExtensionHost {
	return &ExtensionHost{}
}

func (*ExtensionHost) OnDidRegisterExtensions() event.Event[struct{}] {
	return event.None[struct{}]()
}

func (*ExtensionHost) OnDidChangeExtensionsStatus() event.Event[[]string] {
	return event.None[[]string]()
}

func (*ExtensionHost) OnDidChangeExtensions() event.Event[capability.ExtensionsDelta] {
	return event.None[capability.ExtensionsDelta]()
}

func (*ExtensionHost) OnWillActivateByEvent() event.Event[string] {
	return event.None[string]()
}

func (*ExtensionHost) OnDidChangeResponsiveChange() event.Event[bool] {
	return event.None[bool]()
}

func (*ExtensionHost) ActivateByEvent(string) *future.Future[struct{}] {
	return future.Resolved(struct{}{})
}

func (*ExtensionHost) WhenInstalledExtensionsRegistered() *future.Future[bool] {
	return future.Resolved(true)
}

func (*ExtensionHost) Extensions() *future.Future[[]capability.ExtensionDescription] {
	return future.Resolved([]capability.ExtensionDescription{})
}

func (*ExtensionHost) Extension(string) *future.Future[*capability.ExtensionDescription] {
	return future.Resolved[*capability.ExtensionDescription](nil)
}

func (*ExtensionHost) CanAddExtension(capability.ExtensionDescription) bool    { return false }
func (*ExtensionHost) CanRemoveExtension(capability.ExtensionDescription) bool { return false }

func (*ExtensionHost) ExtensionsStatus() map[string]capability.ExtensionStatus {
	return map[string]capability.ExtensionStatus{}
}

func (*ExtensionHost) InspectPort() int { return 0 }

func (*ExtensionHost) StartExtensionHosts() {}
func (*ExtensionHost) StopExtensionHosts()  {}

func (*ExtensionHost) RestartExtensionHost() *future.Future[struct{}] {
	return future.Resolved(struct{}{})
}

func (*ExtensionHost) SetRemoteEnvironment(map[string]string) *future.Future[struct{}] {
	return future.Resolved(struct{}{})
}
