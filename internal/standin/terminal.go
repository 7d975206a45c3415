package standin

import (
	"sandboxenv/internal/capability"
	"sandboxenv/internal/event"
	"sandboxenv/internal/future"
)

// TerminalInstanceFactory has no pty backend; no terminal is ever created.
type TerminalInstanceFactory struct{}

var _ capability.TerminalInstanceFactory = (*TerminalInstanceFactory)(nil)

// NewTerminalInstanceFactory returns the terminal stand-in.
func NewTerminalInstanceFactory() *TerminalInstanceFactory {
	return &TerminalInstanceFactory{}
}

func (*TerminalInstanceFactory) OnDidCreateInstance() event.Event[capability.TerminalInstance] {
	return event.None[capability.TerminalInstance]()
}

func (*TerminalInstanceFactory) CreateInstance(capability.ShellLaunchConfig) (capability.TerminalInstance, error) {
	return nil, capability.NotImplemented(capability.TerminalInstanceService, "createInstance")
}

func (*TerminalInstanceFactory) GetDefaultShellAndArgs(bool, string) *future.Future[capability.ShellAndArgs] {
	return future.Failed[capability.ShellAndArgs](
		capability.NotImplemented(capability.TerminalInstanceService, "getDefaultShellAndArgs"))
}

// GetMainProcessParentEnv resolves to an empty environment; the sandbox
// has no parent process to inherit from.
func (*TerminalInstanceFactory) GetMainProcessParentEnv() *future.Future[map[string]string] {
	return future.Resolved(map[string]string{})
}
