package capability

import (
	"sandboxenv/internal/event"
	"sandboxenv/internal/future"
	"sandboxenv/internal/resource"
)

// ShellLaunchConfig describes how to start a terminal.
type ShellLaunchConfig struct {
	Name       string
	Executable string
	Args       []string
	Cwd        resource.URI
	Env        map[string]string
}

// ShellAndArgs is a resolved default shell.
type ShellAndArgs struct {
	Shell string
	Args  []string
}

// TerminalInstance is a running terminal.
type TerminalInstance interface {
	ID() int
	Title() string
	Dispose()
}

// TerminalInstanceFactory creates terminal instances.
type TerminalInstanceFactory interface {
	OnDidCreateInstance() event.Event[TerminalInstance]
	CreateInstance(config ShellLaunchConfig) (TerminalInstance, error)
	GetDefaultShellAndArgs(useAutomationShell bool, platform string) *future.Future[ShellAndArgs]
	GetMainProcessParentEnv() *future.Future[map[string]string]
}
