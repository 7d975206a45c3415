package capability

// ID identifies a capability in the Registry.
type ID string

const (
	EnvironmentService      ID = "environmentService"
	LogService              ID = "logService"
	ExtensionService        ID = "extensionService"
	WebviewService          ID = "webviewService"
	TextFileService         ID = "textFileService"
	TunnelService           ID = "tunnelService"
	TaskService             ID = "taskService"
	TerminalInstanceService ID = "terminalInstanceService"
)

// RequiredIDs lists every capability the sandbox must bind at bootstrap.
func RequiredIDs() []ID {
	return []ID{
		EnvironmentService,
		LogService,
		ExtensionService,
		WebviewService,
		TextFileService,
		TunnelService,
		TaskService,
		TerminalInstanceService,
	}
}
