package environment

import (
	"sandboxenv/internal/resource"
)

const (
	suffixSettings           = "settings.json"
	suffixArgv               = "argv.json"
	suffixSnippets           = "snippets"
	suffixGlobalStorage      = "globalStorage"
	suffixWorkspaceStorage   = "workspaceStorage"
	suffixKeybindings        = "keybindings.json"
	suffixLogFile            = "window.log"
	suffixUntitledWorkspaces = "Workspaces"
	suffixMachineID          = "machineid"
	suffixSyncLog            = "syncLog"
	suffixSyncHome           = "syncHome"
	suffixTmp                = "tmp"
	suffixLogs               = "logs"
	suffixTelemetryLog       = "telemetry.log"
)

// Resource is one named derived location.
type Resource struct {
	Name     string
	Location resource.URI
}

// All lists every derived resource in a stable order.
func (s *Service) All() []Resource {
	return []Resource{
		{Name: "settings", Location: s.Settings()},
		{Name: "argv", Location: s.Argv()},
		{Name: "snippetsHome", Location: s.SnippetsHome()},
		{Name: "globalStorageHome", Location: s.GlobalStorageHome()},
		{Name: "workspaceStorageHome", Location: s.WorkspaceStorageHome()},
		{Name: "keybindings", Location: s.Keybindings()},
		{Name: "logFile", Location: s.LogFile()},
		{Name: "untitledWorkspacesHome", Location: s.UntitledWorkspacesHome()},
		{Name: "serviceMachineId", Location: s.ServiceMachineID()},
		{Name: "userDataSyncLog", Location: s.UserDataSyncLog()},
		{Name: "userDataSyncHome", Location: s.UserDataSyncHome()},
		{Name: "tmpDir", Location: s.TmpDir()},
		{Name: "logsPath", Location: s.derive(suffixLogs)},
		{Name: "telemetryLog", Location: s.TelemetryLog()},
	}
}
