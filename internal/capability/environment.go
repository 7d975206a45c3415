package capability

import (
	"sandboxenv/internal/environment"
	"sandboxenv/internal/resource"
)

// Environment describes where the application keeps its data.
type Environment interface {
	Configuration() environment.Configuration
	UserRoamingDataHome() resource.URI
	Settings() resource.URI
	Argv() resource.URI
	SnippetsHome() resource.URI
	GlobalStorageHome() resource.URI
	WorkspaceStorageHome() resource.URI
	Keybindings() resource.URI
	LogFile() resource.URI
	UntitledWorkspacesHome() resource.URI
	ServiceMachineID() resource.URI
	UserDataSyncLog() resource.URI
	UserDataSyncHome() resource.URI
	TmpDir() resource.URI
	TelemetryLog() resource.URI
	UserDataPath() string
	LogsPath() string
}

var _ Environment = (*environment.Service)(nil)
