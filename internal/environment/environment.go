// Package environment derives every location the sandboxed application
// needs from one user-data root and exposes the conservative flag defaults
// the rest of the application reads to decide whether it runs in a
// development, telemetry or debug mode.
package environment

import (
	"sandboxenv/internal/resource"
)

// DefaultUserDataDir is the root used when no other one is configured.
const DefaultUserDataDir = "/sandbox-user-data-dir"

// Configuration carries the scalar values the environment copies verbatim.
type Configuration struct {
	UserDataDir     resource.URI
	SessionID       string
	MachineID       string
	RemoteAuthority string
}

// OSInfo describes the host operating system. The sandbox never inspects
// the real host.
type OSInfo struct {
	Release string
}

// Service is the sandbox environment descriptor.
type Service struct {
	configuration Configuration
	userDataDir   resource.URI

	SessionID       string
	MachineID       string
	RemoteAuthority string
	OS              OSInfo

	DisableTelemetry       bool
	IsBuilt                bool
	IsExtensionDevelopment bool
	Verbose                bool
	DebugRenderer          bool
	DisableExtensions      []string
	LogLevel               string
}

// New creates the environment descriptor for cfg. A zero UserDataDir falls
// back to DefaultUserDataDir.
func New(cfg Configuration) *Service {
	root := cfg.UserDataDir
	if root.IsZero() {
		root = resource.File(DefaultUserDataDir)
	}
	return &Service{
		configuration:   cfg,
		userDataDir:     root,
		SessionID:       cfg.SessionID,
		MachineID:       cfg.MachineID,
		RemoteAuthority: cfg.RemoteAuthority,
		OS:              OSInfo{Release: "unknown"},

		DisableTelemetry:       true,
		IsBuilt:                false,
		IsExtensionDevelopment: false,
		Verbose:                false,
		DebugRenderer:          false,
		DisableExtensions:      []string{},
	}
}

// Configuration returns the configuration the descriptor was built from.
func (s *Service) Configuration() Configuration {
	return s.configuration
}

// UserDataDir is the root as a file location.
func (s *Service) UserDataDir() resource.URI {
	return s.userDataDir
}

// UserRoamingDataHome is the root under the user-data scheme; every derived
// resource hangs off it.
func (s *Service) UserRoamingDataHome() resource.URI {
	return s.userDataDir.WithScheme(resource.SchemeUserData)
}

func (s *Service) derive(suffix string) resource.URI {
	return resource.JoinPath(s.UserRoamingDataHome(), suffix)
}

func (s *Service) Settings() resource.URI               { return s.derive(suffixSettings) }
func (s *Service) Argv() resource.URI                   { return s.derive(suffixArgv) }
func (s *Service) SnippetsHome() resource.URI           { return s.derive(suffixSnippets) }
func (s *Service) GlobalStorageHome() resource.URI      { return s.derive(suffixGlobalStorage) }
func (s *Service) WorkspaceStorageHome() resource.URI   { return s.derive(suffixWorkspaceStorage) }
func (s *Service) Keybindings() resource.URI            { return s.derive(suffixKeybindings) }
func (s *Service) LogFile() resource.URI                { return s.derive(suffixLogFile) }
func (s *Service) UntitledWorkspacesHome() resource.URI { return s.derive(suffixUntitledWorkspaces) }
func (s *Service) ServiceMachineID() resource.URI       { return s.derive(suffixMachineID) }
func (s *Service) UserDataSyncLog() resource.URI        { return s.derive(suffixSyncLog) }
func (s *Service) UserDataSyncHome() resource.URI       { return s.derive(suffixSyncHome) }
func (s *Service) TmpDir() resource.URI                 { return s.derive(suffixTmp) }
func (s *Service) TelemetryLog() resource.URI           { return s.derive(suffixTelemetryLog) }

// UserDataPath is the OS path of the root.
func (s *Service) UserDataPath() string {
	return s.userDataDir.FSPath()
}

// LogsPath is the path (not URI) of the logs directory.
func (s *Service) LogsPath() string {
	return s.derive(suffixLogs).Path
}
