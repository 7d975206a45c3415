// Package bootstrap assembles the sandbox: it derives the environment,
// prepares the in-memory store, seeds the sample workspace and binds every
// stand-in capability.
package bootstrap

import (
	"context"
	"fmt"

	"sandboxenv/internal/capability"
	"sandboxenv/internal/config"
	"sandboxenv/internal/environment"
	"sandboxenv/internal/logging"
	"sandboxenv/internal/memfs"
	"sandboxenv/internal/standin"
	"sandboxenv/internal/workspace"
)

// Sandbox is a fully bootstrapped sandbox.
type Sandbox struct {
	Environment *environment.Service
	Store       *memfs.Store
	Registry    *capability.Registry
	Workspace   workspace.Identifier
	Manifest    workspace.Manifest
	Digest      string
	Log         *standin.Logger
}

// Run bootstraps a sandbox from cfg, seeding the sample workspace.
func Run(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*Sandbox, error) {
	return run(ctx, cfg, logger, workspace.Sample())
}

func run(ctx context.Context, cfg *config.Config, logger *logging.Logger, manifest workspace.Manifest) (*Sandbox, error) {
	log := logger.WithPrefix("bootstrap")
	log.SetLevel(cfg.Level())

	env := environment.New(cfg.Environment())
	env.LogLevel = cfg.LogLevel
	log.Debug("User data dir %s, session %s", env.UserDataDir(), env.SessionID)

	store := memfs.New()
	if err := store.Mkdir(env.UserDataDir().Path); err != nil {
		return nil, fmt.Errorf("create user data dir: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workspace manifest: %w", err)
	}
	ws := workspace.Default()
	if err := workspace.NewSeeder(store, ws.URI).Seed(manifest); err != nil {
		return nil, fmt.Errorf("seed workspace: %w", err)
	}
	digest := manifest.Digest()
	log.Info("Workspace %s seeded at %s (digest %s)", ws.ID, ws.URI, digest)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logService := standin.NewLogger(logger)
	registry := capability.NewRegistry()
	bindings := []struct {
		id   capability.ID
		impl any
	}{
		{capability.EnvironmentService, env},
		{capability.LogService, logService},
		{capability.ExtensionService, standin.NewExtensionHost()},
		{capability.WebviewService, standin.NewWebviewFactory()},
		{capability.TextFileService, standin.NewTextFiles(store)},
		{capability.TunnelService, standin.NewTunnels()},
		{capability.TaskService, standin.NewTasks()},
		{capability.TerminalInstanceService, standin.NewTerminalInstanceFactory()},
	}
	for _, b := range bindings {
		if err := registry.Register(b.id, b.impl); err != nil {
			return nil, err
		}
	}
	if missing := registry.Missing(capability.RequiredIDs()); len(missing) > 0 {
		return nil, fmt.Errorf("capabilities not bound: %v", missing)
	}
	log.Info("Bound %d capabilities", registry.Len())

	return &Sandbox{
		Environment: env,
		Store:       store,
		Registry:    registry,
		Workspace:   ws,
		Manifest:    manifest,
		Digest:      digest,
		Log:         logService,
	}, nil
}
