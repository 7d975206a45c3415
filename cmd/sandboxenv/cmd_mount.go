package main

import (
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"sandboxenv/internal/fs"
)

var mountRoot string

// mountCmd serves the seeded store read-only over FUSE until interrupted.
var mountCmd = &cobra.Command{
	Use:   "mount [mountpoint]",
	Short: "Mount the seeded store read-only over FUSE",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMount,
}

func init() {
	mountCmd.Flags().StringVar(&mountRoot, "root", "/", "Store directory to show at the mount root")
}

func runMount(cmd *cobra.Command, args []string) error {
	cfg, sb, err := boot(cmd.Context())
	if err != nil {
		return err
	}

	mountpoint := cfg.Mount.Mountpoint
	if len(args) == 1 {
		mountpoint = args[0]
	}
	if mountpoint == "" {
		return errors.New("mount point is required (argument or mount.mountpoint)")
	}
	cleanMount := filepath.Clean(mountpoint)

	view, err := fs.NewView(sb.Store, mountRoot)
	if err != nil {
		return err
	}

	logger.Debug("Setting up signal handlers...")
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	done, err := view.Mount(cleanMount, cfg.Mount.FSName)
	if err != nil {
		return err
	}
	logger.Info("Filesystem mounted at %s and ready", cleanMount)

	select {
	case sig := <-sigChan:
		logger.Info("Received signal %v", sig)
		if err := view.Unmount(cleanMount); err != nil {
			return err
		}
		<-done
	case err := <-done:
		if err != nil {
			return err
		}
	}

	logger.Info("Clean shutdown complete")
	return nil
}
