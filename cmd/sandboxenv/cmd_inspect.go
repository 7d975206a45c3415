package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sandboxenv/internal/memfs"
)

// pathsCmd prints every location derived from the user data directory.
var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the derived user-data locations",
	Args:  cobra.NoArgs,
	RunE:  runPaths,
}

func runPaths(cmd *cobra.Command, _ []string) error {
	_, sb, err := boot(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	env := sb.Environment
	fmt.Fprintf(out, "%-24s %s\n", "userDataPath", env.UserDataPath())
	fmt.Fprintf(out, "%-24s %s\n", "userRoamingDataHome", env.UserRoamingDataHome())
	for _, r := range env.All() {
		fmt.Fprintf(out, "%-24s %s\n", r.Name, r.Location)
	}
	return nil
}

// seedCmd seeds the workspace and prints the resulting tree.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the sample workspace and print the store tree",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, _ []string) error {
	_, sb, err := boot(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	err = sb.Store.Walk("/", func(e memfs.Entry) error {
		if e.Path == "/" {
			return nil
		}
		depth := strings.Count(e.Path, "/") - 1
		if e.IsDir() {
			fmt.Fprintf(out, "%s%s/\n", strings.Repeat("  ", depth), e.Name)
			return nil
		}
		fmt.Fprintf(out, "%s%s (%d bytes)\n", strings.Repeat("  ", depth), e.Name, e.Size)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nworkspace %s at %s\n", sb.Workspace.ID, sb.Workspace.URI)
	fmt.Fprintf(out, "digest    %s\n", sb.Digest)
	return nil
}
