package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"rivet/internal/snapshot"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [flags] <snapshot.mp>...",
	Short: "Check database snapshots for structural corruption",
	Long:  `Load each snapshot into its own database and run the full invariant sweep over blocks and identifiers`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runVerify,
}

func init() {
	verifyCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
}

// runVerify loads every snapshot concurrently. Each file gets an independent
// database, so the databases themselves stay single-threaded.
func runVerify(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	colorValue, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	mode, err := readColorMode(colorValue)
	if err != nil {
		return err
	}
	applyColorMode(mode)

	var g errgroup.Group
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	results := make([]error, len(args))
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			d, err := snapshot.Read(path)
			if err != nil {
				results[i] = err
				return nil
			}
			results[i] = d.Validate()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed, color.Bold)
	out := cmd.OutOrStdout()
	failed := 0
	for i, path := range args {
		if results[i] != nil {
			failed++
			bad.Fprintf(out, "FAIL %s\n", path)
			fmt.Fprintf(out, "     %v\n", results[i])
			continue
		}
		ok.Fprintf(out, "OK   %s\n", path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d snapshots failed verification", failed, len(args))
	}
	return nil
}
