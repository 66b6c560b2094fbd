package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rivet/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "rivet",
	Short: "Rivet semantic database tooling",
	Long:  `Rivet inspects and verifies semantic database snapshots produced by the compiler`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("manifest", "", "path to rivet.toml with default options")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
