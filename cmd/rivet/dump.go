package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rivet/internal/ast"
	"rivet/internal/db"
	"rivet/internal/project"
	"rivet/internal/snapshot"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] <snapshot.mp>...",
	Short: "Render the identifiers of database snapshots",
	Long:  `Load one or more semantic database snapshots and print every identifier with its payload, scope and qualified path`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().Int("limit", 0, "max identifiers to print per snapshot (0 = all)")
	dumpCmd.Flags().Bool("paths", false, "also print the fully qualified path of every identifier")
}

func runDump(cmd *cobra.Command, args []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("failed to get limit flag: %w", err)
	}
	withPaths, err := cmd.Flags().GetBool("paths")
	if err != nil {
		return fmt.Errorf("failed to get paths flag: %w", err)
	}
	colorValue, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	manifestPath, err := cmd.Root().PersistentFlags().GetString("manifest")
	if err != nil {
		return fmt.Errorf("failed to get manifest flag: %w", err)
	}

	// Manifest supplies defaults; explicit flags win.
	if manifestPath != "" {
		manifest, err := project.Load(manifestPath)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("limit") && manifest.Dump.Limit > 0 {
			limit = manifest.Dump.Limit
		}
		if !cmd.Root().PersistentFlags().Changed("color") && manifest.Dump.Color != "" {
			colorValue = manifest.Dump.Color
		}
	}

	mode, err := readColorMode(colorValue)
	if err != nil {
		return err
	}
	applyColorMode(mode)

	header := color.New(color.FgCyan, color.Bold)
	out := cmd.OutOrStdout()
	for _, path := range args {
		d, err := snapshot.Read(path)
		if err != nil {
			return err
		}
		header.Fprintf(out, "== %s (%d identifiers)\n", path, d.NumIdents())
		printed := 0
		d.AllIdents(func(id db.IdentID) {
			if limit > 0 && printed >= limit {
				return
			}
			printed++
			fmt.Fprint(out, d.DumpIdentString(id))
			if withPaths {
				fmt.Fprintf(out, "  path: %s\n", renderPath(d, id))
			}
		})
		if limit > 0 && d.NumIdents() > limit {
			fmt.Fprintf(out, "... %d more\n", d.NumIdents()-limit)
		}
	}
	return nil
}

// renderPath flattens the qualified path expression into dotted text.
// Identifiers inside statement scopes have no qualified path; show the bare
// name for them instead of tripping the owner walk.
func renderPath(d *db.Database, id db.IdentID) string {
	ident := d.Ident(id)
	if block := d.Block(ident.Block); block == nil || block.Kind == db.BlockStatement {
		return d.NameOf(ident.Name)
	}
	var sb strings.Builder
	flattenPath(d, d.IdentPathExpr(id), &sb)
	return sb.String()
}

func flattenPath(d *db.Database, id ast.ExprID, sb *strings.Builder) {
	expr := d.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprIdent:
		sb.WriteString(d.NameOf(expr.Name))
	case ast.ExprDot:
		flattenPath(d, expr.First, sb)
		sb.WriteByte('.')
		flattenPath(d, expr.Second, sb)
	case ast.ExprAs:
		flattenPath(d, expr.First, sb)
	}
}
