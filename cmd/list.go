package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fsinspect/fsinspect/internal/explorer"
)

var (
	listGlob        string
	listLong        bool
	listInteractive bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List directory entries inside the root boundary",
	Long: `List the entries of a directory inside the configured root boundary.
Paths are resolved against the root; relative paths and symlinks that escape
the boundary are rejected. Directories sort before files, both groups
case-insensitively by name.

Examples:
  fsinspect list                      # List the root directory
  fsinspect list data/                # List a subdirectory
  fsinspect list --glob "*.txt"       # Only matching entries
  fsinspect list --long               # Include permissions and timestamps
  fsinspect list -i                   # Open the interactive browser here`,
	Args: cobra.MaximumNArgs(1),
	RunE: listEntries,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listGlob, "glob", "g", "", "glob pattern filter (overrides config)")
	listCmd.Flags().BoolVarP(&listLong, "long", "l", false, "show permissions and modification times")
	listCmd.Flags().BoolVarP(&listInteractive, "interactive", "i", false, "launch interactive browser at this path")
}

func listEntries(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	requested := cfg.Explorer.RootPath
	if len(args) > 0 {
		requested = args[0]
	}

	glob := cfg.Explorer.Glob
	if cmd.Flags().Changed("glob") {
		glob = listGlob
	}

	resolver, _, _, _, err := buildComponents(cfg)
	if err != nil {
		return err
	}
	lister := explorer.NewLister(resolver, glob)

	dir, err := resolver.ResolveDir(requested)
	if err != nil {
		return err
	}

	if listInteractive {
		return launchBrowser(dir)
	}

	entries, err := lister.List(dir)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Printf("No entries in %s\n", dir)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if listLong {
		fmt.Fprintln(w, "NAME\tKIND\tSIZE\tPERMISSIONS\tMODIFIED")
		for _, entry := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				entry.Name, entry.Kind, entry.DisplaySize(), entry.Permissions, entry.DisplayModTime())
		}
	} else {
		fmt.Fprintln(w, "NAME\tKIND\tSIZE")
		for _, entry := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Name, entry.Kind, entry.DisplaySize())
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nTotal: %d entries in %s\n", len(entries), dir)
	return nil
}
