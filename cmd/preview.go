package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fsinspect/fsinspect/internal/explorer"
)

var previewMIMEOnly bool

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview <path>",
	Short: "Print a size-capped text preview of a file",
	Long: `Print a text preview of a file inside the root boundary. The file's
MIME type is probed first; binary files produce a placeholder instead of raw
content. Previews are capped at the configured byte limit.

Examples:
  fsinspect preview notes.txt
  fsinspect preview logs/app.log
  fsinspect preview image.png --mime   # Only print the detected type`,
	Args: cobra.ExactArgs(1),
	RunE: previewFile,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().BoolVar(&previewMIMEOnly, "mime", false, "print only the detected MIME type")
}

func previewFile(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	_, _, previewer, _, err := buildComponents(cfg)
	if err != nil {
		return err
	}

	result := previewer.Preview(context.Background(), args[0])

	if previewMIMEOnly {
		if result.MIME == "" {
			fmt.Println("unknown")
		} else {
			fmt.Println(result.MIME)
		}
		return nil
	}

	if result.Warning != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", result.Warning)
	}

	switch result.Kind {
	case explorer.PreviewText:
		fmt.Print(result.Content)
		if result.Truncated {
			fmt.Fprintf(cmd.ErrOrStderr(), "\n[preview truncated at %d bytes]\n", cfg.Explorer.PreviewMaxBytes)
		}
	default:
		fmt.Println(result.Content)
	}
	return nil
}
