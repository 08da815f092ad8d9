package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spotlight-tour/spotlight/pkg/tour"
	"github.com/spotlight-tour/spotlight/pkg/tourio"
)

// importCommand creates the import command for loading tour files.
func (c *CLI) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a JSON or YAML tour file into the settings store",
		Long: `Import a JSON or YAML tour file into the settings store.

The document is validated before anything is written; the existing tour
is replaced only when the whole file parses cleanly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runImport(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runImport(ctx context.Context, path string) error {
	seq, err := tourio.ImportFile(path)
	if err != nil {
		return err
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	gw, err := c.openGateway(ctx, cfg)
	if err != nil {
		return err
	}
	defer gw.Close()

	p := newProgress(loggerFromContext(ctx))
	if err := tour.SaveSequence(ctx, gw, seq); err != nil {
		return err
	}
	p.done(fmt.Sprintf("Imported %d steps into %s", seq.Len(), cfg.Backend))

	printSuccess("imported %s into tour %q", path, cfg.Tour)
	return nil
}
