package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/spotlight-tour/spotlight/pkg/tour"
	"github.com/spotlight-tour/spotlight/pkg/tourio"
)

// exportCommand creates the export command for writing tour files.
func (c *CLI) exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export the tour to a JSON or YAML file",
		Long: `Export the tour to a JSON or YAML file.

The output format follows the file extension (.json, .yaml, .yml). The
exported document can be edited by hand and loaded back with 'import'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runExport(ctx context.Context, path string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	gw, err := c.openGateway(ctx, cfg)
	if err != nil {
		return err
	}
	defer gw.Close()

	seq, err := tour.LoadSequence(ctx, gw)
	if err != nil {
		return err
	}
	if err := tourio.ExportFile(seq, path); err != nil {
		return err
	}

	printSuccess("exported %d steps", seq.Len())
	printFile(path)
	return nil
}
