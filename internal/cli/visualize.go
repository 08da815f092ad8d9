package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spotlight-tour/spotlight/pkg/render"
	"github.com/spotlight-tour/spotlight/pkg/tour"
)

// visualizeCommand creates the visualize command for flow diagrams.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		output string
		asDOT  bool
	)
	cmd := &cobra.Command{
		Use:   "visualize",
		Short: "Render the tour as a flow diagram",
		Long: `Render the tour as a flow diagram.

Each step becomes a node in a left-to-right chain; a dashed back edge
shows the circular wrap from the last step to the first. Output is SVG
by default, or raw Graphviz DOT with --dot.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVisualize(cmd.Context(), output, asDOT)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&asDOT, "dot", false, "emit Graphviz DOT instead of SVG")
	return cmd
}

func (c *CLI) runVisualize(ctx context.Context, output string, asDOT bool) error {
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
	if seq.Len() == 0 {
		printInfo("tour %q is empty; nothing to visualize", cfg.Tour)
		return nil
	}

	var data []byte
	if asDOT {
		data = []byte(render.ToDOT(seq))
	} else {
		spinner := newSpinnerWithContext(ctx, "Rendering flow diagram...")
		spinner.Start()
		data, err = render.FlowSVG(ctx, seq)
		if err != nil {
			spinner.StopWithError("Rendering failed")
			return fmt.Errorf("visualize: %w", err)
		}
		spinner.Stop()
	}

	if output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return err
	}
	printSuccess("rendered %d steps", seq.Len())
	printFile(output)
	return nil
}
