package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spotlight-tour/spotlight/pkg/geom"
	"github.com/spotlight-tour/spotlight/pkg/render"
	"github.com/spotlight-tour/spotlight/pkg/tour"
)

// showCommand creates the show command for inspecting computed geometry.
func (c *CLI) showCommand() *cobra.Command {
	var (
		output string
		asSVG  bool
	)
	cmd := &cobra.Command{
		Use:   "show <index>",
		Short: "Print the computed overlay geometry for a step",
		Long: `Print the computed overlay geometry for a step.

The step's target is resolved against the configured objects file and the
full layout (four dimming masks plus tooltip position) is printed as JSON.
With --svg the overlay is rendered as an SVG snapshot instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return c.runShow(cmd.Context(), i, asSVG, output)
		},
	}
	cmd.Flags().BoolVar(&asSVG, "svg", false, "render an SVG snapshot instead of JSON")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func (c *CLI) runShow(ctx context.Context, index int, asSVG bool, output string) error {
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
	if index < 0 || index >= seq.Len() {
		return fmt.Errorf("step index %d out of range [0,%d)", index, seq.Len())
	}
	step := seq.Steps[index]

	rect, ok, err := gw.ObjectPosition(ctx, step.TargetID)
	if err != nil {
		return err
	}
	if !ok {
		printWarning("target %q not found in objects file; nothing to show", step.TargetID)
		return nil
	}

	container := cfg.containerRect()
	layout := geom.ComputeLayout(rect, container, step.Anchor)

	var data []byte
	if asSVG {
		data = render.OverlaySVG(layout, container, step, seq.Presentation)
	} else {
		data, err = json.MarshalIndent(layout, "", "  ")
		if err != nil {
			return err
		}
		data = append(data, '\n')
	}

	if output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return err
	}
	printFile(output)
	return nil
}
