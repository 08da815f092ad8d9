package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spotlight-tour/spotlight/pkg/geom"
	"github.com/spotlight-tour/spotlight/pkg/tour"
)

// stepsCommand creates the steps command group for tour editing.
func (c *CLI) stepsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steps",
		Short: "List and edit the tour's steps",
		Long: `List and edit the tour's steps.

Steps are ordered; a step's number in 'steps ls' is its position in the
tour and the index used by the other subcommands. All edits are committed
to the configured settings backend before the command returns.`,
	}

	cmd.AddCommand(c.stepsLsCommand())
	cmd.AddCommand(c.stepsAddCommand())
	cmd.AddCommand(c.stepsRmCommand())
	cmd.AddCommand(c.stepsSetCommand())
	cmd.AddCommand(c.stepsUpCommand())
	cmd.AddCommand(c.stepsDownCommand())

	return cmd
}

func (c *CLI) stepsLsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List the tour's steps in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withTour(cmd.Context(), false, func(ctx context.Context, st *tour.Store) error {
				steps := st.Steps()
				if len(steps) == 0 {
					printInfo("tour is empty")
					return nil
				}
				for i, step := range steps {
					fmt.Printf("%s %s %s\n",
						StyleHighlight.Render(fmt.Sprintf("%2d.", i)),
						StyleValue.Render(step.TargetID),
						StyleDim.Render(fmt.Sprintf("(%s) %s", step.Anchor, step.Text)))
				}
				p := st.Presentation()
				printDetail("font %s · background %s · transparency %d%%",
					p.Font, p.BackgroundColor, p.TransparencyPercent)
				return nil
			})
		},
	}
}

func (c *CLI) stepsAddCommand() *cobra.Command {
	var (
		text     string
		position string
	)
	cmd := &cobra.Command{
		Use:   "add <target-id>",
		Short: "Append a step highlighting a host object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			anchor, err := parseAnchor(position)
			if err != nil {
				return err
			}
			return c.withTour(cmd.Context(), true, func(ctx context.Context, st *tour.Store) error {
				n := st.Add(tour.NewStep(args[0], text, anchor))
				printSuccess("added step %d: %s", n-1, args[0])
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&text, "text", "t", "", "tooltip text")
	cmd.Flags().StringVarP(&position, "position", "p", "", "tooltip anchor: left, right, top, bottom (default right)")
	return cmd
}

func (c *CLI) stepsRmCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <index>",
		Short: "Remove the step at an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return c.withTour(cmd.Context(), true, func(ctx context.Context, st *tour.Store) error {
				if err := st.RemoveAt(i); err != nil {
					return err
				}
				printSuccess("removed step %d (%d remaining)", i, st.Len())
				return nil
			})
		},
	}
}

func (c *CLI) stepsSetCommand() *cobra.Command {
	var (
		target   string
		text     string
		position string
	)
	cmd := &cobra.Command{
		Use:   "set <index>",
		Short: "Update fields of the step at an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			var patch tour.Patch
			if cmd.Flags().Changed("target") {
				patch.TargetID = &target
			}
			if cmd.Flags().Changed("text") {
				patch.Text = &text
			}
			if cmd.Flags().Changed("position") {
				anchor, err := parseAnchor(position)
				if err != nil {
					return err
				}
				patch.Anchor = &anchor
			}

			return c.withTour(cmd.Context(), true, func(ctx context.Context, st *tour.Store) error {
				if err := st.Update(i, patch); err != nil {
					return err
				}
				printSuccess("updated step %d", i)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&target, "target", "", "host object ID")
	cmd.Flags().StringVarP(&text, "text", "t", "", "tooltip text")
	cmd.Flags().StringVarP(&position, "position", "p", "", "tooltip anchor: left, right, top, bottom")
	return cmd
}

func (c *CLI) stepsUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up <index>",
		Short: "Move the step at an index one position earlier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.moveStep(cmd.Context(), args[0], "up")
		},
	}
}

func (c *CLI) stepsDownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "down <index>",
		Short: "Move the step at an index one position later",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.moveStep(cmd.Context(), args[0], "down")
		},
	}
}

func (c *CLI) moveStep(ctx context.Context, arg, direction string) error {
	i, err := parseIndex(arg)
	if err != nil {
		return err
	}
	return c.withTour(ctx, true, func(ctx context.Context, st *tour.Store) error {
		if direction == "up" {
			err = st.MoveUp(i)
		} else {
			err = st.MoveDown(i)
		}
		if err != nil {
			return err
		}
		printSuccess("moved step %d %s", i, direction)
		return nil
	})
}

// withTour loads the tour from the configured backend, runs fn against an
// editing store, and saves the result back when save is set.
func (c *CLI) withTour(ctx context.Context, save bool, fn func(context.Context, *tour.Store) error) error {
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
	st := tour.NewStore(seq)

	if err := fn(ctx, st); err != nil {
		return err
	}
	if !save {
		return nil
	}

	p := newProgress(loggerFromContext(ctx))
	if err := tour.SaveSequence(ctx, gw, st.Sequence()); err != nil {
		return err
	}
	p.done(fmt.Sprintf("Saved %d steps to %s", st.Len(), cfg.Backend))
	return nil
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("step index %q is not a number", s)
	}
	return i, nil
}

func parseAnchor(s string) (geom.Anchor, error) {
	if s == "" {
		return tour.DefaultAnchor, nil
	}
	anchor := geom.Anchor(s)
	if !anchor.Valid() {
		return "", fmt.Errorf("unknown position %q (want left, right, top, or bottom)", s)
	}
	return anchor, nil
}
