package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/breadboard/pkg/breadboard"
	"github.com/matzehuels/breadboard/pkg/errors"
	"github.com/matzehuels/breadboard/pkg/render/nodelink"
)

func (c *CLI) dotCommand() *cobra.Command {
	var (
		svg      bool
		detailed bool
		output   string
		velocity float32
	)

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Draw the wiring of the sample breadboard",
		Long: `Draw the sample lead-pursuit breadboard as a Graphviz diagram.

By default the DOT source is written to stdout. With --svg the diagram is
rendered in-process.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			b := demoBoard(velocity, breadboard.WithLogger(loggerFromContext(ctx)))
			opts := nodelink.Options{Detailed: detailed}

			var data []byte
			if svg {
				var err error
				if data, err = nodelink.Render(ctx, b, opts); err != nil {
					return err
				}
			} else {
				data = []byte(nodelink.ToDOT(b, opts))
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeStorage, err, "write %s", output)
			}
			printSuccess(cmd.OutOrStdout(), "Wrote wiring diagram")
			printLocation(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().BoolVar(&svg, "svg", false, "render SVG instead of DOT")
	cmd.Flags().BoolVarP(&detailed, "detailed", "d", false, "include node parameters in labels")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().Float32Var(&velocity, "muzzle-velocity", defaultMuzzleVelocity, "projectile speed to lead for")

	return cmd
}
