package cli

import (
	"context"
	"encoding/binary"
	"io"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/matzehuels/breadboard/pkg/breadboard"
	"github.com/matzehuels/breadboard/pkg/config"
	"github.com/matzehuels/breadboard/pkg/errors"
	"github.com/matzehuels/breadboard/pkg/expr"
	"github.com/matzehuels/breadboard/pkg/prefab"
	"github.com/matzehuels/breadboard/pkg/sink"
)

// defaultMuzzleVelocity is the projectile speed the demo board leads for, in m/s.
const defaultMuzzleVelocity = 900

// demoBoard builds a lead-pursuit aiming board. It predicts where the
// current target will be when a projectile fired now arrives, and emits the
// yaw and pitch towards that point while a target is present.
func demoBoard(muzzleVelocity float32, opts ...breadboard.Option) *breadboard.Board {
	b := breadboard.New(opts...)
	target := b.TargetInfo()

	flight := b.Div(target.Distance, b.Constant(muzzleVelocity))
	lead := b.AddV(target.Position, b.Scale(flight, target.Velocity))
	aim := b.SubV(lead, b.Position())

	ev := b.NewEvaluator()
	a := ev.Input(aim)
	yaw := breadboard.Emit[breadboard.Number](ev,
		expr.New(expr.OpAtan2, expr.New(expr.OpGetX, a), expr.New(expr.OpGetZ, a)))
	pitch := breadboard.Emit[breadboard.Number](ev,
		expr.New(expr.OpAtan2, expr.New(expr.OpGetY, a), expr.New(expr.OpMagnitude, a)))
	ev.Commit()

	b.Switch(yaw.Wire(), target.Present)
	b.Switch(pitch.Wire(), target.Present)
	return b
}

// seededReader returns a deterministic source of wire identifiers.
func seededReader(seed uint64) io.Reader {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return rand.NewChaCha8(key)
}

func (c *CLI) demoCommand() *cobra.Command {
	var (
		sinkKind string
		dir      string
		seed     uint64
		velocity float32
	)

	cmd := &cobra.Command{
		Use:   "demo [name]",
		Short: "Export a sample lead-pursuit breadboard",
		Long: `Build a sample lead-pursuit breadboard and export it as a prefab document.

The name defaults to prefab.name from the config file. The output location
follows the [output] table unless --sink or --dir is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if sinkKind != "" {
				cfg.Output.Sink = sinkKind
			}
			if dir != "" {
				cfg.Output.Dir = dir
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			name := cfg.Prefab.Name
			if len(args) == 1 {
				name = args[0]
			}
			return runDemo(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, demoOptions{
				name:     name,
				seed:     seed,
				velocity: velocity,
			})
		},
	}

	cmd.Flags().StringVar(&sinkKind, "sink", "", "output sink: file, redis, mongo, null")
	cmd.Flags().StringVarP(&dir, "dir", "o", "", "output directory for the file sink")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for wire identifiers (0 = random)")
	cmd.Flags().Float32Var(&velocity, "muzzle-velocity", defaultMuzzleVelocity, "projectile speed to lead for")

	return cmd
}

type demoOptions struct {
	name     string
	seed     uint64
	velocity float32
}

func runDemo(ctx context.Context, stdout, stderr io.Writer, cfg *config.Config, opts demoOptions) error {
	logger := loggerFromContext(ctx)
	prog := newExportProgress(logger)

	boardOpts := []breadboard.Option{
		breadboard.WithLogger(logger),
		breadboard.WithLayout(cfg.BoardLayout()),
	}
	if opts.seed != 0 {
		boardOpts = append(boardOpts, breadboard.WithRand(seededReader(opts.seed)))
	}
	b := demoBoard(opts.velocity, boardOpts...)

	s, err := openSink(ctx, stderr, cfg.SinkOptions())
	if err != nil {
		prog.failed(opts.name, err)
		printError(stdout, "cannot open %s sink: %s", cfg.Output.Sink, errors.UserMessage(err))
		return err
	}
	defer s.Close()

	exp := prefab.NewExporter(prefab.DefaultTemplate(cfg.Meta()), s, logger)
	res, err := exp.Export(ctx, opts.name, b)
	if err != nil {
		prog.failed(opts.name, err)
		printError(stdout, "export failed: %s", errors.UserMessage(err))
		return err
	}
	prog.done(*res)

	printSuccess(stdout, "Exported %s", StyleValue.Render(res.Name))
	if res.Location != "" {
		printLocation(stdout, res.Location)
	}
	printStats(stdout, res.Nodes, res.PayloadSize, res.DocumentSize)
	return nil
}

// openSink opens the configured sink, showing a spinner while a remote
// backend connects.
func openSink(ctx context.Context, w io.Writer, opts sink.Options) (sink.Sink, error) {
	if opts.Kind == sink.KindRedis || opts.Kind == sink.KindMongo {
		sp := newSpinner(ctx, w, "connecting to "+string(opts.Kind))
		sp.Start()
		defer sp.Stop()
	}
	return sink.Open(ctx, opts)
}
