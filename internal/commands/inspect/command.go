package inspect

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/raheelahmad/slox/internal/commandinit"
	"github.com/raheelahmad/slox/internal/defaults"
	"github.com/raheelahmad/slox/internal/evaluate"
	"github.com/raheelahmad/slox/internal/log/semconv"
	"github.com/raheelahmad/slox/internal/render"
	"github.com/raheelahmad/slox/internal/value"
	"github.com/rs/zerolog"
	cli "github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel/trace"
)

// NewCommand returns the `inspect` command. It walks the built-in sample
// trees, renders each one in the requested mode and interprets it, so the
// evaluation core can be exercised without a parser in front of it.
func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "Renders and evaluates the built-in sample expression trees.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "mode",
				Usage: "Render mode: prefix or postfix.",
				Value: string(render.ModePrefix),
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "Export OTLP traces for each evaluated expression.",
			},
		},
		Action: run,
	}
}

func run(cliCtx *cli.Context) error {
	ctx := cliCtx.Context

	logger := zerolog.New(zerolog.NewConsoleWriter()).
		With().Timestamp().Logger().
		With().Str("command", "inspect").Str(semconv.RunID, uuid.NewString()).Logger()

	mode := render.Mode(cliCtx.String("mode"))
	if mode != render.ModePrefix && mode != render.ModePostfix {
		return fmt.Errorf("unknown render mode: %s", mode)
	}

	tracerProvider := trace.TracerProvider(defaults.TraceProvider)
	if cliCtx.Bool("trace") {
		tp, tpShutdown, err := commandinit.NewOpenTelemetry(ctx, "slox")
		if err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
		defer func() {
			if err := tpShutdown(ctx); err != nil {
				logger.Error().Err(err).Msg("shutdown tracer provider")
			}
		}()

		tracerProvider = tp
	}

	tracer := tracerProvider.Tracer("commands/inspect")

	for _, sample := range samples() {
		if err := inspectSample(ctx, logger, tracer, sample, mode); err != nil {
			return err
		}
	}

	return nil
}

func inspectSample(ctx context.Context, logger zerolog.Logger, tracer trace.Tracer, sample sample, mode render.Mode) error {
	_, span := tracer.Start(ctx, "inspect sample")
	defer span.End()

	sampleLogger := logger.With().Str(semconv.Sample, sample.name).Logger()
	sampleLogger.Info().Str("rendered", render.Render(sample.expr, mode)).Msg("rendered")

	output, err := evaluate.Interpret(sample.expr)
	if err != nil {
		var runtimeErr *value.RuntimeError
		if !errors.As(err, &runtimeErr) {
			return err
		}

		sampleLogger.Warn().
			Int(semconv.Line, runtimeErr.Token.Line).
			Str("message", runtimeErr.Message).
			Msg("runtime error")

		return nil
	}

	sampleLogger.Info().Str("value", output).Msg("evaluated")

	return nil
}
