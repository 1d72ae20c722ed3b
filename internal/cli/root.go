// Package cli implements the img2ascii command line: flag parsing, the
// conversion run and the mapping of failures to exit codes.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/img2ascii/internal/asciiart"
	"github.com/ironsheep/img2ascii/internal/console"
	"github.com/ironsheep/img2ascii/internal/ctxlog"
	"github.com/ironsheep/img2ascii/internal/imaging"
	"github.com/ironsheep/img2ascii/internal/output"
)

// BuildInfo carries the version metadata stamped in by -ldflags.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// app holds the streams and state shared by the commands of one invocation.
type app struct {
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	flags    flagValues
	level    *slog.LevelVar
	logger   *slog.Logger
	reporter *console.Reporter
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	level := new(slog.LevelVar)
	return &app{
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		level:    level,
		logger:   slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
		reporter: console.NewReporter(stdout, stderr, false),
	}
}

// Execute runs the command line in args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, info BuildInfo) int {
	a := newApp(stdin, stdout, stderr)

	root := newRootCommand(a, info)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(ctxlog.WithLogger(ctx, a.logger))
	if cmd == nil {
		cmd = root
	}
	return a.exitCode(cmd, err)
}

func newRootCommand(a *app, info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "img2ascii <image>",
		Short: "Create an ASCII art representation of an image.",
		Long: "Create an ASCII art representation of an image.\n\n" +
			"The image is reduced to grayscale and every pixel is replaced by a glyph\n" +
			"from the chosen palette. The result is written to a text file next to the\n" +
			"image unless --output is given.",
		Version:       info.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageErrorf("accepts exactly 1 image path, received %d", len(args))
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.flags.verbose {
				a.level.Set(slog.LevelDebug)
			}
			a.reporter = console.NewReporter(a.stdout, a.stderr, a.flags.quiet)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(args, a.flags)
			if err != nil {
				return err
			}
			return a.convert(cmd.Context(), cfg)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetVersionTemplate(fmt.Sprintf("img2ascii {{.Version}}\n  Build time: %s\n  Git commit: %s\n", info.BuildTime, info.GitCommit))
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	f := cmd.Flags()
	f.StringVarP(&a.flags.output, "output", "o", "", "output file (default: the image path with a .txt extension)")
	f.IntVarP(&a.flags.width, "width", "w", asciiart.UnsetWidth, "output width in characters (-1 keeps the image width)")
	f.BoolVarP(&a.flags.blocky, "blocky", "b", false, "use blocky characters (5 shades)")
	f.BoolVarP(&a.flags.short, "short", "s", false, "use short character set (10 shades, default)")
	f.BoolVarP(&a.flags.long, "long", "l", false, "use long character set (65 shades)")
	cmd.MarkFlagsMutuallyExclusive("blocky", "short", "long")
	f.BoolVarP(&a.flags.invert, "invert", "i", false, "optimize for black text on white background")
	f.StringVarP(&a.flags.conversion, "conversion", "c", asciiart.DefaultConversion.String(),
		"grayscale formula: "+joinNames(asciiart.Conversions))
	f.StringVar(&a.flags.filter, "filter", string(imaging.DefaultFilter),
		"resampling filter: "+joinNames(imaging.Filters))
	f.StringVar(&a.flags.resizer, "resizer", string(imaging.ResizerImaging),
		"resizing library: imaging, bild")

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging on stderr")
	pf.BoolVarP(&a.flags.quiet, "quiet", "q", false, "suppress progress messages")

	cmd.AddCommand(newServeCommand(a))
	return cmd
}

// convert runs one conversion and writes the result. Image load and output
// write failures are returned unwrapped so exitCode can report them.
func (a *app) convert(ctx context.Context, cfg Config) error {
	log := ctxlog.FromContext(ctx)
	log.Debug("resolved configuration", "config", cfg.String())

	resizer, err := imaging.NewResizer(cfg.Resizer, cfg.Filter)
	if err != nil {
		return &UsageError{Err: err}
	}

	conv := asciiart.New(
		asciiart.WithWidth(cfg.Width),
		asciiart.WithCharset(cfg.Charset),
		asciiart.WithInvert(cfg.Invert),
		asciiart.WithConversion(cfg.Conversion),
		asciiart.WithResizer(resizer),
		asciiart.WithReporter(a.reporter),
	)

	res, err := conv.ConvertFile(ctx, cfg.SourcePath)
	if err != nil {
		var loadErr *asciiart.ImageLoadError
		if errors.As(err, &loadErr) {
			return loadErr
		}
		return &RunError{Err: err}
	}

	a.reporter.Infof("Saving file %s...", cfg.OutputPath)
	if err := output.Write(cfg.OutputPath, res.Text); err != nil {
		return err
	}
	log.Debug("wrote output", "path", cfg.OutputPath, "bytes", len(res.Text))

	a.reporter.Generalf("Have a good day!")
	return nil
}

// exitCode reports err to the user and maps it to a process exit code.
func (a *app) exitCode(cmd *cobra.Command, err error) int {
	if err == nil {
		return ExitOK
	}

	var (
		loadErr  *asciiart.ImageLoadError
		writeErr *output.WriteError
		runErr   *RunError
	)
	switch {
	case errors.As(err, &loadErr):
		a.reporter.Errorf("Error opening image file %s", loadErr.Path)
		a.logger.Debug("image load failed", "path", loadErr.Path, "err", loadErr.Err)
		return ExitIOError
	case errors.As(err, &writeErr):
		a.reporter.Errorf("Error opening output file %s", writeErr.Path)
		a.logger.Debug("output write failed", "path", writeErr.Path, "err", writeErr.Err)
		return ExitIOError
	case errors.As(err, &runErr):
		a.reporter.Errorf("%v", runErr.Err)
		return ExitFailure
	default:
		// Everything else comes from argument handling, ours or cobra's.
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		fmt.Fprint(a.stderr, cmd.UsageString())
		return ExitUsage
	}
}

func joinNames[T any](values []T) string {
	names := make([]string, 0, len(values))
	for _, v := range values {
		names = append(names, fmt.Sprint(v))
	}
	return strings.Join(names, ", ")
}
