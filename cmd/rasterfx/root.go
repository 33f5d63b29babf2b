package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/rasterfx"
)

// globalFlags holds the persistent flags shared by all commands.
type globalFlags struct {
	logLevel  string
	resampler string
	quality   int
	keepAlpha bool
	threads   int

	workers *rasterfx.WorkerPool
}

// execute runs the command line args and releases shared resources.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	g := &globalFlags{}
	defer g.closeWorkers()

	root := newRootCmd(g)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func newRootCmd(g *globalFlags) *cobra.Command {
	root := &cobra.Command{
		Use:          "rasterfx",
		Short:        "Blur, sharpen, resize and crop images",
		Version:      rasterfx.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := parseLevel(g.logLevel)
			if err != nil {
				return err
			}
			rasterfx.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			})))
			if g.threads != 1 {
				g.workers = rasterfx.NewWorkerPool(g.threads)
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	pf.StringVar(&g.resampler, "resampler", "catmullrom",
		"resampling filter: "+strings.Join(rasterfx.Resamplers(), ", "))
	pf.IntVar(&g.quality, "quality", 90, "JPEG quality (1-100)")
	pf.BoolVar(&g.keepAlpha, "keep-alpha", false, "leave the alpha channel out of filtering")
	pf.IntVar(&g.threads, "threads", 1, "goroutines per convolution (0 = GOMAXPROCS)")

	root.AddCommand(
		newBlurCmd(g),
		newGaussianCmd(g),
		newSharpenCmd(g),
		newResizeCmd(g),
		newShrinkCmd(g),
		newCropCmd(g),
		newBatchCmd(g),
		newKernelCmd(),
	)
	return root
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid --log-level %q: %w", s, err)
	}
	return level, nil
}

// options builds the library options selected by the global flags.
func (g *globalFlags) options() ([]rasterfx.Option, error) {
	r, err := rasterfx.ResamplerByName(g.resampler)
	if err != nil {
		return nil, err
	}
	opts := []rasterfx.Option{rasterfx.WithResampler(r)}
	if g.keepAlpha {
		opts = append(opts, rasterfx.WithAlphaPassThrough())
	}
	if g.workers != nil {
		opts = append(opts, rasterfx.WithWorkers(g.workers))
	}
	return opts, nil
}

func (g *globalFlags) closeWorkers() {
	if g.workers != nil {
		g.workers.Close()
		g.workers = nil
	}
}

// transform turns one raster into another.
type transform func(src *rasterfx.Raster, opts []rasterfx.Option) (*rasterfx.Raster, error)

// processFile loads in, applies fn and saves the result to out.
// It prints a one-line summary to w.
func (g *globalFlags) processFile(w io.Writer, in, out string, fn transform) error {
	opts, err := g.options()
	if err != nil {
		return err
	}

	src, err := rasterfx.Load(in)
	if err != nil {
		return err
	}
	dst, err := fn(src, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	if err := rasterfx.Save(dst, out, g.quality); err != nil {
		return err
	}

	printSummary(w, in, out, src, dst)
	return nil
}

// printer formats summaries with thousands separators.
var printer = message.NewPrinter(language.English)

func printSummary(w io.Writer, in, out string, src, dst *rasterfx.Raster) {
	printer.Fprintf(w, "%s -> %s: %dx%d (%d px) -> %dx%d (%d px) %v\n",
		in, out,
		src.Width(), src.Height(), src.Pixels(),
		dst.Width(), dst.Height(), dst.Pixels(),
		dst.Format())
}
