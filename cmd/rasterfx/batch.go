package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newBatchCmd(g *globalFlags) *cobra.Command {
	var (
		maxSide, maxWidth, maxHeight int
		sharpen                      float64
		outDir                       string
		jobs                         int
	)
	cmd := &cobra.Command{
		Use:   "batch <input>...",
		Short: "Shrink many files concurrently into a directory",
		Long: `Shrink every input to the given bounds and write it to --out-dir under
the same file name. Files are processed by --jobs workers; the first failure
stops the remaining work.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := shrinkTransform(maxSide, maxWidth, maxHeight, sharpen)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o750); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			done, err := g.runBatch(cmd.Context(), cmd, args, outDir, jobs, fn)
			printer.Fprintf(cmd.OutOrStdout(), "%d of %d files processed\n", done, len(args))
			return err
		},
	}
	addShrinkFlags(cmd, &maxSide, &maxWidth, &maxHeight, &sharpen)
	cmd.Flags().StringVar(&outDir, "out-dir", "out", "output directory")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "concurrent workers")
	return cmd
}

// runBatch processes inputs with at most jobs workers and returns the number
// of files written. Cancelling ctx stops scheduling new files.
func (g *globalFlags) runBatch(ctx context.Context, cmd *cobra.Command, inputs []string, outDir string, jobs int, fn transform) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if jobs < 1 {
		jobs = 1
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)

	var done atomic.Int64
	out := &syncWriter{w: cmd.OutOrStdout()}

	for _, in := range inputs {
		if ctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dst := filepath.Join(outDir, filepath.Base(in))
			if err := g.processFile(out, in, dst, fn); err != nil {
				return err
			}
			done.Add(1)
			return nil
		})
	}

	err := eg.Wait()
	return int(done.Load()), err
}
