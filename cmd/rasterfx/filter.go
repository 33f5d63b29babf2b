package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/rasterfx"
)

func newBlurCmd(g *globalFlags) *cobra.Command {
	var (
		level  int
		repeat bool
	)
	cmd := &cobra.Command{
		Use:   "blur <input> <output>",
		Short: "Box blur with zero-filled edges",
		Long: `Box blur with zero-filled edges.

With --repeat, --level is the number of 3x3 passes. Without it, --level is
the side of a single box kernel.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.processFile(cmd.OutOrStdout(), args[0], args[1],
				func(src *rasterfx.Raster, opts []rasterfx.Option) (*rasterfx.Raster, error) {
					return rasterfx.Blur(src, level, repeat, opts...)
				})
		},
	}
	cmd.Flags().IntVar(&level, "level", 3, "blur level (>= 1)")
	cmd.Flags().BoolVar(&repeat, "repeat", true, "repeat a small kernel instead of one large kernel")
	return cmd
}

func newGaussianCmd(g *globalFlags) *cobra.Command {
	var (
		level  int
		repeat bool
	)
	cmd := &cobra.Command{
		Use:   "gaussian <input> <output>",
		Short: "Gaussian-like blur with zero-filled edges",
		Long: `Gaussian-like blur with zero-filled edges.

With --repeat, --level is the number of radius-1 passes. Without it,
--level is the kernel radius.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.processFile(cmd.OutOrStdout(), args[0], args[1],
				func(src *rasterfx.Raster, opts []rasterfx.Option) (*rasterfx.Raster, error) {
					return rasterfx.GaussianBlur(src, level, repeat, opts...)
				})
		},
	}
	cmd.Flags().IntVar(&level, "level", 2, "blur level (>= 1)")
	cmd.Flags().BoolVar(&repeat, "repeat", true, "repeat the radius-1 kernel instead of one large kernel")
	return cmd
}

func newSharpenCmd(g *globalFlags) *cobra.Command {
	var strength float64
	cmd := &cobra.Command{
		Use:   "sharpen <input> <output>",
		Short: "Unsharp-style sharpen; border pixels are kept",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.processFile(cmd.OutOrStdout(), args[0], args[1],
				func(src *rasterfx.Raster, opts []rasterfx.Option) (*rasterfx.Raster, error) {
					return rasterfx.Sharpen(src, strength, opts...)
				})
		},
	}
	cmd.Flags().Float64Var(&strength, "strength", 1, "sharpen strength (> 0)")
	return cmd
}

func newKernelCmd() *cobra.Command {
	var (
		size     int
		radius   int
		strength float64
	)
	cmd := &cobra.Command{
		Use:       "kernel {box|gaussian|unsharp}",
		Short:     "Print a convolution kernel",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"box", "gaussian", "unsharp"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				k   *rasterfx.Kernel
				err error
			)
			switch strings.ToLower(args[0]) {
			case "box":
				k, err = rasterfx.BoxKernel(size)
			case "gaussian":
				k, err = rasterfx.GaussianLikeKernel(radius)
			default:
				k, err = rasterfx.UnsharpKernel(strength)
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printer.Fprintf(w, "# %s %dx%d sum=%.6f\n", args[0], k.Width(), k.Height(), k.Sum())
			_, err = fmt.Fprint(w, k.String())
			return err
		},
	}
	cmd.Flags().IntVar(&size, "size", 3, "box kernel side")
	cmd.Flags().IntVar(&radius, "radius", 1, "gaussian kernel radius")
	cmd.Flags().Float64Var(&strength, "strength", 1, "unsharp strength")
	return cmd
}
