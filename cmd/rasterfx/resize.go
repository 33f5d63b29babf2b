package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/gogpu/rasterfx"
)

func newResizeCmd(g *globalFlags) *cobra.Command {
	var (
		spec           rasterfx.ResizeSpec
		sharpenEnlarge bool
	)
	cmd := &cobra.Command{
		Use:   "resize <input> <output>",
		Short: "Resize keeping the aspect ratio, then sharpen",
		Long: `Resize to --width and/or --height. A missing side follows the aspect
ratio. The result is sharpened with --sharpen; a negative value derives the
strength from the scale change and 0 disables sharpening.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec.SharpenOnlyOnShrink = !sharpenEnlarge
			return g.processFile(cmd.OutOrStdout(), args[0], args[1],
				func(src *rasterfx.Raster, opts []rasterfx.Option) (*rasterfx.Raster, error) {
					return rasterfx.Resize(src, spec, opts...)
				})
		},
	}
	f := cmd.Flags()
	f.IntVar(&spec.Width, "width", 0, "target width (0 = from height)")
	f.IntVar(&spec.Height, "height", 0, "target height (0 = from width)")
	f.Float64Var(&spec.Sharpen, "sharpen", rasterfx.AutoSharpen, "sharpen strength (negative = auto, 0 = none)")
	f.BoolVar(&sharpenEnlarge, "sharpen-enlarge", false, "also sharpen when enlarging")
	return cmd
}

func newShrinkCmd(g *globalFlags) *cobra.Command {
	var (
		maxSide, maxWidth, maxHeight int
		sharpen                      float64
	)
	cmd := &cobra.Command{
		Use:   "shrink <input> <output>",
		Short: "Shrink only if the image exceeds the given bounds",
		Long: `Shrink to fit --max-side, or the --max-width x --max-height box.
Images that already fit are written unchanged.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := shrinkTransform(maxSide, maxWidth, maxHeight, sharpen)
			if err != nil {
				return err
			}
			return g.processFile(cmd.OutOrStdout(), args[0], args[1], fn)
		},
	}
	addShrinkFlags(cmd, &maxSide, &maxWidth, &maxHeight, &sharpen)
	return cmd
}

func addShrinkFlags(cmd *cobra.Command, maxSide, maxWidth, maxHeight *int, sharpen *float64) {
	f := cmd.Flags()
	f.IntVar(maxSide, "max-side", 0, "bound for the longer side")
	f.IntVar(maxWidth, "max-width", 0, "bound for the width")
	f.IntVar(maxHeight, "max-height", 0, "bound for the height")
	f.Float64Var(sharpen, "sharpen", rasterfx.AutoSharpen, "sharpen strength (negative = auto, 0 = none)")
	cmd.MarkFlagsMutuallyExclusive("max-side", "max-width")
	cmd.MarkFlagsMutuallyExclusive("max-side", "max-height")
}

var errNoBound = errors.New("one of --max-side, --max-width or --max-height is required")

func shrinkTransform(maxSide, maxWidth, maxHeight int, sharpen float64) (transform, error) {
	switch {
	case maxSide > 0:
		return func(src *rasterfx.Raster, opts []rasterfx.Option) (*rasterfx.Raster, error) {
			return rasterfx.ShrinkToFit(src, maxSide, sharpen, opts...)
		}, nil
	case maxWidth > 0 || maxHeight > 0:
		return func(src *rasterfx.Raster, opts []rasterfx.Option) (*rasterfx.Raster, error) {
			return rasterfx.ShrinkToBox(src, maxWidth, maxHeight, sharpen, opts...)
		}, nil
	default:
		return nil, errNoBound
	}
}

func newCropCmd(g *globalFlags) *cobra.Command {
	var x, y, width, height int
	cmd := &cobra.Command{
		Use:   "crop <input> <output>",
		Short: "Crop a rectangle, clipped to the image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.processFile(cmd.OutOrStdout(), args[0], args[1],
				func(src *rasterfx.Raster, _ []rasterfx.Option) (*rasterfx.Raster, error) {
					return rasterfx.Crop(src, x, y, width, height)
				})
		},
	}
	f := cmd.Flags()
	f.IntVar(&x, "x", 0, "left edge (may be negative)")
	f.IntVar(&y, "y", 0, "top edge (may be negative)")
	f.IntVar(&width, "width", 0, "crop width")
	f.IntVar(&height, "height", 0, "crop height")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}
