package cli

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/flexrect"
	"github.com/gogpu/flexrect/preview"
)

// PNGOptions holds flags for the png command.
type PNGOptions struct {
	Output     string
	Width      float64
	Height     float64
	Scale      float64
	Background string
	MaxSize    int
}

// PNGResult is the output of the png command.
type PNGResult struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Rects  int    `json:"rects"`
}

func (r PNGResult) String() string {
	return fmt.Sprintf("wrote %s (%dx%d, %d rects)\n", r.Path, r.Width, r.Height, r.Rects)
}

// NewPNGCommand creates the png command.
func NewPNGCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PNGOptions{}

	cmd := &cobra.Command{
		Use:   "png <tree.yaml>",
		Short: "Paint a layout document into a PNG",
		Long: `Resolve a layout document and paint every node with its color,
back to front, into a PNG image.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPNG(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "layout.png", "output file")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "viewport width (default: document width)")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "viewport height (default: document height)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 1, "pixels per layout unit")
	cmd.Flags().StringVar(&opts.Background, "background", "", "background color, e.g. #ffffff (default: transparent)")
	cmd.Flags().IntVar(&opts.MaxSize, "max-size", 0, "shrink the image to fit this many pixels per side (0: no limit)")

	return cmd
}

func runPNG(rootOpts *RootOptions, opts *PNGOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	var previewOpts []preview.Option
	if opts.Background != "" {
		bg, err := flexrect.ParseHex(opts.Background)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeGeneric, "invalid --background", err)
		}
		previewOpts = append(previewOpts, preview.WithBackground(bg))
	}
	if opts.Scale <= 0 {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, "invalid --scale",
			fmt.Errorf("must be positive, got %v", opts.Scale))
	}
	previewOpts = append(previewOpts, preview.WithScale(opts.Scale))

	layout, err := loadLayout(path, formatter)
	if err != nil {
		return err
	}
	list, err := resolveLayout(layout, opts.Width, opts.Height, formatter)
	if err != nil {
		return err
	}

	// The image covers the root, which is the last rectangle of the list.
	root := list[len(list)-1]
	w := int(math.Ceil(root.Width() * opts.Scale))
	h := int(math.Ceil(root.Height() * opts.Scale))
	formatter.VerboseLog("Painting %d rect(s) into %dx%d", len(list), w, h)

	var img image.Image
	img, err = preview.Rasterize(list, w, h, nil, previewOpts...)
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeLayout, "cannot paint layout", err)
	}
	if opts.MaxSize > 0 {
		if img, err = preview.Thumbnail(img, opts.MaxSize, opts.MaxSize); err != nil {
			return formatter.Fail(ExitFailure, ErrCodeLayout, "cannot shrink image", err)
		}
	}

	if err := writePNG(opts.Output, img); err != nil {
		return formatter.Fail(ExitFailure, ErrCodeOutput, "cannot write "+opts.Output, err)
	}

	b := img.Bounds()
	return formatter.Success(PNGResult{Path: opts.Output, Width: b.Dx(), Height: b.Dy(), Rects: len(list)})
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

// Box is painted through the default color extractor of preview.Rasterize.
var _ color.Color = Box{}
