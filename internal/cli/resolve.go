package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/flexrect"
)

// ResolveOptions holds flags for the resolve command.
type ResolveOptions struct {
	Width  float64
	Height float64
}

// RectResult is one resolved rectangle in JSON output.
type RectResult struct {
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Z      float64 `json:"z"`
	Color  string  `json:"color"`
}

// ResolveResult is the output of the resolve command.
type ResolveResult struct {
	Rects []RectResult `json:"rects"`
}

// String renders the result as a fixed-width table, one rectangle per line
// in display-list order.
func (r ResolveResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s %8s %8s %8s %8s %8s\n", "NAME", "X", "Y", "WIDTH", "HEIGHT", "Z")
	for _, rect := range r.Rects {
		fmt.Fprintf(&b, "%-12s %8.2f %8.2f %8.2f %8.2f %8.4f\n",
			rect.Name, rect.X, rect.Y, rect.Width, rect.Height, rect.Z)
	}
	return b.String()
}

// NewResolveCommand creates the resolve command.
func NewResolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ResolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <tree.yaml>",
		Short: "Print the display list of a layout document",
		Long: `Resolve a layout document and print one rectangle per node.

Rectangles are listed children first. Without --width and --height the
root's own width and height from the document are used.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.Width, "width", 0, "viewport width (default: document width)")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "viewport height (default: document height)")

	return cmd
}

func runResolve(rootOpts *RootOptions, opts *ResolveOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	layout, err := loadLayout(path, formatter)
	if err != nil {
		return err
	}
	list, err := resolveLayout(layout, opts.Width, opts.Height, formatter)
	if err != nil {
		return err
	}

	result := ResolveResult{Rects: make([]RectResult, 0, len(list))}
	for _, r := range list {
		result.Rects = append(result.Rects, RectResult{
			Name:   r.Payload.Name,
			X:      r.Left(),
			Y:      r.Top(),
			Width:  r.Width(),
			Height: r.Height(),
			Z:      r.Z,
			Color:  r.Payload.Color.String(),
		})
	}
	return formatter.Success(result)
}

// loadLayout reads a document and builds its tree, reporting failures
// through formatter.
func loadLayout(path string, formatter *OutputFormatter) (*Layout, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, formatter.Fail(ExitCommandError, ErrCodeDocument, "cannot load "+path, err)
	}
	layout, err := doc.Build()
	if err != nil {
		return nil, formatter.Fail(ExitCommandError, ErrCodeDocument, "cannot build "+path, err)
	}
	formatter.VerboseLog("Loaded %d node(s) from %s", layout.Tree.Len(), path)
	return layout, nil
}

// resolveLayout runs the layout, reporting failures through formatter.
func resolveLayout(layout *Layout, width, height float64, formatter *OutputFormatter) (flexrect.DisplayList[Box], error) {
	if (width == 0) != (height == 0) {
		return nil, formatter.Fail(ExitCommandError, ErrCodeGeneric, "invalid viewport",
			fmt.Errorf("--width and --height must be given together"))
	}
	list, err := layout.Resolve(width, height)
	if err != nil {
		return nil, formatter.Fail(ExitFailure, ErrCodeLayout, "layout failed", err)
	}
	return list, nil
}
