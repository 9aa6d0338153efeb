package cli

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/flexrect"
	"github.com/gogpu/flexrect/render"
)

// VerticesOptions holds flags for the vertices command.
type VerticesOptions struct {
	Output string
	Shader string
	Width  float64
	Height float64
}

// VerticesResult is the output of the vertices command.
type VerticesResult struct {
	Path     string `json:"path"`
	Vertices int    `json:"vertices"`
	Bytes    int    `json:"bytes"`
	Stride   int    `json:"stride"`
	Shader   string `json:"shader,omitempty"`
	Words    int    `json:"words,omitempty"`
}

func (r VerticesResult) String() string {
	s := fmt.Sprintf("wrote %s (%d vertices, %d bytes, stride %d)\n", r.Path, r.Vertices, r.Bytes, r.Stride)
	if r.Shader != "" {
		s += fmt.Sprintf("wrote %s (%d SPIR-V words)\n", r.Shader, r.Words)
	}
	return s
}

// NewVerticesCommand creates the vertices command.
func NewVerticesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerticesOptions{}

	cmd := &cobra.Command{
		Use:   "vertices <tree.yaml>",
		Short: "Write the GPU vertex buffer of a layout document",
		Long: `Resolve a layout document and write its triangle-list vertex buffer,
back to front, in the layout used by the render package.

With --shader the matching SPIR-V module is written as well.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVertices(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "layout.vtx", "vertex buffer output file")
	cmd.Flags().StringVar(&opts.Shader, "shader", "", "also write the SPIR-V shader to this file")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "viewport width (default: document width)")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "viewport height (default: document height)")

	return cmd
}

func runVertices(rootOpts *RootOptions, opts *VerticesOptions, path string, cmd *cobra.Command) error {
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

	data := render.Encode(list, nil)
	if err := os.WriteFile(opts.Output, data, 0o644); err != nil {
		return formatter.Fail(ExitFailure, ErrCodeOutput, "cannot write "+opts.Output, err)
	}
	result := VerticesResult{
		Path:     opts.Output,
		Vertices: len(list) * flexrect.VerticesPerRect,
		Bytes:    len(data),
		Stride:   render.VertexStride,
	}

	if opts.Shader != "" {
		words, err := render.CompileShader()
		if err != nil {
			return formatter.Fail(ExitFailure, ErrCodeOutput, "cannot compile shader", err)
		}
		if err := writeWords(opts.Shader, words); err != nil {
			return formatter.Fail(ExitFailure, ErrCodeOutput, "cannot write "+opts.Shader, err)
		}
		formatter.VerboseLog("Compiled %d SPIR-V word(s)", len(words))
		result.Shader = opts.Shader
		result.Words = len(words)
	}

	return formatter.Success(result)
}

func writeWords(path string, words []uint32) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return binary.Write(f, binary.LittleEndian, words)
}
