package cli

import (
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/flexrect/render"
)

func TestVertices(t *testing.T) {
	out := filepath.Join(t.TempDir(), "layout.vtx")
	stdout, err := runCommand(t, "text", NewVerticesCommand, layoutFile, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote "+out+" (30 vertices, 840 bytes, stride 28)")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Len(t, data, 30*render.VertexStride)

	// Back to front: the root comes first and fills the viewport.
	v, c := render.DecodeVertex(data, 0)
	assert.InDelta(t, 0.5, v.Z, 1e-6)
	assert.InDelta(t, float32(0x20)/0xff, c[0], 1e-6)
	assert.InDelta(t, 1, c[3], 1e-6)

	// The last rectangle painted is the content pane.
	last, _ := render.DecodeVertex(data, 29)
	assert.InDelta(t, 17.0/18, last.Z, 1e-6)
}

func TestVerticesShader(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "layout.vtx")
	spv := filepath.Join(dir, "rect.spv")
	stdout, err := runCommand(t, "json", NewVerticesCommand, layoutFile, "-o", out, "--shader", spv)
	require.NoError(t, err)

	var resp struct {
		Status string         `json:"status"`
		Data   VerticesResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, spv, resp.Data.Shader)
	assert.Positive(t, resp.Data.Words)

	data, err := os.ReadFile(spv)
	require.NoError(t, err)
	require.Len(t, data, resp.Data.Words*4)
	assert.Equal(t, uint32(0x07230203), binary.LittleEndian.Uint32(data))
}

func TestVerticesUnwritable(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "layout.vtx")
	_, err := runCommand(t, "text", NewVerticesCommand, layoutFile, "-o", out)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
