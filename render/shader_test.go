package render_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/glgui/render"
	"github.com/gorustyt/glgui/render/gltrace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderCompileErrorCarriesLog(t *testing.T) {
	rec := gltrace.New()
	rec.FailCompile = render.FRAGMENT_SHADER
	rec.FailLog = "0:3(1): error: syntax error"

	_, err := render.NewPainter(rec, 100, 100, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fragment")
	assert.Contains(t, err.Error(), "syntax error")
	// The vertex shader compiled before the failure is released.
	assert.Equal(t, 2, rec.Count("DeleteShader"))
	assert.Equal(t, 0, rec.Count("CreateProgram"))
}

func TestShaderLinkError(t *testing.T) {
	rec := gltrace.New()
	rec.FailLink = true
	rec.FailLog = "link failed: a_pos"

	_, err := render.NewGuiShader(rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to link program: link failed: a_pos")
	assert.Equal(t, 1, rec.Count("DeleteProgram"))
}

func TestShaderUniforms(t *testing.T) {
	rec := gltrace.New()
	s, err := render.NewShader(rec, "void main() {}", "void main() {}")
	require.NoError(t, err)

	s.Attach()
	s.UploadMat4("u_mvp", mgl32.Ident4())
	s.UploadInt("u_sampler", 3)
	s.UploadFloat("u_time", 0.5)
	s.UploadIntArray("u_slots", []int32{0, 1, 2})
	s.UploadVec2("u_screen_size", mgl32.Vec2{4, 2})
	s.Detach()

	use := rec.Named("UseProgram")
	require.Len(t, use, 2)
	assert.Equal(t, []int64{int64(s.Program())}, use[0].Ints)
	assert.Equal(t, []int64{0}, use[1].Ints)

	mat := rec.Named("UniformMatrix4fv")
	require.Len(t, mat, 1)
	assert.Equal(t, float32(1), mat[0].Floats[0])
	assert.Equal(t, float32(1), mat[0].Floats[15])
	assert.Equal(t, []int64{1, 3}, rec.Named("Uniform1i")[0].Ints)
	assert.Equal(t, []float32{0.5}, rec.Named("Uniform1f")[0].Floats)
	assert.Equal(t, []int64{3, 0, 1, 2}, rec.Named("Uniform1iv")[0].Ints)
	assert.Equal(t, int32(0), s.UniformLocation("u_mvp"))

	s.Delete()
	s.Delete()
	assert.Equal(t, 1, rec.Count("DeleteProgram"))
}

const combined = "#type vertex\r\n#version 330 core\r\nvoid main() {}\r\n\r\n#type fragment\r\n#version 330 core\r\nout vec4 c;\r\nvoid main() { c = vec4(1); }\r\n"

func TestParseShaderSource(t *testing.T) {
	vs, fs, err := render.ParseShaderSource(combined)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(vs, "#version 330 core"))
	assert.True(t, strings.HasSuffix(vs, "void main() {}"))
	assert.Contains(t, fs, "out vec4 c;")

	swapped := "#type fragment\nFRAG\n#type vertex\nVERT\n"
	vs, fs, err = render.ParseShaderSource(swapped)
	require.NoError(t, err)
	assert.Equal(t, "VERT", vs)
	assert.Equal(t, "FRAG", fs)
}

func TestParseShaderSourceErrors(t *testing.T) {
	for _, src := range []string{
		"",
		"#type vertex\nVERT\n",
		"#type vertex\nA\n#type vertex\nB\n",
		"#type vertex\nA\n#type geometry\nB\n",
		"#type vertex\nA\n#type fragment\nB\n#type fragment\nC\n",
	} {
		_, _, err := render.ParseShaderSource(src)
		assert.Error(t, err, src)
	}
}

func TestLoadShaderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basic.glsl")
	require.NoError(t, os.WriteFile(path, []byte(combined), 0o644))
	rec := gltrace.New()
	s, err := render.LoadShaderFile(rec, path)
	require.NoError(t, err)
	assert.NotZero(t, s.Program())

	_, err = render.LoadShaderFile(rec, filepath.Join(t.TempDir(), "missing.glsl"))
	assert.Error(t, err)
}
