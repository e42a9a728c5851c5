package render

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var shaderTypeDirective = regexp.MustCompile(`(?m)^[ \t]*#type[ \t]+([a-zA-Z]+)[ \t]*\r?$`)

// ParseShaderSource splits a combined shader file into its stages. Each
// stage starts with a "#type vertex" or "#type fragment" line; both must be
// present exactly once.
func ParseShaderSource(src string) (vertex, fragment string, err error) {
	matches := shaderTypeDirective.FindAllStringSubmatchIndex(src, -1)
	if len(matches) != 2 {
		return "", "", fmt.Errorf("shader file format error: want 2 #type sections, got %d", len(matches))
	}
	for i, m := range matches {
		kind := src[m[2]:m[3]]
		end := len(src)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		body := strings.TrimSpace(src[m[1]:end])
		switch kind {
		case "vertex":
			if vertex != "" {
				return "", "", fmt.Errorf("duplicate vertex section")
			}
			vertex = body
		case "fragment":
			if fragment != "" {
				return "", "", fmt.Errorf("duplicate fragment section")
			}
			fragment = body
		default:
			return "", "", fmt.Errorf("unexpected shader type %q", kind)
		}
	}
	if vertex == "" {
		return "", "", fmt.Errorf("vertex shader source not found")
	}
	if fragment == "" {
		return "", "", fmt.Errorf("fragment shader source not found")
	}
	return vertex, fragment, nil
}

// LoadShaderFile reads and compiles a combined shader file.
func LoadShaderFile(gl GL, path string) (*Shader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("shader %q: %w", path, err)
	}
	vertex, fragment, err := ParseShaderSource(string(data))
	if err != nil {
		return nil, fmt.Errorf("shader %q: %w", path, err)
	}
	return NewShader(gl, vertex, fragment)
}
