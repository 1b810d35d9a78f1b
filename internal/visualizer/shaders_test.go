package visualizer

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadShaderSources(t *testing.T) {
	fsys := fstest.MapFS{
		"quad.vert":  {Data: []byte("vertex source")},
		"field.frag": {Data: []byte("fragment source")},
	}

	vert, frag, err := loadShaderSources(fsys, "quad.vert", "field.frag")
	if err != nil {
		t.Fatalf("loadShaderSources: %v", err)
	}
	if vert != "vertex source" {
		t.Errorf("vertex = %q", vert)
	}
	if frag != "fragment source" {
		t.Errorf("fragment = %q", frag)
	}
}

func TestLoadShaderSourcesMissingVertex(t *testing.T) {
	fsys := fstest.MapFS{
		"field.frag": {Data: []byte("fragment source")},
	}

	_, _, err := loadShaderSources(fsys, "quad.vert", "field.frag")
	if err == nil {
		t.Fatal("expected error for missing vertex shader")
	}
	if !errors.Is(err, ErrResourceRead) {
		t.Errorf("error = %v, want ErrResourceRead", err)
	}
	if !strings.Contains(err.Error(), "quad.vert") {
		t.Errorf("message %q does not name the missing file", err.Error())
	}
}

func TestLoadShaderSourcesMissingFragment(t *testing.T) {
	fsys := fstest.MapFS{
		"quad.vert": {Data: []byte("vertex source")},
	}

	_, _, err := loadShaderSources(fsys, "quad.vert", "field.frag")
	if err == nil {
		t.Fatal("expected error for missing fragment shader")
	}
	if !errors.Is(err, ErrResourceRead) {
		t.Errorf("error = %v, want ErrResourceRead", err)
	}
}
