// Package export writes panel scenes to SVG and PNG files.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/ratiolab/internal/render"
)

var ErrUnknownFormat = errors.New("export: unknown format")

// Formats lists the supported output formats.
var Formats = []string{"svg", "png"}

// WriteFile writes the scenes to path in the given format, creating the
// parent directory when needed.
func WriteFile(path, format string, scenes []render.Scene) error {
	format = strings.ToLower(format)
	if format != "svg" && format != "png" {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if format == "png" {
		if err := WritePNG(f, scenes); err != nil {
			return err
		}
	} else if _, err := f.WriteString(ScenesToSVG(scenes)); err != nil {
		return err
	}
	return f.Close()
}

// FileName builds a default export name such as "ratiolab_root2-3_golden-5.svg".
func FileName(format string, scenes []render.Scene, steps []int) string {
	parts := []string{"ratiolab"}
	for i, sc := range scenes {
		if i < len(steps) {
			parts = append(parts, fmt.Sprintf("%s-%d", sc.Panel, steps[i]))
		}
	}
	return strings.Join(parts, "_") + "." + strings.ToLower(format)
}
