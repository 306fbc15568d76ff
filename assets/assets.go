package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed sprites
var FS embed.FS

// LoadImage loads a sprite image by path, picking the decoder from the
// file extension. Failures are recoverable: the caller decides whether
// a missing sheet aborts startup.
func LoadImage(path string) (*ebiten.Image, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
	case ".ase", ".aseprite":
		// Clips are authored in yaml over exported png sheets; raw
		// aseprite files are recognized so the error says what to do.
		return nil, fmt.Errorf("assets: %s: export the aseprite file to a png sheet", path)
	default:
		return nil, fmt.Errorf("assets: %s: unsupported sprite format %q", path, ext)
	}

	b, err := read(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

func read(path string) ([]byte, error) {
	clean := filepath.ToSlash(path)
	clean = strings.TrimPrefix(clean, "assets/")
	if b, err := FS.ReadFile(clean); err == nil {
		return b, nil
	}
	for _, p := range []string{path, filepath.Join("assets", path)} {
		if b, err := os.ReadFile(p); err == nil {
			return b, nil
		}
	}
	return nil, os.ErrNotExist
}
