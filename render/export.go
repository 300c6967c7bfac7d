package render

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// WritePNG encodes img and writes it through a temp file in the target
// directory, so a failed write can't leave a truncated logo behind.
func WritePNG(img image.Image, path string) error {
	var buf bytes.Buffer

	if err := png.Encode(&buf, img); err != nil {
		return err
	}

	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".logo-*.png")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Chmod(path, 0664)
}
