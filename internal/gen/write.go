package gen

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Generate renders the manifest at manifestPath and writes the result to
// outPath.
func Generate(manifestPath, outPath string) error {
	m, err := LoadManifest(manifestPath)
	if err != nil {
		return err
	}
	src, err := Render(m)
	if err != nil {
		return err
	}
	if err := WriteFile(outPath, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	slog.Info("generated", "manifest", manifestPath, "out", outPath)
	return nil
}

// WriteFile writes b via a temp file in the same directory, then renames it
// over path. A failed write leaves any existing file untouched.
func WriteFile(path string, b []byte, mode os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
