package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/licensegen/licensegen/internal/license"
)

// ErrOutputExists is returned when the output file exists and overwriting
// was not requested.
var ErrOutputExists = errors.New("output file already exists (use --force or output.overwrite)")

// licenseFileMode is the permission for written license files.
const licenseFileMode = 0o644

// writeArtifact writes a to path and returns the final path. A directory
// path receives the artifact's default file name. Without overwrite the
// file is published with a hard link, which fails if path already exists,
// so a file created after the caller looked is never replaced.
func writeArtifact(path string, a license.Artifact, overwrite bool) (string, error) {
	if path == "" {
		path = a.FileName
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, a.FileName)
	}

	publish := os.Rename
	if !overwrite {
		publish = os.Link
	}
	if err := writeTemp(path, a.Content, publish); err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrOutputExists, path)
		}
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// writeTemp writes data to a temp file next to path and hands it to publish
// (os.Rename or os.Link). The temp file is always removed afterwards.
func writeTemp(path string, data []byte, publish func(oldpath, newpath string) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".licensegen-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(licenseFileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return publish(tmpName, path)
}
