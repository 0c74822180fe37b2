// Package listfile reads and writes flat text lists of package names.
//
// A list file is UTF-8 text with one name per line. There is no header, no
// comment syntax and no escaping. Both functions take an [afero.Fs] so
// callers choose between the OS filesystem and an in-memory one.
package listfile

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/matzehuels/pyvalid/pkg/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Read returns the names in the list file at path, in file order.
//
// Each line is trimmed of surrounding whitespace (so CRLF files read the same
// as LF files) and blank lines are dropped. A leading UTF-8 byte order mark is
// ignored. Duplicates are preserved.
//
// A missing file yields an error with code [errors.ErrCodeFileNotFound].
func Read(fs afero.Fs, path string) ([]string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input list %s not found", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	var names []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for sc.Scan() {
		if name := strings.TrimSpace(sc.Text()); name != "" {
			names = append(names, name)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return names, nil
}

// Write replaces the file at path with names joined by "\n".
//
// No trailing newline is added, so an empty list produces an empty file.
// Parent directories are created as needed.
func Write(fs afero.Fs, path string, names []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(fs, path, []byte(strings.Join(names, "\n")), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
