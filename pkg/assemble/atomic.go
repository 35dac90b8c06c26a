// File: pkg/assemble/atomic.go
package assemble

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const outputPerm = 0o644

// writeAtomic streams write's output into a temporary file next to dest and
// renames it into place. On any error the temporary file is removed and dest
// is left untouched.
func writeAtomic(dest string, write func(io.Writer) error) (err error) {
	dir, base := filepath.Split(dest)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	buf := bufio.NewWriter(tmp)
	if err := write(buf); err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush temporary file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err := os.Chmod(tmpPath, outputPerm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}
