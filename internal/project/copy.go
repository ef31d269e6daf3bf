package project

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyGlobs copies files matching the given glob patterns (relative to
// srcRoot) into dstRoot, preserving relative paths and file modes. Files
// already present at the destination are left alone. Returns the relative
// paths of the files it copied.
func CopyGlobs(srcRoot, dstRoot string, patterns []string) ([]string, error) {
	var copied []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(srcRoot, pattern))
		if err != nil {
			return copied, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, src := range matches {
			rel, err := filepath.Rel(srcRoot, src)
			if err != nil {
				continue
			}
			dst := filepath.Join(dstRoot, rel)
			ok, err := copyFile(src, dst)
			if err != nil {
				return copied, fmt.Errorf("copy %s: %w", rel, err)
			}
			if ok {
				copied = append(copied, rel)
			}
		}
	}
	return copied, nil
}

// copyFile copies a regular file, skipping directories and existing
// destinations. Reports whether a copy happened.
func copyFile(src, dst string) (bool, error) {
	info, err := os.Stat(src)
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, nil
	}
	if _, err := os.Stat(dst); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return false, err
	}

	in, err := os.Open(src)
	if err != nil {
		return false, err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return false, err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return false, err
	}
	return true, out.Close()
}
