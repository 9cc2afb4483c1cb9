package loader

import (
	"fmt"
	"io"
	"os"
	"log"
	"path/filepath"
)

// UploadTarget returns where SaveUpload would place src inside dir: the file
// already holding the symbol, or the upload's own file name.
func UploadTarget(src, dir string) string {
	if existing, err := FindFile(dir, SymbolFromPath(src)); err == nil && existing != "" {
		return existing
	}
	return filepath.Join(dir, filepath.Base(src))
}

// SaveUpload validates src and copies it into dir, replacing the file of the
// same symbol. Other files for that symbol are removed so exactly one remains.
// It returns the destination path.
func SaveUpload(src, dir string) (string, error) {
	if err := Validate(src); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	dst := UploadTarget(src, dir)

	srcAbs, _ := filepath.Abs(src)
	dstAbs, _ := filepath.Abs(dst)
	if srcAbs == dstAbs {
		return dst, nil
	}

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer in.Close()

	tmp := dst + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", tmp, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("copy upload: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("rename upload: %w", err)
	}
	removeShadows(dir, dst)
	return dst, nil
}

// removeShadows deletes every other data file in dir that maps to keep's symbol.
func removeShadows(dir, keep string) {
	files, err := Discover(dir)
	if err != nil {
		return
	}
	sym := SymbolFromPath(keep)
	for _, f := range files {
		if f == keep || SymbolFromPath(f) != sym {
			continue
		}
		if err := os.Remove(f); err != nil {
			log.Printf("[WARN] Could not remove stale %s: %v", f, err)
			continue
		}
		log.Printf("[INFO] Removed stale %s, replaced by %s", f, keep)
	}
}
