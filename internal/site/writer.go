package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// GzipLevel maps a configured level name to a gzip level. ok is false for
// "none", which disables precompression.
func GzipLevel(name string) (level int, ok bool) {
	switch name {
	case "none":
		return 0, false
	case "fastest":
		return gzip.BestSpeed, true
	case "best":
		return gzip.BestCompression, true
	default:
		return gzip.DefaultCompression, true
	}
}

// fileWriter writes generated files below a root directory.
type fileWriter struct {
	root      string
	gzip      bool
	gzipLevel int
	files     int
	bytes     int64
}

// write stores data at the site-relative name and, when enabled, a .gz sibling.
func (w *fileWriter) write(name string, data []byte) error {
	path := filepath.Join(w.root, filepath.FromSlash(strings.TrimPrefix(name, "/")))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", name, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	w.files++
	w.bytes += int64(len(data))

	if !w.gzip {
		return nil
	}
	compressed, err := compress(data, w.gzipLevel)
	if err != nil {
		return fmt.Errorf("compressing %s: %w", name, err)
	}
	if err := os.WriteFile(path+".gz", compressed, 0644); err != nil {
		return fmt.Errorf("writing %s.gz: %w", name, err)
	}
	w.files++
	return nil
}

func compress(data []byte, level int) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pageFile is the index.html path for a directory-style site path.
func pageFile(path string) string {
	if strings.HasSuffix(path, "/") {
		return path + "index.html"
	}
	return path
}
