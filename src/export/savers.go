package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// maxDuplicates bounds the "name (n).ext" search in DirSaver.
const maxDuplicates = 10000

// DirSaver writes downloads into Dir like a browser does: an existing file is never
// overwritten, the new one becomes "name (1).ext", "name (2).ext", ...
type DirSaver struct {
	Dir string
	// LastPath receives the final path of each saved file, when set.
	LastPath func(string)
}

func (d DirSaver) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	for i := 0; i < maxDuplicates; i++ {
		candidate := base
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, i, ext)
		}
		path := filepath.Join(d.Dir, candidate)
		// O_EXCL keeps concurrent saves from claiming the same name.
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", path, err)
		}
		if d.LastPath != nil {
			d.LastPath(path)
		}
		return nil
	}
	return fmt.Errorf("no free file name for %s in %s", base, d.Dir)
}

// WriterSaver hands the bytes to a writer obtained per save, e.g. a file picked in a
// save dialog.
type WriterSaver struct {
	Open func(ctx context.Context, name string) (io.WriteCloser, error)
}

func (w WriterSaver) Save(ctx context.Context, name string, data []byte) error {
	if w.Open == nil {
		return errors.New("writer saver: no opener")
	}
	wc, err := w.Open(ctx, name)
	if err != nil {
		return err
	}
	if _, err := wc.Write(data); err != nil {
		wc.Close()
		return err
	}
	return wc.Close()
}

// DefaultDownloadDir returns ~/Downloads when it exists, the working directory otherwise.
func DefaultDownloadDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		dl := filepath.Join(home, "Downloads")
		if st, err := os.Stat(dl); err == nil && st.IsDir() {
			return dl
		}
	}
	return "."
}
