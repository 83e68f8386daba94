package pipeline

import (
	"context"
	"os"
	"path/filepath"
)

// Walker visits a tree depth-first, pre-order, descending into each
// subdirectory as soon as it is listed. Entries are taken in the order the
// filesystem returns them (no sorting). Symlinks and other non-regular
// entries are ignored, so link cycles cannot occur.
type Walker struct {
	// OnFile is called for every regular file.
	OnFile func(ctx context.Context, path string)
	// OnDir is called for every directory before it is listed. Optional.
	OnDir func(dir string)
	// OnDirError is called when a directory cannot be listed; the rest of
	// that subtree is abandoned and the walk continues with its siblings.
	OnDirError func(dir string, err error)
}

// Walk visits root and everything below it. It returns early, between
// entries, once ctx is cancelled.
func (w *Walker) Walk(ctx context.Context, root string) {
	w.walkDir(ctx, root)
}

func (w *Walker) walkDir(ctx context.Context, dir string) {
	if w.OnDir != nil {
		w.OnDir(dir)
	}

	entries, err := readDirUnsorted(dir)
	if err != nil {
		if w.OnDirError != nil {
			w.OnDirError(dir, err)
		}
		return
	}

	for _, e := range entries {
		if ctx.Err() != nil {
			return
		}
		path := filepath.Join(dir, e.Name())
		switch t := e.Type(); {
		case t.IsDir():
			w.walkDir(ctx, path)
		case t.IsRegular():
			if w.OnFile != nil {
				w.OnFile(ctx, path)
			}
		}
	}
}

// readDirUnsorted lists dir in filesystem order. Unlike os.ReadDir it does
// not sort, and a partial listing is treated as a failure.
func readDirUnsorted(dir string) ([]os.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, err
	}
	return entries, nil
}
