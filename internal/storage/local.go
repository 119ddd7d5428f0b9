package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// localStore implements FileStore on a directory tree. Each key maps to a file
// under the configured root; the directory layout is the public contract (one
// subdirectory per doc_id under master-plans/).
type localStore struct {
	root string
}

// NewLocal creates a disk-backed file store rooted at dir, creating the root
// if it does not exist.
func NewLocal(dir string) (FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}
	return &localStore{root: dir}, nil
}

// resolve maps a key to an absolute path under the root, rejecting keys that
// would escape it.
func (l *localStore) resolve(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(l.root, filepath.FromSlash(clean)), nil
}

func (l *localStore) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return FileInfo{}, err
	}
	dst, err := l.resolve(key)
	if err != nil {
		return FileInfo{}, err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return FileInfo{}, fmt.Errorf("create document directory: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return FileInfo{}, fmt.Errorf("create file: %w", err)
	}
	written, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return FileInfo{}, fmt.Errorf("write file: %w", err)
	}

	st, err := os.Stat(dst)
	if err != nil {
		return FileInfo{}, err
	}
	return FileInfo{
		Key:         key,
		Size:        written,
		ContentType: contentType,
		ModifiedAt:  st.ModTime(),
	}, nil
}

func (l *localStore) Open(ctx context.Context, key string) (io.ReadCloser, FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, FileInfo{}, err
	}
	src, err := l.resolve(key)
	if err != nil {
		return nil, FileInfo{}, err
	}
	f, err := os.Open(src)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, FileInfo{}, ErrNotFound
		}
		return nil, FileInfo{}, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, FileInfo{}, err
	}
	info := FileInfo{
		Key:         key,
		Size:        st.Size(),
		ContentType: contentTypeFor(key),
		ModifiedAt:  st.ModTime(),
	}
	return f, info, nil
}

func (l *localStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target, err := l.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// contentTypeFor guesses a content type from the key's extension. The local
// filesystem does not persist content types, unlike object stores.
func contentTypeFor(key string) string {
	if ct := mime.TypeByExtension(path.Ext(key)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
