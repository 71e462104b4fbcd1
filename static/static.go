package static

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/minihttp/minihttp/http"
	"github.com/minihttp/minihttp/http/status"
)

// Dir is the directory under the root files are served from.
const Dir = "static"

var ErrOutsideRoot = status.NewError(status.Forbidden, "path escapes the static directory")

var _ http.FileLoader = Loader{}

// Loader reads files from the static directory under Root.
type Loader struct {
	Root string
}

func New(root string) Loader {
	return Loader{Root: root}
}

// Load reads the whole file. A missing file, as well as a directory, results in
// status.ErrNotFound wrapped with the name.
func (l Loader) Load(name string) ([]byte, error) {
	path, err := l.Path(name)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, status.Wrap(status.ErrNotFound, name)
	case err != nil:
		return nil, err
	case stat.IsDir():
		return nil, status.Wrap(status.ErrNotFound, name)
	}

	return os.ReadFile(path)
}

// Path resolves the name into <Root>/static/<name>, refusing names pointing outside
// of the static directory.
func (l Loader) Path(name string) (string, error) {
	local := filepath.FromSlash(strings.TrimPrefix(name, "/"))
	if !filepath.IsLocal(local) {
		return "", ErrOutsideRoot
	}

	return filepath.Join(l.Root, Dir, local), nil
}
