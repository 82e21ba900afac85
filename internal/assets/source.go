package assets

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
)

// Source opens named asset files.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// FSSource reads assets from Dir inside an fs.FS.
type FSSource struct {
	FS  fs.FS
	Dir string
}

// DirSource reads assets from a directory on disk.
func DirSource(dir string) FSSource {
	return FSSource{FS: os.DirFS(dir)}
}

func (s FSSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	return s.FS.Open(path.Join(s.Dir, name))
}

// HTTPSource fetches assets relative to a base URL. In the browser build the
// base is the page URL, so the game finds its assets next to index.html.
type HTTPSource struct {
	Base   *url.URL
	Dir    string
	Client *http.Client
}

func (s HTTPSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	ref := &url.URL{Path: path.Join(s.Dir, name)}
	u := s.Base.ResolveReference(ref)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: %s", u, resp.Status)
	}
	return resp.Body, nil
}
