package aoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"tailscale.com/util/must"
)

// Input returns the puzzle input. In sample mode it is the sample of the
// current solver. Otherwise it is read from --input if set, else from the
// input cache, fetching it from adventofcode.com on a cache miss.
func (p *Puzzle) Input() ([]byte, error) {
	if p.SampleMode {
		s, err := p.Sample()
		if err != nil {
			return nil, err
		}
		return []byte(s.input), nil
	}
	if p.opts.InputPath != "" {
		b, err := os.ReadFile(p.opts.InputPath)
		if err != nil {
			return nil, &IOError{Op: "read", Path: p.opts.InputPath, Err: err}
		}
		return b, nil
	}
	filename := filepath.Join(p.opts.CacheDir, fmt.Sprintf("%d/%d.input", p.year, p.day.day))
	url := fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day)
	return fileOrFetch(p.context(), filename, url)
}

func (p *Puzzle) context() context.Context {
	if p.ctx == nil {
		return context.Background()
	}
	return p.ctx
}

func sessionFile() string {
	return filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")
}

func session() (string, error) {
	b, err := os.ReadFile(sessionFile())
	if err != nil {
		return "", &IOError{Op: "read", Path: sessionFile(), Err: err}
	}
	return strings.TrimSpace(string(b)), nil
}

func fileOrFetch(ctx context.Context, filename, url string) ([]byte, error) {
	f, err := os.ReadFile(filename)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, &IOError{Op: "read", Path: filename, Err: err}
	}

	body, err := fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, &IOError{Op: "write", Path: filename, Err: err}
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, &IOError{Op: "write", Path: filename, Err: err}
	}
	return body, nil
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	sess, err := session()
	if err != nil {
		return nil, err
	}
	req := must.Get(http.NewRequestWithContext(ctx, "GET", url, nil))
	req.AddCookie(&http.Cookie{Name: "session", Value: sess})
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, &IOError{Op: "fetch", Path: url, Err: err}
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, &IOError{Op: "fetch", Path: url, Err: fmt.Errorf("bad status: %v", res.Status)}
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &IOError{Op: "fetch", Path: url, Err: err}
	}
	return body, nil
}
