package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pkt.systems/challenge"
)

const (
	stdinArg     = "-"
	fetchTimeout = 30 * time.Second
	acceptHeader = "application/toml, text/plain;q=0.9, */*;q=0.1"
)

// source is one document argument: a local file, an http(s) URL or stdin.
type source struct {
	name string // as given, for diagnostics
	path string // local file, empty for stdin and URLs
	open func() (io.ReadCloser, error)
}

func (s source) read() ([]byte, error) {
	rc, err := s.open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}

// sources resolves every argument; no arguments means stdin.
func sources(args []string, stdin io.Reader) ([]source, error) {
	if len(args) == 0 {
		args = []string{stdinArg}
	}
	out := make([]source, 0, len(args))
	for _, raw := range args {
		src, err := parseSource(raw, stdin)
		if err != nil {
			return nil, err
		}
		out = append(out, src)
	}
	return out, nil
}

func parseSource(raw string, stdin io.Reader) (source, error) {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return source{}, errors.New("empty input argument")
	case raw == stdinArg:
		return source{name: "<stdin>", open: func() (io.ReadCloser, error) {
			return io.NopCloser(stdin), nil
		}}, nil
	}
	path := raw
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return source{name: raw, open: func() (io.ReadCloser, error) {
				return fetch(context.Background(), raw)
			}}, nil
		case "file":
			path = u.Path
			if path == "" {
				path = u.Host
			}
		}
	}
	return source{name: raw, path: path, open: func() (io.ReadCloser, error) {
		return os.Open(path)
	}}, nil
}

// readSources concatenates every source in order.
func readSources(srcs []source) ([]byte, error) {
	var out []byte
	for _, src := range srcs {
		data, err := src.read()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src.name, err)
		}
		out = append(out, data...)
	}
	return out, nil
}

func fetch(ctx context.Context, raw string) (io.ReadCloser, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, raw, nil)
	if err != nil {
		cancel()
		return nil, err
	}
	req.Header.Set("Accept", acceptHeader)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		cancel()
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		cancel()
		return nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return &cancelBody{ReadCloser: resp.Body, cancel: cancel}, nil
}

// cancelBody releases the request context once the body is closed.
type cancelBody struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelBody) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}

// documentPath names the file a document is written to. A path that is an
// existing directory, or ends in a separator, gets the document's file name.
func documentPath(path string, c challenge.Challenge) string {
	if path == "" {
		return ""
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return filepath.Join(path, challenge.Filename(c))
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, challenge.Filename(c))
	}
	return path
}

// writeOutput writes data to path, creating parent directories, or to
// stdout when path is empty.
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
