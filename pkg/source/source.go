// Package source fetches the raw bytes of a replay from wherever it is
// stored: the local disk, an HTTP attachment URL or a zstd-compressed
// archive copy of either.
package source

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// DefaultMaxSize bounds the number of bytes read from a remote source.
const DefaultMaxSize = 64 << 20

// ErrTooLarge is returned when a remote replay exceeds its size limit.
var ErrTooLarge = errors.New("source: replay exceeds size limit")

var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

const zstdExt = ".zst"

// ByteSource yields the complete contents of one replay.
type ByteSource interface {
	// Name is the replay file name, used to detect the variant.
	Name() string
	Bytes(ctx context.Context) ([]byte, error)
}

// File reads a replay from the local file system.
type File struct {
	Path string
}

// Name returns the base name of Path.
func (f File) Name() string { return filepath.Base(f.Path) }

// Bytes reads the whole file.
func (f File) Bytes(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", f.Path)
	}
	return data, nil
}

// HTTP downloads a replay, e.g. a forum attachment.
type HTTP struct {
	URL     string
	Client  *http.Client // http.DefaultClient when nil
	MaxSize int64        // DefaultMaxSize when zero
}

// Name returns the last path element of the URL.
func (h HTTP) Name() string {
	u, err := url.Parse(h.URL)
	if err != nil {
		return path.Base(h.URL)
	}
	if name, err := url.PathUnescape(path.Base(u.Path)); err == nil {
		return name
	}
	return path.Base(u.Path)
}

// Bytes downloads the replay. A non-200 status is an error, and a body
// larger than MaxSize fails with ErrTooLarge.
func (h HTTP) Bytes(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", h.URL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetch %s: unexpected status %s", h.URL, resp.Status)
	}

	limit := h.MaxSize
	if limit <= 0 {
		limit = DefaultMaxSize
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, errors.Wrapf(err, "read body of %s", h.URL)
	}
	if int64(len(data)) > limit {
		return nil, errors.Wrapf(ErrTooLarge, "%s larger than %d bytes", h.URL, limit)
	}
	return data, nil
}

// Zstd decompresses the bytes of Source when they are zstd-framed and
// passes them through unchanged otherwise.
type Zstd struct {
	Source  ByteSource
	MaxSize int64 // decompressed limit, DefaultMaxSize when zero
}

// Name strips a trailing ".zst" from the wrapped name.
func (z Zstd) Name() string {
	name := z.Source.Name()
	if strings.HasSuffix(strings.ToLower(name), zstdExt) {
		return name[:len(name)-len(zstdExt)]
	}
	return name
}

// Bytes returns the decompressed contents of Source. Output larger than
// MaxSize fails with ErrTooLarge.
func (z Zstd) Bytes(ctx context.Context) ([]byte, error) {
	data, err := z.Source.Bytes(ctx)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(data, zstdMagic) {
		return data, nil
	}

	limit := z.MaxSize
	if limit <= 0 {
		limit = DefaultMaxSize
	}
	dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(uint64(limit)))
	if err != nil {
		return nil, errors.Wrap(err, "zstd reader")
	}
	defer dec.Close()
	out, err := dec.DecodeAll(data, nil)
	switch {
	case errors.Is(err, zstd.ErrDecoderSizeExceeded), errors.Is(err, zstd.ErrWindowSizeExceeded):
		return nil, errors.Wrapf(ErrTooLarge, "%s decompresses to more than %d bytes", z.Source.Name(), limit)
	case err != nil:
		return nil, errors.Wrapf(err, "decompress %s", z.Source.Name())
	case int64(len(out)) > limit:
		return nil, errors.Wrapf(ErrTooLarge, "%s decompresses to more than %d bytes", z.Source.Name(), limit)
	}
	return out, nil
}

// Open picks a source for ref: HTTP for http and https URLs, File
// otherwise. Refs ending in ".zst" are wrapped in Zstd. maxSize bounds both
// the download and the decompressed output.
func Open(ref string, client *http.Client, maxSize int64) ByteSource {
	var src ByteSource
	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		src = HTTP{URL: ref, Client: client, MaxSize: maxSize}
	} else {
		src = File{Path: ref}
	}
	if strings.HasSuffix(strings.ToLower(src.Name()), zstdExt) {
		return Zstd{Source: src, MaxSize: maxSize}
	}
	return src
}
