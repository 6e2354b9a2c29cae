// Package sink writes the dashboard payload as an indented JSON document.
package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/zeebo/xxh3"

	"github.com/okian/scoutboard/internal/domain/model"
)

const (
	defaultIndent = 2
	defaultMode   = 0o644
)

// api keeps non-ASCII and HTML characters literal.
var api = sonic.Config{
	EscapeHTML:       false,
	CompactMarshaler: true,
	NoNullSliceOrMap: true,
}.Froze()

// Receipt describes a written payload.
type Receipt struct {
	Path    string
	Bytes   int64
	Players int
	Digest  string // xxh3 of the encoded players list, stable across runs on the same input
}

// JSONWriter writes payloads to a fixed path.
type JSONWriter struct {
	path   string
	indent int
	mode   uint32
}

// NewJSONWriter returns a writer bound to path.
func NewJSONWriter(path string, opts ...Option) *JSONWriter {
	w := &JSONWriter{path: path, indent: defaultIndent, mode: defaultMode}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Path returns the output path.
func (w *JSONWriter) Path() string { return w.path }

// Write encodes p and replaces the file at the output path. The parent
// directory is created when missing. The document is first written to a
// temporary file in the same directory and renamed into place, so a failed
// run never leaves a truncated payload behind.
func (w *JSONWriter) Write(ctx context.Context, p *model.Payload) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	data, err := api.MarshalIndent(p, "", strings.Repeat(" ", w.indent))
	if err != nil {
		return Receipt{}, errors.Mark(errors.Wrap(err, "marshal payload"), ErrEncodePayload)
	}
	digest, err := Digest(p.Players)
	if err != nil {
		return Receipt{}, err
	}

	if err := w.replace(data); err != nil {
		return Receipt{}, errors.Mark(err, ErrWritePayload)
	}

	return Receipt{
		Path:    w.path,
		Bytes:   int64(len(data)),
		Players: len(p.Players),
		Digest:  digest,
	}, nil
}

func (w *JSONWriter) replace(data []byte) error {
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(w.path)+".*")
	if err != nil {
		return errors.Wrapf(err, "create temp file in %s", dir)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "write %s", tmpName)
	}
	if err := tmp.Chmod(os.FileMode(w.mode)); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "chmod %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %s", tmpName)
	}
	if err := os.Rename(tmpName, w.path); err != nil {
		return errors.Wrapf(err, "rename to %s", w.path)
	}
	return nil
}

// Digest hashes the compact encoding of players with xxh3. Two runs over the
// same input tables produce the same digest.
func Digest(players []model.Player) (string, error) {
	h := xxh3.New()
	if err := api.NewEncoder(h).Encode(players); err != nil {
		return "", errors.Mark(errors.Wrap(err, "digest players"), ErrEncodePayload)
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
