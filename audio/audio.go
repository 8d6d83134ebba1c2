// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"strings"
	"sync"
)

// Source is a stream of interleaved float32 PCM samples.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps file extensions (without the dot, lower case) to decoders.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

// Register binds d to every given extension. A leading dot is ignored.
func (r *Registry) Register(d Decoder, exts ...string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, ext := range exts {
		r.codecs[normalizeExt(ext)] = d
	}
}

func (r *Registry) Get(ext string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[normalizeExt(ext)]
	return d, ok
}

// ForPath picks the decoder registered for the extension of path.
func (r *Registry) ForPath(path string) (Decoder, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return nil, ErrNoExtension
	}

	d, ok := r.Get(ext)
	if !ok {
		return nil, ErrUnsupportedFormat
	}
	return d, nil
}

// Extensions lists the registered extensions in no particular order.
func (r *Registry) Extensions() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	exts := make([]string, 0, len(r.codecs))
	for ext := range r.codecs {
		exts = append(exts, ext)
	}
	return exts
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
