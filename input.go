package text2docx

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

const utf8BOM = "\uFEFF"

// InputOptions controls how input bytes become text.
type InputOptions struct {
	// Raw disables strict UTF-8 decoding. Without Encoding, invalid bytes
	// are replaced by U+FFFD.
	Raw bool

	// Encoding is a WHATWG encoding name used to decode raw input,
	// e.g. "shift_jis". Ignored unless Raw is set.
	Encoding string
}

// LookupEncoding returns the encoding registered under name.
func LookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// LineReader reads text lines lazily from an input stream.
// Each line keeps its trailing newline; CRLF and lone CR are normalized to LF.
type LineReader struct {
	r      *bufio.Reader
	raw    bool
	lineNo int
	err    error
}

// NewLineReader returns a LineReader over r.
func NewLineReader(r io.Reader, opts InputOptions) (*LineReader, error) {
	if opts.Raw && opts.Encoding != "" {
		enc, err := LookupEncoding(opts.Encoding)
		if err != nil {
			return nil, err
		}
		r = enc.NewDecoder().Reader(r)
	}
	return &LineReader{r: bufio.NewReader(r), raw: opts.Raw}, nil
}

// Lines returns a single-pass sequence of input lines. Iteration stops at
// end of input or on the first error, which Err then reports.
func (lr *LineReader) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for lr.err == nil {
			line, err := lr.r.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				lr.err = fmt.Errorf("%w: %v", ErrReadInput, err)
				return
			}
			if line == "" {
				return
			}
			lr.lineNo++

			line, ok := lr.decode(line)
			if !ok {
				lr.err = fmt.Errorf("%w: line %d", ErrInvalidUTF8, lr.lineNo)
				return
			}
			if !yield(line) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

// Err returns the first read or decode error, if any.
func (lr *LineReader) Err() error {
	return lr.err
}

func (lr *LineReader) decode(line string) (string, bool) {
	if lr.lineNo == 1 {
		line = strings.TrimPrefix(line, utf8BOM)
	}
	if !utf8.ValidString(line) {
		if !lr.raw {
			return "", false
		}
		line = strings.ToValidUTF8(line, string(utf8.RuneError))
	}
	return normalizeNewlines(line), true
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
