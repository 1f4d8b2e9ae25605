package text2docx

import (
	"iter"
	"strings"
)

// Chunk is one unit of paginated output: either the text of a page or a
// break marker. A break marker's Text is the separator itself.
type Chunk struct {
	Text  string
	Break bool
}

// Paginate splits lines into pages on sep.
//
// The result alternates page text and break markers: each occurrence of sep
// yields the page collected so far followed by a marker, and text after the
// last separator is yielded as a final page without a marker. When the rest
// of a line after a separator is only whitespace, scanning of that line
// stops, so a trailing separator does not produce an empty last page.
//
// The sequence is lazy and single-pass: it pulls from lines as it is ranged
// over and cannot be restarted unless lines can.
func Paginate(lines iter.Seq[string], sep string) iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		var page []string
		for line := range lines {
			for {
				before, after, found := strings.Cut(line, sep)
				page = append(page, before)
				if !found {
					break
				}
				if !yield(Chunk{Text: strings.Join(page, "")}) {
					return
				}
				if !yield(Chunk{Text: sep, Break: true}) {
					return
				}
				page = page[:0]
				line = after
				if strings.TrimSpace(line) == "" {
					break
				}
			}
		}
		if len(page) > 0 {
			yield(Chunk{Text: strings.Join(page, "")})
		}
	}
}
