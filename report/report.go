// Package report summarizes a byte sequence for people and tools: whether it
// is well-formed UTF-8, where it first goes wrong, and the codepoints it holds.
package report

import (
	"fmt"

	"github.com/goccy/go-json"
	"golang.org/x/text/unicode/runenames"

	"github.com/wippyai/utf8scan/utf8"
)

// Options controls what Build includes.
type Options struct {
	// Names adds the Unicode character name to every entry.
	Names bool
	// MaxCodepoints caps the number of listed entries. Zero lists all.
	MaxCodepoints int
}

// Failure is the first violation in an invalid input.
type Failure struct {
	Offset      int    `json:"offset"`
	Explanation string `json:"explanation"`
}

// Entry describes one codepoint.
type Entry struct {
	Offset int    `json:"offset"`
	Width  int    `json:"width"`
	Value  rune   `json:"value"`
	Hex    string `json:"codepoint"`
	Bytes  string `json:"bytes"`
	Name   string `json:"name,omitempty"`
}

// Report is the result of inspecting one input.
type Report struct {
	Valid      bool     `json:"valid"`
	Size       int      `json:"size"`
	Count      int      `json:"count"`
	Error      *Failure `json:"error,omitempty"`
	Codepoints []Entry  `json:"codepoints,omitempty"`
	Truncated  bool     `json:"truncated,omitempty"`
}

// Build validates data and, when it is well-formed, lists its codepoints.
// Invalid input gets no listing: only the failure is reported.
func Build(data []byte, opts Options) *Report {
	r := &Report{Size: len(data)}

	var reason utf8.Reason
	if !utf8.ValidReason(data, &reason) {
		r.Error = &Failure{
			Offset:      reason.Position,
			Explanation: string(reason.Explanation),
		}
		return r
	}
	r.Valid = true

	for it := utf8.NewCursor(data); !it.Done(); it.Next() {
		r.Count++
		if opts.MaxCodepoints > 0 && len(r.Codepoints) >= opts.MaxCodepoints {
			r.Truncated = true
			continue
		}
		r.Codepoints = append(r.Codepoints, newEntry(data, &it, opts.Names))
	}
	return r
}

func newEntry(data []byte, it *utf8.Cursor[[]byte], names bool) Entry {
	off, w, cp := it.Offset(), it.Width(), it.Value()
	e := Entry{
		Offset: off,
		Width:  w,
		Value:  cp,
		Hex:    fmt.Sprintf("U+%04X", cp),
		Bytes:  fmt.Sprintf("% x", data[off:off+w]),
	}
	if names {
		e.Name = runenames.Name(cp)
	}
	return e
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
