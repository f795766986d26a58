// Package streaming serves media files with HTTP byte-range support
package streaming

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Kind is the outcome of range resolution
type Kind int

const (
	// Full covers the whole resource
	Full Kind = iota
	// Partial covers a satisfiable sub-range of the resource
	Partial
	// Unsatisfiable lies outside the resource bounds
	Unsatisfiable
)

// Range is the byte window to serve. Start and End are inclusive.
type Range struct {
	Kind  Kind
	Start int64
	End   int64
	Total int64
}

// Length returns the number of body bytes for the range
func (r Range) Length() int64 {
	switch r.Kind {
	case Partial:
		return r.End - r.Start + 1
	case Full:
		return r.Total
	default:
		return 0
	}
}

// ContentRange returns the Content-Range header value.
// Full ranges have none.
func (r Range) ContentRange() string {
	switch r.Kind {
	case Partial:
		return fmt.Sprintf("bytes %d-%d/%d", r.Start, r.End, r.Total)
	case Unsatisfiable:
		return fmt.Sprintf("bytes */%d", r.Total)
	default:
		return ""
	}
}

// StatusCode returns the HTTP status that answers the range
func (r Range) StatusCode() int {
	switch r.Kind {
	case Partial:
		return http.StatusPartialContent
	case Unsatisfiable:
		return http.StatusRequestedRangeNotSatisfiable
	default:
		return http.StatusOK
	}
}

func fullRange(total int64) Range {
	return Range{Kind: Full, Start: 0, End: total - 1, Total: total}
}

// ResolveRange computes the window to serve for a Range header against a resource of total bytes.
//
// An empty header yields a Full range. Only the first specifier of a multi-range header is honored.
// An end past the last byte is clamped to it. A start past the last byte, or past the end,
// yields Unsatisfiable. Headers that cannot be parsed (unknown unit, suffix form "-N",
// non-numeric offsets) fall back to a Full range.
func ResolveRange(header string, total int64) Range {
	header = strings.TrimSpace(header)
	if header == "" {
		return fullRange(total)
	}

	spec, ok := strings.CutPrefix(header, "bytes=")
	if !ok {
		return fullRange(total)
	}

	if i := strings.IndexByte(spec, ','); i >= 0 {
		spec = spec[:i]
	}

	startStr, endStr, ok := strings.Cut(strings.TrimSpace(spec), "-")
	if !ok {
		return fullRange(total)
	}

	start, ok := parseOffset(startStr)
	if !ok {
		return fullRange(total)
	}

	end := total - 1
	if endStr != "" {
		e, ok := parseOffset(endStr)
		if !ok {
			return fullRange(total)
		}
		end = min(e, total-1)
	}

	if start > total-1 || start > end {
		return Range{Kind: Unsatisfiable, Total: total}
	}

	return Range{Kind: Partial, Start: start, End: end, Total: total}
}

// parseOffset accepts only plain non-negative decimal numbers
func parseOffset(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
