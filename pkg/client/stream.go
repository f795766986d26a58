package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// ByteRange selects bytes [Start, End] of a video. A negative End reads to the end of the file.
type ByteRange struct {
	Start int64
	End   int64
}

// FullRange selects the whole video
var FullRange = ByteRange{Start: 0, End: -1}

func (r ByteRange) header() string {
	if r.Start == 0 && r.End < 0 {
		return ""
	}
	if r.End < 0 {
		return fmt.Sprintf("bytes=%d-", r.Start)
	}
	return fmt.Sprintf("bytes=%d-%d", r.Start, r.End)
}

// Stream is an open video response. The caller must close Body.
type Stream struct {
	Body        io.ReadCloser
	StatusCode  int
	ContentType string
	// Start and End are the inclusive offsets of Body within the file
	Start int64
	End   int64
	// Total is the file size, or -1 when the server did not report it
	Total int64
}

// Length returns the number of bytes in Body
func (s *Stream) Length() int64 {
	return s.End - s.Start + 1
}

// Close closes the body
func (s *Stream) Close() error {
	return s.Body.Close()
}

// StreamModule opens a module video at the endpoint returned by Modules.
// Requires a signed-in session.
func (c *Client) StreamModule(ctx context.Context, endpoint string, rng ByteRange) (*Stream, error) {
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if h := rng.header(); h != "" {
		req.Header.Set("Range", h)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}

	stream := &Stream{
		Body:        resp.Body,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Total:       -1,
	}

	switch resp.StatusCode {
	case http.StatusOK:
		stream.Total = resp.ContentLength
		stream.End = resp.ContentLength - 1
	case http.StatusPartialContent:
		start, end, total, ok := parseContentRange(resp.Header.Get("Content-Range"))
		if !ok {
			resp.Body.Close()
			return nil, fmt.Errorf("invalid Content-Range %q", resp.Header.Get("Content-Range"))
		}
		stream.Start, stream.End, stream.Total = start, end, total
	default:
		defer resp.Body.Close()
		return nil, decodeAPIError(resp)
	}

	return stream, nil
}

// parseContentRange parses "bytes <start>-<end>/<total>"
func parseContentRange(v string) (start, end, total int64, ok bool) {
	spec, found := strings.CutPrefix(v, "bytes ")
	if !found {
		return 0, 0, 0, false
	}
	window, size, found := strings.Cut(spec, "/")
	if !found {
		return 0, 0, 0, false
	}
	first, last, found := strings.Cut(window, "-")
	if !found {
		return 0, 0, 0, false
	}

	var err error
	if start, err = strconv.ParseInt(first, 10, 64); err != nil {
		return 0, 0, 0, false
	}
	if end, err = strconv.ParseInt(last, 10, 64); err != nil {
		return 0, 0, 0, false
	}
	if total, err = strconv.ParseInt(size, 10, 64); err != nil {
		return 0, 0, 0, false
	}
	if start > end || end >= total {
		return 0, 0, 0, false
	}
	return start, end, total, true
}
