package streaming

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cybrige/platform/internal/models"
	"github.com/cybrige/platform/internal/storage"
	"go.uber.org/zap"
)

// ErrUnsatisfiableRange is returned by Respond for ranges outside the resource.
// The Content-Range header is already set when it is returned.
var ErrUnsatisfiableRange = errors.New("requested range not satisfiable")

// Opener opens the byte source behind a media resource
type Opener interface {
	Open(path string) (storage.File, error)
}

// Responder writes media resources to HTTP responses
type Responder struct {
	opener Opener
	logger *zap.Logger
}

// NewResponder creates a new responder
func NewResponder(opener Opener, logger *zap.Logger) *Responder {
	return &Responder{
		opener: opener,
		logger: logger,
	}
}

// Respond emits status, headers and the body bytes of rng for resource.
//
// A non-nil error means nothing has been written and the caller still owns the response.
// Once headers are committed, failures are logged and nil is returned.
func (s *Responder) Respond(w http.ResponseWriter, r *http.Request, resource *models.MediaResource, rng Range) error {
	if rng.Kind == Unsatisfiable {
		w.Header().Set("Content-Range", rng.ContentRange())
		return ErrUnsatisfiableRange
	}

	var file storage.File
	if r.Method != http.MethodHead {
		f, err := s.opener.Open(resource.Path)
		if err != nil {
			return fmt.Errorf("failed to open media: %w", err)
		}
		defer f.Close()
		file = f
	}

	contentType := resource.ContentType
	if contentType == "" {
		contentType = models.DefaultVideoContentType
	}

	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("Accept-Ranges", "bytes")
	h.Set("Content-Length", strconv.FormatInt(rng.Length(), 10))
	if rng.Kind == Partial {
		h.Set("Content-Range", rng.ContentRange())
	}

	// Streams outlive the server write timeout; unsupported writers keep their deadline.
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	w.WriteHeader(rng.StatusCode())

	if file == nil || rng.Length() == 0 {
		return nil
	}

	dst := &clientWriter{w: w}
	written, err := io.Copy(dst, io.NewSectionReader(file, rng.Start, rng.Length()))
	fields := []zap.Field{
		zap.String("slug", resource.CourseSlug),
		zap.Int("index", resource.ModuleIndex),
		zap.Int64("written", written),
		zap.Int64("expected", rng.Length()),
	}
	switch {
	case err != nil && dst.err != nil:
		s.logger.Debug("client closed media stream", append(fields, zap.Error(err))...)
	case err != nil:
		s.logger.Error("media stream interrupted", append(fields, zap.Error(err))...)
	case written < rng.Length():
		s.logger.Warn("media file shorter than announced", fields...)
	}

	return nil
}

// clientWriter records write errors so a client disconnect can be told apart from a storage read failure
type clientWriter struct {
	w   io.Writer
	err error
}

func (c *clientWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	if err != nil {
		c.err = err
	}
	return n, err
}
