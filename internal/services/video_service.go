package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/cybrige/platform/internal/models"
	"github.com/cybrige/platform/internal/storage"
	"go.uber.org/zap"
)

// CourseFinder is the interface that wraps the active course lookup used for streaming
type CourseFinder interface {
	// Method GetBySlug retrieves an active course including the media references of its modules.
	//
	// If the course does not exist or is inactive, an error matching models.ErrCourseNotFound is returned.
	GetBySlug(ctx context.Context, slug string) (*models.Course, error)
}

// MediaStorage is the interface that wraps methods for locating module media files
type MediaStorage interface {
	// Method Resolve translates a stored media reference into a filesystem path.
	//
	// References escaping the media base path return storage.ErrInvalidReference.
	Resolve(ref string) (string, error)
	// Method Size returns the size of the file at "path" at the time of the call.
	//
	// Missing files return an error matching os.ErrNotExist.
	Size(path string) (int64, error)
}

type videoService struct {
	courses CourseFinder
	storage MediaStorage
	logger  *zap.Logger
}

// NewVideoService creates a new video service
func NewVideoService(courses CourseFinder, storage MediaStorage, logger *zap.Logger) *videoService {
	return &videoService{
		courses: courses,
		storage: storage,
		logger:  logger,
	}
}

// ResolveModule maps a course slug and positional module index onto the module's media file.
//
// "index" is the raw path segment and must be a non-negative decimal within the course's module list.
// The file size is taken from the filesystem on every call so replaced files are served correctly.
//
// Errors match models.ErrCourseNotFound, models.ErrModuleNotFound or models.ErrMediaMissing.
func (s *videoService) ResolveModule(ctx context.Context, slug string, index string) (*models.MediaResource, error) {
	course, err := s.courses.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	idx, ok := parseModuleIndex(index)
	if !ok || idx >= len(course.Modules) {
		return nil, models.ErrModuleNotFound
	}

	module := course.Modules[idx]
	if module.VideoURL == "" {
		return nil, models.ErrModuleNotFound
	}

	path, err := s.storage.Resolve(module.VideoURL)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidReference) {
			s.logger.Warn("module has an unusable media reference", zap.String("slug", slug), zap.Int("index", idx))
			return nil, fmt.Errorf("%w: %v", models.ErrMediaMissing, err)
		}
		return nil, fmt.Errorf("failed to resolve media reference: %w", err)
	}

	size, err := s.storage.Size(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, models.ErrMediaMissing
		}
		return nil, fmt.Errorf("failed to stat media file: %w", err)
	}

	return &models.MediaResource{
		CourseSlug:  course.Slug,
		ModuleIndex: idx,
		Path:        path,
		Size:        size,
		ContentType: models.DefaultVideoContentType,
	}, nil
}

// parseModuleIndex accepts plain decimal digits only, rejecting signs and spaces
func parseModuleIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return idx, true
}
