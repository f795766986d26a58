package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/cybrige/platform/internal/models"
	"go.uber.org/zap"
)

// CourseRepository is the interface that wraps methods for Courses and CourseModules tables data access
type CourseRepository interface {
	// Method GetActive retrieves all active courses with their modules in positional order.
	//
	// If some error occurs during data retrieve, the error will be returned together with "nil" value.
	GetActive(ctx context.Context) ([]models.Course, error)
	// Method GetActiveBySlug retrieves an active course by its slug.
	//
	// "slug" parameter is the public course identifier.
	//
	// If the course does not exist or is inactive, models.ErrCourseNotFound will be returned together with "nil" value.
	GetActiveBySlug(ctx context.Context, slug string) (*models.Course, error)
	// Method Count returns the number of stored courses, active or not.
	//
	// If some error occurs during count, the error will be returned together with "0" value.
	Count(ctx context.Context) (int, error)
	// Method CreateMany inserts courses with their modules in one transaction.
	//
	// Module positions follow the order of each course's Modules slice.
	// IDs of created courses and modules are written back into "courses".
	CreateMany(ctx context.Context, courses []models.Course) error
}

// CourseCache is the interface that wraps methods for the course read-through cache.
//
// Cache failures are never reported as errors by the getters: a failed lookup is a miss.
type CourseCache interface {
	GetCourse(ctx context.Context, slug string) (*models.Course, bool)
	SetCourse(ctx context.Context, course *models.Course)
	GetActive(ctx context.Context) ([]models.Course, bool)
	SetActive(ctx context.Context, courses []models.Course)
	// Method Invalidate drops the cached active list and the entries of the given slugs.
	Invalidate(ctx context.Context, slugs ...string) error
}

type courseService struct {
	repo   CourseRepository
	cache  CourseCache
	logger *zap.Logger
}

// NewCourseService creates a new course service.
// "cache" may be nil, in which case every read goes to the repository.
func NewCourseService(repo CourseRepository, cache CourseCache, logger *zap.Logger) *courseService {
	return &courseService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// ListActive retrieves all active courses with media references stripped
func (s *courseService) ListActive(ctx context.Context) ([]models.CourseResponse, error) {
	courses, err := s.activeCourses(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.CourseResponse, 0, len(courses))
	for i := range courses {
		result = append(result, courses[i].ToResponse())
	}
	return result, nil
}

// GetBySlug retrieves a single active course including its media references.
//
// Callers exposing the course to clients must convert it with ToResponse or ToModulesResponse.
// Unknown or inactive slugs return an error matching models.ErrCourseNotFound.
func (s *courseService) GetBySlug(ctx context.Context, slug string) (*models.Course, error) {
	if s.cache != nil {
		if course, ok := s.cache.GetCourse(ctx, slug); ok {
			return course, nil
		}
	}

	course, err := s.repo.GetActiveBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, models.ErrCourseNotFound) {
			return nil, err
		}
		s.logger.Error("failed to get course", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	if s.cache != nil {
		s.cache.SetCourse(ctx, course)
	}
	return course, nil
}

// GetDetail retrieves the public view of an active course
func (s *courseService) GetDetail(ctx context.Context, slug string) (*models.CourseResponse, error) {
	course, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	resp := course.ToResponse()
	return &resp, nil
}

// GetModules retrieves module metadata of an active course with opaque video endpoints
func (s *courseService) GetModules(ctx context.Context, slug string) (*models.CourseModulesResponse, error) {
	course, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	resp := course.ToModulesResponse()
	return &resp, nil
}

// Seed installs the default catalogue when no course exists yet.
//
// Returns the number of created courses, or models.ErrCoursesAlreadySeeded when the store is not empty.
func (s *courseService) Seed(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	if count > 0 {
		return 0, models.ErrCoursesAlreadySeeded
	}

	courses := DefaultCatalogue()
	if err := s.repo.CreateMany(ctx, courses); err != nil {
		s.logger.Error("failed to seed courses", zap.Error(err))
		return 0, fmt.Errorf("failed to seed courses: %w", err)
	}

	if s.cache != nil {
		slugs := make([]string, 0, len(courses))
		for _, c := range courses {
			slugs = append(slugs, c.Slug)
		}
		// Stale entries expire with the TTL if this fails
		if err := s.cache.Invalidate(ctx, slugs...); err != nil {
			s.logger.Warn("course cache not invalidated after seed", zap.Error(err))
		}
	}

	s.logger.Info("courses seeded", zap.Int("count", len(courses)))
	return len(courses), nil
}

func (s *courseService) activeCourses(ctx context.Context) ([]models.Course, error) {
	if s.cache != nil {
		if courses, ok := s.cache.GetActive(ctx); ok {
			return courses, nil
		}
	}

	courses, err := s.repo.GetActive(ctx)
	if err != nil {
		s.logger.Error("failed to get active courses", zap.Error(err))
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}

	if s.cache != nil {
		s.cache.SetActive(ctx, courses)
	}
	return courses, nil
}
