package services

import (
	"context"
	"errors"
	"testing"

	"github.com/cybrige/platform/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockCourseRepository is a mock implementation of CourseRepository
type mockCourseRepository struct {
	courses      []models.Course
	course       *models.Course
	count        int
	err          error
	countErr     error
	createErr    error
	created      []models.Course
	bySlugCalls  int
	getAllCalls  int
	createCalled bool
}

func (m *mockCourseRepository) GetActive(ctx context.Context) ([]models.Course, error) {
	m.getAllCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.courses, nil
}

func (m *mockCourseRepository) GetActiveBySlug(ctx context.Context, slug string) (*models.Course, error) {
	m.bySlugCalls++
	if m.err != nil {
		return nil, m.err
	}
	if m.course == nil || m.course.Slug != slug {
		return nil, models.ErrCourseNotFound
	}
	return m.course, nil
}

func (m *mockCourseRepository) Count(ctx context.Context) (int, error) {
	return m.count, m.countErr
}

func (m *mockCourseRepository) CreateMany(ctx context.Context, courses []models.Course) error {
	m.createCalled = true
	if m.createErr != nil {
		return m.createErr
	}
	for i := range courses {
		courses[i].ID = int64(i + 1)
	}
	m.created = courses
	return nil
}

// mockCourseCache is an in-memory implementation of CourseCache
type mockCourseCache struct {
	courses       map[string]*models.Course
	active        []models.Course
	invalidated   []string
	invalidateErr error
}

func newMockCourseCache() *mockCourseCache {
	return &mockCourseCache{courses: map[string]*models.Course{}}
}

func (m *mockCourseCache) GetCourse(ctx context.Context, slug string) (*models.Course, bool) {
	c, ok := m.courses[slug]
	return c, ok
}

func (m *mockCourseCache) SetCourse(ctx context.Context, course *models.Course) {
	m.courses[course.Slug] = course
}

func (m *mockCourseCache) GetActive(ctx context.Context) ([]models.Course, bool) {
	return m.active, m.active != nil
}

func (m *mockCourseCache) SetActive(ctx context.Context, courses []models.Course) {
	m.active = courses
}

func (m *mockCourseCache) Invalidate(ctx context.Context, slugs ...string) error {
	m.invalidated = append(m.invalidated, slugs...)
	m.active = nil
	for _, s := range slugs {
		delete(m.courses, s)
	}
	return m.invalidateErr
}

func twoModuleCourse() *models.Course {
	return &models.Course{
		ID:       1,
		Slug:     "ethical-hacking",
		Title:    "Ethical Hacking",
		Duration: "10 weeks",
		Level:    models.LevelIntermediate,
		IsActive: true,
		Modules: []models.Module{
			{ID: 11, Title: "Introduction", VideoURL: "/media/ethical-hacking/module1.mp4", Order: 1},
			{ID: 12, Title: "Reconnaissance", VideoURL: "/media/ethical-hacking/module2.mp4", Order: 2},
		},
	}
}

func TestNewCourseService(t *testing.T) {
	logger := zap.NewNop()
	repo := &mockCourseRepository{}

	svc := NewCourseService(repo, nil, logger)

	assert.NotNil(t, svc)
	assert.Equal(t, repo, svc.repo)
	assert.Nil(t, svc.cache)
	assert.Equal(t, logger, svc.logger)
}

func TestCourseService_ListActive(t *testing.T) {
	tests := []struct {
		name          string
		repo          *mockCourseRepository
		expectedError bool
		expectedCount int
	}{
		{
			name:          "success",
			repo:          &mockCourseRepository{courses: []models.Course{*twoModuleCourse()}},
			expectedCount: 1,
		},
		{
			name:          "empty",
			repo:          &mockCourseRepository{courses: []models.Course{}},
			expectedCount: 0,
		},
		{
			name:          "repository error",
			repo:          &mockCourseRepository{err: errors.New("database error")},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCourseService(tt.repo, nil, zap.NewNop())

			result, err := svc.ListActive(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Len(t, result, tt.expectedCount)
			if tt.expectedCount > 0 {
				assert.Len(t, result[0].Modules, 2)
			}
		})
	}
}

func TestCourseService_ListActive_UsesCache(t *testing.T) {
	repo := &mockCourseRepository{courses: []models.Course{*twoModuleCourse()}}
	cache := newMockCourseCache()
	svc := NewCourseService(repo, cache, zap.NewNop())

	_, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	_, err = svc.ListActive(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.getAllCalls)
	assert.Len(t, cache.active, 1)
}

func TestCourseService_GetBySlug(t *testing.T) {
	tests := []struct {
		name          string
		slug          string
		repo          *mockCourseRepository
		expectedErr   error
		expectedError bool
	}{
		{
			name: "success",
			slug: "ethical-hacking",
			repo: &mockCourseRepository{course: twoModuleCourse()},
		},
		{
			name:          "not found",
			slug:          "unknown",
			repo:          &mockCourseRepository{course: twoModuleCourse()},
			expectedErr:   models.ErrCourseNotFound,
			expectedError: true,
		},
		{
			name:          "repository error",
			slug:          "ethical-hacking",
			repo:          &mockCourseRepository{err: errors.New("database error")},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCourseService(tt.repo, nil, zap.NewNop())

			course, err := svc.GetBySlug(context.Background(), tt.slug)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, course)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				} else {
					assert.NotErrorIs(t, err, models.ErrCourseNotFound)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.slug, course.Slug)
			assert.Equal(t, "/media/ethical-hacking/module1.mp4", course.Modules[0].VideoURL)
		})
	}
}

func TestCourseService_GetBySlug_UsesCache(t *testing.T) {
	repo := &mockCourseRepository{course: twoModuleCourse()}
	cache := newMockCourseCache()
	svc := NewCourseService(repo, cache, zap.NewNop())

	for i := 0; i < 3; i++ {
		course, err := svc.GetBySlug(context.Background(), "ethical-hacking")
		require.NoError(t, err)
		assert.Equal(t, "ethical-hacking", course.Slug)
	}

	assert.Equal(t, 1, repo.bySlugCalls)
	assert.Contains(t, cache.courses, "ethical-hacking")
}

func TestCourseService_GetDetail(t *testing.T) {
	svc := NewCourseService(&mockCourseRepository{course: twoModuleCourse()}, nil, zap.NewNop())

	resp, err := svc.GetDetail(context.Background(), "ethical-hacking")

	require.NoError(t, err)
	assert.Equal(t, "Ethical Hacking", resp.Title)
	require.Len(t, resp.Modules, 2)
	assert.Equal(t, "Reconnaissance", resp.Modules[1].Title)

	_, err = svc.GetDetail(context.Background(), "unknown")
	assert.ErrorIs(t, err, models.ErrCourseNotFound)
}

func TestCourseService_GetModules(t *testing.T) {
	svc := NewCourseService(&mockCourseRepository{course: twoModuleCourse()}, nil, zap.NewNop())

	resp, err := svc.GetModules(context.Background(), "ethical-hacking")

	require.NoError(t, err)
	assert.Equal(t, "ethical-hacking", resp.Course.Slug)
	require.Len(t, resp.Modules, 2)
	assert.Equal(t, 0, resp.Modules[0].Index)
	assert.Equal(t, "/api/videos/ethical-hacking/0", resp.Modules[0].VideoEndpoint)
	assert.Equal(t, 1, resp.Modules[1].Index)
	assert.Equal(t, "/api/videos/ethical-hacking/1", resp.Modules[1].VideoEndpoint)

	_, err = svc.GetModules(context.Background(), "unknown")
	assert.ErrorIs(t, err, models.ErrCourseNotFound)
}

func TestCourseService_Seed(t *testing.T) {
	tests := []struct {
		name          string
		repo          *mockCourseRepository
		expectedErr   error
		expectedError bool
		expectCreate  bool
	}{
		{
			name:         "success",
			repo:         &mockCourseRepository{count: 0},
			expectCreate: true,
		},
		{
			name:          "already seeded",
			repo:          &mockCourseRepository{count: 3},
			expectedErr:   models.ErrCoursesAlreadySeeded,
			expectedError: true,
		},
		{
			name:          "count error",
			repo:          &mockCourseRepository{countErr: errors.New("database error")},
			expectedError: true,
		},
		{
			name:          "create error",
			repo:          &mockCourseRepository{createErr: errors.New("database error")},
			expectedError: true,
			expectCreate:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := newMockCourseCache()
			svc := NewCourseService(tt.repo, cache, zap.NewNop())

			count, err := svc.Seed(context.Background())

			assert.Equal(t, tt.expectCreate, tt.repo.createCalled)
			if tt.expectedError {
				assert.Error(t, err)
				assert.Zero(t, count)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
				assert.Empty(t, cache.invalidated)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(DefaultCatalogue()), count)
			assert.Len(t, tt.repo.created, count)
			assert.Contains(t, cache.invalidated, "ethical-hacking")
		})
	}
}

func TestCourseService_Seed_InvalidateFailureIsNotFatal(t *testing.T) {
	cache := newMockCourseCache()
	cache.invalidateErr = errors.New("redis down")
	svc := NewCourseService(&mockCourseRepository{}, cache, zap.NewNop())

	count, err := svc.Seed(context.Background())

	require.NoError(t, err)
	assert.Equal(t, len(DefaultCatalogue()), count)
}

func TestDefaultCatalogue(t *testing.T) {
	courses := DefaultCatalogue()

	require.NotEmpty(t, courses)
	slugs := map[string]bool{}
	for _, c := range courses {
		assert.False(t, slugs[c.Slug], "duplicate slug %s", c.Slug)
		slugs[c.Slug] = true
		assert.True(t, c.IsActive)
		for _, m := range c.Modules {
			assert.Regexp(t, `^/media/`+c.Slug+`/module\d+\.mp4$`, m.VideoURL)
		}
	}
	assert.Len(t, courses[0].Modules, 2)
	assert.Equal(t, "ethical-hacking", courses[0].Slug)
}
