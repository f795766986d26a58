// Package cache provides a Redis read-through cache for course content
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cybrige/platform/internal/models"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	courseKeyPrefix = "course:"
	activeListKey   = "courses:active"
)

// cachedModule keeps the media reference that the public JSON form of models.Module hides
type cachedModule struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url"`
	Order       int    `json:"order"`
}

type cachedCourse struct {
	ID          int64          `json:"id"`
	Slug        string         `json:"slug"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Duration    string         `json:"duration"`
	Level       models.Level   `json:"level"`
	IsActive    bool           `json:"is_active"`
	Modules     []cachedModule `json:"modules"`
}

// CourseCache stores active courses in Redis.
// Redis failures are logged and reported as misses so the database stays the source of truth.
type CourseCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCourseCache creates a new course cache
func NewCourseCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *CourseCache {
	return &CourseCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func courseKey(slug string) string {
	return courseKeyPrefix + slug
}

// GetCourse returns the cached course for slug and whether it was found
func (c *CourseCache) GetCourse(ctx context.Context, slug string) (*models.Course, bool) {
	var cached cachedCourse
	if !c.get(ctx, courseKey(slug), &cached) {
		return nil, false
	}
	course := fromCached(cached)
	return &course, true
}

// SetCourse caches a single course under its slug
func (c *CourseCache) SetCourse(ctx context.Context, course *models.Course) {
	c.set(ctx, courseKey(course.Slug), toCached(course))
}

// GetActive returns the cached list of active courses and whether it was found
func (c *CourseCache) GetActive(ctx context.Context) ([]models.Course, bool) {
	var cached []cachedCourse
	if !c.get(ctx, activeListKey, &cached) {
		return nil, false
	}
	courses := make([]models.Course, 0, len(cached))
	for _, cc := range cached {
		courses = append(courses, fromCached(cc))
	}
	return courses, true
}

// SetActive caches the list of active courses
func (c *CourseCache) SetActive(ctx context.Context, courses []models.Course) {
	cached := make([]cachedCourse, 0, len(courses))
	for i := range courses {
		cached = append(cached, toCached(&courses[i]))
	}
	c.set(ctx, activeListKey, cached)
}

// Invalidate drops the active list and the given course entries
func (c *CourseCache) Invalidate(ctx context.Context, slugs ...string) error {
	keys := make([]string, 0, len(slugs)+1)
	keys = append(keys, activeListKey)
	for _, slug := range slugs {
		keys = append(keys, courseKey(slug))
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Error("failed to invalidate course cache", zap.Error(err), zap.Int("keys", len(keys)))
		return fmt.Errorf("failed to invalidate course cache: %w", err)
	}
	return nil
}

func (c *CourseCache) get(ctx context.Context, key string, dest any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		c.logger.Warn("course cache read failed", zap.Error(err), zap.String("key", key))
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Warn("dropping undecodable cache entry", zap.Error(err), zap.String("key", key))
		c.client.Del(ctx, key)
		return false
	}
	return true
}

func (c *CourseCache) set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Error("failed to encode cache entry", zap.Error(err), zap.String("key", key))
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("course cache write failed", zap.Error(err), zap.String("key", key))
	}
}

func toCached(course *models.Course) cachedCourse {
	modules := make([]cachedModule, 0, len(course.Modules))
	for _, m := range course.Modules {
		modules = append(modules, cachedModule{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			VideoURL:    m.VideoURL,
			Order:       m.Order,
		})
	}
	return cachedCourse{
		ID:          course.ID,
		Slug:        course.Slug,
		Title:       course.Title,
		Description: course.Description,
		Duration:    course.Duration,
		Level:       course.Level,
		IsActive:    course.IsActive,
		Modules:     modules,
	}
}

func fromCached(cached cachedCourse) models.Course {
	modules := make([]models.Module, 0, len(cached.Modules))
	for _, m := range cached.Modules {
		modules = append(modules, models.Module{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			VideoURL:    m.VideoURL,
			Order:       m.Order,
		})
	}
	return models.Course{
		ID:          cached.ID,
		Slug:        cached.Slug,
		Title:       cached.Title,
		Description: cached.Description,
		Duration:    cached.Duration,
		Level:       cached.Level,
		IsActive:    cached.IsActive,
		Modules:     modules,
	}
}
