package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/cybrige/platform/internal/models"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleCourse() *models.Course {
	return &models.Course{
		ID:       1,
		Slug:     "ethical-hacking",
		Title:    "Ethical Hacking",
		Duration: "10 weeks",
		Level:    models.LevelIntermediate,
		IsActive: true,
		Modules: []models.Module{
			{ID: 11, Title: "Intro", VideoURL: "/media/ethical-hacking/module1.mp4", Order: 1},
			{ID: 12, Title: "Recon", VideoURL: "/media/ethical-hacking/module2.mp4", Order: 2},
		},
	}
}

func TestCachedCourse_KeepsMediaReferences(t *testing.T) {
	course := sampleCourse()

	data, err := json.Marshal(toCached(course))
	require.NoError(t, err)
	assert.Contains(t, string(data), "/media/ethical-hacking/module2.mp4")

	var decoded cachedCourse
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *course, fromCached(decoded))
}

func TestCourseKey(t *testing.T) {
	assert.Equal(t, "course:grc", courseKey("grc"))
}

// unreachableCache points at a closed port so every command fails fast
func unreachableCache(t *testing.T) *CourseCache {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { client.Close() })
	return NewCourseCache(client, time.Minute, zap.NewNop())
}

func TestCourseCache_RedisUnavailable(t *testing.T) {
	c := unreachableCache(t)
	ctx := context.Background()

	c.SetCourse(ctx, sampleCourse())
	c.SetActive(ctx, []models.Course{*sampleCourse()})

	course, ok := c.GetCourse(ctx, "ethical-hacking")
	assert.False(t, ok)
	assert.Nil(t, course)

	courses, ok := c.GetActive(ctx)
	assert.False(t, ok)
	assert.Nil(t, courses)

	assert.Error(t, c.Invalidate(ctx, "ethical-hacking"))
}
