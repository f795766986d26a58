package models

import "fmt"

// Level represents the difficulty level of a course
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// Module is a single lesson of a course, backed by a media file.
//
// ID is a stable surrogate key; the public index of a module is its position
// in Course.Modules.
type Module struct {
	ID          int64  `json:"-"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"-"`
	Order       int    `json:"order"`
}

// Course represents a course with its ordered module list
type Course struct {
	ID          int64    `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Level       Level    `json:"level"`
	IsActive    bool     `json:"isActive"`
	Modules     []Module `json:"modules"`
}

// ModuleSummary is the public view of a module with no media reference
type ModuleSummary struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

// CourseResponse is the public view of a course
type CourseResponse struct {
	ID          int64           `json:"id"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Duration    string          `json:"duration"`
	Level       Level           `json:"level"`
	Modules     []ModuleSummary `json:"modules"`
}

// ToResponse strips media references from the course
func (c *Course) ToResponse() CourseResponse {
	modules := make([]ModuleSummary, 0, len(c.Modules))
	for _, m := range c.Modules {
		modules = append(modules, ModuleSummary{
			Title:       m.Title,
			Description: m.Description,
			Order:       m.Order,
		})
	}
	return CourseResponse{
		ID:          c.ID,
		Slug:        c.Slug,
		Title:       c.Title,
		Description: c.Description,
		Duration:    c.Duration,
		Level:       c.Level,
		Modules:     modules,
	}
}

// ModuleEndpoint is a module entry returned to authenticated users
type ModuleEndpoint struct {
	Index         int    `json:"index"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Order         int    `json:"order"`
	VideoEndpoint string `json:"videoEndpoint"`
}

// CourseInfo is the short course header of a modules response
type CourseInfo struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Duration string `json:"duration"`
}

// CourseModulesResponse is returned by GET /courses/{slug}/modules
type CourseModulesResponse struct {
	Course  CourseInfo       `json:"course"`
	Modules []ModuleEndpoint `json:"modules"`
}

// VideoEndpoint builds the opaque streaming path of a module
func VideoEndpoint(slug string, index int) string {
	return fmt.Sprintf("/api/videos/%s/%d", slug, index)
}

// ToModulesResponse exposes the modules with opaque endpoints in place of media references
func (c *Course) ToModulesResponse() CourseModulesResponse {
	modules := make([]ModuleEndpoint, 0, len(c.Modules))
	for i, m := range c.Modules {
		modules = append(modules, ModuleEndpoint{
			Index:         i,
			Title:         m.Title,
			Description:   m.Description,
			Order:         m.Order,
			VideoEndpoint: VideoEndpoint(c.Slug, i),
		})
	}
	return CourseModulesResponse{
		Course: CourseInfo{
			Title:    c.Title,
			Slug:     c.Slug,
			Duration: c.Duration,
		},
		Modules: modules,
	}
}
