package models

// DefaultVideoContentType is served for every module video
const DefaultVideoContentType = "video/mp4"

// MediaResource is the backing file of a module, resolved per request
type MediaResource struct {
	CourseSlug  string
	ModuleIndex int
	Path        string `json:"-"`
	Size        int64
	ContentType string
}
