package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cybrige/platform/internal/models"
	"go.uber.org/zap"
)

type courseRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *sql.DB, logger *zap.Logger) *courseRepository {
	return &courseRepository{
		db:     db,
		logger: logger,
	}
}

// courseSelect joins every course with its modules, modules in positional order
const courseSelect = `
	SELECT c.id, c.slug, c.title, c.description, c.duration, c.level, c.is_active,
		m.id, m.title, m.description, m.video_url, m.sort_order
	FROM courses c
	LEFT JOIN course_modules m ON m.course_id = c.id
`

// GetActive retrieves all active courses with their modules
func (r *courseRepository) GetActive(ctx context.Context) ([]models.Course, error) {
	query := courseSelect + `
		WHERE c.is_active = TRUE
		ORDER BY c.id, m.position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to query courses", zap.Error(err))
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses, err := scanCourses(rows)
	if err != nil {
		r.logger.Error("failed to read courses", zap.Error(err))
		return nil, err
	}

	return courses, nil
}

// GetActiveBySlug retrieves an active course by its slug.
// Inactive courses report models.ErrCourseNotFound.
func (r *courseRepository) GetActiveBySlug(ctx context.Context, slug string) (*models.Course, error) {
	query := courseSelect + `
		WHERE c.slug = ? AND c.is_active = TRUE
		ORDER BY m.position
	`

	rows, err := r.db.QueryContext(ctx, query, slug)
	if err != nil {
		r.logger.Error("failed to query course by slug", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("failed to query course by slug: %w", err)
	}
	defer rows.Close()

	courses, err := scanCourses(rows)
	if err != nil {
		r.logger.Error("failed to read course", zap.Error(err), zap.String("slug", slug))
		return nil, err
	}

	if len(courses) == 0 {
		return nil, models.ErrCourseNotFound
	}

	return &courses[0], nil
}

// Count returns the number of stored courses, active or not
func (r *courseRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		r.logger.Error("failed to count courses", zap.Error(err))
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return count, nil
}

// CreateMany inserts courses and their modules in a single transaction.
// Module positions follow the slice order.
func (r *courseRepository) CreateMany(ctx context.Context, courses []models.Course) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	courseQuery := `
		INSERT INTO courses (slug, title, description, duration, level, is_active)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	moduleQuery := `
		INSERT INTO course_modules (course_id, position, title, description, video_url, sort_order)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	for i := range courses {
		course := &courses[i]
		result, err := tx.ExecContext(ctx, courseQuery,
			course.Slug,
			course.Title,
			course.Description,
			course.Duration,
			course.Level,
			course.IsActive,
		)
		if err != nil {
			r.logger.Error("failed to create course", zap.Error(err), zap.String("slug", course.Slug))
			return fmt.Errorf("failed to create course %s: %w", course.Slug, err)
		}

		courseID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}
		course.ID = courseID

		for position := range course.Modules {
			module := &course.Modules[position]
			result, err := tx.ExecContext(ctx, moduleQuery,
				courseID,
				position,
				module.Title,
				module.Description,
				module.VideoURL,
				module.Order,
			)
			if err != nil {
				r.logger.Error("failed to create module", zap.Error(err), zap.String("slug", course.Slug), zap.Int("position", position))
				return fmt.Errorf("failed to create module %d of %s: %w", position, course.Slug, err)
			}

			moduleID, err := result.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to get last insert id: %w", err)
			}
			module.ID = moduleID
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// scanCourses folds joined course/module rows into courses, keeping row order
func scanCourses(rows *sql.Rows) ([]models.Course, error) {
	courses := []models.Course{}
	for rows.Next() {
		var (
			course            models.Course
			moduleID          sql.NullInt64
			moduleTitle       sql.NullString
			moduleDescription sql.NullString
			moduleVideoURL    sql.NullString
			moduleOrder       sql.NullInt64
		)
		if err := rows.Scan(
			&course.ID,
			&course.Slug,
			&course.Title,
			&course.Description,
			&course.Duration,
			&course.Level,
			&course.IsActive,
			&moduleID,
			&moduleTitle,
			&moduleDescription,
			&moduleVideoURL,
			&moduleOrder,
		); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}

		if n := len(courses); n == 0 || courses[n-1].ID != course.ID {
			course.Modules = []models.Module{}
			courses = append(courses, course)
		}

		if moduleID.Valid {
			last := &courses[len(courses)-1]
			last.Modules = append(last.Modules, models.Module{
				ID:          moduleID.Int64,
				Title:       moduleTitle.String,
				Description: moduleDescription.String,
				VideoURL:    moduleVideoURL.String,
				Order:       int(moduleOrder.Int64),
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return courses, nil
}
