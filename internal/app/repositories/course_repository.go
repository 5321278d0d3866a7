package repositories

import (
	"context"
	"fmt"

	"github.com/emrekoc/studentdesk/internal/app/models"
	"github.com/emrekoc/studentdesk/internal/db"
	"github.com/emrekoc/studentdesk/internal/pkg/apperrors"
	"github.com/emrekoc/studentdesk/internal/pkg/dberrors"
	"github.com/emrekoc/studentdesk/internal/pkg/logger"
)

// CourseRepository handles course database operations
type CourseRepository struct {
	db *db.PostgresDB
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(database *db.PostgresDB) *CourseRepository {
	return &CourseRepository{db: database}
}

// GetAll retrieves all courses ordered by code
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, code, name, credits, description, created_at
		FROM courses
		ORDER BY code ASC`)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching courses")
		return nil, fmt.Errorf("error fetching courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Credits, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, &c)
	}

	return courses, rows.Err()
}

// Create inserts one course row; codes are unique
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO courses (code, name, credits, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		course.Code, course.Name, course.Credits, course.Description,
	).Scan(&course.ID, &course.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
			logger.Warn().Str("code", course.Code).Msg("Attempted to create course with duplicate code")
			return nil, apperrors.ErrCourseCodeExists
		}
		logger.Error().Err(err).Str("code", course.Code).Msg("Error creating course")
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return course, nil
}

// Count returns the total number of courses
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}

// Delete removes one course row
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error deleting course")
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
