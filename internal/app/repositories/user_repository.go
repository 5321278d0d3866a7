package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/emrekoc/studentdesk/internal/app/models"
	"github.com/emrekoc/studentdesk/internal/app/models/dto"
	"github.com/emrekoc/studentdesk/internal/db"
	"github.com/emrekoc/studentdesk/internal/pkg/apperrors"
	"github.com/emrekoc/studentdesk/internal/pkg/dberrors"
	"github.com/emrekoc/studentdesk/internal/pkg/logger"
)

// userColumns deliberately excludes the password column: it is
// write-only and no read path ever selects it.
const userColumns = "id, email, name, role, created_at, updated_at"

// UserRepository handles user database operations
type UserRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(database *db.PostgresDB) *UserRepository {
	return &UserRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// buildListQuery composes the filtered user listing
func (r *UserRepository) buildListQuery(filters dto.UserFilters) (string, []interface{}, error) {
	q := r.sb.Select("id", "email", "name", "role", "created_at", "updated_at").
		From("users")

	if filters.Role != "" {
		q = q.Where(squirrel.Eq{"role": filters.Role})
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"email": pattern},
		})
	}

	q = q.OrderBy("created_at DESC")

	if filters.Limit > 0 {
		q = q.Limit(uint64(filters.Limit))
	}
	if filters.Offset > 0 {
		q = q.Offset(uint64(filters.Offset))
	}

	return q.ToSql()
}

// GetAll retrieves users with optional role and search filtering
func (r *UserRepository) GetAll(ctx context.Context, filters dto.UserFilters) ([]*models.User, error) {
	query, args, err := r.buildListQuery(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to build user list query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching users")
		return nil, fmt.Errorf("error fetching users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, &u)
	}

	return users, rows.Err()
}

// GetByID retrieves one user by id
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	err := r.db.Pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("id", id).Msg("Error retrieving user")
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &u, nil
}

// Create inserts one user row with an already-hashed password
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO users (email, name, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		user.Email, user.Name, user.PasswordHash, user.Role,
	).Scan(&user.ID, &user.Email, &user.Name, &user.Role, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			logger.Warn().Str("email", user.Email).Msg("Attempted to create user with duplicate email")
			return nil, apperrors.ErrEmailExists
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Error creating user")
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Update applies the non-nil fields of the request to one user row
func (r *UserRepository) Update(ctx context.Context, id int64, req dto.UpdateUserRequest) (*models.User, error) {
	var u models.User
	err := r.db.Pool.QueryRow(ctx, `
		UPDATE users
		SET name = COALESCE($1, name),
		    email = COALESCE($2, email),
		    role = COALESCE($3, role),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING `+userColumns,
		req.Name, req.Email, req.Role, id,
	).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailExists
		}
		logger.Error().Err(err).Int64("id", id).Msg("Error updating user")
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	return &u, nil
}

// Delete removes one user row
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error deleting user")
		return fmt.Errorf("error deleting user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
