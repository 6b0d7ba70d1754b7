package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vibeventz/ms-go-vendor-admin/app/entity"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT id, auth_user_id, email, full_name, role, created_at
		FROM users
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.User, 0)
	for rows.Next() {
		item := &entity.User{}
		if err := scanUser(rows, item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// FindByAuthID resolves the users row linked to an identity-provider subject.
func (r *UserRepository) FindByAuthID(ctx context.Context, authUserID string) (*entity.User, error) {
	query := `
		SELECT id, auth_user_id, email, full_name, role, created_at
		FROM users
		WHERE auth_user_id = $1
	`

	item := &entity.User{}
	if err := scanUser(r.db.QueryRowContext(ctx, query, authUserID), item); err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id, role string) error {
	query := `UPDATE users SET role = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, role, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE created_at >= $1`, since).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanUser(scanner rowScanner, item *entity.User) error {
	var fullName sql.NullString

	err := scanner.Scan(
		&item.ID,
		&item.AuthUserID,
		&item.Email,
		&fullName,
		&item.Role,
		&item.CreatedAt,
	)
	if err != nil {
		return err
	}

	item.FullName = stringPtr(fullName)

	return nil
}
