package implementations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/hortivise/payment-module/src/internal/domain"
	"github.com/hortivise/payment-module/src/internal/logger"
)

const uniqueViolation = pq.ErrorCode("23505")

type UserRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	logger.Info("user repository create", logger.Fields{
		"userId": user.ID,
		"email":  user.Email,
	})

	const query = `
INSERT INTO users (id, email, password)
VALUES ($1, $2, $3)
RETURNING id, email, password, created_at, updated_at`

	var created domain.User
	if err := scanUser(r.db.QueryRowContext(ctx, query, user.ID, user.Email, user.PasswordHash), &created); err != nil {
		if isUniqueViolation(err) {
			logger.Info("user repository email already taken", logger.Fields{
				"email": user.Email,
			})
			return domain.User{}, domain.ErrEmailTaken
		}
		logger.Error("user repository create failed", err, logger.Fields{
			"email": user.Email,
		})
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	logger.Info("user repository create success", logger.Fields{
		"userId": created.ID,
	})

	return created, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	logger.Info("user repository get by id", logger.Fields{
		"userId": id,
	})

	const query = `
SELECT id, email, password, created_at, updated_at
FROM users
WHERE id = $1`

	var user domain.User
	if err := scanUser(r.db.QueryRowContext(ctx, query, id), &user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Info("user repository record not found", logger.Fields{
				"userId": id,
			})
			return domain.User{}, domain.ErrRecordNotFound
		}
		logger.Error("user repository get by id failed", err, logger.Fields{
			"userId": id,
		})
		return domain.User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	logger.Info("user repository get by email", logger.Fields{
		"email": email,
	})

	const query = `
SELECT id, email, password, created_at, updated_at
FROM users
WHERE email = $1`

	var user domain.User
	if err := scanUser(r.db.QueryRowContext(ctx, query, email), &user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrRecordNotFound
		}
		logger.Error("user repository get by email failed", err, logger.Fields{
			"email": email,
		})
		return domain.User{}, fmt.Errorf("get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	const query = `
SELECT id, email, password, created_at, updated_at
FROM users
ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("user repository list failed", err, nil)
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := scanUser(rows, &user); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	logger.Info("user repository list success", logger.Fields{
		"count": len(users),
	})

	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user domain.User) (domain.User, error) {
	logger.Info("user repository update", logger.Fields{
		"userId": user.ID,
	})

	const query = `
UPDATE users
SET email = $2,
	password = $3,
	updated_at = NOW()
WHERE id = $1
RETURNING id, email, password, created_at, updated_at`

	var updated domain.User
	if err := scanUser(r.db.QueryRowContext(ctx, query, user.ID, user.Email, user.PasswordHash), &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Info("user repository record not found for update", logger.Fields{
				"userId": user.ID,
			})
			return domain.User{}, domain.ErrRecordNotFound
		}
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrEmailTaken
		}
		logger.Error("user repository update failed", err, logger.Fields{
			"userId": user.ID,
		})
		return domain.User{}, fmt.Errorf("update user: %w", err)
	}

	logger.Info("user repository update success", logger.Fields{
		"userId": updated.ID,
	})

	return updated, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	logger.Info("user repository delete", logger.Fields{
		"userId": id,
	})

	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		logger.Error("user repository delete failed", err, logger.Fields{
			"userId": id,
		})
		return fmt.Errorf("delete user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

// EmailTakenByOther reports whether email belongs to a user other than userID.
func (r *UserRepository) EmailTakenByOther(ctx context.Context, email string, userID string) (bool, error) {
	const query = `SELECT COUNT(1) FROM users WHERE email = $1 AND id <> $2`

	var count int
	if err := r.db.QueryRowContext(ctx, query, email, userID).Scan(&count); err != nil {
		logger.Error("user repository email check failed", err, logger.Fields{
			"email": email,
		})
		return false, fmt.Errorf("check email uniqueness: %w", err)
	}

	return count > 0, nil
}

func scanUser(row rowScanner, user *domain.User) error {
	return row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
