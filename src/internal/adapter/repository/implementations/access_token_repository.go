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

type AccessTokenRepository struct {
	db *sql.DB
}

func NewAccessTokenRepository(db *sql.DB) *AccessTokenRepository {
	return &AccessTokenRepository{db: db}
}

func (r *AccessTokenRepository) Create(ctx context.Context, token domain.AccessToken) (domain.AccessToken, error) {
	logger.Info("access token repository create", logger.Fields{
		"tokenId": token.ID,
		"userId":  token.UserID,
	})

	const query = `
INSERT INTO auth_access_tokens (id, tokenable_id, name, hash, abilities, expires_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, tokenable_id, name, hash, abilities, expires_at, last_used_at, created_at`

	var created domain.AccessToken
	if err := scanAccessToken(r.db.QueryRowContext(
		ctx,
		query,
		token.ID,
		token.UserID,
		token.Name,
		token.Hash,
		pq.Array(token.Abilities),
		token.ExpiresAt,
	), &created); err != nil {
		logger.Error("access token repository create failed", err, logger.Fields{
			"userId": token.UserID,
		})
		return domain.AccessToken{}, fmt.Errorf("create access token: %w", err)
	}

	return created, nil
}

func (r *AccessTokenRepository) GetByID(ctx context.Context, id string) (domain.AccessToken, error) {
	const query = `
SELECT id, tokenable_id, name, hash, abilities, expires_at, last_used_at, created_at
FROM auth_access_tokens
WHERE id = $1`

	var token domain.AccessToken
	if err := scanAccessToken(r.db.QueryRowContext(ctx, query, id), &token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.AccessToken{}, domain.ErrRecordNotFound
		}
		logger.Error("access token repository get by id failed", err, logger.Fields{
			"tokenId": id,
		})
		return domain.AccessToken{}, fmt.Errorf("get access token: %w", err)
	}

	return token, nil
}

func (r *AccessTokenRepository) Touch(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE auth_access_tokens SET last_used_at = NOW() WHERE id = $1`, id); err != nil {
		return fmt.Errorf("touch access token: %w", err)
	}
	return nil
}

func (r *AccessTokenRepository) Delete(ctx context.Context, id string) error {
	logger.Info("access token repository delete", logger.Fields{
		"tokenId": id,
	})

	if _, err := r.db.ExecContext(ctx, `DELETE FROM auth_access_tokens WHERE id = $1`, id); err != nil {
		logger.Error("access token repository delete failed", err, logger.Fields{
			"tokenId": id,
		})
		return fmt.Errorf("delete access token: %w", err)
	}
	return nil
}

func scanAccessToken(row rowScanner, token *domain.AccessToken) error {
	var lastUsedAt sql.NullTime
	if err := row.Scan(
		&token.ID,
		&token.UserID,
		&token.Name,
		&token.Hash,
		pq.Array(&token.Abilities),
		&token.ExpiresAt,
		&lastUsedAt,
		&token.CreatedAt,
	); err != nil {
		return err
	}

	if lastUsedAt.Valid {
		t := lastUsedAt.Time
		token.LastUsedAt = &t
	}
	return nil
}
