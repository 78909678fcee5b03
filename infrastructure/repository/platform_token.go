package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/qixdigital/ad-intelligence-api/infrastructure/database/postgres"
	"github.com/qixdigital/ad-intelligence-api/internal/domain"
)

const platformTokensTable = "platform_tokens"

type PlatformTokenRepository interface {
	SaveOrUpdate(token *domain.PlatformToken) error
	GetByUserAndPlatform(userID string, platform domain.Platform) (*domain.PlatformToken, error)
}

type platformTokenRepository struct {
	conn *postgres.Connection
}

func NewPlatformTokenRepository(conn *postgres.Connection) PlatformTokenRepository {
	return &platformTokenRepository{
		conn: conn,
	}
}

// SaveOrUpdate insere o token do par (user_id, platform) ou substitui o
// existente. O ID local atribuído pelo banco volta preenchido no próprio token.
func (r *platformTokenRepository) SaveOrUpdate(token *domain.PlatformToken) error {
	query := squirrel.StatementBuilder.
		Insert(platformTokensTable).
		Columns("id", "user_id", "platform", "access_token", "expires_at").
		Values(
			token.ID,
			token.UserID,
			token.Platform,
			token.AccessToken,
			token.ExpiresAt,
		).
		Suffix(`
			ON CONFLICT (user_id, platform) DO UPDATE SET
				access_token = EXCLUDED.access_token,
				expires_at = EXCLUDED.expires_at,
				updated_at = NOW()
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&token.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *platformTokenRepository) GetByUserAndPlatform(userID string, platform domain.Platform) (*domain.PlatformToken, error) {
	tokenSQL, tokenArgs, err := squirrel.
		Select("id, user_id, platform, access_token, expires_at, created_at, updated_at").
		From(platformTokensTable).
		Where(squirrel.Eq{"user_id": userID, "platform": platform}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	token := &domain.PlatformToken{}

	row := r.conn.QueryRow(tokenSQL, tokenArgs...)
	if err := row.Scan(
		&token.ID,
		&token.UserID,
		&token.Platform,
		&token.AccessToken,
		&token.ExpiresAt,
		&token.CreatedAt,
		&token.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return token, nil
}
