package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/qixdigital/ad-intelligence-api/infrastructure/database/postgres"
	"github.com/qixdigital/ad-intelligence-api/internal/domain"
)

const adAccountsTable = "ad_accounts"

type AdAccountRepository interface {
	Save(account *domain.AdAccount) error
	GetAccountByID(accountID string) (*domain.AdAccount, error)
	GetAccountByExternalID(platform domain.Platform, externalID string) (*domain.AdAccount, error)
	ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error)
	ListAccountsByClientID(clientID string) ([]*domain.AdAccount, error)
}

type adAccountRepository struct {
	conn *postgres.Connection
}

func NewAdAccountRepository(conn *postgres.Connection) AdAccountRepository {
	return &adAccountRepository{
		conn: conn,
	}
}

// Save vincula uma conta de anúncios a um cliente. Vincular de novo a mesma
// conta externa apenas atualiza o vínculo, nunca duplica.
func (r *adAccountRepository) Save(account *domain.AdAccount) error {
	query := squirrel.StatementBuilder.
		Insert(adAccountsTable).
		Columns("id", "client_id", "platform", "external_id", "name", "status").
		Values(
			account.ID,
			account.ClientID,
			account.Platform,
			account.ExternalID,
			account.Name,
			account.Status,
		).
		Suffix(`
			ON CONFLICT (platform, external_id) DO UPDATE SET
				client_id = EXCLUDED.client_id,
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				updated_at = NOW()
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if err := r.conn.QueryRow(sqlQuery, args...).Scan(&account.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *adAccountRepository) GetAccountByID(accountID string) (*domain.AdAccount, error) {
	return r.getAccount(squirrel.Eq{"id": accountID})
}

func (r *adAccountRepository) GetAccountByExternalID(platform domain.Platform, externalID string) (*domain.AdAccount, error) {
	return r.getAccount(squirrel.Eq{"platform": platform, "external_id": externalID})
}

func (r *adAccountRepository) getAccount(whereClause map[string]interface{}) (*domain.AdAccount, error) {
	accountSQL, accountArgs, err := squirrel.
		Select("id, client_id, platform, external_id, name, status, created_at, updated_at").
		From(adAccountsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	account := &domain.AdAccount{}

	row := r.conn.QueryRow(accountSQL, accountArgs...)
	if err := row.Scan(
		&account.ID,
		&account.ClientID,
		&account.Platform,
		&account.ExternalID,
		&account.Name,
		&account.Status,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return account, nil
}

func (r *adAccountRepository) ListAccounts(availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error) {
	queryBuilder := squirrel.
		Select("id, client_id, platform, external_id, name, status, created_at, updated_at").
		From(adAccountsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": availableStatus})
	}

	accountsSQL, accountsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	return r.listAccounts(accountsSQL, accountsArgs)
}

func (r *adAccountRepository) ListAccountsByClientID(clientID string) ([]*domain.AdAccount, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select("id, client_id, platform, external_id, name, status, created_at, updated_at").
		From(adAccountsTable).
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.listAccounts(accountsSQL, accountsArgs)
}

func (r *adAccountRepository) listAccounts(accountsSQL string, accountsArgs []interface{}) ([]*domain.AdAccount, error) {
	rows, err := r.conn.Query(accountsSQL, accountsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)

	for rows.Next() {
		account := &domain.AdAccount{}

		if err := rows.Scan(
			&account.ID,
			&account.ClientID,
			&account.Platform,
			&account.ExternalID,
			&account.Name,
			&account.Status,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, err
		}

		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}
