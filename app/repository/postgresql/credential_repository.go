package postgresql

import (
	"context"
	"database/sql"
	"errors"

	"devclub-portal/app/models"
	"devclub-portal/app/repository"
)

type credentialRepository struct {
	db *sql.DB
}

func NewCredentialRepository(db *sql.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

func (r *credentialRepository) GetByEmail(ctx context.Context, email string) (models.Credential, error) {
	query := `
        SELECT member_id, email, password_hash
        FROM member_credentials
        WHERE LOWER(email) = LOWER($1)
    `
	var cred models.Credential
	err := r.db.QueryRowContext(ctx, query, email).Scan(&cred.MemberID, &cred.Email, &cred.Hash)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credential{}, repository.ErrNotFound
	}
	return cred, err
}
