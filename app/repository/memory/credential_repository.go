package memory

import (
	"context"
	"fmt"
	"strings"

	"devclub-portal/app/models"
	"devclub-portal/app/repository"
	"devclub-portal/utils"
)

// DemoCredentials gives every member a login with the same password. The
// password is hashed once at cost and shared.
func DemoCredentials(members []models.Member, password string, cost int) ([]models.Credential, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}
	creds := make([]models.Credential, 0, len(members))
	for _, m := range members {
		creds = append(creds, models.Credential{MemberID: m.ID, Email: m.Email, Hash: hash})
	}
	return creds, nil
}

type credentialRepository struct {
	byEmail map[string]models.Credential
}

// NewCredentialRepository indexes creds by case-insensitive email.
func NewCredentialRepository(creds []models.Credential) repository.CredentialRepository {
	byEmail := make(map[string]models.Credential, len(creds))
	for _, c := range creds {
		byEmail[strings.ToLower(c.Email)] = c
	}
	return &credentialRepository{byEmail: byEmail}
}

func (r *credentialRepository) GetByEmail(ctx context.Context, email string) (models.Credential, error) {
	if err := ctx.Err(); err != nil {
		return models.Credential{}, err
	}
	cred, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return models.Credential{}, repository.ErrNotFound
	}
	return cred, nil
}
