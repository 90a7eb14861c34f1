package mongodb

import (
	"context"
	"errors"
	"strings"

	"devclub-portal/app/models"
	"devclub-portal/app/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type credentialRepository struct {
	collection *mongo.Collection
}

func NewCredentialRepository(db *mongo.Database) repository.CredentialRepository {
	return &credentialRepository{collection: db.Collection(collCredentials)}
}

// GetByEmail looks up the lower-cased email written by Seed.
func (r *credentialRepository) GetByEmail(ctx context.Context, email string) (models.Credential, error) {
	var cred models.Credential
	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email))}
	err := r.collection.FindOne(ctx, filter).Decode(&cred)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Credential{}, repository.ErrNotFound
	}
	return cred, err
}
