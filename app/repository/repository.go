// Package repository defines the data access contracts used by the services
// and the dataset-backed implementation shared by every data source.
package repository

import (
	"context"
	"errors"

	"devclub-portal/app/models"
)

var ErrNotFound = errors.New("record not found")

// ClubRepository serves the read-only record sets. Returned slices are shared
// and must not be modified by callers.
type ClubRepository interface {
	Members(ctx context.Context) ([]models.Member, error)
	Events(ctx context.Context) ([]models.Event, error)
	StudentRankings(ctx context.Context) ([]models.StudentRanking, error)
	BranchRankings(ctx context.Context) ([]models.BranchRanking, error)
	YearRankings(ctx context.Context) ([]models.YearRanking, error)
	Highlights(ctx context.Context) (models.Highlights, error)
	Features(ctx context.Context) ([]models.Feature, error)
}

type CredentialRepository interface {
	GetByEmail(ctx context.Context, email string) (models.Credential, error)
}

type datasetRepository struct {
	ds *models.Dataset
}

// NewDatasetRepository serves a dataset that was loaded once at startup.
func NewDatasetRepository(ds *models.Dataset) ClubRepository {
	if ds == nil {
		ds = &models.Dataset{}
	}
	return &datasetRepository{ds: ds}
}

func (r *datasetRepository) Members(ctx context.Context) ([]models.Member, error) {
	return r.ds.Members, ctx.Err()
}

func (r *datasetRepository) Events(ctx context.Context) ([]models.Event, error) {
	return r.ds.Events, ctx.Err()
}

func (r *datasetRepository) StudentRankings(ctx context.Context) ([]models.StudentRanking, error) {
	return r.ds.StudentRankings, ctx.Err()
}

func (r *datasetRepository) BranchRankings(ctx context.Context) ([]models.BranchRanking, error) {
	return r.ds.BranchRankings, ctx.Err()
}

func (r *datasetRepository) YearRankings(ctx context.Context) ([]models.YearRanking, error) {
	return r.ds.YearRankings, ctx.Err()
}

func (r *datasetRepository) Highlights(ctx context.Context) (models.Highlights, error) {
	return r.ds.Highlights, ctx.Err()
}

func (r *datasetRepository) Features(ctx context.Context) ([]models.Feature, error) {
	return r.ds.Features, ctx.Err()
}
