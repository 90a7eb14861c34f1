package mongodb

import (
	"context"
	"errors"
	"fmt"

	"devclub-portal/app/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collMembers         = "members"
	collEvents          = "events"
	collStudentRankings = "student_rankings"
	collBranchRankings  = "branch_rankings"
	collYearRankings    = "year_rankings"
	collCredentials     = "credentials"
	collSiteContent     = "site_content"

	contentHighlights = "highlights"
	contentFeatures   = "features"
)

type highlightsDoc struct {
	ID   string            `bson:"_id"`
	Body models.Highlights `bson:"body"`
}

type featuresDoc struct {
	ID   string           `bson:"_id"`
	Body []models.Feature `bson:"body"`
}

// LoadDataset reads every collection into memory. Members and events come
// back in id order, rankings in rank order.
func LoadDataset(ctx context.Context, db *mongo.Database) (*models.Dataset, error) {
	ds := models.Dataset{
		Members:         []models.Member{},
		Events:          []models.Event{},
		StudentRankings: []models.StudentRanking{},
		BranchRankings:  []models.BranchRanking{},
		YearRankings:    []models.YearRanking{},
	}

	byID := bson.D{{Key: "id", Value: 1}}
	byRank := bson.D{{Key: "rank", Value: 1}, {Key: "id", Value: 1}}

	if err := findAll(ctx, db.Collection(collMembers), byID, &ds.Members); err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}
	if err := findAll(ctx, db.Collection(collEvents), byID, &ds.Events); err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	if err := findAll(ctx, db.Collection(collStudentRankings), byRank, &ds.StudentRankings); err != nil {
		return nil, fmt.Errorf("load student rankings: %w", err)
	}
	if err := findAll(ctx, db.Collection(collBranchRankings), byRank, &ds.BranchRankings); err != nil {
		return nil, fmt.Errorf("load branch rankings: %w", err)
	}
	if err := findAll(ctx, db.Collection(collYearRankings), byRank, &ds.YearRankings); err != nil {
		return nil, fmt.Errorf("load year rankings: %w", err)
	}

	content := db.Collection(collSiteContent)

	var highlights highlightsDoc
	err := content.FindOne(ctx, bson.M{"_id": contentHighlights}).Decode(&highlights)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("load highlights: %w", err)
	}
	ds.Highlights = highlights.Body

	var features featuresDoc
	err = content.FindOne(ctx, bson.M{"_id": contentFeatures}).Decode(&features)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("load features: %w", err)
	}
	ds.Features = features.Body

	return &ds, nil
}

func findAll(ctx context.Context, coll *mongo.Collection, sort bson.D, results interface{}) error {
	cursor, err := coll.Find(ctx, bson.D{}, options.Find().SetSort(sort))
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, results)
}
