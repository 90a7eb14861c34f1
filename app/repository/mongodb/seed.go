package mongodb

import (
	"context"
	"fmt"
	"strings"

	"devclub-portal/app/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seed upserts the dataset and credentials keyed by record id, so it can be
// re-run safely.
func Seed(ctx context.Context, db *mongo.Database, ds *models.Dataset, creds []models.Credential) error {
	upsert := options.Replace().SetUpsert(true)

	_, err := db.Collection(collCredentials).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create credentials index: %w", err)
	}

	members := db.Collection(collMembers)
	for _, m := range ds.Members {
		if _, err := members.ReplaceOne(ctx, bson.M{"id": m.ID}, m, upsert); err != nil {
			return fmt.Errorf("upsert member %d: %w", m.ID, err)
		}
	}

	credentials := db.Collection(collCredentials)
	for _, c := range creds {
		c.Email = strings.ToLower(c.Email)
		if _, err := credentials.ReplaceOne(ctx, bson.M{"member_id": c.MemberID}, c, upsert); err != nil {
			return fmt.Errorf("upsert credential for member %d: %w", c.MemberID, err)
		}
	}

	events := db.Collection(collEvents)
	for _, e := range ds.Events {
		if _, err := events.ReplaceOne(ctx, bson.M{"id": e.ID}, e, upsert); err != nil {
			return fmt.Errorf("upsert event %d: %w", e.ID, err)
		}
	}

	students := db.Collection(collStudentRankings)
	for _, s := range ds.StudentRankings {
		if _, err := students.ReplaceOne(ctx, bson.M{"id": s.ID}, s, upsert); err != nil {
			return fmt.Errorf("upsert student ranking %d: %w", s.ID, err)
		}
	}

	branches := db.Collection(collBranchRankings)
	for _, b := range ds.BranchRankings {
		if _, err := branches.ReplaceOne(ctx, bson.M{"id": b.ID}, b, upsert); err != nil {
			return fmt.Errorf("upsert branch ranking %d: %w", b.ID, err)
		}
	}

	years := db.Collection(collYearRankings)
	for _, y := range ds.YearRankings {
		if _, err := years.ReplaceOne(ctx, bson.M{"id": y.ID}, y, upsert); err != nil {
			return fmt.Errorf("upsert year ranking %d: %w", y.ID, err)
		}
	}

	content := db.Collection(collSiteContent)
	if _, err := content.ReplaceOne(ctx, bson.M{"_id": contentHighlights},
		highlightsDoc{ID: contentHighlights, Body: ds.Highlights}, upsert); err != nil {
		return fmt.Errorf("upsert highlights: %w", err)
	}
	if _, err := content.ReplaceOne(ctx, bson.M{"_id": contentFeatures},
		featuresDoc{ID: contentFeatures, Body: ds.Features}, upsert); err != nil {
		return fmt.Errorf("upsert features: %w", err)
	}

	return nil
}
