// Package memory loads the portal dataset from fixtures compiled into the
// binary. It is the default data source and the input for seeding databases.
package memory

import (
	"embed"
	"encoding/json"
	"fmt"

	"devclub-portal/app/models"
)

//go:embed fixtures/*.json
var fixtures embed.FS

type homeFixture struct {
	Highlights models.Highlights `json:"highlights"`
	Features   []models.Feature  `json:"features"`
}

// LoadDataset decodes the embedded fixtures.
func LoadDataset() (*models.Dataset, error) {
	var ds models.Dataset
	var home homeFixture

	files := []struct {
		name string
		dst  interface{}
	}{
		{"members.json", &ds.Members},
		{"events.json", &ds.Events},
		{"student_rankings.json", &ds.StudentRankings},
		{"branch_rankings.json", &ds.BranchRankings},
		{"year_rankings.json", &ds.YearRankings},
		{"home.json", &home},
	}
	for _, f := range files {
		content, err := fixtures.ReadFile("fixtures/" + f.name)
		if err != nil {
			return nil, fmt.Errorf("failed to read fixture %s: %w", f.name, err)
		}
		if err := json.Unmarshal(content, f.dst); err != nil {
			return nil, fmt.Errorf("failed to unmarshal fixture %s: %w", f.name, err)
		}
	}

	ds.Highlights = home.Highlights
	ds.Features = home.Features
	return &ds, nil
}
