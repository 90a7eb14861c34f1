package postgresql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"devclub-portal/app/models"

	"github.com/lib/pq"
)

const (
	contentHighlights = "highlights"
	contentFeatures   = "features"
)

// LoadDataset reads every record set in display order. The caller wraps the
// result with repository.NewDatasetRepository.
func LoadDataset(ctx context.Context, db *sql.DB) (*models.Dataset, error) {
	var ds models.Dataset
	var err error

	if ds.Members, err = loadMembers(ctx, db); err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}
	if ds.Events, err = loadEvents(ctx, db); err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	if ds.StudentRankings, err = loadStudentRankings(ctx, db); err != nil {
		return nil, fmt.Errorf("load student rankings: %w", err)
	}
	if ds.BranchRankings, err = loadBranchRankings(ctx, db); err != nil {
		return nil, fmt.Errorf("load branch rankings: %w", err)
	}
	if ds.YearRankings, err = loadYearRankings(ctx, db); err != nil {
		return nil, fmt.Errorf("load year rankings: %w", err)
	}
	if err = loadContent(ctx, db, contentHighlights, &ds.Highlights); err != nil {
		return nil, fmt.Errorf("load highlights: %w", err)
	}
	if err = loadContent(ctx, db, contentFeatures, &ds.Features); err != nil {
		return nil, fmt.Errorf("load features: %w", err)
	}
	return &ds, nil
}

func loadMembers(ctx context.Context, db *sql.DB) ([]models.Member, error) {
	query := `
        SELECT id, name, role, branch, year, email, skills, join_date, bio, image
        FROM members
        ORDER BY id ASC
    `
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []models.Member{}
	for rows.Next() {
		var m models.Member
		var skills pq.StringArray
		var image sql.NullString
		if err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Role,
			&m.Branch,
			&m.Year,
			&m.Email,
			&skills,
			&m.JoinDate,
			&m.Bio,
			&image,
		); err != nil {
			return nil, err
		}
		m.Skills = []string(skills)
		if m.Skills == nil {
			m.Skills = []string{}
		}
		m.Image = nullableString(image)
		results = append(results, m)
	}
	return results, rows.Err()
}

func loadEvents(ctx context.Context, db *sql.DB) ([]models.Event, error) {
	query := `
        SELECT id, title, date, time, description, status, category, attendees, location, image
        FROM events
        ORDER BY id ASC
    `
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []models.Event{}
	for rows.Next() {
		var e models.Event
		var image sql.NullString
		if err := rows.Scan(
			&e.ID,
			&e.Title,
			&e.Date,
			&e.Time,
			&e.Description,
			&e.Status,
			&e.Category,
			&e.Attendees,
			&e.Location,
			&image,
		); err != nil {
			return nil, err
		}
		e.Image = nullableString(image)
		results = append(results, e)
	}
	return results, rows.Err()
}

func loadStudentRankings(ctx context.Context, db *sql.DB) ([]models.StudentRanking, error) {
	query := `
        SELECT id, rank, name, branch, year, points, achievements, contests, level
        FROM student_rankings
        ORDER BY rank ASC, id ASC
    `
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []models.StudentRanking{}
	for rows.Next() {
		var s models.StudentRanking
		if err := rows.Scan(&s.ID, &s.Rank, &s.Name, &s.Branch, &s.Year, &s.Points, &s.Achievements, &s.Contests, &s.Level); err != nil {
			return nil, err
		}
		results = append(results, s)
	}
	return results, rows.Err()
}

func loadBranchRankings(ctx context.Context, db *sql.DB) ([]models.BranchRanking, error) {
	query := `
        SELECT id, rank, branch, total_members, total_points, average_points, achievements, contests, level
        FROM branch_rankings
        ORDER BY rank ASC, id ASC
    `
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []models.BranchRanking{}
	for rows.Next() {
		var b models.BranchRanking
		if err := rows.Scan(&b.ID, &b.Rank, &b.Branch, &b.TotalMembers, &b.TotalPoints, &b.AveragePoints, &b.Achievements, &b.Contests, &b.Level); err != nil {
			return nil, err
		}
		results = append(results, b)
	}
	return results, rows.Err()
}

func loadYearRankings(ctx context.Context, db *sql.DB) ([]models.YearRanking, error) {
	query := `
        SELECT id, rank, year, total_members, total_points, average_points, achievements, contests, level
        FROM year_rankings
        ORDER BY rank ASC, id ASC
    `
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []models.YearRanking{}
	for rows.Next() {
		var y models.YearRanking
		if err := rows.Scan(&y.ID, &y.Rank, &y.Year, &y.TotalMembers, &y.TotalPoints, &y.AveragePoints, &y.Achievements, &y.Contests, &y.Level); err != nil {
			return nil, err
		}
		results = append(results, y)
	}
	return results, rows.Err()
}

// loadContent decodes a JSONB document from site_content. A missing key
// leaves dst untouched.
func loadContent(ctx context.Context, db *sql.DB, key string, dst interface{}) error {
	var body []byte
	err := db.QueryRowContext(ctx, `SELECT body FROM site_content WHERE key = $1`, key).Scan(&body)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(body, dst)
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
