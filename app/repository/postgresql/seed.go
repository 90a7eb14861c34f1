package postgresql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"devclub-portal/app/models"

	"github.com/lib/pq"
)

// Seed creates the schema and upserts the dataset and credentials in a single
// transaction. Running it twice leaves the same rows behind.
func Seed(ctx context.Context, db *sql.DB, ds *models.Dataset, creds []models.Credential) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, m := range ds.Members {
		_, err := tx.ExecContext(ctx, `
            INSERT INTO members (id, name, role, branch, year, email, skills, join_date, bio, image)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
            ON CONFLICT (id) DO UPDATE SET
                name = EXCLUDED.name, role = EXCLUDED.role, branch = EXCLUDED.branch,
                year = EXCLUDED.year, email = EXCLUDED.email, skills = EXCLUDED.skills,
                join_date = EXCLUDED.join_date, bio = EXCLUDED.bio, image = EXCLUDED.image
        `, m.ID, m.Name, m.Role, m.Branch, m.Year, m.Email, pq.Array(m.Skills), m.JoinDate, m.Bio, m.Image)
		if err != nil {
			return fmt.Errorf("insert member %d: %w", m.ID, err)
		}
	}

	for _, c := range creds {
		_, err := tx.ExecContext(ctx, `
            INSERT INTO member_credentials (member_id, email, password_hash)
            VALUES ($1, $2, $3)
            ON CONFLICT (member_id) DO UPDATE SET email = EXCLUDED.email, password_hash = EXCLUDED.password_hash
        `, c.MemberID, c.Email, c.Hash)
		if err != nil {
			return fmt.Errorf("insert credential for member %d: %w", c.MemberID, err)
		}
	}

	for _, e := range ds.Events {
		_, err := tx.ExecContext(ctx, `
            INSERT INTO events (id, title, date, time, description, status, category, attendees, location, image)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
            ON CONFLICT (id) DO UPDATE SET
                title = EXCLUDED.title, date = EXCLUDED.date, time = EXCLUDED.time,
                description = EXCLUDED.description, status = EXCLUDED.status,
                category = EXCLUDED.category, attendees = EXCLUDED.attendees,
                location = EXCLUDED.location, image = EXCLUDED.image
        `, e.ID, e.Title, e.Date, e.Time, e.Description, e.Status, e.Category, e.Attendees, e.Location, e.Image)
		if err != nil {
			return fmt.Errorf("insert event %d: %w", e.ID, err)
		}
	}

	for _, s := range ds.StudentRankings {
		_, err := tx.ExecContext(ctx, `
            INSERT INTO student_rankings (id, rank, name, branch, year, points, achievements, contests, level)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
            ON CONFLICT (id) DO UPDATE SET
                rank = EXCLUDED.rank, name = EXCLUDED.name, branch = EXCLUDED.branch,
                year = EXCLUDED.year, points = EXCLUDED.points, achievements = EXCLUDED.achievements,
                contests = EXCLUDED.contests, level = EXCLUDED.level
        `, s.ID, s.Rank, s.Name, s.Branch, s.Year, s.Points, s.Achievements, s.Contests, s.Level)
		if err != nil {
			return fmt.Errorf("insert student ranking %d: %w", s.ID, err)
		}
	}

	for _, b := range ds.BranchRankings {
		_, err := tx.ExecContext(ctx, `
            INSERT INTO branch_rankings (id, rank, branch, total_members, total_points, average_points, achievements, contests, level)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
            ON CONFLICT (id) DO UPDATE SET
                rank = EXCLUDED.rank, branch = EXCLUDED.branch, total_members = EXCLUDED.total_members,
                total_points = EXCLUDED.total_points, average_points = EXCLUDED.average_points,
                achievements = EXCLUDED.achievements, contests = EXCLUDED.contests, level = EXCLUDED.level
        `, b.ID, b.Rank, b.Branch, b.TotalMembers, b.TotalPoints, b.AveragePoints, b.Achievements, b.Contests, b.Level)
		if err != nil {
			return fmt.Errorf("insert branch ranking %d: %w", b.ID, err)
		}
	}

	for _, y := range ds.YearRankings {
		_, err := tx.ExecContext(ctx, `
            INSERT INTO year_rankings (id, rank, year, total_members, total_points, average_points, achievements, contests, level)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
            ON CONFLICT (id) DO UPDATE SET
                rank = EXCLUDED.rank, year = EXCLUDED.year, total_members = EXCLUDED.total_members,
                total_points = EXCLUDED.total_points, average_points = EXCLUDED.average_points,
                achievements = EXCLUDED.achievements, contests = EXCLUDED.contests, level = EXCLUDED.level
        `, y.ID, y.Rank, y.Year, y.TotalMembers, y.TotalPoints, y.AveragePoints, y.Achievements, y.Contests, y.Level)
		if err != nil {
			return fmt.Errorf("insert year ranking %d: %w", y.ID, err)
		}
	}

	content := map[string]interface{}{
		contentHighlights: ds.Highlights,
		contentFeatures:   ds.Features,
	}
	for key, value := range content {
		body, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		_, err = tx.ExecContext(ctx, `
            INSERT INTO site_content (key, body) VALUES ($1, $2)
            ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body
        `, key, string(body))
		if err != nil {
			return fmt.Errorf("insert %s: %w", key, err)
		}
	}

	return tx.Commit()
}
