// internal/intake/recorder/postgres.go
package recorder

import (
	"context"
	"database/sql"
	"fmt"

	"waitlist-service/internal/models"
)

// PostgresSurface persists applications in a single table whose columns mirror
// the 13-column sheet layout. Header initialization maps to idempotent table
// creation.
type PostgresSurface struct {
	db *sql.DB
}

func NewPostgresSurface(db *sql.DB) *PostgresSurface {
	return &PostgresSurface{db: db}
}

func (s *PostgresSurface) EnsureHeader(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS applications (
			application_id     TEXT PRIMARY KEY,
			submitted_at       TEXT NOT NULL,
			status             TEXT NOT NULL,
			full_name          TEXT NOT NULL,
			age                INTEGER NOT NULL,
			email              TEXT NOT NULL,
			phone              TEXT NOT NULL,
			city               TEXT NOT NULL,
			family_business    TEXT NOT NULL,
			personal_interests TEXT NOT NULL,
			networking_goals   TEXT NOT NULL,
			referral_source    TEXT NOT NULL,
			review_notes       TEXT NOT NULL,
			inserted_at        BIGSERIAL
		)`)
	if err != nil {
		return fmt.Errorf("initialize recording surface: %w", err)
	}
	return nil
}

func (s *PostgresSurface) Append(ctx context.Context, rec models.ApplicationRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO applications (
			application_id, submitted_at, status, full_name, age, email,
			phone, city, family_business, personal_interests,
			networking_goals, referral_source, review_notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		rec.ApplicationID,
		rec.Timestamp,
		rec.Status,
		rec.FullName,
		rec.Age,
		rec.Email,
		rec.Phone,
		rec.City,
		rec.FamilyBusiness,
		rec.PersonalInterests,
		rec.NetworkingGoals,
		rec.ReferralSource,
		rec.ReviewNotes,
	)
	if err != nil {
		return fmt.Errorf("append application row: %w", err)
	}
	return nil
}

func (s *PostgresSurface) Rows(ctx context.Context) ([]models.ApplicationRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT application_id, submitted_at, status, full_name, age, email,
		       phone, city, family_business, personal_interests,
		       networking_goals, referral_source, review_notes
		FROM applications
		ORDER BY inserted_at`)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}
	defer rows.Close()

	var out []models.ApplicationRecord
	for rows.Next() {
		var rec models.ApplicationRecord
		if err := rows.Scan(
			&rec.ApplicationID,
			&rec.Timestamp,
			&rec.Status,
			&rec.FullName,
			&rec.Age,
			&rec.Email,
			&rec.Phone,
			&rec.City,
			&rec.FamilyBusiness,
			&rec.PersonalInterests,
			&rec.NetworkingGoals,
			&rec.ReferralSource,
			&rec.ReviewNotes,
		); err != nil {
			return nil, fmt.Errorf("scan application row: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
