// internal/intake/recorder/surface.go
package recorder

import (
	"context"
	"strconv"
	"sync"

	"waitlist-service/internal/models"
)

// HeaderColumns is the fixed 13-column layout of the recording surface.
var HeaderColumns = []string{
	"Application ID",
	"Timestamp",
	"Status",
	"Full Name",
	"Age",
	"Email",
	"Phone",
	"City",
	"Family Business",
	"Personal Interests",
	"Networking Goals",
	"Referral Source",
	"Review Notes",
}

// Surface is the durable append-only row store holding all applications.
type Surface interface {
	// EnsureHeader initializes the surface once. Calling it against an
	// already-initialized surface is a no-op.
	EnsureHeader(ctx context.Context) error
	// Append writes one application as a row in the fixed column order.
	Append(ctx context.Context, rec models.ApplicationRecord) error
	// Rows returns every recorded application, in insertion order.
	Rows(ctx context.Context) ([]models.ApplicationRecord, error)
}

// MemorySurface is an in-memory sheet: a header row followed by data rows,
// 13 cells each. Used in tests and as the literal model of the spreadsheet
// the recorder originally wrote to.
type MemorySurface struct {
	mu    sync.Mutex
	cells [][]string
}

func NewMemorySurface() *MemorySurface {
	return &MemorySurface{}
}

func (s *MemorySurface) EnsureHeader(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cells) == 0 {
		header := make([]string, len(HeaderColumns))
		copy(header, HeaderColumns)
		s.cells = append(s.cells, header)
	}
	return nil
}

func (s *MemorySurface) Append(_ context.Context, rec models.ApplicationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cells = append(s.cells, recordToRow(rec))
	return nil
}

func (s *MemorySurface) Rows(_ context.Context) ([]models.ApplicationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.ApplicationRecord
	for i, row := range s.cells {
		if i == 0 {
			continue // header
		}
		out = append(out, rowToRecord(row))
	}
	return out, nil
}

// Cells exposes the raw sheet, header included, for tests.
func (s *MemorySurface) Cells() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([][]string, len(s.cells))
	for i, row := range s.cells {
		out[i] = append([]string(nil), row...)
	}
	return out
}

func recordToRow(rec models.ApplicationRecord) []string {
	return []string{
		rec.ApplicationID,
		rec.Timestamp,
		rec.Status,
		rec.FullName,
		strconv.Itoa(rec.Age),
		rec.Email,
		rec.Phone,
		rec.City,
		rec.FamilyBusiness,
		rec.PersonalInterests,
		rec.NetworkingGoals,
		rec.ReferralSource,
		rec.ReviewNotes,
	}
}

func rowToRecord(row []string) models.ApplicationRecord {
	age, _ := strconv.Atoi(row[4])
	return models.ApplicationRecord{
		ApplicationID:     row[0],
		Timestamp:         row[1],
		Status:            row[2],
		FullName:          row[3],
		Age:               age,
		Email:             row[5],
		Phone:             row[6],
		City:              row[7],
		FamilyBusiness:    row[8],
		PersonalInterests: row[9],
		NetworkingGoals:   row[10],
		ReferralSource:    row[11],
		ReviewNotes:       row[12],
	}
}
