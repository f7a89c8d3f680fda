// internal/intake/recorder/postgres_test.go
package recorder

import (
	"context"
	"errors"
	"testing"

	"waitlist-service/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() models.ApplicationRecord {
	return models.ApplicationRecord{
		ApplicationID:     "EBC-LWW29HC0-A1B2C",
		Timestamp:         "2024-06-01T12:00:00Z",
		Status:            models.StatusUnderReview,
		FullName:          "Asha Rao",
		Age:               24,
		Email:             "asha@example.com",
		Phone:             "+911234567890",
		City:              "Mumbai",
		FamilyBusiness:    "Textiles",
		PersonalInterests: models.PlaceholderNotProvided,
		NetworkingGoals:   models.PlaceholderNotProvided,
		ReferralSource:    models.PlaceholderDirectApplication,
		ReviewNotes:       "",
	}
}

func TestPostgresSurface_EnsureHeader(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS applications").
		WillReturnResult(sqlmock.NewResult(0, 0))

	surface := NewPostgresSurface(db)
	assert.NoError(t, surface.EnsureHeader(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSurface_EnsureHeaderIdempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS applications").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS applications").
		WillReturnResult(sqlmock.NewResult(0, 0))

	surface := NewPostgresSurface(db)
	assert.NoError(t, surface.EnsureHeader(context.Background()))
	assert.NoError(t, surface.EnsureHeader(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSurface_Append(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rec := testRecord()
	mock.ExpectExec("INSERT INTO applications").
		WithArgs(
			rec.ApplicationID, rec.Timestamp, rec.Status, rec.FullName,
			rec.Age, rec.Email, rec.Phone, rec.City, rec.FamilyBusiness,
			rec.PersonalInterests, rec.NetworkingGoals, rec.ReferralSource,
			rec.ReviewNotes,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	surface := NewPostgresSurface(db)
	assert.NoError(t, surface.Append(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSurface_AppendError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO applications").
		WillReturnError(errors.New("connection reset"))

	surface := NewPostgresSurface(db)
	err = surface.Append(context.Background(), testRecord())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "append application row")
}

func TestPostgresSurface_Rows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rec := testRecord()
	rows := sqlmock.NewRows([]string{
		"application_id", "submitted_at", "status", "full_name", "age",
		"email", "phone", "city", "family_business", "personal_interests",
		"networking_goals", "referral_source", "review_notes",
	}).AddRow(
		rec.ApplicationID, rec.Timestamp, rec.Status, rec.FullName, rec.Age,
		rec.Email, rec.Phone, rec.City, rec.FamilyBusiness,
		rec.PersonalInterests, rec.NetworkingGoals, rec.ReferralSource,
		rec.ReviewNotes,
	)

	mock.ExpectQuery("SELECT (.+) FROM applications").WillReturnRows(rows)

	surface := NewPostgresSurface(db)
	got, err := surface.Rows(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rec, got[0])
}
