// internal/models/application.go
package models

// ApplicationSubmission is the payload collected from the membership
// application form. Optional narrative fields are empty when not provided.
type ApplicationSubmission struct {
	FullName          string `json:"fullName"`
	Age               int    `json:"age"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	City              string `json:"city"`
	FamilyBusiness    string `json:"familyBusiness"`
	PersonalInterests string `json:"personalInterests,omitempty"`
	NetworkingGoals   string `json:"networkingGoals,omitempty"`
	ReferralSource    string `json:"referralSource,omitempty"`
	Timestamp         string `json:"timestamp,omitempty"` // ISO 8601, set at capture time
}

// ApplicationRecord is a submission enriched by the recorder with a generated
// identifier and review state. It persists as one row on the recording surface.
type ApplicationRecord struct {
	ApplicationID     string `json:"applicationId"`
	Timestamp         string `json:"timestamp"`
	Status            string `json:"status"`
	FullName          string `json:"fullName"`
	Age               int    `json:"age"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	City              string `json:"city"`
	FamilyBusiness    string `json:"familyBusiness"`
	PersonalInterests string `json:"personalInterests"`
	NetworkingGoals   string `json:"networkingGoals"`
	ReferralSource    string `json:"referralSource"`
	ReviewNotes       string `json:"reviewNotes"`
}

// StatusUnderReview is the only status this pipeline ever writes. Later
// transitions happen through manual admin action outside this system.
const StatusUnderReview = "Under Review"

// Placeholders persisted for absent optional fields so downstream consumers
// can distinguish "not provided" from an empty string.
const (
	PlaceholderNotProvided       = "Not provided"
	PlaceholderDirectApplication = "Direct application"
)
