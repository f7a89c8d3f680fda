// internal/intake/notifier/templates.go
package notifier

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"waitlist-service/internal/models"
)

var applicantTemplate = template.Must(template.New("applicant").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1a1a2e; max-width: 600px; margin: 0 auto;">
	<div style="background: linear-gradient(135deg, #1a1a2e, #16213e); color: #e8c547; padding: 24px; text-align: center;">
		<h1 style="margin: 0;">{{.ClubName}}</h1>
		<p style="margin: 4px 0 0; color: #ffffff;">{{.Tagline}}</p>
	</div>
	<div style="padding: 24px;">
		<h2>Welcome to the waitlist, {{.FullName}}!</h2>
		<p>Your application has been received and is now under review.</p>
		<p>Your application ID is <strong>{{.ApplicationID}}</strong>. Keep it for any follow-up.</p>
		<h3>What happens next</h3>
		<ol>
			<li>Our membership team reviews your application.</li>
			<li>You hear back from us within {{.ResponseTime}}.</li>
			<li>If selected, you receive an exclusive invitation to join.</li>
		</ol>
		<p>Membership is capped at {{.MaxMembers}} members. Joining the waitlist does not
		guarantee admission; every application is reviewed individually.</p>
		<p style="color: #666; font-size: 12px;">You are receiving this email because you
		applied to join {{.ClubName}}.</p>
	</div>
</body>
</html>`))

var adminTemplate = template.Must(template.New("admin").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1a1a2e; max-width: 600px; margin: 0 auto;">
	<h2>New waitlist application</h2>
	<p><strong>{{.FullName}}</strong> ({{.ApplicationID}}) applied on {{.SubmittedAt}}.</p>
	<table cellpadding="6" style="border-collapse: collapse;">
		<tr><td><strong>Age</strong></td><td>{{.Age}}</td></tr>
		<tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
		<tr><td><strong>Phone</strong></td><td>{{.Phone}}</td></tr>
		<tr><td><strong>City</strong></td><td>{{.City}}</td></tr>
		<tr><td><strong>Family business</strong></td><td>{{.FamilyBusiness}}</td></tr>
	</table>
	{{if .PersonalInterests}}<p><strong>Personal interests:</strong> {{.PersonalInterests}}</p>{{end}}
	{{if .NetworkingGoals}}<p><strong>Networking goals:</strong> {{.NetworkingGoals}}</p>{{end}}
	{{if .ReferralSource}}<p><strong>Referral source:</strong> {{.ReferralSource}}</p>{{end}}
	<p>Status: {{.Status}}</p>
</body>
</html>`))

type applicantData struct {
	ClubName      string
	Tagline       string
	FullName      string
	ApplicationID string
	ResponseTime  string
	MaxMembers    int
}

type adminData struct {
	FullName          string
	ApplicationID     string
	SubmittedAt       string
	Age               int
	Email             string
	Phone             string
	City              string
	FamilyBusiness    string
	PersonalInterests string
	NetworkingGoals   string
	ReferralSource    string
	Status            string
}

func (s *Service) renderApplicantEmail(rec models.ApplicationRecord) (string, string, error) {
	subject := fmt.Sprintf("Welcome to %s Waitlist! 🎉", s.config.ClubName)
	var buf bytes.Buffer
	err := applicantTemplate.Execute(&buf, applicantData{
		ClubName:      s.config.ClubName,
		Tagline:       s.config.Tagline,
		FullName:      rec.FullName,
		ApplicationID: rec.ApplicationID,
		ResponseTime:  s.config.ResponseTime,
		MaxMembers:    s.config.MaxMembers,
	})
	if err != nil {
		return "", "", fmt.Errorf("render applicant email: %w", err)
	}
	return subject, buf.String(), nil
}

func (s *Service) renderAdminEmail(rec models.ApplicationRecord) (string, string, error) {
	subject := fmt.Sprintf("New Waitlist Application - %s", rec.FullName)
	var buf bytes.Buffer
	err := adminTemplate.Execute(&buf, adminData{
		FullName:          rec.FullName,
		ApplicationID:     rec.ApplicationID,
		SubmittedAt:       formatSubmittedAt(rec.Timestamp),
		Age:               rec.Age,
		Email:             rec.Email,
		Phone:             rec.Phone,
		City:              rec.City,
		FamilyBusiness:    rec.FamilyBusiness,
		PersonalInterests: narrativeOrEmpty(rec.PersonalInterests),
		NetworkingGoals:   narrativeOrEmpty(rec.NetworkingGoals),
		ReferralSource:    referralOrEmpty(rec.ReferralSource),
		Status:            rec.Status,
	})
	if err != nil {
		return "", "", fmt.Errorf("render admin email: %w", err)
	}
	return subject, buf.String(), nil
}

// formatSubmittedAt renders the submission instant in a readable form for the
// admin digest. Unparseable timestamps pass through verbatim.
func formatSubmittedAt(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("Jan 2, 2006 at 3:04 PM MST")
}

// Placeholder values stand in for absent optional fields on the recording
// surface; the admin email omits those sections instead.
func narrativeOrEmpty(v string) string {
	if v == models.PlaceholderNotProvided {
		return ""
	}
	return v
}

func referralOrEmpty(v string) string {
	if v == models.PlaceholderDirectApplication {
		return ""
	}
	return v
}
