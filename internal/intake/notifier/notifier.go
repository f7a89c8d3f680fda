// internal/intake/notifier/notifier.go
package notifier

import (
	"context"
	"fmt"
	"time"

	"waitlist-service/internal/common/logger"
	"waitlist-service/internal/common/metrics"
	"waitlist-service/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/google/uuid"
)

const (
	StatusSent     = "sent"
	StatusFailed   = "failed"
	StatusDisabled = "disabled"
)

// Define interfaces for mocking
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Result describes one dispatch attempt. Err is set when the attempt was made
// and failed; a disabled channel yields StatusDisabled and no error.
type Result struct {
	NotificationID string
	Recipient      string
	Status         string
	SentAt         string
	Err            error
}

// Service sends the two confirmation messages for an accepted application:
// one to the applicant, one to the club admin. Dispatch outcomes are
// independent of each other and never fail the caller.
type Service struct {
	config    *Config
	sesClient SESService
	snsClient SNSService
	logger    logger.Logger
}

func NewService(config *Config, sesClient SESService, snsClient SNSService, log logger.Logger) *Service {
	return &Service{
		config:    config,
		sesClient: sesClient,
		snsClient: snsClient,
		logger:    log.WithFields(map[string]interface{}{"component": "notifier"}),
	}
}

// NotifySubmission dispatches the applicant confirmation and the admin alert.
// Both results are returned; neither aborts the other.
func (s *Service) NotifySubmission(ctx context.Context, rec models.ApplicationRecord) (Result, Result) {
	applicant := s.sendApplicantEmail(ctx, rec)
	admin := s.sendAdminEmail(ctx, rec)

	if s.config.SMSEnabled && s.config.AdminPhone != "" {
		if err := s.sendSMS(ctx, s.config.AdminPhone, fmt.Sprintf("New waitlist application %s from %s", rec.ApplicationID, rec.FullName)); err != nil {
			s.logger.Error("admin SMS send failed", map[string]interface{}{
				"error":         err,
				"applicationId": rec.ApplicationID,
			})
			metrics.NotificationFailures.WithLabelValues("admin_sms").Inc()
		}
	}

	return applicant, admin
}

func (s *Service) sendApplicantEmail(ctx context.Context, rec models.ApplicationRecord) Result {
	result := Result{
		NotificationID: uuid.New().String(),
		Recipient:      rec.Email,
		SentAt:         time.Now().UTC().Format(time.RFC3339),
	}

	if !s.config.EmailEnabled || rec.Email == "" {
		result.Status = StatusDisabled
		return result
	}

	subject, body, err := s.renderApplicantEmail(rec)
	if err == nil {
		err = s.sendEmail(ctx, rec.Email, subject, body)
	}
	if err != nil {
		s.logger.Error("applicant email send failed", map[string]interface{}{
			"error":         err,
			"applicationId": rec.ApplicationID,
		})
		metrics.NotificationFailures.WithLabelValues("applicant").Inc()
		result.Status = StatusFailed
		result.Err = err
		return result
	}

	result.Status = StatusSent
	return result
}

func (s *Service) sendAdminEmail(ctx context.Context, rec models.ApplicationRecord) Result {
	result := Result{
		NotificationID: uuid.New().String(),
		Recipient:      s.config.AdminEmail,
		SentAt:         time.Now().UTC().Format(time.RFC3339),
	}

	if !s.config.EmailEnabled || s.config.AdminEmail == "" {
		result.Status = StatusDisabled
		return result
	}

	subject, body, err := s.renderAdminEmail(rec)
	if err == nil {
		err = s.sendEmail(ctx, s.config.AdminEmail, subject, body)
	}
	if err != nil {
		s.logger.Error("admin email send failed", map[string]interface{}{
			"error":         err,
			"applicationId": rec.ApplicationID,
		})
		metrics.NotificationFailures.WithLabelValues("admin").Inc()
		result.Status = StatusFailed
		result.Err = err
		return result
	}

	result.Status = StatusSent
	return result
}

func (s *Service) sendEmail(ctx context.Context, to, subject, body string) error {
	_, err := s.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(s.config.FromEmail),
	})
	return err
}

func (s *Service) sendSMS(ctx context.Context, to, message string) error {
	_, err := s.snsClient.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(to),
		Message:     aws.String(message),
	})
	return err
}
