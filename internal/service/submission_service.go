package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"pulsesurvey/internal/cache"
	"pulsesurvey/internal/model"
	"pulsesurvey/internal/repository"
)

var (
	ErrMissingOrganization = errors.New("submission requires an organization id")
	ErrEmptySubmission     = errors.New("submission has no answers")
)

// SubmissionService records incoming survey submissions
type SubmissionService struct {
	submissionRepo repository.SubmissionRepo
	analyticsCache cache.AnalyticsCache
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(submissionRepo repository.SubmissionRepo, analyticsCache cache.AnalyticsCache) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		analyticsCache: analyticsCache,
	}
}

// Submit validates and persists a submission, then drops any cached
// analytics for the organization. Anonymous link responses carry no user
// id; those get a generated one. Ratings are stored as supplied, including
// out-of-range values, which analysis excludes on its own.
func (s *SubmissionService) Submit(ctx context.Context, submission *model.Submission) error {
	if submission.OrganizationID == "" {
		return ErrMissingOrganization
	}
	if len(submission.Answers) == 0 {
		return ErrEmptySubmission
	}
	if submission.UserID == "" {
		submission.UserID = "anon_" + uuid.New().String()[:8]
	}

	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return err
	}

	if s.analyticsCache != nil {
		if err := s.analyticsCache.InvalidateOrganization(ctx, submission.OrganizationID); err != nil {
			log.Printf("analytics cache invalidation failed: %v", err)
		}
	}
	return nil
}

// GetByID returns a stored submission, or nil when absent
func (s *SubmissionService) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	return s.submissionRepo.GetByID(ctx, id)
}
