package service

import (
	"context"
	"errors"
	"fmt"

	"pulsesurvey/internal/model"
	"pulsesurvey/internal/repository"
)

var ErrInvalidSurveyType = errors.New("invalid survey type definition")

// SurveyTypeService handles survey type authoring
type SurveyTypeService struct {
	surveyTypeRepo repository.SurveyTypeRepo
}

// NewSurveyTypeService creates a new survey type service
func NewSurveyTypeService(surveyTypeRepo repository.SurveyTypeRepo) *SurveyTypeService {
	return &SurveyTypeService{
		surveyTypeRepo: surveyTypeRepo,
	}
}

// validateSurveyType enforces the integrity rules analysis depends on:
// scale bounds are ordered and question ids are unique.
func validateSurveyType(st *model.SurveyType) error {
	if st.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidSurveyType)
	}
	if st.DefaultScale.Min > st.DefaultScale.Max {
		return fmt.Errorf("%w: default scale min exceeds max", ErrInvalidSurveyType)
	}
	if len(st.Questions) == 0 {
		return fmt.Errorf("%w: at least one question is required", ErrInvalidSurveyType)
	}

	seen := make(map[string]bool, len(st.Questions))
	for _, q := range st.Questions {
		if q.ID == "" {
			return fmt.Errorf("%w: question id is required", ErrInvalidSurveyType)
		}
		if seen[q.ID] {
			return fmt.Errorf("%w: duplicate question id %q", ErrInvalidSurveyType, q.ID)
		}
		seen[q.ID] = true
		if q.ScaleOverride != nil && q.ScaleOverride.Min > q.ScaleOverride.Max {
			return fmt.Errorf("%w: scale min exceeds max on question %q", ErrInvalidSurveyType, q.ID)
		}
	}
	return nil
}

// Create validates and stores a new survey type
func (s *SurveyTypeService) Create(ctx context.Context, surveyType *model.SurveyType) (string, error) {
	if err := validateSurveyType(surveyType); err != nil {
		return "", err
	}
	if surveyType.Version == 0 {
		surveyType.Version = 1
	}
	return s.surveyTypeRepo.Create(ctx, surveyType)
}

// GetByID retrieves a survey type by id
func (s *SurveyTypeService) GetByID(ctx context.Context, id string) (*model.SurveyType, error) {
	return s.surveyTypeRepo.GetByID(ctx, id)
}

// List retrieves all survey types
func (s *SurveyTypeService) List(ctx context.Context) ([]*model.SurveyType, error) {
	return s.surveyTypeRepo.List(ctx)
}

// Update validates and replaces an existing survey type
func (s *SurveyTypeService) Update(ctx context.Context, surveyType *model.SurveyType) error {
	if err := validateSurveyType(surveyType); err != nil {
		return err
	}
	return s.surveyTypeRepo.Update(ctx, surveyType)
}

// Delete removes a survey type
func (s *SurveyTypeService) Delete(ctx context.Context, id string) error {
	return s.surveyTypeRepo.Delete(ctx, id)
}
