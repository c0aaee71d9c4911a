package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"pulsesurvey/internal/cache"
	"pulsesurvey/internal/model"
	"pulsesurvey/internal/repository"
)

// AnalyticsQuery selects which submissions and survey definition an
// analytics run covers. Zero-value fields are not applied. QuestionIDs
// narrows the legacy question set and is ignored when a survey type is
// requested explicitly.
type AnalyticsQuery struct {
	OrganizationID   string
	OrganizationName string
	SurveyTypeID     string
	QuestionIDs      []string
}

// AnalyticsService computes survey analytics over stored submissions,
// interpreted through the survey type definition that produced them.
type AnalyticsService struct {
	submissionRepo repository.SubmissionRepo
	surveyTypeRepo repository.SurveyTypeRepo
	analyticsCache cache.AnalyticsCache
}

// NewAnalyticsService creates a new analytics service. The cache may be nil
// to always compute fresh results.
func NewAnalyticsService(
	submissionRepo repository.SubmissionRepo,
	surveyTypeRepo repository.SurveyTypeRepo,
	analyticsCache cache.AnalyticsCache,
) *AnalyticsService {
	return &AnalyticsService{
		submissionRepo: submissionRepo,
		surveyTypeRepo: surveyTypeRepo,
		analyticsCache: analyticsCache,
	}
}

// GetSurveyAnalytics is the analytics entry point. It resolves the active
// survey definition (or the fixed legacy one), pulls the matching
// submissions, and composes per-factor, per-question and demographic
// rollups into one result. Zero submissions is a valid state and yields a
// fully-formed zeroed result, never an error.
func (s *AnalyticsService) GetSurveyAnalytics(ctx context.Context, query AnalyticsQuery) (*model.SurveyAnalytics, error) {
	cacheable := s.analyticsCache != nil && len(query.QuestionIDs) == 0
	if cacheable {
		cached, err := s.analyticsCache.Get(ctx, query.OrganizationID, query.SurveyTypeID)
		if err != nil {
			log.Printf("analytics cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	// The submission and definition reads are independent; fan out and
	// join. Either failure fails the whole call.
	var (
		wg          sync.WaitGroup
		submissions []*model.Submission
		subErr      error
		surveyType  *model.SurveyType
		defErr      error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		submissions, subErr = s.submissionRepo.Find(ctx, repository.SubmissionFilter{
			OrganizationID: query.OrganizationID,
			SurveyTypeID:   query.SurveyTypeID,
		})
	}()
	go func() {
		defer wg.Done()
		surveyType, defErr = s.resolveSurveyType(ctx, query)
	}()
	wg.Wait()

	if defErr != nil {
		return nil, defErr
	}
	if subErr != nil {
		return nil, fmt.Errorf("%w: fetch submissions: %v", ErrAggregationFailed, subErr)
	}

	analytics := s.compute(surveyType, submissions, query.OrganizationName)

	if cacheable {
		if err := s.analyticsCache.Set(ctx, query.OrganizationID, query.SurveyTypeID, analytics); err != nil {
			log.Printf("analytics cache write failed: %v", err)
		}
	}
	return analytics, nil
}

// resolveSurveyType returns the requested definition, or the compiled-in
// legacy engagement definition when none was requested. An explicitly
// requested survey type that does not exist is fatal, never silently
// downgraded to legacy.
func (s *AnalyticsService) resolveSurveyType(ctx context.Context, query AnalyticsQuery) (*model.SurveyType, error) {
	if query.SurveyTypeID != "" {
		surveyType, err := s.surveyTypeRepo.GetByID(ctx, query.SurveyTypeID)
		if err != nil {
			return nil, fmt.Errorf("%w: fetch survey type: %v", ErrAggregationFailed, err)
		}
		if surveyType == nil {
			return nil, fmt.Errorf("%w: %s", ErrDefinitionNotFound, query.SurveyTypeID)
		}
		return surveyType, nil
	}

	legacy := model.LegacySurveyType()
	if len(query.QuestionIDs) == 0 {
		return legacy, nil
	}

	selected := make([]model.Question, 0, len(query.QuestionIDs))
	for _, id := range query.QuestionIDs {
		q, ok := legacy.QuestionByID(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrQuestionNotFound, id)
		}
		selected = append(selected, q)
	}
	legacy.Questions = selected
	return legacy, nil
}

// AnalyzeQuestion computes the rollup for a single question of a survey
// definition. Unknown question ids are a configuration error.
func (s *AnalyticsService) AnalyzeQuestion(surveyType *model.SurveyType, questionID, organizationName string, submissions []*model.Submission) (model.QuestionAnalysis, error) {
	q, ok := surveyType.QuestionByID(questionID)
	if !ok {
		return model.QuestionAnalysis{}, fmt.Errorf("%w: %s", ErrQuestionNotFound, questionID)
	}
	return analyzeQuestion(surveyType, q, organizationName, submissions), nil
}

func (s *AnalyticsService) compute(surveyType *model.SurveyType, submissions []*model.Submission, organizationName string) *model.SurveyAnalytics {
	analytics := &model.SurveyAnalytics{
		TotalResponses: len(submissions),
		SurveyTypeID:   surveyType.ID,
		SurveyTypeName: surveyType.Name,
		LastUpdated:    time.Now(),
	}

	factors := surveyType.Factors()
	analytics.FactorAnalysis = make([]model.FactorAnalysis, 0, len(factors))
	for _, factor := range factors {
		analytics.FactorAnalysis = append(analytics.FactorAnalysis,
			analyzeFactor(surveyType, factor, organizationName, submissions))
	}

	analytics.Demographics = analyzeDemographics(submissions)

	// Flat pool of every in-scale rating across every answered question.
	// Intentionally a different statistic from any factor average: factor
	// scores are weighted per factor, this one is not.
	pooled := []int{}
	answersGiven := 0
	for _, sub := range submissions {
		for _, a := range sub.Answers {
			q, ok := surveyType.QuestionByID(a.QuestionID)
			if !ok {
				continue
			}
			answersGiven++
			if surveyType.EffectiveScale(q).Contains(a.Rating) {
				pooled = append(pooled, a.Rating)
			}
		}
	}

	if len(pooled) > 0 {
		sum := 0
		for _, r := range pooled {
			sum += r
		}
		analytics.OverallAverageScore = round2(float64(sum) / float64(len(pooled)))
	}

	scale := surveyType.DefaultScale
	analytics.ResponseDistribution = computeDistribution(pooled, scale.Min, scale.Max)

	// How completely respondents answered the definition's full question
	// set, not how many submissions exist.
	denominator := len(submissions) * len(surveyType.Questions)
	if denominator > 0 {
		rate := float64(answersGiven) / float64(denominator) * 100
		analytics.CompletionRate = math.Min(round2(rate), 100)
	}

	return analytics
}
