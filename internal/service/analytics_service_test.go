package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsesurvey/internal/model"
	"pulsesurvey/internal/repository"
)

type fakeSubmissionRepo struct {
	submissions []*model.Submission
	err         error
	lastFilter  repository.SubmissionFilter
}

func (f *fakeSubmissionRepo) Create(ctx context.Context, submission *model.Submission) error {
	f.submissions = append(f.submissions, submission)
	return f.err
}

func (f *fakeSubmissionRepo) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	for _, s := range f.submissions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSubmissionRepo) Find(ctx context.Context, filter repository.SubmissionFilter) ([]*model.Submission, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.submissions, nil
}

type fakeSurveyTypeRepo struct {
	types map[string]*model.SurveyType
	err   error
}

func (f *fakeSurveyTypeRepo) Create(ctx context.Context, st *model.SurveyType) (string, error) {
	return st.ID, f.err
}

func (f *fakeSurveyTypeRepo) GetByID(ctx context.Context, id string) (*model.SurveyType, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.types[id], nil
}

func (f *fakeSurveyTypeRepo) List(ctx context.Context) ([]*model.SurveyType, error) {
	return nil, f.err
}

func (f *fakeSurveyTypeRepo) Update(ctx context.Context, st *model.SurveyType) error { return f.err }
func (f *fakeSurveyTypeRepo) Delete(ctx context.Context, id string) error            { return f.err }

type fakeAnalyticsCache struct {
	stored      map[string]*model.SurveyAnalytics
	invalidated []string
}

func newFakeAnalyticsCache() *fakeAnalyticsCache {
	return &fakeAnalyticsCache{stored: map[string]*model.SurveyAnalytics{}}
}

func (f *fakeAnalyticsCache) Get(ctx context.Context, organizationID, surveyTypeID string) (*model.SurveyAnalytics, error) {
	return f.stored[organizationID+"|"+surveyTypeID], nil
}

func (f *fakeAnalyticsCache) Set(ctx context.Context, organizationID, surveyTypeID string, analytics *model.SurveyAnalytics) error {
	f.stored[organizationID+"|"+surveyTypeID] = analytics
	return nil
}

func (f *fakeAnalyticsCache) InvalidateOrganization(ctx context.Context, organizationID string) error {
	f.invalidated = append(f.invalidated, organizationID)
	return nil
}

func pulseDefinition() *model.SurveyType {
	enps := model.RatingScale{Min: 0, Max: 10, Kind: model.ScaleKindCustom}
	return &model.SurveyType{
		ID:           "st1",
		Name:         "Happiness Pulse",
		Version:      1,
		DefaultScale: model.RatingScale{Min: 1, Max: 5, Kind: model.ScaleKindLikert},
		IndexFactors: []string{"eNPS"},
		Questions: []model.Question{
			{ID: "happiness_1", Factor: "Happiness", Order: 1, Template: "I enjoy my work at {organization}."},
			{ID: "happiness_2", Factor: "Happiness", Order: 2, Template: "I feel good most days."},
			{ID: "enps_1", Factor: "eNPS", Order: 3, ScaleOverride: &enps,
				Template: "How likely are you to recommend {organization}?"},
		},
	}
}

func newAnalyticsService(subs *fakeSubmissionRepo, types *fakeSurveyTypeRepo) *AnalyticsService {
	return NewAnalyticsService(subs, types, nil)
}

func TestGetSurveyAnalytics_EndToEnd(t *testing.T) {
	subRepo := &fakeSubmissionRepo{submissions: []*model.Submission{
		submission("org1", map[string]int{"happiness_1": 4, "happiness_2": 5, "enps_1": 9}),
		submission("org1", map[string]int{"happiness_1": 3, "happiness_2": 3, "enps_1": 2}),
	}}
	typeRepo := &fakeSurveyTypeRepo{types: map[string]*model.SurveyType{"st1": pulseDefinition()}}
	svc := newAnalyticsService(subRepo, typeRepo)

	analytics, err := svc.GetSurveyAnalytics(context.Background(), AnalyticsQuery{
		OrganizationID: "org1",
		SurveyTypeID:   "st1",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, analytics.TotalResponses)
	assert.Equal(t, "st1", analytics.SurveyTypeID)
	assert.Equal(t, "Happiness Pulse", analytics.SurveyTypeName)
	assert.False(t, analytics.LastUpdated.IsZero())

	require.Len(t, analytics.FactorAnalysis, 2)

	happiness := analytics.FactorAnalysis[0]
	assert.Equal(t, "Happiness", happiness.Factor)
	// Weighted: (4.5*2 + 3*2) / 4.
	assert.InDelta(t, 3.75, happiness.AverageScore, 0.001)
	assert.Equal(t, 2, happiness.ResponseCount)
	require.Len(t, happiness.Questions, 2)

	enps := analytics.FactorAnalysis[1]
	assert.Equal(t, "eNPS", enps.Factor)
	// One promoter, one detractor over two pooled ratings.
	assert.Equal(t, 0.0, enps.AverageScore)
	assert.Equal(t, 2, enps.ResponseCount)

	// Flat pool mean over all six ratings, a different statistic from any
	// factor average.
	assert.InDelta(t, 4.33, analytics.OverallAverageScore, 0.001)

	assert.InDelta(t, 100.0, analytics.CompletionRate, 0.001)

	// Distribution sized to the default 1-5 scale; the 9 falls outside.
	require.Len(t, analytics.ResponseDistribution, 5)
	assert.Equal(t, 1, analytics.ResponseDistribution[2])
	assert.Equal(t, 2, analytics.ResponseDistribution[3])
	assert.Equal(t, 1, analytics.ResponseDistribution[4])
	assert.Equal(t, 1, analytics.ResponseDistribution[5])
}

func TestGetSurveyAnalytics_EmptySubmissions(t *testing.T) {
	subRepo := &fakeSubmissionRepo{}
	typeRepo := &fakeSurveyTypeRepo{types: map[string]*model.SurveyType{"st1": pulseDefinition()}}
	svc := newAnalyticsService(subRepo, typeRepo)

	analytics, err := svc.GetSurveyAnalytics(context.Background(), AnalyticsQuery{SurveyTypeID: "st1"})
	require.NoError(t, err)
	require.NotNil(t, analytics)

	assert.Equal(t, 0, analytics.TotalResponses)
	assert.Equal(t, 0.0, analytics.OverallAverageScore)
	assert.Equal(t, 0.0, analytics.CompletionRate)
	assert.NotNil(t, analytics.Demographics)
	assert.Empty(t, analytics.Demographics)
	require.Len(t, analytics.ResponseDistribution, 5, "dense but empty distribution")
	for _, count := range analytics.ResponseDistribution {
		assert.Equal(t, 0, count)
	}
	require.Len(t, analytics.FactorAnalysis, 2, "factors still present with zeroed rollups")
	for _, fa := range analytics.FactorAnalysis {
		assert.Equal(t, 0.0, fa.AverageScore)
	}
}

func TestGetSurveyAnalytics_Failures(t *testing.T) {
	t.Run("submission fetch failure wraps ErrAggregationFailed", func(t *testing.T) {
		subRepo := &fakeSubmissionRepo{err: errors.New("mongo down")}
		typeRepo := &fakeSurveyTypeRepo{types: map[string]*model.SurveyType{"st1": pulseDefinition()}}
		svc := newAnalyticsService(subRepo, typeRepo)

		_, err := svc.GetSurveyAnalytics(context.Background(), AnalyticsQuery{SurveyTypeID: "st1"})
		assert.ErrorIs(t, err, ErrAggregationFailed)
	})

	t.Run("definition fetch failure wraps ErrAggregationFailed", func(t *testing.T) {
		subRepo := &fakeSubmissionRepo{}
		typeRepo := &fakeSurveyTypeRepo{err: errors.New("mongo down")}
		svc := newAnalyticsService(subRepo, typeRepo)

		_, err := svc.GetSurveyAnalytics(context.Background(), AnalyticsQuery{SurveyTypeID: "st1"})
		assert.ErrorIs(t, err, ErrAggregationFailed)
	})

	t.Run("explicitly requested missing survey type is fatal", func(t *testing.T) {
		subRepo := &fakeSubmissionRepo{}
		typeRepo := &fakeSurveyTypeRepo{types: map[string]*model.SurveyType{}}
		svc := newAnalyticsService(subRepo, typeRepo)

		_, err := svc.GetSurveyAnalytics(context.Background(), AnalyticsQuery{SurveyTypeID: "nope"})
		assert.ErrorIs(t, err, ErrDefinitionNotFound, "never silently downgraded to legacy")
	})
}

func TestGetSurveyAnalytics_LegacyFallback(t *testing.T) {
	t.Run("no survey type falls back to the fixed legacy definition", func(t *testing.T) {
		subRepo := &fakeSubmissionRepo{submissions: []*model.Submission{
			submission("org1", map[string]int{"wellbeing_1": 3, "enps_1": 10}),
		}}
		typeRepo := &fakeSurveyTypeRepo{}
		svc := newAnalyticsService(subRepo, typeRepo)

		analytics, err := svc.GetSurveyAnalytics(context.Background(), AnalyticsQuery{OrganizationID: "org1"})
		require.NoError(t, err)

		legacy := model.LegacySurveyType()
		assert.Equal(t, legacy.Name, analytics.SurveyTypeName)
		assert.Len(t, analytics.FactorAnalysis, len(legacy.Factors()))
	})

	t.Run("selected question ids narrow the legacy set", func(t *testing.T) {
		subRepo := &fakeSubmissionRepo{submissions: []*model.Submission{
			submission("org1", map[string]int{"wellbeing_1": 3, "enps_1": 10}),
		}}
		svc := newAnalyticsService(subRepo, &fakeSurveyTypeRepo{})

		analytics, err := svc.GetSurveyAnalytics(context.Background(), AnalyticsQuery{
			OrganizationID: "org1",
			QuestionIDs:    []string{"wellbeing_1", "wellbeing_2"},
		})
		require.NoError(t, err)

		require.Len(t, analytics.FactorAnalysis, 1)
		assert.Equal(t, "Wellbeing", analytics.FactorAnalysis[0].Factor)
		// Coverage over the narrowed set: one of two questions answered.
		assert.InDelta(t, 50.0, analytics.CompletionRate, 0.001)
	})

	t.Run("unknown selected question id is a configuration error", func(t *testing.T) {
		svc := newAnalyticsService(&fakeSubmissionRepo{}, &fakeSurveyTypeRepo{})

		_, err := svc.GetSurveyAnalytics(context.Background(), AnalyticsQuery{
			QuestionIDs: []string{"does_not_exist"},
		})
		assert.ErrorIs(t, err, ErrQuestionNotFound)
	})
}

func TestGetSurveyAnalytics_FilterForwarding(t *testing.T) {
	subRepo := &fakeSubmissionRepo{}
	typeRepo := &fakeSurveyTypeRepo{types: map[string]*model.SurveyType{"st1": pulseDefinition()}}
	svc := newAnalyticsService(subRepo, typeRepo)

	_, err := svc.GetSurveyAnalytics(context.Background(), AnalyticsQuery{
		OrganizationID: "org9",
		SurveyTypeID:   "st1",
	})
	require.NoError(t, err)

	assert.Equal(t, "org9", subRepo.lastFilter.OrganizationID)
	assert.Equal(t, "st1", subRepo.lastFilter.SurveyTypeID)
}

func TestGetSurveyAnalytics_Cache(t *testing.T) {
	t.Run("cached result is returned without recomputing", func(t *testing.T) {
		cached := &model.SurveyAnalytics{TotalResponses: 42}
		analyticsCache := newFakeAnalyticsCache()
		analyticsCache.stored["org1|st1"] = cached

		subRepo := &fakeSubmissionRepo{err: errors.New("must not be called")}
		svc := NewAnalyticsService(subRepo, &fakeSurveyTypeRepo{}, analyticsCache)

		analytics, err := svc.GetSurveyAnalytics(context.Background(), AnalyticsQuery{
			OrganizationID: "org1",
			SurveyTypeID:   "st1",
		})
		require.NoError(t, err)
		assert.Equal(t, 42, analytics.TotalResponses)
	})

	t.Run("computed results are cached", func(t *testing.T) {
		analyticsCache := newFakeAnalyticsCache()
		typeRepo := &fakeSurveyTypeRepo{types: map[string]*model.SurveyType{"st1": pulseDefinition()}}
		svc := NewAnalyticsService(&fakeSubmissionRepo{}, typeRepo, analyticsCache)

		_, err := svc.GetSurveyAnalytics(context.Background(), AnalyticsQuery{
			OrganizationID: "org1",
			SurveyTypeID:   "st1",
		})
		require.NoError(t, err)
		assert.NotNil(t, analyticsCache.stored["org1|st1"])
	})

	t.Run("question-filtered views bypass the cache", func(t *testing.T) {
		analyticsCache := newFakeAnalyticsCache()
		svc := NewAnalyticsService(&fakeSubmissionRepo{}, &fakeSurveyTypeRepo{}, analyticsCache)

		_, err := svc.GetSurveyAnalytics(context.Background(), AnalyticsQuery{
			OrganizationID: "org1",
			QuestionIDs:    []string{"wellbeing_1"},
		})
		require.NoError(t, err)
		assert.Empty(t, analyticsCache.stored)
	})
}

func TestAnalyzeQuestion_UnknownID(t *testing.T) {
	svc := newAnalyticsService(&fakeSubmissionRepo{}, &fakeSurveyTypeRepo{})

	_, err := svc.AnalyzeQuestion(pulseDefinition(), "missing", "", nil)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}
