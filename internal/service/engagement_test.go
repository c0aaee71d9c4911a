package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsesurvey/internal/model"
)

func TestGetEngagementAnalytics(t *testing.T) {
	subRepo := &fakeSubmissionRepo{submissions: []*model.Submission{
		submission("org1", map[string]int{"enps_1": 9}),
		submission("org1", map[string]int{"enps_1": 10}),
		submission("org1", map[string]int{"enps_1": 3}),
	}}
	svc := newAnalyticsService(subRepo, &fakeSurveyTypeRepo{})

	analytics, err := svc.GetEngagementAnalytics(context.Background(), AnalyticsQuery{OrganizationID: "org1"})
	require.NoError(t, err)

	// Two promoters, one detractor: round((2-1)/3*100) = 33.
	assert.Equal(t, 33, analytics.ENPSScore)
	assert.Equal(t, 3, analytics.TotalResponses)
}

func burnoutDefinition() *model.SurveyType {
	return &model.SurveyType{
		ID:      "burnout",
		Name:    "Burnout Assessment",
		Version: 1,
		DefaultScale: model.RatingScale{
			Min: 0, Max: 6, Kind: model.ScaleKindFrequency,
		},
		Questions: []model.Question{
			{ID: "ex_1", Factor: BurnoutFactorExhaustion, Order: 1},
			{ID: "cy_1", Factor: BurnoutFactorCynicism, Order: 2},
			{ID: "ef_1", Factor: BurnoutFactorEfficacy, Order: 3},
		},
	}
}

func TestGetBurnoutRisk(t *testing.T) {
	subRepo := &fakeSubmissionRepo{submissions: []*model.Submission{
		submission("org1", map[string]int{"ex_1": 5, "cy_1": 2, "ef_1": 4}),
		submission("org1", map[string]int{"ex_1": 4, "cy_1": 1, "ef_1": 5}),
	}}
	typeRepo := &fakeSurveyTypeRepo{types: map[string]*model.SurveyType{"burnout": burnoutDefinition()}}
	svc := newAnalyticsService(subRepo, typeRepo)

	risk, err := svc.GetBurnoutRisk(context.Background(), AnalyticsQuery{
		OrganizationID: "org1",
		SurveyTypeID:   "burnout",
	})
	require.NoError(t, err)

	assert.Equal(t, model.BurnoutRiskHigh, risk.Risk)
	assert.InDelta(t, 4.5, risk.Exhaustion, 0.001)
	assert.InDelta(t, 1.5, risk.Cynicism, 0.001)
	assert.InDelta(t, 4.5, risk.Efficacy, 0.001)
}

func TestClassifyBurnout(t *testing.T) {
	cases := []struct {
		name                           string
		exhaustion, cynicism, efficacy float64
		want                           model.BurnoutRiskLevel
	}{
		{"high on exhaustion", 4, 0, 5, model.BurnoutRiskHigh},
		{"high on cynicism", 0, 4.2, 5, model.BurnoutRiskHigh},
		{"moderate on exhaustion", 3, 0, 5, model.BurnoutRiskModerate},
		{"moderate on cynicism", 0, 3.5, 5, model.BurnoutRiskModerate},
		{"moderate on low efficacy", 1, 1, 2, model.BurnoutRiskModerate},
		{"low risk", 2, 2, 5, model.BurnoutRiskLow},
		{"high wins over moderate", 4, 1, 2, model.BurnoutRiskHigh},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classifyBurnout(tc.exhaustion, tc.cynicism, tc.efficacy))
		})
	}
}
