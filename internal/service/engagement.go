package service

import (
	"context"

	"pulsesurvey/internal/model"
)

// Factor names of the burnout survey's three dimensions.
const (
	BurnoutFactorExhaustion = "Exhaustion"
	BurnoutFactorCynicism   = "Cynicism"
	BurnoutFactorEfficacy   = "Efficacy"
)

// GetEngagementAnalytics runs the standard analytics and lifts the employee
// net promoter score to a top-level field.
func (s *AnalyticsService) GetEngagementAnalytics(ctx context.Context, query AnalyticsQuery) (*model.EngagementAnalytics, error) {
	analytics, err := s.GetSurveyAnalytics(ctx, query)
	if err != nil {
		return nil, err
	}

	result := &model.EngagementAnalytics{SurveyAnalytics: *analytics}
	for _, fa := range analytics.FactorAnalysis {
		if fa.Factor == model.EngagementIndexFactor {
			result.ENPSScore = int(fa.AverageScore)
			break
		}
	}
	return result, nil
}

// GetBurnoutRisk classifies burnout risk from the exhaustion, cynicism and
// efficacy factor averages. The thresholds are domain constants: exhaustion
// or cynicism at 4 and above means high risk; either at 3 and above, or
// efficacy at 2 and below, means moderate risk.
func (s *AnalyticsService) GetBurnoutRisk(ctx context.Context, query AnalyticsQuery) (*model.BurnoutRisk, error) {
	analytics, err := s.GetSurveyAnalytics(ctx, query)
	if err != nil {
		return nil, err
	}

	var exhaustion, cynicism, efficacy float64
	for _, fa := range analytics.FactorAnalysis {
		switch fa.Factor {
		case BurnoutFactorExhaustion:
			exhaustion = fa.AverageScore
		case BurnoutFactorCynicism:
			cynicism = fa.AverageScore
		case BurnoutFactorEfficacy:
			efficacy = fa.AverageScore
		}
	}

	return &model.BurnoutRisk{
		Risk:       classifyBurnout(exhaustion, cynicism, efficacy),
		Exhaustion: exhaustion,
		Cynicism:   cynicism,
		Efficacy:   efficacy,
	}, nil
}

func classifyBurnout(exhaustion, cynicism, efficacy float64) model.BurnoutRiskLevel {
	switch {
	case exhaustion >= 4 || cynicism >= 4:
		return model.BurnoutRiskHigh
	case exhaustion >= 3 || cynicism >= 3 || efficacy <= 2:
		return model.BurnoutRiskModerate
	default:
		return model.BurnoutRiskLow
	}
}
