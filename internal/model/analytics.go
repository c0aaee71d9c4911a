package model

import "time"

// QuestionAnalysis is the computed rollup for a single question
type QuestionAnalysis struct {
	QuestionID    string      `json:"questionId" bson:"questionId"`
	QuestionText  string      `json:"questionText" bson:"questionText"`
	AverageScore  float64     `json:"averageScore" bson:"averageScore"`
	ResponseCount int         `json:"responseCount" bson:"responseCount"`
	Distribution  map[int]int `json:"distribution" bson:"distribution"`
}

// FactorAnalysis is the computed rollup for a factor. AverageScore is a
// response-count-weighted mean of the factor's questions, except for index
// factors where it is the net score over pooled raw ratings.
type FactorAnalysis struct {
	Factor        string             `json:"factor" bson:"factor"`
	AverageScore  float64            `json:"averageScore" bson:"averageScore"`
	ResponseCount int                `json:"responseCount" bson:"responseCount"`
	Questions     []QuestionAnalysis `json:"questions" bson:"questions"`
}

// DemographicStat is the rollup for one demographic value bucket
type DemographicStat struct {
	Count        int     `json:"count" bson:"count"`
	AverageScore float64 `json:"averageScore" bson:"averageScore"`
	Percentage   float64 `json:"percentage" bson:"percentage"`
}

// DemographicBreakdown maps demographic key -> value -> stats
type DemographicBreakdown map[string]map[string]DemographicStat

// SurveyAnalytics is the full analytics result for one organization/survey
// type. It is a derived view, freshly computed on every invocation.
type SurveyAnalytics struct {
	TotalResponses       int                  `json:"totalResponses" bson:"totalResponses"`
	OverallAverageScore  float64              `json:"overallAverageScore" bson:"overallAverageScore"`
	FactorAnalysis       []FactorAnalysis     `json:"factorAnalysis" bson:"factorAnalysis"`
	CompletionRate       float64              `json:"completionRate" bson:"completionRate"`
	ResponseDistribution map[int]int          `json:"responseDistribution" bson:"responseDistribution"`
	Demographics         DemographicBreakdown `json:"demographics" bson:"demographics"`
	SurveyTypeID         string               `json:"surveyTypeId,omitempty" bson:"surveyTypeId,omitempty"`
	SurveyTypeName       string               `json:"surveyTypeName,omitempty" bson:"surveyTypeName,omitempty"`
	LastUpdated          time.Time            `json:"lastUpdated" bson:"lastUpdated"`
}

// EngagementAnalytics is SurveyAnalytics plus the employee net promoter
// score lifted to a top-level field
type EngagementAnalytics struct {
	SurveyAnalytics
	ENPSScore int `json:"enpsScore"`
}

// BurnoutRiskLevel classifies burnout risk from factor averages
type BurnoutRiskLevel string

const (
	BurnoutRiskLow      BurnoutRiskLevel = "Low"
	BurnoutRiskModerate BurnoutRiskLevel = "Moderate"
	BurnoutRiskHigh     BurnoutRiskLevel = "High"
)

// BurnoutRisk is the three-dimension burnout classification
type BurnoutRisk struct {
	Risk       BurnoutRiskLevel `json:"risk"`
	Exhaustion float64          `json:"exhaustion"`
	Cynicism   float64          `json:"cynicism"`
	Efficacy   float64          `json:"efficacy"`
}
