package service

import (
	"math"

	"pulsesurvey/internal/model"
)

// Promoter/detractor thresholds for index factors on a 0-10 scale.
const (
	promoterMin  = 9
	detractorMax = 6
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// computeDistribution builds a frequency histogram covering every value in
// [min, max]. Zero-count values are present so charts never have missing
// bars. Ratings outside the range are dropped, not counted: they are stale
// data recorded under a since-changed scale.
func computeDistribution(ratings []int, min, max int) map[int]int {
	dist := make(map[int]int, max-min+1)
	for v := min; v <= max; v++ {
		dist[v] = 0
	}
	for _, r := range ratings {
		if r >= min && r <= max {
			dist[r]++
		}
	}
	return dist
}

// collectRatings gathers every in-range answer for a question across the
// submission set. A submission has zero or one answer per question.
func collectRatings(submissions []*model.Submission, questionID string, scale model.RatingScale) []int {
	ratings := []int{}
	for _, sub := range submissions {
		if r, ok := sub.AnswerFor(questionID); ok && scale.Contains(r) {
			ratings = append(ratings, r)
		}
	}
	return ratings
}

// analyzeQuestion computes the mean rating and distribution for one
// question over the submission set, on the question's effective scale.
func analyzeQuestion(st *model.SurveyType, q model.Question, organizationName string, submissions []*model.Submission) model.QuestionAnalysis {
	scale := st.EffectiveScale(q)
	ratings := collectRatings(submissions, q.ID, scale)

	average := 0.0
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r
		}
		average = round2(float64(sum) / float64(len(ratings)))
	}

	return model.QuestionAnalysis{
		QuestionID:    q.ID,
		QuestionText:  q.Render(organizationName),
		AverageScore:  average,
		ResponseCount: len(ratings),
		Distribution:  computeDistribution(ratings, scale.Min, scale.Max),
	}
}

// netScore computes the promoter/detractor index over pooled raw ratings:
// round(((promoters - detractors) / total) * 100), an integer in
// [-100, 100]. Passives count toward the denominator only. Callers must
// guard against an empty pool.
func netScore(ratings []int) int {
	promoters, detractors := 0, 0
	for _, r := range ratings {
		switch {
		case r >= promoterMin:
			promoters++
		case r <= detractorMax:
			detractors++
		}
	}
	return int(math.Round(float64(promoters-detractors) / float64(len(ratings)) * 100))
}

// analyzeFactor computes the rollup for one factor.
//
// Ordinary factors get a response-count-weighted mean of their questions'
// averages, not a plain average of averages: the two differ whenever
// questions have unequal response counts. Index factors (eNPS-style) pool
// every raw rating across the factor's questions and apply the net-score
// formula instead; averaging raw 0-10 ratings would produce a meaningless
// number, so the branch is explicit. An index factor with zero pooled
// ratings falls through to the ordinary (zero) rollup.
func analyzeFactor(st *model.SurveyType, factor, organizationName string, submissions []*model.Submission) model.FactorAnalysis {
	questions := st.QuestionsByFactor(factor)

	analyses := make([]model.QuestionAnalysis, 0, len(questions))
	for _, q := range questions {
		analyses = append(analyses, analyzeQuestion(st, q, organizationName, submissions))
	}

	result := model.FactorAnalysis{
		Factor:    factor,
		Questions: analyses,
	}

	if st.IsIndexFactor(factor) {
		pooled := []int{}
		for _, q := range questions {
			pooled = append(pooled, collectRatings(submissions, q.ID, st.EffectiveScale(q))...)
		}
		if len(pooled) > 0 {
			result.AverageScore = float64(netScore(pooled))
			result.ResponseCount = len(pooled)
			return result
		}
	}

	weightedSum := 0.0
	totalResponses := 0
	maxResponses := 0
	for _, qa := range analyses {
		weightedSum += qa.AverageScore * float64(qa.ResponseCount)
		totalResponses += qa.ResponseCount
		if qa.ResponseCount > maxResponses {
			maxResponses = qa.ResponseCount
		}
	}
	if totalResponses > 0 {
		result.AverageScore = round2(weightedSum / float64(totalResponses))
	}
	// Representative coverage, not a sum: answering any one question in
	// the factor counts toward it.
	result.ResponseCount = maxResponses
	return result
}
