package service

import (
	"math"

	"pulsesurvey/internal/model"
)

type runningMean struct {
	count   int
	average float64
}

// add folds one observation into the running mean:
// newAverage = (oldAverage*oldCount + x) / (oldCount + 1).
// Equivalent to a plain mean by induction, without holding raw scores.
func (m *runningMean) add(x float64) {
	m.average = (m.average*float64(m.count) + x) / float64(m.count+1)
	m.count++
}

// respondentAverage is a submission's own mean rating across all its
// answers, computed once per respondent.
func respondentAverage(sub *model.Submission) float64 {
	if len(sub.Answers) == 0 {
		return 0
	}
	sum := 0
	for _, a := range sub.Answers {
		sum += a.Rating
	}
	return float64(sum) / float64(len(sub.Answers))
}

// analyzeDemographics cross-tabulates submissions by every demographic key
// present. Keys are not predeclared: the full key set is discovered by
// scanning the submissions. Submissions without demographics are skipped
// entirely (recorded before demographics existed), and percentages are
// relative to the demographic-valid subset, not the grand total.
func analyzeDemographics(submissions []*model.Submission) model.DemographicBreakdown {
	running := map[string]map[string]*runningMean{}
	validSubmissions := 0

	for _, sub := range submissions {
		if len(sub.Demographics) == 0 {
			continue
		}
		validSubmissions++

		avg := respondentAverage(sub)
		for key, value := range sub.Demographics {
			if value == "" {
				continue
			}
			if running[key] == nil {
				running[key] = map[string]*runningMean{}
			}
			if running[key][value] == nil {
				running[key][value] = &runningMean{}
			}
			running[key][value].add(avg)
		}
	}

	breakdown := model.DemographicBreakdown{}
	for key, values := range running {
		breakdown[key] = map[string]model.DemographicStat{}
		for value, m := range values {
			breakdown[key][value] = model.DemographicStat{
				Count:        m.count,
				AverageScore: round2(m.average),
				Percentage:   math.Round(float64(m.count) / float64(validSubmissions) * 100),
			}
		}
	}
	return breakdown
}
