package model

import "strings"

// Question is one item in a survey type. Template text may contain an
// "{organization}" placeholder substituted at analysis time.
type Question struct {
	ID            string       `json:"id" bson:"id"`
	Factor        string       `json:"factor" bson:"factor"`
	SubFactor     string       `json:"subFactor,omitempty" bson:"subFactor,omitempty"`
	Template      string       `json:"template" bson:"template"`
	Order         int          `json:"order" bson:"order"`
	ScaleOverride *RatingScale `json:"scaleOverride,omitempty" bson:"scaleOverride,omitempty"`
}

// Render substitutes the organization placeholder in the question template
func (q Question) Render(organizationName string) string {
	if organizationName == "" {
		organizationName = "your organization"
	}
	return strings.ReplaceAll(q.Template, "{organization}", organizationName)
}

// SurveyType is a versioned, named configuration of questions, factors and
// rating scales describing one kind of survey instrument. Immutable at
// analysis time.
type SurveyType struct {
	ID           string      `json:"id" bson:"_id,omitempty"`
	Name         string      `json:"name" bson:"name"`
	Description  string      `json:"description,omitempty" bson:"description,omitempty"`
	Category     string      `json:"category,omitempty" bson:"category,omitempty"`
	Version      int         `json:"version" bson:"version"`
	DefaultScale RatingScale `json:"defaultScale" bson:"defaultScale"`
	Questions    []Question  `json:"questions" bson:"questions"`
	// IndexFactors names the factors aggregated with the net-score formula
	// instead of a weighted mean (e.g. "eNPS")
	IndexFactors []string `json:"indexFactors,omitempty" bson:"indexFactors,omitempty"`
}

// EffectiveScale resolves a question's scale: its override if set, else the
// survey type's default scale
func (st *SurveyType) EffectiveScale(q Question) RatingScale {
	if q.ScaleOverride != nil {
		return *q.ScaleOverride
	}
	return st.DefaultScale
}

// Factors returns the distinct factor names in question order
func (st *SurveyType) Factors() []string {
	seen := make(map[string]bool)
	factors := []string{}
	for _, q := range st.Questions {
		if !seen[q.Factor] {
			seen[q.Factor] = true
			factors = append(factors, q.Factor)
		}
	}
	return factors
}

// QuestionsByFactor returns the questions belonging to a factor, in order
func (st *SurveyType) QuestionsByFactor(factor string) []Question {
	questions := []Question{}
	for _, q := range st.Questions {
		if q.Factor == factor {
			questions = append(questions, q)
		}
	}
	return questions
}

// QuestionByID looks up a question by id
func (st *SurveyType) QuestionByID(id string) (Question, bool) {
	for _, q := range st.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// IsIndexFactor reports whether a factor is aggregated with the net-score
// formula
func (st *SurveyType) IsIndexFactor(factor string) bool {
	for _, f := range st.IndexFactors {
		if f == factor {
			return true
		}
	}
	return false
}
