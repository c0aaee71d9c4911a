package model

import "time"

// Answer is one question's rating within a submission
type Answer struct {
	QuestionID string `json:"questionId" bson:"questionId"`
	Rating     int    `json:"rating" bson:"rating"`
}

// Submission is one respondent's full set of answers for one survey
// instance, plus free-form demographic metadata. Created once at submission
// time; read-only thereafter.
type Submission struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	UserID         string    `json:"userId" bson:"userId"`
	OrganizationID string    `json:"organizationId" bson:"organizationId"`
	SurveyTypeID   string    `json:"surveyTypeId,omitempty" bson:"surveyTypeId,omitempty"`
	CompletedAt    time.Time `json:"completedAt" bson:"completedAt"`
	Answers        []Answer  `json:"answers" bson:"answers"`
	// Demographics is an open map: keys are not fixed by schema and are
	// discovered at aggregation time
	Demographics map[string]string `json:"demographics,omitempty" bson:"demographics,omitempty"`
}

// AnswerFor returns the submission's rating for a question, if any
func (s *Submission) AnswerFor(questionID string) (int, bool) {
	for _, a := range s.Answers {
		if a.QuestionID == questionID {
			return a.Rating, true
		}
	}
	return 0, false
}
