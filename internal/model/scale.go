package model

import "strconv"

// ScaleKind tags what a rating scale measures
type ScaleKind string

const (
	ScaleKindLikert    ScaleKind = "likert"    // satisfaction/quality ratings
	ScaleKindFrequency ScaleKind = "frequency" // "never" .. "every day"
	ScaleKindAgreement ScaleKind = "agreement" // "strongly disagree" .. "strongly agree"
	ScaleKindCustom    ScaleKind = "custom"
)

// RatingScale is a closed integer range with semantic labels per value.
// Immutable once defined; owned by a survey type or overridden per question.
type RatingScale struct {
	Min    int            `json:"min" bson:"min"`
	Max    int            `json:"max" bson:"max"`
	Labels map[int]string `json:"labels,omitempty" bson:"labels,omitempty"`
	Kind   ScaleKind      `json:"kind" bson:"kind"`
}

// Contains reports whether v lies within the scale range
func (s RatingScale) Contains(v int) bool {
	return v >= s.Min && v <= s.Max
}

// Size returns the number of distinct values on the scale
func (s RatingScale) Size() int {
	return s.Max - s.Min + 1
}

// Label returns the semantic label for v, falling back to the raw numeral
// when no label was configured
func (s RatingScale) Label(v int) string {
	if l, ok := s.Labels[v]; ok {
		return l
	}
	return strconv.Itoa(v)
}
