package model

// EngagementIndexFactor is the promoter/detractor factor of the engagement
// survey, aggregated as a net score instead of an average.
const EngagementIndexFactor = "eNPS"

var legacyAgreementScale = RatingScale{
	Min:  0,
	Max:  4,
	Kind: ScaleKindAgreement,
	Labels: map[int]string{
		0: "Strongly disagree",
		1: "Disagree",
		2: "Neutral",
		3: "Agree",
		4: "Strongly agree",
	},
}

var legacyENPSScale = RatingScale{
	Min:  0,
	Max:  10,
	Kind: ScaleKindCustom,
	Labels: map[int]string{
		0:  "Not at all likely",
		10: "Extremely likely",
	},
}

// LegacySurveyType returns the fixed engagement definition used for
// submissions recorded before configurable survey types existed. Callers get
// a fresh copy so filtering never mutates the shared question set.
func LegacySurveyType() *SurveyType {
	return &SurveyType{
		Name:         "Employee Engagement Pulse",
		Category:     "engagement",
		Version:      1,
		DefaultScale: legacyAgreementScale,
		IndexFactors: []string{EngagementIndexFactor},
		Questions: []Question{
			{ID: "wellbeing_1", Factor: "Wellbeing", Order: 1,
				Template: "I feel energized at the end of most workdays at {organization}."},
			{ID: "wellbeing_2", Factor: "Wellbeing", Order: 2,
				Template: "My workload at {organization} is manageable."},
			{ID: "autonomy_1", Factor: "Autonomy", Order: 3,
				Template: "I have the freedom to decide how to do my own work."},
			{ID: "growth_1", Factor: "Growth", Order: 4,
				Template: "I have good opportunities to learn and grow at {organization}."},
			{ID: "growth_2", Factor: "Growth", SubFactor: "management", Order: 5,
				Template: "My manager supports my professional development."},
			{ID: "recognition_1", Factor: "Recognition", Order: 6,
				Template: "I receive recognition when I do good work at {organization}."},
			{ID: "belonging_1", Factor: "Belonging", Order: 7,
				Template: "I feel like I belong at {organization}."},
			{ID: "enps_1", Factor: EngagementIndexFactor, Order: 8,
				Template:      "How likely are you to recommend {organization} as a place to work?",
				ScaleOverride: &legacyENPSScale},
		},
	}
}
