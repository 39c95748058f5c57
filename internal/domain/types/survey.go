package types

// SurveyReport tallies many independent sessions.
type SurveyReport struct {
	Modulus       int64  `json:"modulus"`
	Trials        int    `json:"trials"`
	Agreements    int    `json:"agreements"`
	Disagreements int    `json:"disagreements"`
	Failures      int    `json:"failures"`
	Seed          string `json:"seed"`
}

// AgreementRate is Agreements / completed trials.
func (r SurveyReport) AgreementRate() float64 {
	done := r.Agreements + r.Disagreements
	if done == 0 {
		return 0
	}
	return float64(r.Agreements) / float64(done)
}
