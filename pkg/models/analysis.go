package models

// Summary holds the per-label comment counts of an analysis.
// Total always equals Positive + Negative + Neutral.
type Summary struct {
	Total    int `json:"total"`
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// Add counts one comment with the given label. Unknown labels count as neutral.
func (s *Summary) Add(label Sentiment) {
	s.Total++
	switch label {
	case SentimentPositive:
		s.Positive++
	case SentimentNegative:
		s.Negative++
	default:
		s.Neutral++
	}
}

// AnalysisResult is the response of a single analysis run.
type AnalysisResult struct {
	Comments []Comment `json:"comments"`
	Summary  Summary   `json:"summary"`
}
