// Package sentiment scores comment text with the VADER lexicon and folds
// labelled comments into summary counts.
package sentiment

import (
	"github.com/jonreiter/govader"

	"github.com/seenimoa/commentlens/pkg/models"
)

// Scorer maps text to a polarity score and label. It holds only the
// read-only lexicon, so one Scorer may be shared across goroutines.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewScorer loads the lexicon. Construct once and pass it where needed.
func NewScorer() *Scorer {
	return &Scorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the VADER compound score of the normalised text, in
// [-1, 1], and the label its sign implies.
func (s *Scorer) Score(text string) (models.Sentiment, float64) {
	plain := Normalize(text)
	if plain == "" {
		return models.SentimentNeutral, 0
	}
	score := s.analyzer.PolarityScores(plain).Compound
	return Label(score), score
}

// Label classifies a score by sign alone.
func Label(score float64) models.Sentiment {
	switch {
	case score > 0:
		return models.SentimentPositive
	case score < 0:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// ScoreComments returns a copy of comments with Sentiment and Score set.
// The input slice is not modified.
func (s *Scorer) ScoreComments(comments []models.Comment) []models.Comment {
	out := make([]models.Comment, len(comments))
	for i, c := range comments {
		c.Sentiment, c.Score = s.Score(c.Text)
		out[i] = c
	}
	return out
}
