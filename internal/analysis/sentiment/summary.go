package sentiment

import "github.com/seenimoa/commentlens/pkg/models"

// Summarize counts comments per sentiment label in one pass.
func Summarize(comments []models.Comment) models.Summary {
	var s models.Summary
	for _, c := range comments {
		s.Add(c.Sentiment)
	}
	return s
}
