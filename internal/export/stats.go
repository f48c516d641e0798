package export

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"ramen-review-api/internal/models"
)

// Instagram budgets a post may not exceed without a warning.
const (
	maxPostCharacters = 2200
	maxPostHashtags   = 30
)

// Stats measures a composed post. CharacterCount is in Unicode code points.
// HashtagCount counts every '#' in the text, including any in the free-text
// review; that over-count is a known approximation.
func Stats(content string) models.PostStats {
	return models.PostStats{
		CharacterCount: utf8.RuneCountInString(content),
		HashtagCount:   strings.Count(content, "#"),
		LineCount:      len(strings.Split(content, "\n")),
	}
}

// Warnings returns the budget warnings for the given stats.
func Warnings(stats models.PostStats) []string {
	var warnings []string
	if stats.CharacterCount > maxPostCharacters {
		warnings = append(warnings, fmt.Sprintf("貼文字數 %d 超過 Instagram 上限 %d", stats.CharacterCount, maxPostCharacters))
	}
	if stats.HashtagCount > maxPostHashtags {
		warnings = append(warnings, fmt.Sprintf("標籤數量 %d 超過 Instagram 上限 %d", stats.HashtagCount, maxPostHashtags))
	}
	return warnings
}
