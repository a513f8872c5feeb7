package assistant

import (
	"strings"

	"github.com/seu-repo/acessa/internal/domain"
)

type featureRule struct {
	phrase string
	tag    domain.AccessibilityFeature
}

// featureVocab maps spoken phrases to canonical accessibility tags. Several
// phrases can map to the same tag; the tag is reported once.
var featureVocab = []featureRule{
	{"audio description", domain.FeatureAudioDescription},
	{"narration", domain.FeatureAudioDescription},
	{"described video", domain.FeatureAudioDescription},
	{"caption", domain.FeatureClosedCaptions},
	{"subtitle", domain.FeatureClosedCaptions},
	{"sign language", domain.FeatureSignLanguage},
}

var genreVocab = []string{
	"action", "comedy", "drama", "documentary", "horror",
	"romance", "thriller", "sci-fi", "fantasy",
}

var keywordVocab = []string{
	"volume", "speed", "quality", "fullscreen", "settings",
}

// ExtractEntities scans normalized text against the three fixed vocabularies.
// Unlike intent classification there is no first-match cutoff: every phrase
// present is collected, so a command can carry several genres and features at
// once. Empty sets are valid output. The scan is stateless and idempotent.
func ExtractEntities(normalized string) domain.EntitySet {
	set := domain.EntitySet{}

	seen := make(map[domain.AccessibilityFeature]bool, len(featureVocab))
	for _, rule := range featureVocab {
		if strings.Contains(normalized, rule.phrase) && !seen[rule.tag] {
			seen[rule.tag] = true
			set.Features = append(set.Features, rule.tag)
		}
	}

	for _, genre := range genreVocab {
		if strings.Contains(normalized, genre) {
			set.Genres = append(set.Genres, genre)
		}
	}

	for _, keyword := range keywordVocab {
		if strings.Contains(normalized, keyword) {
			set.Keywords = append(set.Keywords, keyword)
		}
	}

	return set
}
