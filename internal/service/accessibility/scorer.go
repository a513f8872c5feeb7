package accessibility

import "github.com/seu-repo/acessa/internal/domain"

// Weights of the completeness score. They sum to 1.0 today; Score still
// clamps so a future weight change cannot leak out of [0,1].
const (
	weightAudioDescription = 0.3
	weightClosedCaptions   = 0.3
	weightSignLanguage     = 0.2
	weightNarration        = 0.2
)

// Score computes the weighted accessibility completeness of an item. Pure
// function, no I/O, safe for concurrent use.
func Score(item *domain.ContentItem) domain.AccessibilityScore {
	var score float64
	if item.AudioDescription {
		score += weightAudioDescription
	}
	if item.ClosedCaptions {
		score += weightClosedCaptions
	}
	if item.SignLanguage {
		score += weightSignLanguage
	}
	if item.HasNarration() {
		score += weightNarration
	}

	return domain.AccessibilityScore{
		ContentID: item.ID,
		Score:     clamp(score),
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
