package assistant

import (
	"reflect"
	"testing"

	"github.com/seu-repo/acessa/internal/domain"
)

func TestExtractEntities_Features(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      []domain.AccessibilityFeature
	}{
		{"audio description phrase", "movies with audio description", []domain.AccessibilityFeature{domain.FeatureAudioDescription}},
		{"narration maps to audio description", "something with narration", []domain.AccessibilityFeature{domain.FeatureAudioDescription}},
		{"caption phrase", "shows with captions", []domain.AccessibilityFeature{domain.FeatureClosedCaptions}},
		{"subtitle phrase", "films with subtitles", []domain.AccessibilityFeature{domain.FeatureClosedCaptions}},
		{"sign language phrase", "content in sign language", []domain.AccessibilityFeature{domain.FeatureSignLanguage}},
		{"no features", "play the movie", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractEntities(Normalize(tt.utterance))

			if !reflect.DeepEqual(got.Features, tt.want) {
				t.Errorf("Features = %v, want %v", got.Features, tt.want)
			}
		})
	}
}

func TestExtractEntities_FeatureTagReportedOnce(t *testing.T) {
	// "audio description" and "narration" both map to the same tag.
	got := ExtractEntities("audio description with narration")

	if len(got.Features) != 1 || got.Features[0] != domain.FeatureAudioDescription {
		t.Errorf("Features = %v, want exactly one audio_description", got.Features)
	}
}

func TestExtractEntities_Additive(t *testing.T) {
	// Arrange: an utterance hitting all three vocabularies at once.
	utterance := "action comedy with captions and sign language, volume up"

	// Act
	got := ExtractEntities(Normalize(utterance))

	// Assert: everything present is collected, nothing stops the scan.
	wantFeatures := []domain.AccessibilityFeature{
		domain.FeatureClosedCaptions,
		domain.FeatureSignLanguage,
	}
	if !reflect.DeepEqual(got.Features, wantFeatures) {
		t.Errorf("Features = %v, want %v", got.Features, wantFeatures)
	}
	if !reflect.DeepEqual(got.Genres, []string{"action", "comedy"}) {
		t.Errorf("Genres = %v, want [action comedy]", got.Genres)
	}
	if !reflect.DeepEqual(got.Keywords, []string{"volume"}) {
		t.Errorf("Keywords = %v, want [volume]", got.Keywords)
	}
}

func TestExtractEntities_EmptySetIsValid(t *testing.T) {
	got := ExtractEntities("hello there")

	if got.Features != nil || got.Genres != nil || got.Keywords != nil {
		t.Errorf("expected empty entity set, got %+v", got)
	}
}

func TestExtractEntities_Idempotent(t *testing.T) {
	first := ExtractEntities("drama with audio description")
	second := ExtractEntities("drama with audio description")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("extraction not deterministic: %+v vs %+v", first, second)
	}
}
