package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/seu-repo/acessa/internal/domain"
)

// routeDetails answers questions about one content item. This is the only
// routing path that reads the catalog.
func (r *Router) routeDetails(ctx context.Context, req domain.CommandRequest, normalized string) (*domain.CommandResponse, error) {
	if req.ContentID == "" {
		return nil, domain.ErrContentIDRequired
	}

	item, err := r.content.FindByID(ctx, req.ContentID)
	if err != nil {
		return nil, fmt.Errorf("fetch content %s: %w", req.ContentID, err)
	}
	if item == nil {
		return nil, domain.ErrContentNotFound
	}

	switch {
	case strings.Contains(normalized, "describe") || strings.Contains(normalized, "tell me about"):
		return &domain.CommandResponse{
			Action: ActionReadDescription,
			Text:   item.Overview,
			Speech: item.Overview,
			Data:   domain.DescriptionData{ContentID: item.ID, Overview: item.Overview},
		}, nil

	case strings.Contains(normalized, "accessibility") || strings.Contains(normalized, "features"):
		features := availableFeatures(item)
		if len(features) == 0 {
			text := fmt.Sprintf("No accessibility features are listed for %s. I can generate an audio description on request.", item.Title)
			return &domain.CommandResponse{
				Action: ActionAccessibility,
				Text:   text,
				Speech: text,
				Data:   domain.AccessibilityData{ContentID: item.ID, CanGenerate: true},
			}, nil
		}
		text := fmt.Sprintf("%s offers %s.", item.Title, joinNatural(features))
		return &domain.CommandResponse{
			Action: ActionAccessibility,
			Text:   text,
			Speech: text,
			Data:   domain.AccessibilityData{ContentID: item.ID, Features: features},
		}, nil

	case strings.Contains(normalized, "rating") || strings.Contains(normalized, "how good"):
		text := fmt.Sprintf("%s has an average rating of %.1f from %d votes.", item.Title, item.VoteAverage, item.VoteCount)
		return &domain.CommandResponse{
			Action: ActionRating,
			Text:   text,
			Speech: text,
			Data:   domain.RatingData{ContentID: item.ID, Average: item.VoteAverage, Votes: item.VoteCount},
		}, nil

	case strings.Contains(normalized, "similar") || strings.Contains(normalized, "like this"):
		return &domain.CommandResponse{
			Action: ActionFindSimilar,
			Text:   fmt.Sprintf("Looking for titles similar to %s", item.Title),
			Speech: fmt.Sprintf("Finding titles similar to %s", item.Title),
			Data:   domain.SimilarData{ContentID: item.ID},
		}, nil

	default:
		return unknownResponse(
			fmt.Sprintf("You can ask me to describe %s, list its accessibility features, tell its rating, or find similar titles.", item.Title),
			"You can ask about the description, accessibility features, rating, or similar titles.",
		), nil
	}
}

// availableFeatures lists the human-readable names of the accessibility
// flags that are set on an item, in fixed order.
func availableFeatures(item *domain.ContentItem) []string {
	var features []string
	if item.AudioDescription {
		features = append(features, "audio description")
	}
	if item.ClosedCaptions {
		features = append(features, "closed captions")
	}
	if item.SignLanguage {
		features = append(features, "sign language")
	}
	if item.HasNarration() {
		features = append(features, "narration")
	}
	return features
}

// joinNatural renders a list as "a", "a and b" or "a, b and c" for speech.
func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
