package assistant

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/seu-repo/acessa/internal/domain"
)

// searchPrefixes are the leading command words stripped from a search
// utterance. Ordered: multi-word phrases come before their single-word
// prefixes so "search for free solo" yields "free solo", not "for free solo".
var searchPrefixes = []string{
	"search for", "find", "look for", "show me", "get", "discover",
}

// filterMarkers introduce the filter phrase of a filter command.
var filterMarkers = []string{
	"filter by", "show only", "only", "with", "that have",
}

func (r *Router) routeSearch(
	ctx context.Context,
	req domain.CommandRequest,
	intent domain.IntentResult,
	entities domain.EntitySet,
	normalized string,
) (*domain.CommandResponse, error) {

	switch intent.Name {
	case domain.IntentSearch:
		term := extractAfter(req.Utterance, searchPrefixes)
		if term == "" {
			return &domain.CommandResponse{
				Action: ActionSearch,
				Text:   "What would you like to search for?",
				Speech: "What would you like to search for?",
				Data:   domain.SearchData{Query: ""},
			}, nil
		}

		data := domain.SearchData{
			Query:    term,
			Genres:   entities.Genres,
			Features: featureNames(entities.Features),
		}

		text := fmt.Sprintf("Searching for %q", term)
		// The search here only resolves candidates; ranking and filtering
		// belong to the catalog, so a store failure degrades to a plain echo.
		results, err := r.content.Search(ctx, domain.ContentFilter{Query: term, Limit: 5})
		if err != nil {
			r.log.Warn("Content search failed during command routing",
				zap.String("term", term),
				zap.Error(err),
			)
		} else if len(results) > 0 {
			text = fmt.Sprintf("Found %d titles for %q", len(results), term)
		}

		return &domain.CommandResponse{
			Action: ActionSearch,
			Text:   text,
			Speech: fmt.Sprintf("Searching for %s", term),
			Data:   data,
		}, nil

	case domain.IntentFilter:
		phrase := extractAfter(req.Utterance, filterMarkers)
		if phrase == "" {
			phrase = strings.TrimSpace(req.Utterance)
		}
		return &domain.CommandResponse{
			Action: ActionFilter,
			Text:   fmt.Sprintf("Filtering results by %q", phrase),
			Speech: fmt.Sprintf("Filtering by %s", phrase),
			Data:   domain.FilterData{Filter: phrase},
		}, nil

	case domain.IntentRecommend:
		// Recommendation does not depend on any extracted term.
		return &domain.CommandResponse{
			Action: ActionRecommend,
			Text:   "Here are some accessible titles you might enjoy",
			Speech: "Here are some recommendations for you",
		}, nil

	default:
		return unknownResponse(
			"I didn't catch that. Try saying \"search for\" followed by a title, or \"recommend something\".",
			"I didn't catch that. You can search for a title or ask for a recommendation.",
		), nil
	}
}

// extractAfter returns everything after the first marker phrase found in the
// utterance, with the original casing preserved. Markers are matched
// case-insensitively and in listed order.
func extractAfter(utterance string, markers []string) string {
	lower := strings.ToLower(utterance)
	for _, marker := range markers {
		if idx := strings.Index(lower, marker); idx >= 0 {
			return strings.TrimSpace(utterance[idx+len(marker):])
		}
	}
	return ""
}

func featureNames(features []domain.AccessibilityFeature) []string {
	if len(features) == 0 {
		return nil
	}
	names := make([]string, len(features))
	for i, f := range features {
		names[i] = string(f)
	}
	return names
}
