package assistant

import (
	"strings"

	"github.com/seu-repo/acessa/internal/domain"
)

type navigationRule struct {
	phrases      []string
	action       string
	destination  string
	text         string
	instructions []string
}

// navigationTable is evaluated top-to-bottom with first-match-wins. The
// instruction lists are canned screen-reader guidance for each destination.
var navigationTable = []navigationRule{
	{
		phrases:     []string{"go home", "main page"},
		action:      ActionNavigateHome,
		destination: "home",
		text:        "Going to the home page",
		instructions: []string{
			"The home page lists featured accessible titles first",
			"Say \"search\" at any time to find a specific title",
		},
	},
	{
		phrases:     []string{"search page", "find movies"},
		action:      ActionNavigateSearch,
		destination: "search",
		text:        "Opening the search page",
		instructions: []string{
			"Speak or type a title, genre, or accessibility feature",
			"Say \"filter by audio description\" to narrow results",
		},
	},
	{
		phrases:     []string{"favorites", "my movies"},
		action:      ActionNavigateFavs,
		destination: "favorites",
		text:        "Opening your favorites",
		instructions: []string{
			"Your saved titles are listed most recent first",
			"Say \"play\" followed by a title to start watching",
		},
	},
	{
		phrases:     []string{"settings", "accessibility options"},
		action:      ActionNavigateConfig,
		destination: "settings",
		text:        "Opening accessibility settings",
		instructions: []string{
			"Here you can set caption size, narration speed, and braille output",
			"Changes apply immediately to all titles",
		},
	},
	{
		phrases:     []string{"help", "what can i say"},
		action:      ActionHelp,
		destination: "help",
		text:        "Here is what you can say",
		instructions: []string{
			"Say \"search for\" followed by a title to find it",
			"Say \"go home\", \"favorites\", or \"settings\" to move around",
			"In the player, say \"play\", \"pause\", \"volume up\", or \"enable captions\"",
		},
	},
}

func (r *Router) routeNavigation(normalized string) (*domain.CommandResponse, error) {
	for _, rule := range navigationTable {
		for _, phrase := range rule.phrases {
			if strings.Contains(normalized, phrase) {
				return &domain.CommandResponse{
					Action:       rule.action,
					Text:         rule.text,
					Speech:       rule.text,
					Data:         domain.NavigationData{Destination: rule.destination},
					Instructions: append([]string(nil), rule.instructions...),
				}, nil
			}
		}
	}

	return unknownResponse(
		"I didn't understand. Say \"help\" to hear what you can do.",
		"I didn't understand that. Say help to hear your options.",
	), nil
}
