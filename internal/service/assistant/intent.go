package assistant

import (
	"strings"

	"github.com/seu-repo/acessa/internal/domain"
)

// matchConfidence is the fixed confidence attached to every trigger match.
// It is a policy constant, not a probability estimate.
const matchConfidence = 0.8

type intentRule struct {
	intent   domain.Intent
	triggers []string
}

// intentTable maps intents to their trigger substrings. Classification is
// first-match over this table: the first trigger found anywhere in the
// normalized text wins and scanning stops. Both the intent order and the
// trigger order inside each entry are load-bearing; reordering changes
// classification results.
var intentTable = []intentRule{
	{domain.IntentSearch, []string{"find", "search", "look for", "show me", "get", "discover"}},
	{domain.IntentPlay, []string{"play", "start", "watch", "begin", "stream"}},
	{domain.IntentPause, []string{"pause", "stop", "hold on", "wait"}},
	{domain.IntentNavigate, []string{"go to", "go back", "go home", "navigate", "open", "menu"}},
	{domain.IntentHelp, []string{"help", "what can", "how do i", "confused"}},
	{domain.IntentDescribe, []string{"describe", "tell me about", "narrate", "what is this"}},
	{domain.IntentFilter, []string{"filter", "only show", "that have", "exclude"}},
	{domain.IntentRecommend, []string{"recommend", "suggest", "what should i watch", "something like"}},
}

// Normalize lowercases and trims an utterance. Every table lookup in the
// engine operates on normalized text.
func Normalize(utterance string) string {
	return strings.ToLower(strings.TrimSpace(utterance))
}

// ClassifyIntent maps normalized text to exactly one intent. The first
// trigger substring present in the text decides; unmatched text yields
// IntentUnknown with confidence 0.
func ClassifyIntent(normalized string) domain.IntentResult {
	for _, rule := range intentTable {
		for _, trigger := range rule.triggers {
			if strings.Contains(normalized, trigger) {
				return domain.IntentResult{Name: rule.intent, Confidence: matchConfidence}
			}
		}
	}
	return domain.IntentResult{Name: domain.IntentUnknown, Confidence: 0}
}
