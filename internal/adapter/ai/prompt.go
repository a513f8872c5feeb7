package ai

import (
	"fmt"

	"github.com/seu-repo/acessa/internal/domain"
)

// systemInstruction frames every provider call. The providers only answer
// commands the rule engine could not resolve, so the instruction keeps
// answers short and screen-reader friendly.
const systemInstruction = `You are the voice assistant of ACESSA, an accessible media catalog.
The user said something the command engine did not recognize.
Answer in at most two short sentences, suitable for a screen reader.
Suggest a concrete next command when possible (search, play, filter by accessibility feature).
Answer in the user's language; default to Brazilian Portuguese.`

// BuildPrompt combines the unrecognized utterance with its UI context.
func BuildPrompt(utterance string, cctx domain.CommandContext) string {
	return fmt.Sprintf("%s\n\nCurrent screen: %s\nUser said: %q", systemInstruction, cctx, utterance)
}
