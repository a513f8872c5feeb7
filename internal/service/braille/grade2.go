package braille

import "unicode"

// maxContractionLen bounds the lookahead of the contraction scan.
const maxContractionLen = 10

// contractions maps whole words to their grade 2 cells. Strong contractions
// first, then the single-cell wordsigns.
var contractions = map[string]string{
	"and":  "⠯",
	"for":  "⠿",
	"of":   "⠷",
	"the":  "⠮",
	"with": "⠾",
	"were": "⠶",
	"his":  "⠦",

	"but":       "⠃",
	"can":       "⠉",
	"do":        "⠙",
	"every":     "⠑",
	"from":      "⠋",
	"go":        "⠛",
	"have":      "⠓",
	"just":      "⠚",
	"knowledge": "⠅",
	"like":      "⠇",
	"more":      "⠍",
	"not":       "⠝",
	"people":    "⠏",
	"quite":     "⠟",
	"rather":    "⠗",
	"so":        "⠎",
	"that":      "⠞",
	"us":        "⠥",
	"very":      "⠧",
	"will":      "⠺",
	"it":        "⠭",
	"you":       "⠽",
	"as":        "⠵",
}

// encodeGrade2 transliterates lowercased text with whole-word contractions
// layered over the grade 1 cells. The cursor moves left to right; at each
// word start the longest contraction covering the whole word wins, otherwise
// the character falls back to its grade 1 cell. Contractions never apply
// inside a longer word, so "and" stays literal in "sand" and "handle".
func encodeGrade2(text string) []rune {
	runes := []rune(text)
	cells := make([]rune, 0, len(runes))

	for i := 0; i < len(runes); {
		if !atWordStart(runes, i) {
			cells = append(cells, encodeRune(runes[i])...)
			i++
			continue
		}

		matched := false
		limit := maxContractionLen
		if rest := len(runes) - i; rest < limit {
			limit = rest
		}
		for n := limit; n >= 2; n-- {
			if !wordEndsAt(runes, i+n) {
				continue
			}
			if cell, ok := contractions[string(runes[i:i+n])]; ok {
				cells = append(cells, []rune(cell)...)
				i += n
				matched = true
				break
			}
		}
		if !matched {
			cells = append(cells, encodeRune(runes[i])...)
			i++
		}
	}

	return cells
}

func atWordStart(runes []rune, i int) bool {
	if !unicode.IsLetter(runes[i]) {
		return false
	}
	return i == 0 || !unicode.IsLetter(runes[i-1])
}

func wordEndsAt(runes []rune, i int) bool {
	return i == len(runes) || !unicode.IsLetter(runes[i])
}
