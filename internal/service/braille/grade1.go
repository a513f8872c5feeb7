package braille

// numericPrefix announces that the following cell is a digit.
const numericPrefix = '⠼'

// grade1Cells is the one-to-one mapping from characters to braille cells.
// Digits are not listed here: they reuse the a–j cells behind the numeric
// prefix, see digitCells.
var grade1Cells = map[rune]rune{
	'a': '⠁', 'b': '⠃', 'c': '⠉', 'd': '⠙', 'e': '⠑',
	'f': '⠋', 'g': '⠛', 'h': '⠓', 'i': '⠊', 'j': '⠚',
	'k': '⠅', 'l': '⠇', 'm': '⠍', 'n': '⠝', 'o': '⠕',
	'p': '⠏', 'q': '⠟', 'r': '⠗', 's': '⠎', 't': '⠞',
	'u': '⠥', 'v': '⠧', 'w': '⠺', 'x': '⠭', 'y': '⠽',
	'z': '⠵',

	' ':  '⠀',
	'.':  '⠲',
	',':  '⠂',
	'?':  '⠦',
	'!':  '⠖',
	'\'': '⠄',
	'-':  '⠤',
	':':  '⠒',
	';':  '⠆',
}

// digitCells maps 0–9 to the a–j cells used after the numeric prefix.
var digitCells = map[rune]rune{
	'1': '⠁', '2': '⠃', '3': '⠉', '4': '⠙', '5': '⠑',
	'6': '⠋', '7': '⠛', '8': '⠓', '9': '⠊', '0': '⠚',
}

// encodeRune transliterates one character to its cell sequence. Letters and
// punctuation map to a single cell, digits to a prefix pair, and anything
// unmapped passes through literally.
func encodeRune(r rune) []rune {
	if cell, ok := grade1Cells[r]; ok {
		return []rune{cell}
	}
	if cell, ok := digitCells[r]; ok {
		return []rune{numericPrefix, cell}
	}
	return []rune{r}
}

// encodeGrade1 transliterates lowercased text cell by cell.
func encodeGrade1(text string) []rune {
	cells := make([]rune, 0, len(text))
	for _, r := range text {
		cells = append(cells, encodeRune(r)...)
	}
	return cells
}
