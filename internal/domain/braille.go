package domain

// BrailleGrade selects the transliteration scheme.
type BrailleGrade string

const (
	// BrailleGrade1 is the one-to-one letter/number/punctuation mapping.
	BrailleGrade1 BrailleGrade = "grade1"
	// BrailleGrade2 layers whole-word contractions over grade 1.
	BrailleGrade2 BrailleGrade = "grade2"
)

// BrailleDocument is the rendered form of a text. It is derived, never
// persisted, and a pure function of (Source, Grade, CellsPerLine).
type BrailleDocument struct {
	Source       string       `json:"source"`
	Grade        BrailleGrade `json:"grade"`
	CellsPerLine int          `json:"cells_per_line"`
	Lines        []string     `json:"lines"`
}
