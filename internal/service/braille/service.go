package braille

import (
	"strings"

	"go.uber.org/zap"

	"github.com/seu-repo/acessa/internal/domain"
	"github.com/seu-repo/acessa/internal/observability/telemetry"
)

// Service renders text as braille documents. Encoding is a pure function of
// (text, grade, cellsPerLine); the service only adds validation, logging, and
// metrics around it.
type Service struct {
	log *zap.Logger
}

func NewService(log *zap.Logger) *Service {
	return &Service{log: log}
}

// Encode transliterates text into lines of at most cellsPerLine braille
// cells. Grade 1 maps character by character; grade 2 additionally contracts
// common whole words. The input is lowercased before transliteration, since
// the cell tables carry no capitalization marks.
func (s *Service) Encode(text string, grade domain.BrailleGrade, cellsPerLine int) (*domain.BrailleDocument, error) {
	if cellsPerLine <= 0 {
		return nil, domain.ErrInvalidCellsPerLine
	}

	lowered := strings.ToLower(text)

	var cells []rune
	switch grade {
	case domain.BrailleGrade1:
		cells = encodeGrade1(lowered)
	case domain.BrailleGrade2:
		cells = encodeGrade2(lowered)
	default:
		return nil, domain.ErrInvalidGrade
	}

	telemetry.BrailleEncodingsTotal.WithLabelValues(string(grade)).Inc()
	s.log.Debug("Braille document rendered",
		zap.String("grade", string(grade)),
		zap.Int("cells", len(cells)),
		zap.Int("cells_per_line", cellsPerLine),
	)

	return &domain.BrailleDocument{
		Source:       text,
		Grade:        grade,
		CellsPerLine: cellsPerLine,
		Lines:        formatLines(cells, cellsPerLine),
	}, nil
}

// formatLines packs the cell stream into fixed-width chunks. There is no
// word-wrap awareness: a line break can land inside a word or right after a
// numeric prefix.
func formatLines(cells []rune, cellsPerLine int) []string {
	if len(cells) == 0 {
		return []string{}
	}

	lines := make([]string, 0, (len(cells)+cellsPerLine-1)/cellsPerLine)
	for start := 0; start < len(cells); start += cellsPerLine {
		end := start + cellsPerLine
		if end > len(cells) {
			end = len(cells)
		}
		lines = append(lines, string(cells[start:end]))
	}
	return lines
}
