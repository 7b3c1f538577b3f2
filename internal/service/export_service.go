package service

import (
	"strings"

	"github.com/boshify/content-brief-generator/internal/domain"
)

// ExportService renders a snapshot as a tab-separated table: one header row,
// a synthetic row for the title, then one row per section in on-screen
// order.
type ExportService struct {
	sessions *SessionService
}

func NewExportService(sessions *SessionService) *ExportService {
	return &ExportService{sessions: sessions}
}

var exportHeader = []string{"Heading", "Heading Name", "Description", "AnswerType", "AnswerLength", "Location"}

func (s *ExportService) ExportTSV(sessionID string) (string, error) {
	resp, err := s.sessions.Get(sessionID)
	if err != nil {
		return "", err
	}
	return RenderTSV(resp.Outline), nil
}

func RenderTSV(snap domain.Snapshot) string {
	var b strings.Builder

	writeRow(&b, exportHeader)
	writeRow(&b, []string{"H1", snap.Title.Text, "", "", "", "Title"})

	for _, g := range domain.GroupOrder {
		for _, sec := range snap.Groups[g] {
			writeRow(&b, []string{
				string(sec.HeadingLevel),
				sec.HeadingName,
				sec.Description,
				string(sec.AnswerType),
				string(sec.AnswerLength),
				string(g),
			})
		}
	}

	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte('\t')
		}
		b.WriteString(sanitizeCell(cell))
	}
	b.WriteByte('\n')
}

// sanitizeCell keeps free text from breaking the table: tabs become spaces
// and newlines become the literal two characters \n.
func sanitizeCell(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, "\r\n", `\n`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\n`)
	return s
}
