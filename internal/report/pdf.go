package report

import (
	"bufio"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders the markdown report to a PDF file. Layout is
// intentionally simple: headings get larger bold type, table rows and list
// items become plain lines, and paragraphs wrap.
func WritePDF(markdown string, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	scanner := bufio.NewScanner(strings.NewReader(markdown))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			pdf.Ln(4)
			continue
		}
		if strings.HasPrefix(s, "#") {
			i := 0
			for i < len(s) && s[i] == '#' {
				i++
			}
			text := strings.TrimSpace(s[i:])
			if text == "" {
				continue
			}
			size := 15.0
			if i >= 2 {
				size = 12.5
			}
			pdf.SetFont("Helvetica", "B", size)
			pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
			continue
		}
		// Table separator rows carry no content.
		if strings.HasPrefix(s, "| ---") || strings.HasPrefix(s, "|---") {
			continue
		}
		if strings.HasPrefix(s, "|") {
			cells := splitTableRow(s)
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, strings.Join(cells, "    "), "", "L", false)
			pdf.SetFont("Helvetica", "", 11)
			continue
		}
		if strings.HasPrefix(s, "- ") {
			pdf.MultiCell(0, 5, "• "+strings.TrimPrefix(s, "- "), "", "L", false)
			continue
		}
		// Bold emphasis markers render as plain text.
		s = strings.ReplaceAll(s, "**", "")
		pdf.MultiCell(0, 5, s, "", "L", false)
	}

	return pdf.OutputFileAndClose(outPath)
}

func splitTableRow(s string) []string {
	parts := strings.Split(strings.Trim(s, "|"), "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
