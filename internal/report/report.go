// Package report renders the active word list as a markdown table and
// converts it to a PDF file.
package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mandolyte/mdtopdf"
)

// Row is one rendered word line. Reference columns carry the resolved
// display name or a placeholder dash.
type Row struct {
	Name       string
	Meaning    string
	Dictionary string
	Department string
	Category   string
}

// Placeholder is shown for a reference whose list has not resolved.
const Placeholder = "-"

func renderMarkdown(title string, rows []Row) []byte {
	buffer := bytes.NewBuffer(nil)
	fmt.Fprintf(buffer, "# %s\n\n", title)
	fmt.Fprintf(buffer, "Generated on %s. %d entries.\n\n", time.Now().Format("2006-01-02"), len(rows))
	buffer.WriteString("| # | Word | Meaning | Category | Department | Dictionary |\n")
	buffer.WriteString("|---|------|---------|----------|------------|------------|\n")
	for i, row := range rows {
		fmt.Fprintf(buffer, "| %d | %s | %s | %s | %s | %s |\n",
			i+1,
			cell(row.Name),
			cell(row.Meaning),
			cell(row.Category),
			cell(row.Department),
			cell(row.Dictionary),
		)
	}
	return buffer.Bytes()
}

func cell(value string) string {
	value = strings.TrimSpace(strings.ReplaceAll(value, "|", "\\|"))
	if value == "" {
		return Placeholder
	}
	return strings.ReplaceAll(value, "\n", " ")
}

// Write renders the rows to outputPath (a .pdf path) and returns the
// absolute path of the generated file. The intermediate markdown file is
// written next to it.
func Write(title string, rows []Row, outputPath string) (string, error) {
	if !strings.HasSuffix(outputPath, ".pdf") {
		return "", fmt.Errorf("output file must have .pdf extension: %s", outputPath)
	}

	markdownPath := strings.TrimSuffix(outputPath, ".pdf") + ".md"
	contents := renderMarkdown(title, rows)
	if err := os.WriteFile(markdownPath, contents, 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
	}

	renderer := mdtopdf.NewPdfRenderer("P", "A4", outputPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(contents); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return outputPath, nil
	}
	return absPath, nil
}
