// Package pdf turns exported quiz Markdown into a PDF document.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

const creator = "Quizzle"

// Document is the metadata written into the PDF info dictionary.
type Document struct {
	Title   string
	Author  string
	Subject string
}

// ConvertQuizMarkdown renders the Markdown export of a quiz to a PDF next to it and returns
// the absolute path of the PDF.
func ConvertQuizMarkdown(markdownPath string, doc Document) (string, error) {
	if filepath.Ext(markdownPath) != ".md" {
		return "", fmt.Errorf("quiz export must be a .md file: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}
	if strings.TrimSpace(string(content)) == "" {
		return "", fmt.Errorf("quiz export %s is empty", markdownPath)
	}

	pdfPath, err := filepath.Abs(strings.TrimSuffix(markdownPath, ".md") + ".pdf")
	if err != nil {
		return "", fmt.Errorf("filepath.Abs(%s) > %w", markdownPath, err)
	}

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	renderer.Pdf.SetTitle(doc.Title, true)
	renderer.Pdf.SetAuthor(doc.Author, true)
	renderer.Pdf.SetSubject(doc.Subject, true)
	renderer.Pdf.SetCreator(creator, false)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process(%s) > %w", markdownPath, err)
	}
	return pdfPath, nil
}
