// Package segment recovers discrete myth records from the raw OCR text of
// the anthologies. Each source has its own line-oriented state machine;
// both produce Drafts that the Finalizer cleans, annotates and converts
// into model.MythRecords.
package segment

import (
	"strings"

	"github.com/mythindex/aggadah/internal/model"
)

// Draft is a record as the segmenters see it: buffered line spans tagged by
// sub-mode, before cleaning and annotation.
type Draft struct {
	Number          int
	Title           string
	Book            string
	Section         string
	ContentLines    []string
	CommentaryLines []string
	Sources         []string
	Work            model.Source
	Volume          int
}

// Content joins the buffered narrative lines with single spaces
func (d *Draft) Content() string {
	return strings.Join(d.ContentLines, " ")
}

// Commentary joins the buffered editorial lines with single spaces
func (d *Draft) Commentary() string {
	return strings.Join(d.CommentaryLines, " ")
}

// splitLines normalizes line endings and splits the document
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
