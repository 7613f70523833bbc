package reporter

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/uforgetmenot/fileviewer/internal/ui/styles"
)

// Reporter prints human-readable results of an indexing run
type Reporter struct {
	writer io.Writer
}

// New creates a new Reporter
func New(writer io.Writer) *Reporter {
	return &Reporter{
		writer: writer,
	}
}

// Report prints the confirmation line followed by a per-category breakdown
func (r *Reporter) Report(idx *Index, outputPath string) error {
	if err := r.reportConfirmation(idx, outputPath); err != nil {
		return err
	}
	return r.reportBreakdown(idx)
}

// reportConfirmation prints the one-line success message
func (r *Reporter) reportConfirmation(idx *Index, outputPath string) error {
	_, err := fmt.Fprintf(r.writer, "%s %s, total files: %s\n",
		styles.SuccessStyle.Render("Generated"),
		styles.FilePathStyle.Render(filepath.Base(outputPath)),
		styles.Count(idx.TotalFiles))
	return err
}

// reportBreakdown lists non-empty categories in category order
func (r *Reporter) reportBreakdown(idx *Index) error {
	if idx.TotalFiles == 0 {
		return nil
	}

	width := 0
	for _, category := range idx.TotalsByType.order {
		if idx.TotalsByType.Get(category) > 0 && len(category) > width {
			width = len(category)
		}
	}

	for _, category := range idx.TotalsByType.order {
		count := idx.TotalsByType.Get(category)
		if count == 0 {
			continue
		}
		if _, err := fmt.Fprintf(r.writer, "  %s %s\n",
			styles.CategoryLabel(string(category), width), styles.Count(count)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(r.writer, "%s\n",
		styles.DimStyle.Render(fmt.Sprintf("%d directories", len(idx.Groups))))
	return err
}
