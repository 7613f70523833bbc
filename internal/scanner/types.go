package scanner

import "github.com/uforgetmenot/fileviewer/pkg/utils"

// Category is a file category label such as "images" or "mindmap"
type Category string

// Categories of the default rule table, in canonical order
const (
	Images   Category = "images"
	Video    Category = "video"
	Audio    Category = "audio"
	Markdown Category = "markdown"
	Mindmap  Category = "mindmap"
	Drawio   Category = "drawio"
	PDF      Category = "pdf"
	Word     Category = "word"
	Excel    Category = "excel"
	Text     Category = "text"
	Slides   Category = "slides"
	Marpit   Category = "marpit"
)

// Groups maps a directory key to the files it directly contains, by category.
// Directory keys and file paths are slash-separated and relative to the scan root.
type Groups map[string]map[Category][]string

// Totals counts matched files per category across the whole tree
type Totals map[Category]int

// ScanResult represents the result of collecting a directory tree
type ScanResult struct {
	Root   string
	Groups Groups
	Totals Totals
	Order  []Category // every known category, in canonical order
}

// TotalFiles returns the number of matched files
func (r *ScanResult) TotalFiles() int {
	total := 0
	for _, count := range r.Totals {
		total += count
	}
	return total
}

// DirKeys returns the group keys with the root first and the rest ascending
func (r *ScanResult) DirKeys() []string {
	keys := make([]string, 0, len(r.Groups))
	for key := range r.Groups {
		keys = append(keys, key)
	}
	utils.SortDirKeys(keys)
	return keys
}

// add records one matched file
func (r *ScanResult) add(dirKey string, category Category, relPath string) {
	byCategory, ok := r.Groups[dirKey]
	if !ok {
		byCategory = make(map[Category][]string)
		r.Groups[dirKey] = byCategory
	}
	byCategory[category] = append(byCategory[category], relPath)
	r.Totals[category]++
}
