package reporter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/uforgetmenot/fileviewer/internal/scanner"
)

// Index is the document written to index.json
type Index struct {
	Groups       []Group    `json:"groups"`
	TotalsByType TypeTotals `json:"totalsByType"`
	TotalFiles   int        `json:"totalFiles"`
}

// Group lists the categories found directly inside one directory
type Group struct {
	Path       string          `json:"path"`
	Categories []CategoryEntry `json:"categories"`
}

// CategoryEntry lists the files of one category within a group
type CategoryEntry struct {
	Type  string   `json:"type"`
	Files []string `json:"files"`
	Count int      `json:"count"`
}

// TypeTotals holds per-category counts and marshals them in category order
type TypeTotals struct {
	order  []scanner.Category
	counts map[scanner.Category]int
}

// Get returns the count for a category
func (t TypeTotals) Get(category scanner.Category) int {
	return t.counts[category]
}

// Categories returns the categories in output order
func (t TypeTotals) Categories() []scanner.Category {
	return append([]scanner.Category(nil), t.order...)
}

// MarshalJSON writes the totals as an object whose keys follow category order
func (t TypeTotals) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range t.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(category))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		fmt.Fprintf(&buf, ":%d", t.counts[category])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Build converts a scan result into the index document.
// Groups start with the root and follow ascending path order; categories
// inside a group and in the totals follow the classifier's category order.
func Build(result *scanner.ScanResult) *Index {
	idx := &Index{
		Groups: make([]Group, 0, len(result.Groups)),
		TotalsByType: TypeTotals{
			order:  append([]scanner.Category(nil), result.Order...),
			counts: make(map[scanner.Category]int, len(result.Order)),
		},
	}

	for _, dirKey := range result.DirKeys() {
		byCategory := result.Groups[dirKey]
		group := Group{Path: dirKey, Categories: []CategoryEntry{}}

		for _, category := range result.Order {
			files, ok := byCategory[category]
			if !ok {
				continue
			}
			group.Categories = append(group.Categories, CategoryEntry{
				Type:  string(category),
				Files: files,
				Count: len(files),
			})
		}

		idx.Groups = append(idx.Groups, group)
	}

	for _, category := range result.Order {
		count := result.Totals[category]
		idx.TotalsByType.counts[category] = count
		idx.TotalFiles += count
	}

	return idx
}
