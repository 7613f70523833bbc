package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/uforgetmenot/fileviewer/internal/config"
)

type ruleKind int

const (
	ruleExtension ruleKind = iota
	ruleSuffix
)

// rule is one entry of the ordered classification table
type rule struct {
	kind       ruleKind
	category   Category
	suffix     string
	extensions map[string]struct{}
}

func (r rule) matches(lowerName, lowerExt string) bool {
	switch r.kind {
	case ruleSuffix:
		return strings.HasSuffix(lowerName, r.suffix)
	case ruleExtension:
		_, ok := r.extensions[lowerExt]
		return ok
	default:
		return false
	}
}

// Classifier maps file names to categories using an ordered rule table.
// It holds no mutable state and is safe to share.
type Classifier struct {
	rules []rule
	order []Category
}

// NewClassifier builds a Classifier from a validated rule table
func NewClassifier(cfg *config.Config) *Classifier {
	c := &Classifier{
		rules: make([]rule, 0, len(cfg.Categories)),
		order: make([]Category, 0, len(cfg.Categories)),
	}

	for _, cr := range cfg.Categories {
		category := Category(cr.Name)
		c.order = append(c.order, category)

		if cr.IsSuffixRule() {
			c.rules = append(c.rules, rule{
				kind:     ruleSuffix,
				category: category,
				suffix:   strings.ToLower(cr.Suffix),
			})
			continue
		}

		extensions := make(map[string]struct{}, len(cr.Extensions))
		for _, ext := range cr.Extensions {
			extensions[strings.ToLower(ext)] = struct{}{}
		}
		c.rules = append(c.rules, rule{
			kind:       ruleExtension,
			category:   category,
			extensions: extensions,
		})
	}

	return c
}

// Categories returns every known category in canonical order
func (c *Classifier) Categories() []Category {
	return append([]Category(nil), c.order...)
}

// ClassifyName returns the category of a file name.
// Double-suffix rules win over extension rules; within a kind the first
// matching rule in table order wins.
func (c *Classifier) ClassifyName(name string) (Category, bool) {
	lowerName := strings.ToLower(name)
	lowerExt := strings.ToLower(filepath.Ext(name))

	for _, kind := range []ruleKind{ruleSuffix, ruleExtension} {
		for _, r := range c.rules {
			if r.kind == kind && r.matches(lowerName, lowerExt) {
				return r.category, true
			}
		}
	}

	return "", false
}

// Classify returns the category of a walked entry.
// Only regular files qualify; a symlink counts when it resolves to one.
func (c *Classifier) Classify(path string, d fs.DirEntry) (Category, bool) {
	if !isRegularFile(path, d) {
		return "", false
	}
	return c.ClassifyName(d.Name())
}

func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}

	// Broken links are not files
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
