package scanner

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/uforgetmenot/fileviewer/internal/config"
	"github.com/uforgetmenot/fileviewer/pkg/utils"
)

// Scanner walks a directory tree and groups supported files by directory and category
type Scanner struct {
	config     *config.Config
	classifier *Classifier
}

// New creates a new Scanner
func New(cfg *config.Config) *Scanner {
	return &Scanner{
		config:     cfg,
		classifier: NewClassifier(cfg),
	}
}

// Classifier returns the scanner's classifier
func (s *Scanner) Classifier() *Classifier {
	return s.classifier
}

// Collect walks root and returns the grouped files and per-category totals.
// root must be an existing directory (see ValidateRoot). The first traversal
// error aborts the walk and is returned as a *WalkError.
func (s *Scanner) Collect(root string) (*ScanResult, error) {
	order := s.classifier.Categories()
	result := &ScanResult{
		Root:   root,
		Groups: make(Groups),
		Totals: make(Totals, len(order)),
		Order:  order,
	}
	for _, category := range order {
		result.Totals[category] = 0
	}

	// WalkDir does not descend into a symlinked root
	walkRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, &WalkError{Path: root, Err: err}
	}

	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &WalkError{Path: path, Err: err}
		}

		if path == walkRoot {
			return nil
		}

		category, ok := s.classifier.Classify(path, d)
		if !ok {
			return nil
		}

		relPath, err := utils.RelSlash(walkRoot, path)
		if err != nil {
			return &WalkError{Path: path, Err: err}
		}

		result.add(utils.ParentKey(relPath), category, relPath)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, byCategory := range result.Groups {
		for _, files := range byCategory {
			sort.Strings(files)
		}
	}

	return result, nil
}
