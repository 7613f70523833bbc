package utils

import (
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// RootKey is the directory key used for the scan root itself
const RootKey = "."

// RelSlash returns target relative to root with forward slashes
func RelSlash(root, target string) (string, error) {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// ParentKey returns the directory key of a slash-separated relative path.
// Files directly under the root map to RootKey.
func ParentKey(relPath string) string {
	return path.Dir(relPath)
}

// SortDirKeys sorts directory keys with RootKey first and the rest ascending
func SortDirKeys(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == RootKey || keys[j] == RootKey {
			return keys[i] == RootKey && keys[j] != RootKey
		}
		return keys[i] < keys[j]
	})
}

// ExpandHome replaces a leading "~" with home
func ExpandHome(p, home string) string {
	if p == "~" {
		return home
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(home, p[2:])
	}
	return p
}
