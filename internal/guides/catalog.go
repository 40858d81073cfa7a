// Package guides builds the catalog of downloadable PDF study guides from
// the subject folders under the public directory.
package guides

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Guide is one downloadable study guide.
type Guide struct {
	Subject   string `json:"subject"`
	File      string `json:"file"`
	Path      string `json:"path"` // URL path the static routes serve it at
	SizeBytes int64  `json:"size_bytes"`
}

// Scan walks each subject folder under publicDir and collects the PDFs it
// finds. Missing subject folders are skipped, not errors: the site can ship
// with some subjects not yet uploaded.
func Scan(publicDir string, subjects []string) ([]Guide, error) {
	var out []Guide
	for _, subject := range subjects {
		entries, err := os.ReadDir(filepath.Join(publicDir, subject))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
				continue
			}
			info, err := e.Info()
			if err != nil {
				return nil, err
			}
			out = append(out, Guide{
				Subject:   subject,
				File:      e.Name(),
				Path:      "/" + subject + "/" + e.Name(),
				SizeBytes: info.Size(),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Subject != out[j].Subject {
			return out[i].Subject < out[j].Subject
		}
		return out[i].File < out[j].File
	})
	return out, nil
}
