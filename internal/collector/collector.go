package collector

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aseprite-tools/asepack/internal/domain"
)

// CategoryAll disables category filtering
const CategoryAll = "*"

// AssetFile is a file that keeps its directory structure in the output.
// Path is the on-disk location; Rel is the path recorded in the artifact,
// relative to the asset root's parent (an asset root of "../assets" yields
// Rel values under "assets/").
type AssetFile struct {
	Path string
	Rel  string
}

// FileSet holds the two file lists a build packages: flat files lose their
// directory structure in the output, asset files keep it.
type FileSet struct {
	Flat   []string
	Assets []AssetFile
}

// TotalCount returns the number of entries in both lists
func (s *FileSet) TotalCount() int {
	return len(s.Flat) + len(s.Assets)
}

// Options contains options for the collector
type Options struct {
	ManifestPath string
	SourceDir    string
	AssetsDir    string
	ScriptExt    string
	Category     string
}

// Collector walks the source and asset trees to build the file lists
type Collector struct {
	opts Options
}

// New creates a new collector
func New(opts Options) *Collector {
	if opts.Category == "" {
		opts.Category = CategoryAll
	}
	return &Collector{opts: opts}
}

// Collect builds both file lists. The flat list always starts with the
// manifest, followed by every script file under the source root in walk
// order. A category filter skips non-matching first-level subdirectories
// entirely; files directly at the source root are never filtered. A missing
// asset root yields an empty asset list, not an error.
func (c *Collector) Collect() (*FileSet, error) {
	flat, err := c.collectScripts()
	if err != nil {
		return nil, err
	}

	assets, err := c.collectAssets()
	if err != nil {
		return nil, err
	}

	return &FileSet{
		Flat:   append([]string{c.opts.ManifestPath}, flat...),
		Assets: assets,
	}, nil
}

func (c *Collector) collectScripts() ([]string, error) {
	root := c.opts.SourceDir
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, root)
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if c.skipCategory(root, path) {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(path) == c.opts.ScriptExt {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking source tree: %w", err)
	}
	return files, nil
}

// skipCategory reports whether path is a first-level subdirectory excluded
// by the category filter.
func (c *Collector) skipCategory(root, path string) bool {
	if c.opts.Category == CategoryAll {
		return false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return false
	}

	// only first-level directories are subject to the filter
	if filepath.Dir(rel) != "." {
		return false
	}
	return rel != c.opts.Category
}

func (c *Collector) collectAssets() ([]AssetFile, error) {
	root := c.opts.AssetsDir
	if root == "" {
		return nil, nil
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	// entries are recorded relative to the asset root's parent so the
	// artifact keeps the "assets/..." prefix
	base := filepath.Base(filepath.Clean(root))

	var files []AssetFile
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		files = append(files, AssetFile{
			Path: path,
			Rel:  filepath.Join(base, rel),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking asset tree: %w", err)
	}
	return files, nil
}
