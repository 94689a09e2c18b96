package vault

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/mdnote/mdnote/internal/errors"
	"github.com/mdnote/mdnote/pkg/fileutil"
	"github.com/mdnote/mdnote/pkg/frontmatter"
)

// Scanner walks a vault directory and parses every Markdown note.
type Scanner struct {
	logger  *slog.Logger
	exclude map[string]struct{}
}

// NewScanner creates a Scanner. exclude lists directory names to skip
// anywhere in the tree (dotfile directories are always skipped).
func NewScanner(logger *slog.Logger, exclude []string) *Scanner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}))
	}
	ex := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		ex[name] = struct{}{}
	}
	return &Scanner{logger: logger, exclude: ex}
}

// Scan walks the vault and parses every .md file concurrently. Files
// that fail to read or parse are reported as Issues, not errors; the
// scan itself only fails when the root cannot be walked. Notes come
// back sorted by their vault-relative path.
func (s *Scanner) Scan(root string) ([]Note, []Issue, error) {
	paths, err := s.collect(root)
	if err != nil {
		return nil, nil, err
	}
	if len(paths) == 0 {
		return nil, nil, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if len(paths) < workers {
		workers = len(paths)
	}

	work := make(chan string, len(paths))

	type result struct {
		note  *Note
		issue *Issue
	}
	results := make(chan result, len(paths))

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range work {
				rel, relErr := filepath.Rel(root, path)
				if relErr != nil {
					rel = path
				}
				note, err := loadNote(path, rel)
				if err != nil {
					s.logger.Warn("skipping unreadable note",
						"path", rel,
						"error", err)
					results <- result{issue: &Issue{Rel: rel, Err: err}}
					continue
				}
				results <- result{note: note}
			}
		}()
	}

	for _, path := range paths {
		work <- path
	}
	close(work)

	go func() {
		wg.Wait()
		close(results)
	}()

	var notes []Note
	var issues []Issue
	for r := range results {
		if r.note != nil {
			notes = append(notes, *r.note)
		}
		if r.issue != nil {
			issues = append(issues, *r.issue)
		}
	}

	slices.SortFunc(notes, func(a, b Note) int {
		return strings.Compare(a.Rel, b.Rel)
	})
	slices.SortFunc(issues, func(a, b Issue) int {
		return strings.Compare(a.Rel, b.Rel)
	})

	return notes, issues, nil
}

// collect gathers the .md file paths under root, honoring the exclude
// list and skipping dot directories.
func (s *Scanner) collect(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			if strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if _, skip := s.exclude[name]; skip {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(d.Name()), ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking vault %s", root)
	}
	return paths, nil
}

// Load reads and parses a single note by absolute path.
func Load(root, path string) (*Note, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return loadNote(path, rel)
}

func loadNote(path, rel string) (*Note, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, err
	}
	doc, err := frontmatter.Parse(string(data))
	if err != nil {
		return nil, err
	}
	return &Note{Path: path, Rel: rel, Doc: doc}, nil
}

// Save writes a note's document back to its file atomically.
func Save(n *Note) error {
	if err := fileutil.AtomicWriteString(n.Path, n.Doc.Render()); err != nil {
		return errors.Wrapf(err, "saving %s", n.Rel)
	}
	return nil
}
