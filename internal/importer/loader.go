package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Loader reads household files from an afero filesystem. Use afero.NewOsFs()
// for real files and afero.NewMemMapFs() in tests.
type Loader struct {
	fs afero.Fs
}

func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// NewOsLoader creates a Loader backed by the operating system filesystem.
func NewOsLoader() *Loader {
	return NewLoader(afero.NewOsFs())
}

// Expand resolves each argument to file paths. Arguments containing glob
// metacharacters are matched with doublestar semantics (** crosses
// directories); plain paths must exist. Every argument must match at least
// one file. The result keeps argument order and drops duplicates.
func (l *Loader) Expand(patterns ...string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, pattern := range patterns {
		matches, err := l.expandOne(pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out, nil
}

func (l *Loader) expandOne(pattern string) ([]string, error) {
	pattern = filepath.ToSlash(pattern)
	if !hasMeta(pattern) {
		ok, err := afero.Exists(l.fs, pattern)
		if err != nil {
			return nil, fmt.Errorf("checking %s: %w", pattern, err)
		}
		if !ok {
			return nil, fmt.Errorf("import file %s does not exist", pattern)
		}
		return []string{pattern}, nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}

	// io/fs paths are unrooted, so absolute patterns are matched relative to
	// their static prefix.
	base, rest := ".", pattern
	fsys := l.fs
	if path.IsAbs(pattern) {
		base, rest = doublestar.SplitPattern(pattern)
		fsys = afero.NewBasePathFs(l.fs, base)
	}
	matches, err := doublestar.Glob(afero.NewIOFS(fsys), rest, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("expanding %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("pattern %q matched no files", pattern)
	}
	sort.Strings(matches)
	if base != "." {
		for i, m := range matches {
			matches[i] = path.Join(base, m)
		}
	}
	return matches, nil
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// Load reads and decodes one household file. The format is chosen by
// extension: .json, or .yaml/.yml. Unknown fields are rejected.
func (l *Loader) Load(filePath string) (*HouseholdFile, error) {
	data, err := afero.ReadFile(l.fs, filePath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filePath, err)
	}

	var file HouseholdFile
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filePath, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filePath, err)
		}
	default:
		return nil, fmt.Errorf("unsupported import file type %q (want .yaml, .yml or .json)", filepath.Ext(filePath))
	}
	return &file, nil
}
