package twindex

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Cache artifact names. One directory per project root holds the sorted
// class list, the sanitized-filename map, one .css file per class, and the
// compile-status metadata.
const (
	classListFile = "classes.json"
	nameMapFile   = "names.json"
	metaFile      = "meta.json"
)

// indexMeta is the metadata artifact.
type indexMeta struct {
	Compiled bool `json:"compiled"`
}

// CacheManager owns the process-wide cache root and its per-project
// subdirectories.
type CacheManager struct {
	Root string
}

// NewCacheManager returns a manager rooted at root. An empty root selects
// the platform default under the user cache directory.
func NewCacheManager(root string) *CacheManager {
	if root == "" {
		if base, err := os.UserCacheDir(); err == nil {
			root = filepath.Join(base, "twindex")
		} else {
			root = filepath.Join(os.TempDir(), "twindex")
		}
	}
	return &CacheManager{Root: root}
}

// ProjectDir returns the cache directory for a project root. The key is a
// deterministic digest of the root path, so distinct projects never share a
// directory and repeated builds of one project always land in the same one.
func (m *CacheManager) ProjectDir(projectRoot string) string {
	sum := sha256.Sum256([]byte(projectRoot))
	return filepath.Join(m.Root, hex.EncodeToString(sum[:8]))
}

// SanitizeName maps a class name to a filesystem-safe filename stem:
// every character outside [A-Za-z0-9._-] becomes an underscore. Distinct
// classes can collide after sanitization; the persisted map keeps the last
// writer (see Write).
func SanitizeName(class string) string {
	var b strings.Builder
	b.Grow(len(class))
	for i := 0; i < len(class); i++ {
		c := class[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9',
			c == '.', c == '_', c == '-':
			b.WriteByte(c)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Write persists a full index into dir, creating it if absent. Every
// artifact is overwritten unconditionally: the class list, the name map,
// one declaration file per class (trimmed body plus trailing newline, empty
// when no rules matched), and the compile-status metadata. Classes must
// already be sorted; rules must hold one entry per class.
func (m *CacheManager) Write(dir string, classes []string, rules map[string]string, compiled bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	if err := writeJSON(filepath.Join(dir, classListFile), classes); err != nil {
		return err
	}

	// Sanitize-collision policy: two classes mapping to the same stem
	// leave the later one in the map and in the file. Documented, not
	// corrected.
	names := make(map[string]string, len(classes))
	for _, class := range classes {
		stem := SanitizeName(class)
		names[stem] = class
		body := strings.TrimSpace(rules[class]) + "\n"
		path := filepath.Join(dir, stem+".css")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return fmt.Errorf("writing rule file %s: %w", path, err)
		}
	}

	if err := writeJSON(filepath.Join(dir, nameMapFile), names); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, metaFile), indexMeta{Compiled: compiled})
}

// Invalidate marks an existing index untrustworthy by removing the class
// list and name map, the two artifacts the staleness judge keys on. Rule
// files are left in place; the next successful build overwrites everything.
func (m *CacheManager) Invalidate(dir string) error {
	for _, name := range []string{classListFile, nameMapFile} {
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("invalidating cache: %w", err)
		}
	}
	return nil
}

// Index is a read-only view of one persisted project index.
type Index struct {
	Dir      string
	Classes  []string
	Names    map[string]string // sanitized stem -> class name
	Compiled bool

	stems map[string]string // class name -> sanitized stem
}

// Open loads the index artifacts from dir. Missing or unreadable artifacts
// are hard failures: a consumer with no readable index has nothing to show.
func (m *CacheManager) Open(dir string) (*Index, error) {
	idx := &Index{Dir: dir}

	if err := readJSON(filepath.Join(dir, classListFile), &idx.Classes); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, nameMapFile), &idx.Names); err != nil {
		return nil, err
	}
	var meta indexMeta
	if err := readJSON(filepath.Join(dir, metaFile), &meta); err != nil {
		return nil, err
	}
	idx.Compiled = meta.Compiled

	idx.stems = make(map[string]string, len(idx.Names))
	for stem, class := range idx.Names {
		idx.stems[class] = stem
	}
	return idx, nil
}

// Rules returns the persisted declaration text for a class. An empty string
// with a nil error means the class was indexed but no rules matched.
func (idx *Index) Rules(class string) (string, error) {
	stem, ok := idx.stems[class]
	if !ok {
		return "", fmt.Errorf("class %q is not in the index", class)
	}
	data, err := os.ReadFile(filepath.Join(idx.Dir, stem+".css"))
	if err != nil {
		return "", fmt.Errorf("reading rule file for %q: %w", class, err)
	}
	return string(data), nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readJSON(path string, v any) error {
	// #nosec G304 - path is inside the managed cache root
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return nil
}
