package storage

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/pegsolitaire/pegsolitaire/internal/domain"
)

// FS reads and writes board pattern files in a directory. Files ending in
// .toml are TOML; .yaml and .yml are YAML. Games are never stored.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func isPatternFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml", ".yaml", ".yml":
		return true
	}
	return false
}

func (s *FS) pathFor(name string) string {
	return filepath.Join(s.dir, strcase.ToSnake(strings.TrimSpace(name))+".toml")
}

// Save writes spec as TOML, replacing any file of the same name.
func (s *FS) Save(ctx context.Context, spec domain.PatternSpec) error {
	if strings.TrimSpace(spec.Name) == "" {
		return errors.New("invalid pattern: missing name")
	}
	if _, err := spec.Shape.Build(); err != nil {
		return errors.Wrapf(err, "invalid pattern %q", spec.Name)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrap(err, "create pattern directory")
	}
	data, err := toml.Marshal(spec)
	if err != nil {
		return errors.Wrapf(err, "marshal pattern %q", spec.Name)
	}
	return os.WriteFile(s.pathFor(spec.Name), data, 0o644)
}

// Load reads a single pattern file.
func (s *FS) Load(ctx context.Context, path string) (domain.PatternSpec, error) {
	var spec domain.PatternSpec
	data, err := os.ReadFile(path)
	if err != nil {
		return spec, errors.Wrap(err, "read pattern")
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &spec)
	default:
		err = toml.Unmarshal(data, &spec)
	}
	if err != nil {
		return spec, errors.Wrapf(err, "parse pattern %s", filepath.Base(path))
	}
	if spec.Name == "" {
		base := filepath.Base(path)
		spec.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return spec, nil
}

// List reads every pattern file in the directory, sorted by file name.
// A missing directory yields no patterns; unreadable files are skipped.
func (s *FS) List(ctx context.Context) ([]domain.PatternSpec, error) {
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "list patterns")
	}
	names := make([]string, 0, len(ents))
	for _, e := range ents {
		if e.IsDir() || !isPatternFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var out []domain.PatternSpec
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		spec, err := s.Load(ctx, filepath.Join(s.dir, name))
		if err != nil {
			zap.S().Warnf("skipping pattern file %s: %v", name, err)
			continue
		}
		out = append(out, spec)
	}
	return out, nil
}
