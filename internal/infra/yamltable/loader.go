package yamltable

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/probtable/internal/domain"
	"github.com/aalvaropc/probtable/internal/infra/config"
	"github.com/aalvaropc/probtable/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	rootDir   string
	tablesDir string
}

type Option func(*Loader)

func WithTablesDir(dir string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(dir) != "" {
			l.tablesDir = dir
		}
	}
}

func NewLoader(root string, opts ...Option) *Loader {
	l := &Loader{rootDir: root, tablesDir: "tables"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var (
	_ ports.TableLoader  = (*Loader)(nil)
	_ ports.TableCatalog = (*Loader)(nil)
)

// LoadTable accepts either a table name (e.g., "dice") or a path to a YAML file.
func (l *Loader) LoadTable(nameOrPath string) (domain.DiscreteTable, error) {
	return config.LoadTable(l.Resolve(nameOrPath))
}

// Resolve maps a table name to its file under the tables dir. Paths are returned cleaned.
func (l *Loader) Resolve(nameOrPath string) string {
	in := strings.TrimSpace(nameOrPath)
	if hasYAMLExt(in) || strings.ContainsRune(in, '/') || strings.ContainsRune(in, filepath.Separator) {
		if !filepath.IsAbs(in) && !fileExists(in) {
			if p := filepath.Join(l.rootDir, l.tablesDir, in); fileExists(p) {
				return p
			}
		}
		return filepath.Clean(in)
	}

	dir := filepath.Join(l.rootDir, l.tablesDir)
	if p := filepath.Join(dir, in+".yml"); fileExists(p) {
		return p
	}
	return filepath.Join(dir, in+".yaml")
}

func (l *Loader) ListTables(root string) ([]domain.TableRef, error) {
	dir := filepath.Join(root, l.tablesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamltable.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.TableRef
	for _, e := range entries {
		if e.IsDir() || !hasYAMLExt(e.Name()) {
			continue
		}

		p := filepath.Join(dir, e.Name())
		n, _ := readTableName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		}
		refs = append(refs, domain.TableRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func readTableName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
