package reportstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/probtable/internal/domain"
	"github.com/aalvaropc/probtable/internal/ports"
)

const (
	defaultReportsDir  = "reports"
	maxReserveAttempts = 1000
)

type JSONStore struct {
	rootDir        string
	reportsDirName string
	writeIndex     bool
	now            func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: reports/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Paths.ReportsDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultReportsDir
	}

	s := &JSONStore{
		rootDir:        root,
		reportsDirName: dir,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportStore = (*JSONStore)(nil)

func (s *JSONStore) SaveReport(r domain.Report) (string, error) {
	dir := filepath.Join(s.rootDir, s.reportsDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	toSave := r
	if toSave.CreatedAt.IsZero() {
		toSave.CreatedAt = s.now()
	}
	toSave.CreatedAt = toSave.CreatedAt.UTC()

	slug := slugify(reportSlug(toSave))
	if slug == "" {
		slug = "report"
	}

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.marshal",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	base := fmt.Sprintf("%s_%s", toSave.CreatedAt.Format("20060102T150405Z"), slug)
	id, err := reserve(dir, base)
	if err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.reserve",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}
	filename := id + ".json"
	path := filepath.Join(dir, filename)

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		_ = os.Remove(path)
		return "", &domain.OpError{
			Op:   "reportstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		_ = os.Remove(path)
		return "", &domain.OpError{
			Op:   "reportstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filename, toSave)
	}

	return id, nil
}

// reserve claims <base>.json in dir, falling back to <base>-2.json, -3, ...
// when a report with the same second and subject already exists.
// It returns the claimed ID.
func reserve(dir, base string) (string, error) {
	for i := 1; i <= maxReserveAttempts; i++ {
		id := base
		if i > 1 {
			id = fmt.Sprintf("%s-%d", base, i)
		}
		f, err := os.OpenFile(filepath.Join(dir, id+".json"), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		return id, f.Close()
	}
	return "", fmt.Errorf("%s: %d reports already exist", base, maxReserveAttempts)
}

func (s *JSONStore) appendIndex(dir, id, filename string, r domain.Report) error {
	type idx struct {
		ID        string            `json:"id"`
		File      string            `json:"file"`
		Kind      domain.ReportKind `json:"kind"`
		Subject   string            `json:"subject"`
		CreatedAt time.Time         `json:"created_at"`
	}
	line, err := json.Marshal(idx{
		ID:        id,
		File:      filename,
		Kind:      r.Kind,
		Subject:   reportSlug(r),
		CreatedAt: r.CreatedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

// reportSlug names a report by what it describes, e.g. "binomial n=5 p=0.5".
func reportSlug(r domain.Report) string {
	switch {
	case r.Binomial != nil:
		return fmt.Sprintf("binomial n%d p%g", r.Binomial.N, r.Binomial.P)
	case r.Discrete != nil:
		return "discrete " + r.Discrete.TableName
	default:
		return string(r.Kind)
	}
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
