package usecase

import (
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/probtable/internal/domain"
	"github.com/aalvaropc/probtable/internal/ports"
)

// settings are shared by the report-producing use cases.
type settings struct {
	store ports.ReportStore
	log   *slog.Logger
	now   func() time.Time
}

type Option func(*settings)

// WithStore persists every computed report. A nil store disables saving.
func WithStore(s ports.ReportStore) Option {
	return func(st *settings) { st.store = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(st *settings) {
		if l != nil {
			st.log = l
		}
	}
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(st *settings) {
		if now != nil {
			st.now = now
		}
	}
}

func newSettings(opts []Option) settings {
	st := settings{
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&st)
	}
	return st
}

// save stores r if a store is configured. The report is returned unchanged
// so callers can still print it when saving fails.
func (st settings) save(r domain.Report) (string, error) {
	if st.store == nil {
		return "", nil
	}
	id, err := st.store.SaveReport(r)
	if err != nil {
		st.log.Error("report.save_failed", "kind", r.Kind, "err", err)
		return "", err
	}
	st.log.Info("report.saved", "kind", r.Kind, "id", id)
	return id, nil
}
