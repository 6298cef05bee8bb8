package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aalvaropc/probtable/internal/domain"
)

func TestComputeBinomial_ReturnsReport(t *testing.T) {
	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	uc := NewComputeBinomial(WithNow(func() time.Time { return at }))

	r, id, err := uc.Execute(context.Background(), 5, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "" {
		t.Fatalf("expected no id without a store, got %q", id)
	}
	if r.Kind != domain.ReportBinomial || r.Binomial == nil {
		t.Fatalf("expected binomial report, got %+v", r)
	}
	if !r.CreatedAt.Equal(at) {
		t.Fatalf("expected created_at from clock, got %v", r.CreatedAt)
	}
	if got := r.Binomial.Probabilities[0]; got != 0.03125 {
		t.Fatalf("expected P(X=0)=0.03125, got %v", got)
	}
}

func TestComputeBinomial_SavesWhenStoreConfigured(t *testing.T) {
	store := &fakeStore{}
	uc := NewComputeBinomial(WithStore(store))

	_, id, err := uc.Execute(context.Background(), 3, 0.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "report-1" || store.saved != 1 {
		t.Fatalf("expected one save with id report-1, got saved=%d id=%q", store.saved, id)
	}
	if store.last.Binomial.N != 3 {
		t.Fatalf("expected stored n=3, got %d", store.last.Binomial.N)
	}
}

func TestComputeBinomial_RejectsInvalidParameters(t *testing.T) {
	store := &fakeStore{}
	uc := NewComputeBinomial(WithStore(store))

	for _, c := range []struct {
		n int
		p float64
	}{{-1, 0.5}, {4, 1.5}} {
		_, _, err := uc.Execute(context.Background(), c.n, c.p)
		if !domain.IsKind(err, domain.KindInvalidParameter) {
			t.Fatalf("n=%d p=%v: expected KindInvalidParameter, got %v", c.n, c.p, err)
		}
	}
	if store.saved != 0 {
		t.Fatalf("invalid input must not be saved")
	}
}

func TestComputeBinomial_StoreErrorKeepsReport(t *testing.T) {
	saveErr := errors.New("disk full")
	uc := NewComputeBinomial(WithStore(&errStore{err: saveErr}))

	r, _, err := uc.Execute(context.Background(), 2, 0.5)
	if !errors.Is(err, saveErr) {
		t.Fatalf("expected save error, got %v", err)
	}
	if r.Binomial == nil || len(r.Binomial.Probabilities) != 3 {
		t.Fatalf("expected report alongside save error, got %+v", r)
	}
}

func TestComputeBinomial_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewComputeBinomial().Execute(ctx, 5, 0.5)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
