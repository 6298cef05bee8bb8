package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/probtable/internal/domain"
)

func binomialReport(t *testing.T, n int, p float64) domain.Report {
	t.Helper()
	d, err := domain.NewBinomialDistribution(n, p)
	if err != nil {
		t.Fatalf("distribution: %v", err)
	}
	return domain.NewBinomialReport(d, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestRender_PrettyBinomialTable(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, binomialReport(t, 5, 0.5), Options{Format: FormatPretty, NoColor: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Trials (n)           = 5",
		"Success prob. (p)    = 0.5",
		" 0               | 0.031250",
		" 2               | 0.312500",
		" 5               | 0.031250",
		"Total probability = 1.000000",
		"Mean = 2.500000",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestRender_PrettyPrecision(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, binomialReport(t, 2, 0.5), Options{Precision: 2, NoColor: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), " 1               | 0.50") {
		t.Fatalf("expected two-decimal probability, got:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "0.500000") {
		t.Fatalf("expected precision to apply everywhere, got:\n%s", buf.String())
	}
}

func TestRender_PrettyDiscreteTable(t *testing.T) {
	tbl := domain.DiscreteTable{
		Name:          "textbook",
		Values:        []float64{1, 2, 3, 4, 5},
		Probabilities: []float64{0.16, 0.22, 0.28, 0.20, 0.14},
	}
	d, err := domain.NewDiscreteDistribution(tbl.Values, tbl.Probabilities)
	if err != nil {
		t.Fatalf("distribution: %v", err)
	}

	var buf bytes.Buffer
	if err := Render(&buf, domain.NewDiscreteReport(tbl, "", d, time.Time{}), Options{Precision: 4, NoColor: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Table: textbook", "E(X) = mu = 2.9400", "Var(X)        = 1.6164", "sigma   = 1.2714"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, binomialReport(t, 1, 0.25), Options{Format: FormatJSON}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if payload["kind"] != "binomial" {
		t.Fatalf("expected kind=binomial, got %v", payload["kind"])
	}
	b, ok := payload["binomial"].(map[string]any)
	if !ok {
		t.Fatalf("expected binomial section, got %v", payload)
	}
	probs, _ := b["probabilities"].([]any)
	if len(probs) != 2 || probs[0] != 0.75 || probs[1] != 0.25 {
		t.Fatalf("unexpected probabilities %v", probs)
	}
}

func TestRender_UnknownFormat_ReturnsError(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, binomialReport(t, 1, 0.5), Options{Format: "xml"})
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("expected error to mention format, got: %v", err)
	}
}

func TestPretty_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	if err := Pretty(&buf, domain.Report{Kind: "mystery"}, PlainTheme(), 0); err == nil {
		t.Fatal("expected error for report without data")
	}
}

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{"", FormatPretty, FormatJSON} {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%q) = %v, want nil", f, err)
		}
	}
	if err := ValidateFormat("xml"); err == nil || !strings.Contains(err.Error(), "xml") {
		t.Errorf("expected error mentioning xml, got %v", err)
	}
}
