package tui

import (
	"errors"
	"testing"

	"github.com/aalvaropc/probtable/internal/domain"
)

func TestUserMessage(t *testing.T) {
	_, pErr := domain.NewBinomialDistribution(3, 2)

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"invalid probability", pErr, "Success probability must lie in [0,1]"},
		{"save failure", &domain.OpError{Op: "reportstore.write", Kind: domain.KindExecution, Err: errors.New("eperm")}, "Report could not be saved (see logs)"},
		{"plain", errors.New("x"), "Unexpected error (see logs)"},
	}
	for _, c := range cases {
		if got := userMessage(c.err); got != c.want {
			t.Errorf("%s: userMessage = %q, want %q", c.name, got, c.want)
		}
	}
}
