package tui

import (
	"errors"
	"strings"

	"github.com/aalvaropc/probtable/internal/domain"
)

// userMessage turns an error into a one-line message for the form.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindInvalidParameter:
			msg := err.Error()
			if i := strings.LastIndex(msg, ": "+domain.ErrInvalidParameter.Error()); i >= 0 {
				msg = msg[:i]
			}
			if j := strings.LastIndex(msg, ": "); j >= 0 {
				msg = msg[j+2:]
			}
			return upperFirst(msg)

		case domain.KindExecution:
			return "Report could not be saved (see logs)"

		default:
			return "Unexpected error (see logs)"
		}
	}

	return "Unexpected error (see logs)"
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
