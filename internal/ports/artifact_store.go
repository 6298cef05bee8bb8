package ports

import "github.com/aalvaropc/probtable/internal/domain"

// ReportStore persists computed reports so a table can be reproduced later.
type ReportStore interface {
	SaveReport(r domain.Report) (id string, err error)
}
