package ports

import "github.com/aalvaropc/probtable/internal/domain"

// TableLoader loads discrete probability tables from a source (e.g., filesystem).
type TableLoader interface {
	LoadTable(path string) (domain.DiscreteTable, error)
}

type TableCatalog interface {
	ListTables(root string) ([]domain.TableRef, error)
}
