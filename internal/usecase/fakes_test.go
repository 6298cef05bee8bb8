package usecase

import "github.com/aalvaropc/probtable/internal/domain"

type fakeTableLoader struct {
	tbl  domain.DiscreteTable
	last string
}

func (f *fakeTableLoader) LoadTable(nameOrPath string) (domain.DiscreteTable, error) {
	f.last = nameOrPath
	return f.tbl, nil
}

type errTableLoader struct{ err error }

func (e errTableLoader) LoadTable(_ string) (domain.DiscreteTable, error) {
	return domain.DiscreteTable{}, e.err
}

type fakeStore struct {
	saved int
	last  domain.Report
}

func (s *fakeStore) SaveReport(r domain.Report) (string, error) {
	s.saved++
	s.last = r
	return "report-1", nil
}

type errStore struct{ err error }

func (s *errStore) SaveReport(_ domain.Report) (string, error) { return "", s.err }
