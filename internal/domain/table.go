package domain

// DiscreteTable is a probability mass table as authored by the user.
type DiscreteTable struct {
	Name          string
	Values        []float64
	Probabilities []float64
}

type TableRef struct {
	Name string
	Path string
}

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}
