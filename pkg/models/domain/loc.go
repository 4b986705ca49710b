package domain

// Repo identifies a GitHub repository
type Repo struct {
	Owner string
	Name  string
}

func (r Repo) String() string {
	return r.Owner + "/" + r.Name
}

// LocOptions control which files contribute to the line count
type LocOptions struct {
	IncludeTests      bool
	MaxFileSizeMB     float64
	ExcludeExtensions []string
}

// LocReport holds per-extension line counts for a repository
type LocReport struct {
	Total       int
	ByExtension map[string]int
}
