package domain

// Session identifies the project+commit scope of every cache lookup and
// element fetch. Switching project or commit means constructing a new
// Session and a fresh cache, never mutating an existing one.
type Session struct {
	ProjectID string
	CommitID  string
}

// Valid reports whether the session names both a project and a commit.
func (s Session) Valid() bool {
	return s.ProjectID != "" && s.CommitID != ""
}
