package client

import "web3dir/models"

const (
	MessageLoadFailed = "Error loading projects"
	MessageNoMatches  = "No projects found"
	MessageNoProjects = "No projects yet."
)

// Notice is a short-lived message shown to the user. ID distinguishes one
// notice from the next so that an expiring timer only clears its own.
type Notice struct {
	ID      uint64
	Message string
	IsError bool
}

// State is everything the view renders. Reducers return a new State and never
// modify the receiver; Projects is shared between copies and must be treated
// as read-only.
type State struct {
	Projects      []models.Project
	SearchTerm    string
	ActiveFilters TagSet
	Loading       bool
	Notice        *Notice
}

// InitialState is the state before the first fetch resolves.
func InitialState() State {
	return State{Projects: []models.Project{}, Loading: true}
}

// Loaded stores the fetched projects verbatim and ends loading.
func (s State) Loaded(projects []models.Project) State {
	if projects == nil {
		projects = []models.Project{}
	}
	s.Projects = projects
	s.Loading = false
	return s
}

// LoadFailed ends loading and keeps whatever projects were already there.
func (s State) LoadFailed() State {
	s.Loading = false
	return s
}

func (s State) WithSearch(term string) State {
	s.SearchTerm = term
	return s
}

// ToggleFilter flips tag's membership in ActiveFilters.
func (s State) ToggleFilter(tag string) State {
	s.ActiveFilters = s.ActiveFilters.Toggle(tag)
	return s
}

// WithNotice replaces any current notice.
func (s State) WithNotice(n Notice) State {
	s.Notice = &n
	return s
}

// ClearNotice removes the notice with the given ID. A newer notice is left alone.
func (s State) ClearNotice(id uint64) State {
	if s.Notice != nil && s.Notice.ID == id {
		s.Notice = nil
	}
	return s
}

// Visible is the filtered project list, recomputed on every call.
func (s State) Visible() []models.Project {
	return Filter(s.Projects, s.SearchTerm, s.ActiveFilters)
}

// Filtering reports whether a search term or tag filter is in effect.
func (s State) Filtering() bool {
	return s.SearchTerm != "" || s.ActiveFilters.Len() > 0
}

// EmptyMessage is the placeholder for an empty visible list, or "" when
// there is something to show or the list is still loading.
func (s State) EmptyMessage() string {
	if s.Loading || len(s.Visible()) > 0 {
		return ""
	}
	if s.Filtering() {
		return MessageNoMatches
	}
	return MessageNoProjects
}
