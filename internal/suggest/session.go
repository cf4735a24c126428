package suggest

// Session owns the text of one autocomplete input together with its candidate
// list and highlight navigator. Every query change re-filters synchronously, so
// a new query always supersedes the previous suggestion set.
type Session struct {
	candidates []string
	query      string
	nav        *Navigator
}

// NewSession creates a Session over the given candidates with an empty query.
func NewSession(candidates []string) *Session {
	return &Session{
		candidates: candidates,
		nav:        NewNavigator(),
	}
}

// Candidates returns the candidate list.
func (s *Session) Candidates() []string {
	return s.candidates
}

// SetCandidates replaces the candidate list. An open suggestion set is
// re-filtered against the new list; a closed one stays closed until the query
// changes.
func (s *Session) SetCandidates(candidates []string) {
	s.candidates = candidates
	if s.nav.IsOpen() {
		s.refilter()
	}
}

// Query returns the current text.
func (s *Session) Query() string {
	return s.query
}

// SetQuery updates the text and rebuilds the suggestion set. The highlight is
// cleared even when the query is unchanged.
func (s *Session) SetQuery(query string) {
	s.query = query
	s.refilter()
}

func (s *Session) refilter() {
	if s.query == "" {
		s.nav.Close()
		return
	}
	s.nav.SetSuggestions(Filter(s.query, s.candidates))
}

// Navigator returns the highlight navigator.
func (s *Session) Navigator() *Navigator {
	return s.nav
}

// Suggestions returns the current suggestion set.
func (s *Session) Suggestions() []string {
	return s.nav.Suggestions()
}

// Index returns the highlight index, or -1 when nothing is highlighted.
func (s *Session) Index() int {
	return s.nav.Index()
}

// State returns the dropdown state.
func (s *Session) State() State {
	return s.nav.State()
}

// IsOpen returns true if suggestions are shown.
func (s *Session) IsOpen() bool {
	return s.nav.IsOpen()
}

// Next moves the highlight down.
func (s *Session) Next() {
	s.nav.Next()
}

// Previous moves the highlight up.
func (s *Session) Previous() {
	s.nav.Previous()
}

// Active returns the highlighted suggestion.
func (s *Session) Active() (string, bool) {
	return s.nav.Active()
}

// Commit writes candidate into the text and closes the suggestions.
// It does nothing and returns false when no suggestions are shown.
func (s *Session) Commit(candidate string) bool {
	if !s.nav.IsOpen() {
		return false
	}
	s.query = candidate
	s.nav.Close()
	return true
}

// CommitActive commits the highlighted suggestion, if any.
func (s *Session) CommitActive() (string, bool) {
	active, ok := s.nav.Active()
	if !ok {
		return "", false
	}
	return active, s.Commit(active)
}

// Close hides the suggestions without touching the text.
func (s *Session) Close() {
	s.nav.Close()
}

// Rows projects the current suggestions into renderable rows.
func (s *Session) Rows() []Row {
	return BuildRows(s.query, s.nav.Suggestions(), s.nav.Index())
}
