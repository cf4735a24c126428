package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSetQuery(t *testing.T) {
	s := NewSession(countries)

	s.SetQuery("G")
	assert.Equal(t, []string{"Germany", "Greece", "Gambia"}, s.Suggestions())
	assert.Equal(t, -1, s.Index())
	assert.Equal(t, StateOpen, s.State())

	s.SetQuery("Gr")
	assert.Equal(t, []string{"Greece"}, s.Suggestions())

	s.SetQuery("Gx")
	assert.Empty(t, s.Suggestions())
	assert.Equal(t, StateClosed, s.State())
}

func TestSessionSetQueryResetsHighlight(t *testing.T) {
	s := NewSession(countries)
	s.SetQuery("G")
	s.Next()
	s.Next()
	require.Equal(t, 1, s.Index())

	// The same text still rebuilds the set
	s.SetQuery("G")
	assert.Equal(t, -1, s.Index())
}

func TestSessionEmptyQueryCloses(t *testing.T) {
	s := NewSession(countries)
	s.SetQuery("G")
	s.Next()
	require.True(t, s.IsOpen())

	s.SetQuery("")
	assert.Empty(t, s.Suggestions())
	assert.Equal(t, -1, s.Index())
	assert.Equal(t, StateClosed, s.State())
}

func TestSessionCommit(t *testing.T) {
	s := NewSession(countries)
	s.SetQuery("G")

	ok := s.Commit("Greece")
	assert.True(t, ok)
	assert.Equal(t, "Greece", s.Query())
	assert.Empty(t, s.Suggestions())
	assert.Equal(t, StateClosed, s.State())
	assert.Equal(t, -1, s.Index())
}

func TestSessionCommitWhenClosedIsNoop(t *testing.T) {
	s := NewSession(countries)
	s.SetQuery("Gx")

	ok := s.Commit("Greece")
	assert.False(t, ok)
	assert.Equal(t, "Gx", s.Query())
}

func TestSessionCommitActive(t *testing.T) {
	s := NewSession(countries)
	s.SetQuery("g")

	// Nothing highlighted yet
	_, ok := s.CommitActive()
	assert.False(t, ok)
	assert.Equal(t, "g", s.Query())
	assert.True(t, s.IsOpen())

	s.Next()
	s.Next()
	committed, ok := s.CommitActive()
	assert.True(t, ok)
	assert.Equal(t, "Greece", committed)
	assert.Equal(t, "Greece", s.Query())
	assert.False(t, s.IsOpen())
}

func TestSessionCloseKeepsQuery(t *testing.T) {
	s := NewSession(countries)
	s.SetQuery("Ge")
	s.Next()

	s.Close()
	assert.Equal(t, "Ge", s.Query())
	assert.Equal(t, StateClosed, s.State())
	assert.Equal(t, -1, s.Index())
}

func TestSessionSetCandidatesKeepsClosed(t *testing.T) {
	s := NewSession(nil)
	s.SetQuery("G")
	assert.False(t, s.IsOpen())

	s.SetCandidates(countries)
	assert.False(t, s.IsOpen())
	assert.Equal(t, countries, s.Candidates())

	// The new list applies from the next query change
	s.SetQuery("Ge")
	assert.Equal(t, []string{"Germany"}, s.Suggestions())
}

func TestSessionSetCandidatesAfterCommit(t *testing.T) {
	s := NewSession(countries)
	s.SetQuery("Gr")
	require.True(t, s.Commit("Greece"))

	s.SetCandidates([]string{"Greece", "Greenland"})
	assert.Equal(t, "Greece", s.Query())
	assert.False(t, s.IsOpen())
	assert.Equal(t, StateClosed, s.State())
}

func TestSessionSetCandidatesRefiltersOpenSet(t *testing.T) {
	s := NewSession(countries)
	s.SetQuery("G")
	s.Next()
	require.True(t, s.IsOpen())

	s.SetCandidates([]string{"Ghana", "France", "Guyana"})
	assert.Equal(t, []string{"Ghana", "Guyana"}, s.Suggestions())
	assert.Equal(t, -1, s.Index(), "the highlight is reset")

	s.SetCandidates([]string{"France"})
	assert.False(t, s.IsOpen())
}

func TestSessionRows(t *testing.T) {
	s := NewSession(countries)
	s.SetQuery("gr")
	s.Next()

	rows := s.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, Row{Value: "Greece", Matched: "Gr", Rest: "eece", Highlighted: true}, rows[0])
}
