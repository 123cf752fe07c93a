package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pegsolitaire/pegsolitaire/internal/domain"
)

func square25() domain.Pattern {
	return domain.Pattern{Name: "Square 25", Layout: domain.NewRect(5, 5)}
}

func TestGameEditor(t *testing.T) {
	g := NewGame("g1", square25())
	assert.Equal(t, 25, g.Initial.Len())
	assert.False(t, g.Started())

	require.NoError(t, g.Toggle(13))
	assert.False(t, g.Initial.Contains(13))
	require.NoError(t, g.Toggle(13))
	assert.True(t, g.Initial.Contains(13))
	assert.ErrorIs(t, g.Toggle(26), domain.ErrInvalidPegs)

	g.ToggleFull()
	assert.Equal(t, 0, g.Initial.Len())
	assert.ErrorIs(t, g.Start(), ErrEmptyBoard)

	g.ToggleFull()
	assert.Equal(t, 25, g.Initial.Len())

	require.NoError(t, g.Toggle(13))
	require.NoError(t, g.Start())
	assert.True(t, g.Started())

	hist, err := g.Play()
	require.NoError(t, err)
	assert.Equal(t, 24, hist.Current().Pegs.Len())

	// editing discards play
	require.NoError(t, g.Toggle(1))
	assert.False(t, g.Started())
	_, err = g.Play()
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestGameSetInitial(t *testing.T) {
	g := NewGame("g1", square25())
	require.NoError(t, g.SetInitial(domain.NewPegSet(1, 2)))
	assert.True(t, g.Initial.Equal(domain.NewPegSet(1, 2)))
	assert.ErrorIs(t, g.SetInitial(domain.NewPegSet(99)), domain.ErrInvalidPegs)
}

func TestStore(t *testing.T) {
	s := NewStore()
	g := s.Create(square25())
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, 1, s.Len())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(g.ID, func(g *Game) error {
				g.ToggleFull()
				return nil
			})
		}()
	}
	wg.Wait()
	require.NoError(t, s.Get(g.ID, func(g *Game) error {
		assert.Equal(t, 25, g.Initial.Len(), "an even number of toggles restores the full board")
		return nil
	}))

	assert.ErrorIs(t, s.Update("missing", func(*Game) error { return nil }), ErrNotFound)
	assert.True(t, s.Delete(g.ID))
	assert.False(t, s.Delete(g.ID))
	assert.Equal(t, 0, s.Len())
}
