package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pegsolitaire/pegsolitaire/internal/domain"
)

func TestValidate(t *testing.T) {
	l := domain.NewCentered(3, 3, 7, 7, 7, 3, 3)
	v := New()

	ok, invalid, err := v.Validate(context.Background(), l, l.Full())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, invalid)

	ok, invalid, err = v.Validate(context.Background(), l, domain.NewPegSet(40, 1, 0, 34))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []domain.Hole{0, 34, 40}, invalid)
}

func TestCheckMove(t *testing.T) {
	l := domain.NewRect(1, 3)
	v := New()
	assert.NoError(t, v.CheckMove(l, domain.NewPegSet(1, 2), domain.Move{From: 1, Over: 2, To: 3}))
	assert.ErrorIs(t, v.CheckMove(l, domain.NewPegSet(1, 2, 3), domain.Move{From: 1, Over: 2, To: 3}), domain.ErrInvalidMove)
	assert.ErrorIs(t, v.CheckMove(l, domain.NewPegSet(1, 2, 5), domain.Move{From: 1, Over: 2, To: 3}), domain.ErrInvalidPegs)
}
