package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pegsolitaire/pegsolitaire/internal/config"
	"github.com/pegsolitaire/pegsolitaire/internal/domain"
	"github.com/pegsolitaire/pegsolitaire/internal/infrastructure/storage"
)

func init() {
	color.NoColor = true
}

func rowConfig() *config.Config {
	c := config.Default()
	c.Patterns.Custom = []domain.PatternSpec{
		{Name: "Row", Shape: domain.Shape{Kind: domain.ShapeRect, Width: 5, Height: 1}},
	}
	return c
}

func TestParseHoles(t *testing.T) {
	tests := []struct {
		in      string
		want    []domain.Hole
		wantErr bool
	}{
		{in: "", want: nil},
		{in: "1,2,3", want: []domain.Hole{1, 2, 3}},
		{in: " 4 , 7-9 ", want: []domain.Hole{4, 7, 8, 9}},
		{in: "5-5", want: []domain.Hole{5}},
		{in: "0", wantErr: true},
		{in: "x", wantErr: true},
		{in: "9-3", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseHoles(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPositionFlags(t *testing.T) {
	l := domain.NewRect(5, 5)

	pegs, err := positionFlags{}.resolve(l)
	require.NoError(t, err)
	assert.Equal(t, 24, pegs.Len())
	assert.False(t, pegs.Contains(13))

	pegs, err = positionFlags{pegs: "1,2"}.resolve(l)
	require.NoError(t, err)
	assert.Equal(t, domain.NewPegSet(1, 2), pegs)

	pegs, err = positionFlags{empty: "1-5"}.resolve(l)
	require.NoError(t, err)
	assert.Equal(t, 20, pegs.Len())

	pegs, err = positionFlags{full: true}.resolve(l)
	require.NoError(t, err)
	assert.Equal(t, 25, pegs.Len())

	_, err = positionFlags{pegs: "a"}.resolve(l)
	assert.Error(t, err)
}

func TestParseMoveArgs(t *testing.T) {
	legal := []domain.Move{{From: 1, Over: 2, To: 3}, {From: 4, Over: 3, To: 2}}

	m, err := parseMoveArgs([]string{"4", "2"}, legal)
	require.NoError(t, err)
	assert.Equal(t, domain.Move{From: 4, Over: 3, To: 2}, m)

	m, err = parseMoveArgs([]string{"5", "4", "3"}, legal)
	require.NoError(t, err)
	assert.Equal(t, domain.Move{From: 5, Over: 4, To: 3}, m)

	_, err = parseMoveArgs([]string{"1", "5"}, legal)
	assert.ErrorContains(t, err, "no legal jump")
	_, err = parseMoveArgs([]string{"1"}, legal)
	assert.Error(t, err)
}

func TestRenderBoard(t *testing.T) {
	var buf bytes.Buffer
	renderBoard(&buf, domain.NewRect(1, 5), domain.NewPegSet(1, 2), nil)
	assert.Equal(t, "  1●  2●  3·  4·  5·\n", buf.String())

	buf.Reset()
	renderBoard(&buf, domain.NewCentered(1, 3, 1), domain.NewPegSet(3), nil)
	assert.Equal(t, "      1·\n  2·  3●  4·\n      5·\n", buf.String())
}

func TestRenderMoves(t *testing.T) {
	var buf bytes.Buffer
	renderMoves(&buf, nil)
	assert.Equal(t, "no legal moves\n", buf.String())

	buf.Reset()
	renderMoves(&buf, []domain.Move{{From: 1, Over: 2, To: 3}})
	assert.Equal(t, "  1. 1→2→3\n", buf.String())
}

func TestLoadCatalogFromDir(t *testing.T) {
	dir := t.TempDir()
	fs := storage.NewFS(dir)
	require.NoError(t, fs.Save(context.Background(), domain.PatternSpec{
		Name:  "Tall",
		Shape: domain.Shape{Kind: domain.ShapeRect, Width: 1, Height: 6},
	}))
	// Clashes with a built-in and is skipped.
	require.NoError(t, fs.Save(context.Background(), domain.PatternSpec{
		Name:  "Plus 33",
		Shape: domain.Shape{Kind: domain.ShapeRect, Width: 2, Height: 2},
	}))

	pc := rowConfig().Patterns
	pc.Dir = dir
	cat, err := loadCatalog(context.Background(), pc)
	require.NoError(t, err)

	names := make([]string, 0)
	for _, p := range cat.List() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Plus 33", "Diamond 37", "Square 49", "Square 25", "Row", "Tall"}, names)
	plus, ok := cat.Lookup("plus-33")
	require.True(t, ok)
	assert.Equal(t, 33, plus.Layout.Size())
}

func newTestSession(t *testing.T, pegs domain.PegSet) (*playSession, *bytes.Buffer) {
	t.Helper()
	a, err := newApp(context.Background(), rowConfig())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	v, err := a.svc.NewGame("row")
	require.NoError(t, err)
	_, err = a.svc.SetInitial(v.ID, pegs)
	require.NoError(t, err)
	p, err := a.svc.Pattern("row")
	require.NoError(t, err)

	var out bytes.Buffer
	return &playSession{svc: a.svc, id: v.ID, layout: p.Layout, out: &out, errOut: &out, quiet: true}, &out
}

func TestPlaySession(t *testing.T) {
	s, out := newTestSession(t, domain.NewPegSet(1, 2, 4))
	script := strings.Join([]string{"1 3", "start", "1 3", "undo", "redo", "step", "history", "bogus", "quit", "step"}, "\n")
	require.NoError(t, s.run(context.Background(), strings.NewReader(script)))

	got := out.String()
	assert.Contains(t, got, "editing: 3 pegs")
	assert.Contains(t, got, "game not started")
	assert.Contains(t, got, "cleared in 2 jumps")
	assert.Contains(t, got, "→   2. 3→4→5")
	assert.Contains(t, got, `unknown command "bogus"`)
}

func TestPlaySessionEditorAndAuto(t *testing.T) {
	s, out := newTestSession(t, domain.NewPegSet(1, 2))
	script := strings.Join([]string{"toggle 4", "start", "hint", "auto", "moves"}, "\n")
	require.NoError(t, s.run(context.Background(), strings.NewReader(script)))

	got := out.String()
	assert.Contains(t, got, "Jump 1 over 2 into 3")
	assert.Contains(t, got, "  1. 1→2→3\n  2. 3→4→5\n")
	assert.Contains(t, got, "cleared in 2 jumps")
	assert.Contains(t, got, "no legal moves")
}

func TestPlaySessionStuck(t *testing.T) {
	s, out := newTestSession(t, domain.NewPegSet(1, 5))
	require.NoError(t, s.run(context.Background(), strings.NewReader("start\nauto\n")))
	assert.Contains(t, out.String(), "stuck with 2 pegs")
	assert.Contains(t, out.String(), "no solution from here")
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestPatternsCommand(t *testing.T) {
	got := execute(t, "patterns")
	assert.Contains(t, got, "Plus 33")
	assert.Contains(t, got, "square-25")
	assert.Contains(t, got, " 37 holes")
}

func TestSolveCommand(t *testing.T) {
	got := execute(t, "solve", "--pattern", "square-25", "--pegs", "1,2", "--quiet")
	assert.Contains(t, got, "solved Square 25 in 1 jumps")
	assert.Contains(t, got, "1. 1→2→3")

	got = execute(t, "solve", "--pattern", "square-25", "--pegs", "1,3", "--quiet")
	assert.Contains(t, got, "no solution")
}

func TestMovesCommand(t *testing.T) {
	got := execute(t, "moves", "--pattern", "square-25", "--pegs", "1,2,6")
	assert.Equal(t, "  1. 1→2→3\n  2. 1→6→11\n", got)
}

func TestGenerateCommand(t *testing.T) {
	got := execute(t, "generate", "--pattern", "square-25", "--seed", "5", "--difficulty", "easy", "--output", "yaml")
	assert.Contains(t, got, "pattern: Square 25")
	assert.Contains(t, got, "difficulty: easy")
	assert.Contains(t, got, "seed: 5")
}

func TestConfigInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pegsolitaire.toml")
	execute(t, "config", "init", path)
	_, err := os.Stat(path)
	require.NoError(t, err)

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), got)
}

func TestPatternsExportCommand(t *testing.T) {
	dir := t.TempDir()
	execute(t, "patterns", "export", "Diamond 37", dir)

	specs, err := storage.NewFS(dir).List(context.Background())
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, "Diamond 37", specs[0].Name)
	assert.Equal(t, []int{3, 5, 7, 7, 7, 5, 3}, specs[0].Rows)
}
