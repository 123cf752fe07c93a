package cli

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/pegsolitaire/pegsolitaire/internal/domain"
)

// parseHoles parses a hole list such as "1,2,5-9". Whitespace is ignored.
func parseHoles(s string) ([]domain.Hole, error) {
	var out []domain.Hole
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(part, "-")
		a, err := parseHole(lo)
		if err != nil {
			return nil, err
		}
		if !isRange {
			out = append(out, a)
			continue
		}
		b, err := parseHole(hi)
		if err != nil {
			return nil, err
		}
		if b < a {
			return nil, errors.Errorf("bad range %q", part)
		}
		for h := a; h <= b; h++ {
			out = append(out, h)
		}
	}
	return out, nil
}

func parseHole(s string) (domain.Hole, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return domain.NoHole, errors.Errorf("bad hole %q", s)
	}
	return domain.Hole(n), nil
}

// positionFlags selects a position on a layout: explicit pegs, the full board
// minus some holes, or the opening position when neither is given.
type positionFlags struct {
	pegs  string
	empty string
	full  bool
}

func (p positionFlags) resolve(l *domain.Layout) (domain.PegSet, error) {
	if p.pegs != "" {
		holes, err := parseHoles(p.pegs)
		if err != nil {
			return nil, errors.Wrap(err, "--pegs")
		}
		return domain.NewPegSet(holes...), nil
	}
	if p.empty != "" || p.full {
		pegs := l.Full()
		holes, err := parseHoles(p.empty)
		if err != nil {
			return nil, errors.Wrap(err, "--empty")
		}
		for _, h := range holes {
			pegs.Remove(h)
		}
		return pegs, nil
	}
	return l.Opening(), nil
}

// parseMoveArgs reads "FROM TO" or "FROM OVER TO" and resolves it against the
// legal moves. A two-hole form matches the legal jump between them.
func parseMoveArgs(fields []string, legal []domain.Move) (domain.Move, error) {
	holes := make([]domain.Hole, 0, len(fields))
	for _, f := range fields {
		h, err := parseHole(f)
		if err != nil {
			return domain.Move{}, err
		}
		holes = append(holes, h)
	}
	switch len(holes) {
	case 2:
		for _, m := range legal {
			if m.From == holes[0] && m.To == holes[1] {
				return m, nil
			}
		}
		return domain.Move{}, errors.Errorf("no legal jump from %d to %d", holes[0], holes[1])
	case 3:
		return domain.Move{From: holes[0], Over: holes[1], To: holes[2]}, nil
	default:
		return domain.Move{}, errors.New("expected FROM TO or FROM OVER TO")
	}
}
