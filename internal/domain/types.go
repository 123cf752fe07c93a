package domain

// Pattern is a named board shape with its built layout.
type Pattern struct {
	Name   string  `json:"name"`
	Slug   string  `json:"slug"`
	Shape  Shape   `json:"shape"`
	Layout *Layout `json:"-"`
}

// Solution is the outcome of a solve. Found is false when no sequence of
// moves reaches the goal; that is a normal result, not an error.
type Solution struct {
	Found bool   `json:"found"`
	Moves []Move `json:"moves,omitempty"`
}

// Hint suggests the next move for the UI.
type Hint struct {
	Move    Move   `json:"move"`
	Message string `json:"message,omitempty"`
}

// Puzzle is a generated starting position known to be solvable.
type Puzzle struct {
	Pattern    string     `json:"pattern,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Pegs       PegSet     `json:"pegs"`
	// Target is the hole the generator started from; a solution ending there exists.
	Target    Hole  `json:"target"`
	CreatedAt int64 `json:"createdAt,omitempty"`
}
