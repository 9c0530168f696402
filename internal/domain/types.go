package domain

// Pools for the classic numbers round. Large numbers are drawn without
// replacement, small numbers with replacement.
var (
	LargePool = []int{25, 50, 75, 100}
	SmallPool = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
)

// Constraints configures which intermediate results a move may produce.
// Passed by value through the search; never global state.
type Constraints struct {
	// AllowNegative permits negative intermediate results. Off under
	// classic rules.
	AllowNegative bool `json:"allowNegative" yaml:"allow_negative"`
	// ExactDivision rejects divisions with a remainder. When off, division
	// truncates toward zero so intermediates stay integers.
	ExactDivision bool `json:"exactDivision" yaml:"exact_division"`
}

// Classic returns the classic game rules: intermediates never go negative
// and division must be exact.
func Classic() Constraints { return Constraints{AllowNegative: false, ExactDivision: true} }

// Puzzle is a generated or player-supplied numbers round.
type Puzzle struct {
	Numbers    []int `json:"numbers"`
	Target     int   `json:"target"`
	LargeCount int   `json:"largeCount,omitempty"`
	Seed       int64 `json:"seed,omitempty"`
	CreatedAt  int64 `json:"createdAt,omitempty"`
}

// Solution is a terminal search result: the best expression found and its
// distance to the target. Immutable once produced.
type Solution struct {
	Expr   *Expression `json:"-"`
	Score  int         `json:"score"`
	Target int         `json:"target"`
}

// Exact reports whether the solution hits the target exactly.
func (s *Solution) Exact() bool { return s.Score == 0 }

// Value returns the evaluated value of the solution expression.
func (s *Solution) Value() int {
	if s.Expr == nil {
		return 0
	}
	return s.Expr.Value()
}

// Render returns the solution expression's parenthesized form.
func (s *Solution) Render() string {
	if s.Expr == nil {
		return ""
	}
	return s.Expr.Render()
}

// Hint describes a suggested next combination for the UI.
type Hint struct {
	Message string `json:"message,omitempty"`
	Left    int    `json:"left"`
	Right   int    `json:"right"`
	Op      string `json:"op"`
	Result  int    `json:"result"`
}
