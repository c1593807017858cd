package life

// NeighborMode selects how Step counts neighbors.
type NeighborMode uint8

const (
	// CountLiving counts in-bounds neighbors that are Alive.
	CountLiving NeighborMode = iota
	// CountInBounds counts every in-bounds neighbor regardless of state, as
	// the first tkinter version of this program did.
	CountInBounds
)

// String returns the settings token for the mode.
func (m NeighborMode) String() string {
	switch m {
	case CountInBounds:
		return "in_bounds"
	default:
		return "living"
	}
}

// ParseNeighborMode maps a settings token back to a mode.
func ParseNeighborMode(s string) (NeighborMode, bool) {
	switch s {
	case "living", "":
		return CountLiving, true
	case "in_bounds":
		return CountInBounds, true
	}
	return CountLiving, false
}

// Rules holds the threshold parameters of one run.
//
// An alive cell with fewer than Starvation living neighbors dies; one with
// more than Overpopulation living neighbors dies. A dead cell with exactly
// Birth living neighbors comes alive. Thresholds are not cross-checked:
// Starvation > Overpopulation kills every alive cell.
type Rules struct {
	Starvation     int
	Overpopulation int
	Birth          int

	Counting NeighborMode
}

// Classic returns the B3/S23 thresholds.
func Classic() Rules {
	return Rules{Starvation: 2, Overpopulation: 3, Birth: 3}
}

// Transition labels the outcome of applying Rules to one cell.
type Transition uint8

const (
	Unchanged Transition = iota
	Born
	Starved
	Overpopulated
	Survived
)

func (t Transition) String() string {
	switch t {
	case Born:
		return "birth"
	case Starved:
		return "starve"
	case Overpopulated:
		return "overpopulation"
	case Survived:
		return "survive"
	default:
		return "unchanged"
	}
}

// Next applies the rule table to a cell with n counted neighbors.
func Next(cur Cell, n int, r Rules) (Cell, Transition) {
	if cur == Alive {
		switch {
		case n < r.Starvation:
			return Dead, Starved
		case n > r.Overpopulation:
			return Dead, Overpopulated
		default:
			return Alive, Survived
		}
	}
	if n == r.Birth {
		return Alive, Born
	}
	return Dead, Unchanged
}

// Stats tallies the transitions of one generation.
type Stats struct {
	Births        int
	Starved       int
	Overpopulated int
	Survived      int
}

func (s *Stats) add(t Transition) {
	switch t {
	case Born:
		s.Births++
	case Starved:
		s.Starved++
	case Overpopulated:
		s.Overpopulated++
	case Survived:
		s.Survived++
	}
}

// Deaths returns starvation plus overpopulation deaths.
func (s Stats) Deaths() int { return s.Starved + s.Overpopulated }
