package life

import "golang.org/x/sync/errgroup"

// CountLivingNeighbors returns the number of Alive cells among the in-bounds
// Moore neighbors of (x, y). Positions past the grid edge are skipped, never
// wrapped.
func CountLivingNeighbors(g *Grid, x, y int) int {
	return countNeighbors(g, x, y, CountLiving)
}

func countNeighbors(g *Grid, x, y int, mode NeighborMode) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !g.In(nx, ny) {
				continue
			}
			if mode == CountInBounds || g.cells[ny*g.w+nx] == Alive {
				n++
			}
		}
	}
	return n
}

// Step computes the next generation. g is not modified.
func Step(g *Grid, r Rules) *Grid {
	next, _ := StepWithStats(g, r)
	return next
}

// StepWithStats is Step that also tallies the transitions it applied.
func StepWithStats(g *Grid, r Rules) (*Grid, Stats) {
	next := blank(g)
	var stats Stats
	stepRows(g, next, r, 0, g.Height(), &stats)
	return next, stats
}

// StepParallel computes the same generation as Step, splitting the rows into
// bands evaluated by up to workers goroutines.
func StepParallel(g *Grid, r Rules, workers int) *Grid {
	next, _ := StepParallelWithStats(g, r, workers)
	return next
}

// StepParallelWithStats is StepParallel that also tallies transitions.
func StepParallelWithStats(g *Grid, r Rules, workers int) (*Grid, Stats) {
	h := g.Height()
	if workers <= 1 || h < 2 {
		return StepWithStats(g, r)
	}
	if workers > h {
		workers = h
	}
	next := blank(g)
	band := (h + workers - 1) / workers
	bands := make([]Stats, (h+band-1)/band)

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i := range bands {
		i, start := i, i*band
		end := min(start+band, h)
		eg.Go(func() error {
			stepRows(g, next, r, start, end, &bands[i])
			return nil
		})
	}
	_ = eg.Wait()

	var stats Stats
	for _, b := range bands {
		stats.Births += b.Births
		stats.Starved += b.Starved
		stats.Overpopulated += b.Overpopulated
		stats.Survived += b.Survived
	}
	return next, stats
}

func blank(g *Grid) *Grid {
	return NewGrid(g.Width(), g.Height(), nil)
}

// stepRows writes rows [y0, y1) of next from g. Every read goes to g, so
// disjoint bands may run concurrently.
func stepRows(g, next *Grid, r Rules, y0, y1 int, stats *Stats) {
	w := g.Width()
	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			n := countNeighbors(g, x, y, r.Counting)
			cell, t := Next(g.cells[idx], n, r)
			next.cells[idx] = cell
			if stats != nil {
				stats.add(t)
			}
		}
	}
}
