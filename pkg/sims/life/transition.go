package life

// Algorithm computes the next generation of a grid, replacing its state.
// Every implementation must produce the same result for the same input.
type Algorithm interface {
	Name() string
	Next(g *Grid)
}

var (
	// Naive rebuilds every cell of the board.
	Naive Algorithm = naive{}
	// Frontier only visits live cells and their neighbours.
	Frontier Algorithm = frontier{}
)

// Algorithms lists every transition algorithm.
func Algorithms() []Algorithm { return []Algorithm{Naive, Frontier} }

// AlgorithmByName looks up an algorithm by its Name.
func AlgorithmByName(name string) (Algorithm, bool) {
	for _, a := range Algorithms() {
		if a.Name() == name {
			return a, true
		}
	}
	return nil, false
}

// NextGenerationNaive advances the grid using the full-board algorithm.
func (g *Grid) NextGenerationNaive() { Naive.Next(g) }

// NextGenerationOptimized advances the grid using the frontier algorithm.
func (g *Grid) NextGenerationOptimized() { Frontier.Next(g) }

// nextState applies B3/S23.
func nextState(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

type naive struct{}

func (naive) Name() string { return "naive" }

func (naive) Next(g *Grid) {
	next := make([]bool, len(g.cells))
	for i, alive := range g.cells {
		next[i] = nextState(alive, g.LiveNeighbors(i))
	}
	g.cells = next
}

type frontier struct{}

func (frontier) Name() string { return "frontier" }

// Next evaluates only cells within one step of a live cell. A cell outside
// that set has no live neighbours, so it is dead now and stays dead.
func (frontier) Next(g *Grid) {
	n := g.n
	next := make([]bool, len(g.cells))
	visited := make([]bool, len(g.cells))
	for i, alive := range g.cells {
		if !alive {
			continue
		}
		row, col := i/n, i%n
		for r := row - 1; r <= row+1; r++ {
			for c := col - 1; c <= col+1; c++ {
				if !g.inBounds(r, c) {
					continue
				}
				idx := r*n + c
				if visited[idx] {
					continue
				}
				visited[idx] = true
				next[idx] = nextState(g.cells[idx], g.LiveNeighbors(idx))
			}
		}
	}
	g.cells = next
}
