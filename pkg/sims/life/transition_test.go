package life

import (
	"fmt"
	"testing"

	"conway/pkg/core"
)

var plusStart = []string{
	"0000000000000",
	"0000000000000",
	"0000000000000",
	"0000000000000",
	"0000000000000",
	"0000001000000",
	"0000011100000",
	"0000010100000",
	"0000001000000",
	"0000000000000",
	"0000000000000",
	"0000000000000",
	"0000000000000",
}

var plusAfter16 = []string{
	"0000001000000",
	"0000010100000",
	"0000010100000",
	"0000001000000",
	"0000000000000",
	"0110000000110",
	"1001000001001",
	"0110000000110",
	"0000000000000",
	"0000001000000",
	"0000010100000",
	"0000010100000",
	"0000001000000",
}

var gliderStart = []string{
	"010000",
	"001000",
	"111000",
	"000000",
	"000000",
	"000000",
}

// A glider running into the bottom-right corner settles into a block.
var gliderCornerBlock = []string{
	"000000",
	"000000",
	"000000",
	"000000",
	"000011",
	"000011",
}

func TestFixtures(t *testing.T) {
	fixtures := []struct {
		name  string
		start []string
		end   []string
		steps int
	}{
		{"plus 13x13", plusStart, plusAfter16, 16},
		{"glider into corner", gliderStart, gliderCornerBlock, 15},
		{"glider settled", gliderStart, gliderCornerBlock, 24},
		{"blinker", []string{
			"00000",
			"00100",
			"00100",
			"00100",
			"00000",
		}, []string{
			"00000",
			"00000",
			"01110",
			"00000",
			"00000",
		}, 1},
		{"blinker on the top edge dies", []string{
			"01110",
			"00000",
			"00000",
			"00000",
			"00000",
		}, []string{
			"00000",
			"00000",
			"00000",
			"00000",
			"00000",
		}, 2},
		{"block is still", []string{
			"0000",
			"0110",
			"0110",
			"0000",
		}, []string{
			"0000",
			"0110",
			"0110",
			"0000",
		}, 5},
	}

	for _, algo := range Algorithms() {
		for _, fx := range fixtures {
			t.Run(algo.Name()+"/"+fx.name, func(t *testing.T) {
				actual := gridFromRows(t, fx.start...)
				expected := gridFromRows(t, fx.end...)
				for i := 0; i < fx.steps; i++ {
					algo.Next(actual)
				}
				if got, want := actual.HexString(), expected.HexString(); got != want {
					t.Fatalf("after %d steps:\n got %q\nwant %q\n%s", fx.steps, got, want, actual)
				}
			})
		}
	}
}

func TestPlusFixtureHex(t *testing.T) {
	if got, want := gridFromRows(t, plusStart...).HexString(), "0000 0000 0000 0000 0800 8300 5004 0000 0000 0000 000"; got != want {
		t.Fatalf("start hex = %q, want %q", got, want)
	}
	if got, want := gridFromRows(t, plusAfter16...).HexString(), "0400 4108 2002 0000 c085 2843 0600 0080 0820 0500 400"; got != want {
		t.Fatalf("end hex = %q, want %q", got, want)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	for _, algo := range Algorithms() {
		g := NewGrid(5)
		set := func(row, col int) {
			if err := g.SetCell(row, col, true); err != nil {
				t.Fatalf("SetCell: %v", err)
			}
		}
		set(1, 2)
		set(2, 2)
		set(3, 2)
		start := g.HexString()

		algo.Next(g)
		expects := map[[2]int]bool{
			{2, 1}: true,
			{2, 2}: true,
			{2, 3}: true,
		}
		for row := 0; row < 5; row++ {
			for col := 0; col < 5; col++ {
				alive, _ := g.Get(row, col)
				if alive != expects[[2]int{row, col}] {
					t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", algo.Name(), row, col, alive, !alive)
				}
			}
		}

		algo.Next(g)
		if g.HexString() != start {
			t.Fatalf("%s: blinker should return to its start after two steps", algo.Name())
		}
	}
}

// equivalenceCases returns boards of assorted sizes and shapes, including
// ones that stress the edges.
func equivalenceCases(t *testing.T) map[string]*Grid {
	t.Helper()
	cases := map[string]*Grid{
		"empty 0":   NewGrid(0),
		"single 1":  gridFromRows(t, "1"),
		"dead 7":    NewGrid(7),
		"full 2":    gridFromRows(t, "11", "11"),
		"full 6":    gridFromRows(t, "111111", "111111", "111111", "111111", "111111", "111111"),
		"plus 13":   gridFromRows(t, plusStart...),
		"glider 6":  gridFromRows(t, gliderStart...),
		"corners 5": gridFromRows(t, "10001", "00000", "00000", "00000", "10001"),
		"border 5":  gridFromRows(t, "11111", "10001", "10001", "10001", "11111"),
		"right column 4": gridFromRows(t,
			"0001",
			"0001",
			"0001",
			"0001",
		),
	}

	checker := NewGrid(9)
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if err := checker.SetCell(row, col, (row+col)%2 == 0); err != nil {
				t.Fatalf("SetCell: %v", err)
			}
		}
	}
	cases["checkerboard 9"] = checker

	for _, n := range []int{1, 2, 3, 4, 5, 8, 13, 16, 31, 64} {
		for seed := int64(1); seed <= 4; seed++ {
			g := NewGrid(n)
			g.RandomizeSeed(seed*1000 + int64(n))
			cases[fmt.Sprintf("random %d seed %d", n, seed)] = g
		}
	}

	// Sparse boards leave most of the grid outside the frontier.
	for _, n := range []int{16, 40} {
		g := NewGrid(n)
		rng := core.NewRNG(int64(n)).Source()
		for i := 0; i < n; i++ {
			if err := g.SetCell(rng.IntN(n), rng.IntN(n), true); err != nil {
				t.Fatalf("SetCell: %v", err)
			}
		}
		cases[fmt.Sprintf("sparse %d", n)] = g
	}
	return cases
}

func TestNaiveAndFrontierAgree(t *testing.T) {
	const generations = 40
	for name, start := range equivalenceCases(t) {
		t.Run(name, func(t *testing.T) {
			naiveGrid := start.Clone()
			frontierGrid := start.Clone()
			for gen := 1; gen <= generations; gen++ {
				Naive.Next(naiveGrid)
				Frontier.Next(frontierGrid)
				if naiveGrid.HexString() != frontierGrid.HexString() {
					t.Fatalf("generation %d differs:\nnaive    %q\nfrontier %q", gen, naiveGrid.HexString(), frontierGrid.HexString())
				}
			}
		})
	}
}

func TestGridMethodsMatchStrategies(t *testing.T) {
	start := NewGrid(12)
	start.RandomizeSeed(5)

	viaMethod := start.Clone()
	viaStrategy := start.Clone()
	viaMethod.NextGenerationNaive()
	Naive.Next(viaStrategy)
	if !viaMethod.Equal(viaStrategy) {
		t.Fatal("NextGenerationNaive must match Naive.Next")
	}

	viaMethod = start.Clone()
	viaStrategy = start.Clone()
	viaMethod.NextGenerationOptimized()
	Frontier.Next(viaStrategy)
	if !viaMethod.Equal(viaStrategy) {
		t.Fatal("NextGenerationOptimized must match Frontier.Next")
	}
}

func TestTransitionReadsOnlyPreviousGeneration(t *testing.T) {
	// Updating in place row by row would let (1,1) see the already-born
	// (0,1) and change the result.
	for _, algo := range Algorithms() {
		g := gridFromRows(t,
			"101",
			"010",
			"000",
		)
		algo.Next(g)
		want := gridFromRows(t,
			"010",
			"010",
			"000",
		)
		if !g.Equal(want) {
			t.Fatalf("%s produced\n%swant\n%s", algo.Name(), g, want)
		}
	}
}

func TestAlgorithmByName(t *testing.T) {
	for _, algo := range Algorithms() {
		got, ok := AlgorithmByName(algo.Name())
		if !ok || got != algo {
			t.Fatalf("AlgorithmByName(%q) = %v, %v", algo.Name(), got, ok)
		}
	}
	if _, ok := AlgorithmByName("hashlife"); ok {
		t.Fatal("unknown names should not resolve")
	}
}

func BenchmarkNextGeneration(b *testing.B) {
	for _, size := range []int{3, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048} {
		start := NewGrid(size)
		start.RandomizeSeed(int64(size))
		for _, algo := range Algorithms() {
			b.Run(fmt.Sprintf("%s_%d", algo.Name(), size), func(b *testing.B) {
				g := start.Clone()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					algo.Next(g)
				}
			})
		}
	}
}
