package dungeon_test

import (
	"testing"

	"github.com/daedalus-go/daedalus/dungeon"
)

// benchGenerate measures one strategy on a 64x64 Rogue dungeon with a
// fixed seed per iteration, so runs stay comparable.
func benchGenerate(b *testing.B, m dungeon.Method) {
	b.Helper()
	for i := 0; i < b.N; i++ {
		rd, err := dungeon.NewRogue(64, 64, dungeon.WithSeed(42))
		if err != nil {
			b.Fatalf("NewRogue failed: %v", err)
		}
		if err := rd.Generate(m); err != nil {
			b.Fatalf("Generate(%s) failed: %v", m, err)
		}
	}
}

func BenchmarkGenerate_BSP(b *testing.B)              { benchGenerate(b, dungeon.BSP) }
func BenchmarkGenerate_DrunkenWalk(b *testing.B)      { benchGenerate(b, dungeon.DrunkenWalk) }
func BenchmarkGenerate_CellularAutomata(b *testing.B) { benchGenerate(b, dungeon.CellularAutomata) }
func BenchmarkGenerate_Voronoi(b *testing.B)          { benchGenerate(b, dungeon.Voronoi) }
func BenchmarkGenerate_PerlinNoise(b *testing.B)      { benchGenerate(b, dungeon.PerlinNoise) }

// BenchmarkFindPath measures validation over a generated cave layout.
func BenchmarkFindPath(b *testing.B) {
	rd, err := dungeon.NewRogue(64, 64, dungeon.WithSeed(42))
	if err != nil {
		b.Fatalf("NewRogue failed: %v", err)
	}
	if err := rd.Generate(dungeon.CellularAutomata); err != nil {
		b.Fatalf("Generate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rd.FindPath(); err != nil {
			b.Fatalf("FindPath failed: %v", err)
		}
	}
}
