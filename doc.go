// Package daedalus is an in-memory toolkit for generating and analyzing
// 2D grid-based dungeon maps for roguelike-style games.
//
// 🚀 What is daedalus?
//
//	A small, deterministic library that brings together:
//		• Grid storage: a fixed-size, row-major dense 2D container
//		• Dungeon model: tile semantics, entrance/exit tracking, seeded RNG
//		• Pathfinding: Dijkstra shortest path over walkable tiles
//		• Generators: Naive, BSP, DrunkenWalk, CellularAutomata, Voronoi, PerlinNoise
//
// ✨ Why choose daedalus?
//
//   - Reproducible: one seed per model, bit-identical layouts on replay
//   - Validated: every generated layout can prove entrance-exit connectivity
//   - Minimal API: construct, generate, find path, export
//   - No I/O: rendering, persistence and game loops stay outside the core
//
// Everything is organized under three subpackages:
//
//	grid/     — generic dense 2D storage and the Coord value type
//	pathfind/ — Dijkstra shortest path with Conn4/Conn8 connectivity
//	dungeon/  — the dungeon model, its variants and generation strategies
//
// A typical session: construct a dungeon with dimensions and a seed,
// run one of the generation strategies, confirm the entrance can reach
// the exit, then hand the flattened tile buffer to a renderer:
//
//	d, _ := dungeon.NewRogue(24, 48, dungeon.WithSeed(42))
//	_ = d.Generate(dungeon.BSP)
//	found, _ := d.FindPath()
//	tiles := d.ExportTiles(nil)
//
// Dive into the per-package documentation for contracts, complexity notes
// and error taxonomies.
//
//	go get github.com/daedalus-go/daedalus
package daedalus
