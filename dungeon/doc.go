// Package dungeon models a 2D grid-based dungeon map and the procedural
// strategies that generate it.
//
// What:
//
//   - Dungeon wraps a dense tile grid with domain semantics: tile kinds
//     (Wall, Floor, Entrance, Exit), single entrance/exit tracking, and a
//     seeded deterministic random stream.
//   - Rogue is the specialized variant: it supports every generation
//     method and records the rooms its BSP layouts produce; the base
//     Dungeon supports only the Naive fallback.
//   - FindPath validates entrance-to-exit connectivity via Dijkstra and
//     caches the route for HotPath.
//   - ExportTiles flattens the grid row-major for rendering collaborators.
//
// Why:
//
//   - Roguelike level generation with reproducible layouts: one seed per
//     model, bit-identical results on replay.
//   - Built-in validation: a layout is not trusted until the pathfinder
//     has confirmed the exit is reachable.
//
// Generation methods:
//
//   - Naive: all-floor placeholder with corner entrance and exit.
//   - BSP: recursive space partitioning, one room per leaf, sibling
//     subtrees joined by corridors.
//   - DrunkenWalk: biased random walker carving floor until a coverage
//     target or step cap is hit.
//   - CellularAutomata: random noise smoothed into organic caves.
//   - Voronoi: nearest-site regions separated by wall ridges, then
//     reconnected.
//   - PerlinNoise: coherent noise field thresholded into terrain.
//
// The organic methods (CellularAutomata, Voronoi, PerlinNoise) finish with
// a connectivity repair pass that merges every isolated floor region into
// the largest one, so a generated layout always validates.
//
// Lifecycle:
//
//	Uninitialized -> Generating -> Generated -> Validated
//
// A model reaches Generated once a strategy has set exactly one entrance
// and one exit, and Validated once FindPath has confirmed reachability.
// HotPath refuses to answer before Validated.
//
// Errors:
//
//   - grid.ErrInvalidDimension / grid.ErrOutOfBounds: construction and
//     coordinate validation, propagated from the storage layer.
//   - ErrUnsupportedMethod: the variant does not implement the method;
//     the grid is left exactly as it was.
//   - ErrUnknownMethod: the method value is outside the enumeration.
//   - ErrNotGenerated / ErrNotValidated: lifecycle violations around
//     FindPath and HotPath.
//
// A missing route is not an error: FindPath returns false and the caller
// decides whether to regenerate with a fresh seed.
package dungeon
