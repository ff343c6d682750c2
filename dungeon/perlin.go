package dungeon

import "github.com/aquilax/go-perlin"

// Perlin noise tuning. Alpha and beta follow the library defaults for
// smooth terrain; the frequency spreads grid coordinates over the noise
// field so neighboring cells stay correlated.
const (
	perlinAlpha     = 2.0
	perlinBeta      = 2.0
	perlinOctaves   = 3
	perlinFrequency = 0.1
	perlinThreshold = 0.0 // noise above the threshold becomes floor
)

// generatePerlinNoise samples a coherent noise field over the grid and
// thresholds it into wall and floor, producing organic terrain. The field
// is seeded from the model's seed, so layouts replay bit-identically. As
// with cellular automata, the pass finishes with connectivity repair and
// endpoint placement so the layout always validates.
// Complexity: O(rows*cols).
func (d *Dungeon) generatePerlinNoise() {
	d.reset()
	rows, cols := d.Rows(), d.Cols()

	field := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, d.seed)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := field.Noise2D(float64(c)*perlinFrequency, float64(r)*perlinFrequency)
			if v > perlinThreshold {
				d.setFloor(r, c)
			} else {
				d.setWall(r, c)
			}
		}
	}

	d.ensureFloor()
	d.repairConnectivity()
	d.placeEndpoints()
}
