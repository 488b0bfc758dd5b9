package mesh

// Vertex counts of the two shapes in the built-in table.
const (
	logoVertices   = 66
	letterVertices = 18
)

// RGBA colors of the built-in table.
var (
	logoBlue   = [ColorSize]float32{0.0745, 0.1569, 0.294, 1.0}
	logoOrange = [ColorSize]float32{0.9137, 0.2902, 0.215686, 1.0}
	letterRed  = [ColorSize]float32{1.0, 0.0, 0.0, 1.0}
)

// logoPositions holds the block "I" (11 quads, 66 vertices) followed by the
// letter "A" (3 quads, 18 vertices), two triangles per quad.
var logoPositions = []float32{
	-0.9, 0.95, 0, // I: top bar
	0.88, 0.95, 0,
	0.88, 0.64, 0,
	0.88, 0.64, 0,
	-0.9, 0.64, 0,
	-0.9, 0.95, 0,

	0.71, 0.64, 0,
	0.71, -0.29, 0,
	0.32, -0.29, 0,
	0.32, -0.29, 0,
	0.32, 0.65, 0,
	0.71, 0.64, 0,

	0.32, -0.04, 0,
	0.18, -0.04, 0,
	0.18, 0.38, 0,
	0.18, 0.38, 0,
	0.32, 0.38, 0,
	0.32, -0.04, 0,

	-0.34, 0.65, 0,
	-0.34, -0.29, 0,
	-0.72, -0.29, 0,
	-0.72, -0.29, 0,
	-0.72, 0.64, 0,
	-0.34, 0.65, 0,

	-0.34, 0.38, 0,
	-0.2, 0.38, 0,
	-0.2, -0.04, 0,
	-0.2, -0.04, 0,
	-0.34, -0.04, 0,
	-0.34, 0.38, 0,

	-0.72, -0.37, 0,
	-0.72, -0.49, 0,
	-0.6, -0.56, 0,
	-0.6, -0.56, 0,
	-0.6, -0.37, 0,
	-0.72, -0.37, 0,

	-0.46, -0.37, 0,
	-0.46, -0.66, 0,
	-0.34, -0.72, 0,
	-0.34, -0.72, 0,
	-0.34, -0.37, 0,
	-0.46, -0.37, 0,

	-0.2, -0.37, 0,
	-0.2, -0.82, 0,
	-0.08, -0.88, 0,
	-0.08, -0.88, 0,
	-0.08, -0.37, 0,
	-0.2, -0.37, 0,

	0.07, -0.37, 0,
	0.07, -0.88, 0,
	0.18, -0.82, 0,
	0.18, -0.82, 0,
	0.18, -0.37, 0,
	0.07, -0.37, 0,

	0.32, -0.37, 0,
	0.32, -0.72, 0,
	0.44, -0.66, 0,
	0.44, -0.66, 0,
	0.44, -0.37, 0,
	0.32, -0.37, 0,

	0.58, -0.37, 0,
	0.58, -0.57, 0,
	0.71, -0.49, 0,
	0.71, -0.49, 0,
	0.71, -0.37, 0,
	0.58, -0.37, 0,

	// A
	0, 1, 0,
	1, -1, 0,
	0.7, -1, 0,
	0.7, -1, 0,
	0, 0.7, 0,
	0, 1, 0,

	0, 1, 0,
	-1, -1, 0,
	-0.7, -1, 0,
	-0.7, -1, 0,
	0, 0.7, 0,
	0, 1, 0,

	-0.3, -0.029, 0,
	0.3, -0.029, 0,
	-0.4, -0.27, 0,
	-0.4, -0.27, 0,
	0.4, -0.27, 0,
	0.3, -0.029, 0,
}

// logoColors returns one color per vertex of logoPositions: the outline of
// the "I" is blue, its lower stripes orange and the "A" red.
func logoColors() []float32 {
	colors := make([]float32, 0, (logoVertices+letterVertices)*ColorSize)
	colors = appendColor(colors, logoBlue, 30)
	colors = appendColor(colors, logoOrange, 36)
	colors = appendColor(colors, letterRed, letterVertices)
	return colors
}

func appendColor(dst []float32, c [ColorSize]float32, n int) []float32 {
	for i := 0; i < n; i++ {
		dst = append(dst, c[:]...)
	}
	return dst
}

// Logo builds the built-in two-shape mesh.
func Logo() (*Buffer, error) {
	return Build(logoPositions, logoColors(), logoVertices+letterVertices)
}
