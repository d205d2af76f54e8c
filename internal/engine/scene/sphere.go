package scene

import "math"

// buildSphere returns interleaved position/normal vertices and triangle
// indices for a unit sphere made of stacks latitude bands and slices
// longitude segments. Positions double as normals on a unit sphere, so the
// layout is position (3 floats) then normal (3 floats) per vertex.
func buildSphere(stacks, slices int) ([]float32, []uint32) {
	vertexCount := (stacks + 1) * (slices + 1)
	vertices := make([]float32, 0, vertexCount*6)

	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		y := math.Cos(phi)
		ring := math.Sin(phi)

		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			x := ring * math.Cos(theta)
			z := ring * math.Sin(theta)

			vertices = append(vertices,
				float32(x), float32(y), float32(z), // position
				float32(x), float32(y), float32(z), // normal
			)
		}
	}

	indices := make([]uint32, 0, stacks*slices*6)
	rowLen := uint32(slices + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint32(i)*rowLen + uint32(j)
			b := a + rowLen

			indices = append(indices, a, b, a+1)
			indices = append(indices, a+1, b, b+1)
		}
	}

	return vertices, indices
}
