package ocean

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one grid vertex: a local-space position on the y=0 plane and its
// UV. Height and normal are never baked in; they are recomputed per frame by
// whichever evaluator owns the mesh.
type Vertex struct {
	Position mgl32.Vec3
	UV       mgl32.Vec2
}

// GridMesh is the fixed topology shared by both ocean variants. It is
// immutable after construction; regenerating wave parameters reuses it.
type GridMesh struct {
	Resolution int // quads per side
	Size       float32
	Vertices   []Vertex
	Indices    []uint32
}

// BuildGrid builds an (R+1)x(R+1) vertex grid on a centered square of the
// given side length, row-major, with UV = (x/R, z/R), and 2*R*R triangles
// with consistent winding. Pure function of its inputs: the same resolution
// and size always produce identical output.
func BuildGrid(resolution int, size float32) (*GridMesh, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("grid resolution must be positive, got %d", resolution)
	}
	if size <= 0 {
		return nil, fmt.Errorf("grid size must be positive, got %g", size)
	}

	side := resolution + 1
	mesh := &GridMesh{
		Resolution: resolution,
		Size:       size,
		Vertices:   make([]Vertex, 0, side*side),
		Indices:    make([]uint32, 0, resolution*resolution*6),
	}

	halfSize := size * 0.5
	step := size / float32(resolution)

	for z := 0; z < side; z++ {
		for x := 0; x < side; x++ {
			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: mgl32.Vec3{-halfSize + float32(x)*step, 0, -halfSize + float32(z)*step},
				UV:       mgl32.Vec2{float32(x) / float32(resolution), float32(z) / float32(resolution)},
			})
		}
	}

	for z := 0; z < resolution; z++ {
		for x := 0; x < resolution; x++ {
			topLeft := uint32(z*side + x)
			topRight := topLeft + 1
			bottomLeft := uint32((z+1)*side + x)
			bottomRight := bottomLeft + 1

			mesh.Indices = append(mesh.Indices, topLeft, bottomLeft, topRight)
			mesh.Indices = append(mesh.Indices, topRight, bottomLeft, bottomRight)
		}
	}

	return mesh, nil
}

// VertexCount returns the number of vertices in the grid.
func (m *GridMesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles in the grid.
func (m *GridMesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Interleaved flattens the grid into the position+UV stream the renderer
// uploads once at setup (3 position floats, 2 UV floats per vertex).
func (m *GridMesh) Interleaved() []float32 {
	data := make([]float32, 0, len(m.Vertices)*5)
	for _, v := range m.Vertices {
		data = append(data, v.Position.X(), v.Position.Y(), v.Position.Z(), v.UV.X(), v.UV.Y())
	}
	return data
}
