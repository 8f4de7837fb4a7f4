package grid

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets4 and offsets8 are shared, never mutated.
var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Grid is a rectangular, row-major array of terrain cells.
// Cells[y*Width+x] addresses column x of row y.
type Grid struct {
	Width, Height int
	Cells         []Cell
}

// New constructs a Width×Height grid with every cell at the given uniform
// elevation, no feature, class ground.
// Returns ErrEmptyGrid for non-positive dimensions.
// Complexity: O(W×H).
func New(width, height int, elevation uint8) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}
	for i := range g.Cells {
		g.Cells[i].Elevation = elevation
	}
	return g, nil
}

// InBounds reports whether (x, y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x, y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coord converts a row-major index back to (x, y).
// Complexity: O(1).
func (g *Grid) Coord(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// At returns a pointer to the cell at (x, y).
// Returns ErrOutOfBounds outside the grid.
func (g *Grid) At(x, y int) (*Cell, error) {
	if !g.InBounds(x, y) {
		return nil, ErrOutOfBounds
	}
	return &g.Cells[g.Index(x, y)], nil
}

// Cell returns a pointer to the cell at (x, y) without bounds checking.
// Callers on hot paths check InBounds themselves.
func (g *Grid) Cell(x, y int) *Cell {
	return &g.Cells[g.Index(x, y)]
}

// NeighborOffsets returns the precomputed offsets for the given connectivity.
// The returned slice must not be mutated.
// Complexity: O(1).
func NeighborOffsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return offsets8
	}
	return offsets4
}

// Clone returns a deep copy of the grid.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// Rows materializes the grid as a [][]Cell, row-major, for the JSON output
// contract. The rows alias fresh storage, not the grid's own slice.
// Complexity: O(W×H).
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.Height)
	for y := 0; y < g.Height; y++ {
		rows[y] = make([]Cell, g.Width)
		copy(rows[y], g.Cells[y*g.Width:(y+1)*g.Width])
	}
	return rows
}
