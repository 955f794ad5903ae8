package align

// Edge is one weighted arc of the alignment grid.
type Edge struct {
	To     Coord
	Weight int
}

// Graph is a directed weighted graph over matrix coordinates. The
// topology is always a monotone grid (edges only move right, down, or
// diagonally down-right), so adjacency lives in a flat arena indexed
// by Row*Cols+Col instead of a generic graph structure. Edge order is
// insertion order, which ShortestPath relies on for deterministic
// tie-breaking.
type Graph struct {
	Rows, Cols int
	adj        [][]Edge
}

// NewGraph returns an empty grid graph with the given dimensions.
func NewGraph(rows, cols int) *Graph {
	return &Graph{
		Rows: rows,
		Cols: cols,
		adj:  make([][]Edge, rows*cols),
	}
}

// index maps a coordinate to its arena slot.
func (g *Graph) index(c Coord) int { return c.Row*g.Cols + c.Col }

// inside reports whether c lies within the grid.
func (g *Graph) inside(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// AddEdge records an arc from u to v with the given weight. Adding an
// arc that already exists overwrites its weight; edge order is
// otherwise the order of first insertion.
func (g *Graph) AddEdge(u, v Coord, weight int) {
	slot := g.index(u)
	for i := range g.adj[slot] {
		if g.adj[slot][i].To == v {
			g.adj[slot][i].Weight = weight

			return
		}
	}
	g.adj[slot] = append(g.adj[slot], Edge{To: v, Weight: weight})
}

// Edges returns the outgoing arcs of u in insertion order. The
// returned slice is owned by the graph and must not be mutated.
func (g *Graph) Edges(u Coord) []Edge { return g.adj[g.index(u)] }

// Terminal returns the bottom-right coordinate, the end node of every
// alignment.
func (g *Graph) Terminal() Coord { return Coord{Row: g.Rows - 1, Col: g.Cols - 1} }

// MatrixToGraph converts a prefix-distance matrix (editdist.Matrix)
// into the alignment grid graph.
//
// For every cell (r,c):
//
//   - a rightward edge to (r,c+1) carries wDel when the matrix value
//     changes, 0 when it stays flat (a free slide);
//   - a downward edge to (r+1,c) carries wIns under the same rule;
//   - a diagonal edge to (r+1,c+1) exists only when the diagonal value
//     equals the current one — a no-cost match — and carries weight 0.
//
// The terminal node has no outgoing edges. Weights must be
// non-negative; the zero values of wDel/wIns are legal but collapse
// the cost model, so callers normally pass WeightDel/WeightIns.
func MatrixToGraph(matrix [][]int, wDel, wIns int) (*Graph, error) {
	// 1) Validate shape and weights before building anything.
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	if wDel < 0 || wIns < 0 {
		return nil, ErrNegativeWeight
	}

	rows, cols := len(matrix), len(matrix[0])
	g := NewGraph(rows, cols)

	// 2) Sweep the grid; every cell contributes up to three arcs.
	var u Coord
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u = Coord{Row: r, Col: c}

			if c < cols-1 { // rightward: delete one query symbol
				w := 0
				if matrix[r][c+1] != matrix[r][c] {
					w = wDel
				}
				g.AddEdge(u, Coord{Row: r, Col: c + 1}, w)
			}

			if r < rows-1 { // downward: insert one attested symbol
				w := 0
				if matrix[r+1][c] != matrix[r][c] {
					w = wIns
				}
				g.AddEdge(u, Coord{Row: r + 1, Col: c}, w)
			}

			if r < rows-1 && c < cols-1 && matrix[r+1][c+1] == matrix[r][c] {
				// diagonal: free match, only when the value is unchanged
				g.AddEdge(u, Coord{Row: r + 1, Col: c + 1}, 0)
			}
		}
	}

	return g, nil
}
