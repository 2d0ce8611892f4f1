package dpgrid

// cell is one node of the S-T grid: a cumulative-sum value s reached
// after allocating the first c+1 machines, its minimal total cost,
// and a back-pointer to the cell in the previous column that achieved
// that minimum.
type cell struct {
	s         float32
	totalCost float32
	pre       *cell
}

// grid is a column-major S-T graph: grid[c] holds one row per
// cumulative-sum step, column c corresponding to the (c+1)-th enabled
// machine in configuration order.
type grid [][]cell
