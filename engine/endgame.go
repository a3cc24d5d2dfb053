package engine

// Result is the endgame status after a turn. Ended is true iff the two
// players occupy different wall partitions; the scores are partition cell
// counts and decide the game only once Ended is true. While both players
// share a partition, both scores equal that partition's size.
type Result struct {
	Ended  bool
	ScoreA int
	ScoreB int
}

// Winner returns 0 or 1 for the player controlling more cells, or -1 for a
// tie or a game still in progress.
func (r Result) Winner() int {
	if !r.Ended || r.ScoreA == r.ScoreB {
		return -1
	}
	if r.ScoreA > r.ScoreB {
		return 0
	}
	return 1
}

// CheckEndgame partitions the board's cells by wall connectivity and reports
// whether posA and posB are separated, with each player's partition size.
//
// Each cell is unioned with its right and down neighbors across open edges;
// those two directions cover every interior edge exactly once. Union order
// never affects the resulting partition structure, so the outcome is
// deterministic for a given board.
func CheckEndgame(b *Board, posA, posB Position) Result {
	n := b.Size()
	uf := newUnionFind(n * n)

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if !b.IsWall(r, c, Right) {
				uf.union(r*n+c, r*n+c+1)
			}
			if !b.IsWall(r, c, Down) {
				uf.union(r*n+c, (r+1)*n+c)
			}
		}
	}

	rootA := uf.find(posA.Row*n + posA.Col)
	rootB := uf.find(posB.Row*n + posB.Col)

	scoreA, scoreB := 0, 0
	for i := 0; i < n*n; i++ {
		switch uf.find(i) {
		case rootA:
			scoreA++
		case rootB:
			scoreB++
		}
	}

	if rootA == rootB {
		return Result{Ended: false, ScoreA: scoreA, ScoreB: scoreA}
	}
	return Result{Ended: true, ScoreA: scoreA, ScoreB: scoreB}
}

// unionFind is an arena-style disjoint set over dense cell ids (row*N+col).
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

// find returns the root of x with path compression.
func (u *unionFind) find(x int) int {
	if u.parent[x] != x {
		u.parent[x] = u.find(u.parent[x])
	}
	return u.parent[x]
}

func (u *unionFind) union(x, y int) {
	rx, ry := u.find(x), u.find(y)
	if rx != ry {
		u.parent[rx] = ry
	}
}
