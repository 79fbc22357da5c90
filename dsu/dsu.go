package dsu

// DisjointSet tracks connectivity classes over keys of type K.
// The zero value is not usable; construct with New.
type DisjointSet[K comparable] struct {
	ids    map[K]int // key → compact arena id
	parent []int     // parent[id] == id for roots
	rank   []int     // upper bound on subtree height
	sets   int       // current number of disjoint sets
}

// New returns an empty DisjointSet. Keys join lazily via Find or Union.
func New[K comparable]() *DisjointSet[K] {
	return &DisjointSet[K]{ids: make(map[K]int)}
}

// id returns the arena id for k, allocating a fresh singleton if unseen.
func (d *DisjointSet[K]) id(k K) int {
	if i, ok := d.ids[k]; ok {
		return i
	}
	i := len(d.parent)
	d.ids[k] = i
	d.parent = append(d.parent, i)
	d.rank = append(d.rank, 0)
	d.sets++

	return i
}

// findRoot walks i up to its root, halving the path as it goes.
func (d *DisjointSet[K]) findRoot(i int) int {
	for d.parent[i] != i {
		d.parent[i] = d.parent[d.parent[i]] // point to grandparent
		i = d.parent[i]
	}

	return i
}

// Find returns the arena id of the set representative for k, creating a new
// singleton set if k has never been seen. Amortized near-O(1).
func (d *DisjointSet[K]) Find(k K) int {
	return d.findRoot(d.id(k))
}

// Union merges the sets holding a and b. It reports whether a merge happened;
// false means the keys were already in the same set.
func (d *DisjointSet[K]) Union(a, b K) bool {
	ra := d.findRoot(d.id(a))
	rb := d.findRoot(d.id(b))
	if ra == rb {
		return false
	}
	// Attach the shorter tree under the taller root.
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}
	d.sets--

	return true
}

// Connected reports whether a and b are in the same set.
// Unseen keys join as singletons first, so Connected(x, x) is always true.
func (d *DisjointSet[K]) Connected(a, b K) bool {
	return d.Find(a) == d.Find(b)
}

// Len returns the number of keys seen so far.
func (d *DisjointSet[K]) Len() int { return len(d.parent) }

// Sets returns the current number of disjoint sets.
func (d *DisjointSet[K]) Sets() int { return d.sets }
