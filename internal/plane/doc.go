// Package plane stores the state of a two-state cellular automaton as packed
// bit rows.
//
// A plane of shape (d0, d1, ..., dk, N) keeps one [Row] of N bits for every
// combination of the outer coordinates (d0 ... dk). A one-dimensional plane
// of shape (N) is a single row. The outer rows live in a flat backing slice
// addressed through per-axis strides, so partial indexing yields views that
// share rows with their parent instead of copying them:
//
//	p, _ := plane.New(3, 3, 4)
//	v, _ := p.View(plane.Tuple(1))   // shape (3, 4), aliases p
//	_ = v.Set([]int{2, 0}, 1)
//	b, _ := p.Bit(1, 2, 0)           // 1
//
// Indexing is expressed with [Index] values ([Tuple], [Scalar], [List],
// [Slice]). [Plane.Bit] and [Plane.View] return a definite bit or view;
// [Plane.Get] is the dispatch layer that picks one from the shape.
//
// # Thread Safety
//
// Planes are NOT safe for concurrent use. A view aliases the rows of the
// plane it came from and of every sibling view over the same rows; callers
// that share a plane across goroutines must serialize all writes
// ([Plane.Set], [Plane.Fill], [Plane.Randomize]) on the root and its views.
package plane
