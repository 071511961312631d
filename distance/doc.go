// Package distance is the distance oracle of the planners.
//
// Every tunnel costs one minute, so the travel time between two vertices is
// their breadth-first hop count. Compute runs one BFS per source vertex over
// the raw network (passage vertices included) and keeps only the columns the
// search needs, by default the positive-rate vertices. Passage vertices thus
// disappear from the search and survive only as hop counts.
//
// A pair without a connecting walk is stored as Unreachable. Callers treat it
// as an infinite distance and skip the target; it is never an error.
//
// Tables are immutable once built and safe for concurrent reads. For an
// undirected network they are symmetric and satisfy the triangle inequality.
package distance
