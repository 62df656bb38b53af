// Package vector implements a dynamic array with geometric growth, the
// contiguous-storage leaf that backs pqueue's binary heap. graph's
// ArrayGraph keeps its incidence lists in plain slices and does not use it.
package vector
