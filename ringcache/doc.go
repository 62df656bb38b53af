// Package ringcache implements a bounded FIFO of fixed-size records
// backed by two files: a small parameters file holding a fixed-layout
// header (magic, version, element size, capacity, head, tail, count, and
// the data file's path) and a data file holding capacity record slots.
// The head/tail indices in the parameters file index into the data file
// modulo capacity, so wrap-around is transparent to every operation:
// Put appends at tail, Get pops from head, and both indices wrap without
// the caller ever seeing a raw offset.
//
// Records are serialized through a caller-supplied Codec rather than
// reflection or gob, mirroring the load/save-callback serialization used
// elsewhere in this module: any fixed-size-encodable type can be cached
// without ringcache needing to know its shape.
package ringcache
