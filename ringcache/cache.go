package ringcache

import (
	"fmt"
	"os"
)

// Cache is a bounded FIFO of fixed-size records backed by a parameters
// file and a data file. The zero value is not usable; construct with
// Create or Open.
type Cache[T any] struct {
	codec    Codec[T]
	parsPath string
	h        header
	data     *os.File
	ready    bool
}

// Create initializes a new, empty ring cache with the given capacity at
// parsPath/dataPath, truncating either file if it already exists.
func Create[T any](parsPath, dataPath string, capacity int, codec Codec[T]) error {
	if capacity <= 0 {
		return ErrInvalidCapacity
	}
	h := header{
		Magic:       magic,
		Version:     formatVersion,
		ElementSize: uint32(codec.Size()),
		Capacity:    uint64(capacity),
	}
	if err := h.setDataPath(dataPath); err != nil {
		return err
	}
	if err := writeHeader(parsPath, &h); err != nil {
		return err
	}
	f, err := os.OpenFile(dataPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("ringcache: create data file: %w", err)
	}
	defer f.Close()
	return f.Truncate(int64(capacity * codec.Size()))
}

// Open attaches a Cache to an existing parameters/data file pair
// previously produced by Create.
func Open[T any](parsPath string, codec Codec[T]) (*Cache[T], error) {
	h, err := readHeader(parsPath)
	if err != nil {
		return nil, err
	}
	if int(h.ElementSize) != codec.Size() {
		return nil, fmt.Errorf("ringcache: %w: element size mismatch", ErrBadMagic)
	}
	f, err := os.OpenFile(h.dataPath(), os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("ringcache: open data file: %w", err)
	}
	return &Cache[T]{codec: codec, parsPath: parsPath, h: *h, data: f, ready: true}, nil
}

// IsInitialized reports whether the Cache has been attached to storage.
func (c *Cache[T]) IsInitialized() bool { return c.ready }

// Capacity reports the maximum number of records the cache can hold.
func (c *Cache[T]) Capacity() int { return int(c.h.Capacity) }

// Size reports the number of records currently stored.
func (c *Cache[T]) Size() int { return int(c.h.Count) }

// IsEmpty reports whether the cache holds no records.
func (c *Cache[T]) IsEmpty() bool { return c.h.Count == 0 }

// IsFull reports whether the cache is at capacity.
func (c *Cache[T]) IsFull() bool { return c.h.Count == c.h.Capacity }

func (c *Cache[T]) slotOffset(slot uint64) int64 {
	return int64(slot) * int64(c.codec.Size())
}

func (c *Cache[T]) writeSlot(slot uint64, v T) error {
	b := c.codec.Encode(v)
	_, err := c.data.WriteAt(b, c.slotOffset(slot))
	return err
}

func (c *Cache[T]) readSlot(slot uint64) (T, error) {
	var zero T
	b := make([]byte, c.codec.Size())
	if _, err := c.data.ReadAt(b, c.slotOffset(slot)); err != nil {
		return zero, err
	}
	return c.codec.Decode(b), nil
}

// Put appends v at the tail. It returns false without modifying the cache
// if the cache is already full.
func (c *Cache[T]) Put(v T) (bool, error) {
	if c.h.Count == c.h.Capacity {
		return false, nil
	}
	if err := c.writeSlot(c.h.Tail, v); err != nil {
		return false, err
	}
	c.h.Tail = (c.h.Tail + 1) % c.h.Capacity
	c.h.Count++
	return true, nil
}

// Get pops n records from the head, discarding them. It returns false
// without modifying the cache if fewer than n records are present.
func (c *Cache[T]) Get(n int) (bool, error) {
	if uint64(n) > c.h.Count {
		return false, nil
	}
	c.h.Head = (c.h.Head + uint64(n)) % c.h.Capacity
	c.h.Count -= uint64(n)
	return true, nil
}

func (c *Cache[T]) checkRange(pos, n int) error {
	if pos < 0 || n < 0 || uint64(pos+n) > c.h.Count {
		return ErrOutOfRange
	}
	return nil
}

// Read returns the n records starting at the 0-indexed position pos
// counted from the head, without removing them.
func (c *Cache[T]) Read(pos, n int) ([]T, error) {
	if err := c.checkRange(pos, n); err != nil {
		return nil, err
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		slot := (c.h.Head + uint64(pos+i)) % c.h.Capacity
		v, err := c.readSlot(slot)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ReadFrom returns up to n records starting at p, stopping early if fewer
// than n are available past p.
func (c *Cache[T]) ReadFrom(p Pointer, n int) ([]T, error) {
	avail := int(c.h.Count) - p.offset
	if avail < 0 {
		avail = 0
	}
	if n > avail {
		n = avail
	}
	return c.Read(p.offset, n)
}

// Oldest returns the i-th oldest record (0-indexed from the head).
func (c *Cache[T]) Oldest(i int) (T, error) {
	var zero T
	if err := c.checkRange(i, 1); err != nil {
		return zero, err
	}
	return c.readSlot((c.h.Head + uint64(i)) % c.h.Capacity)
}

// ReadFirst returns the oldest record, or ErrUnderflow if empty.
func (c *Cache[T]) ReadFirst() (T, error) {
	var zero T
	if c.h.Count == 0 {
		return zero, ErrUnderflow
	}
	return c.readSlot(c.h.Head)
}

// ReadLast returns the newest record, or ErrUnderflow if empty.
func (c *Cache[T]) ReadLast() (T, error) {
	var zero T
	if c.h.Count == 0 {
		return zero, ErrUnderflow
	}
	last := (c.h.Tail + c.h.Capacity - 1) % c.h.Capacity
	return c.readSlot(last)
}

// ReadAll returns every record currently stored, oldest first.
func (c *Cache[T]) ReadAll() ([]T, error) {
	return c.Read(0, int(c.h.Count))
}

// Resize changes the cache's capacity, preserving every record currently
// stored regardless of whether the ring is wrapped. newCapacity must be
// at least the current size.
func (c *Cache[T]) Resize(newCapacity int) error {
	if newCapacity <= 0 {
		return ErrInvalidCapacity
	}
	if uint64(newCapacity) < c.h.Count {
		return fmt.Errorf("ringcache: %w: new capacity smaller than current size", ErrInvalidCapacity)
	}
	contents, err := c.ReadAll()
	if err != nil {
		return err
	}
	if err := c.data.Truncate(int64(newCapacity) * int64(c.codec.Size())); err != nil {
		return err
	}
	c.h.Capacity = uint64(newCapacity)
	c.h.Head = 0
	c.h.Tail = uint64(len(contents)) % c.h.Capacity
	c.h.Count = uint64(len(contents))
	for i, v := range contents {
		if err := c.writeSlot(uint64(i), v); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes the current header to the parameters file and syncs the
// data file, so contents survive a process restart.
func (c *Cache[T]) Flush() error {
	if err := writeHeader(c.parsPath, &c.h); err != nil {
		return err
	}
	return c.data.Sync()
}

// Close flushes and releases the underlying data file handle. Calling
// Close on an already-closed Cache is a no-op.
func (c *Cache[T]) Close() error {
	if !c.ready {
		return nil
	}
	err := c.Flush()
	c.data.Close()
	c.ready = false
	return err
}
