package ringcache

import (
	"encoding/binary"
	"fmt"
	"os"
)

const (
	magic         uint64 = 0x52696e674361636b // "RingCack"
	formatVersion uint32 = 1
	maxPathLen           = 4096
)

// header is the fixed-layout parameters-file record. Every field is
// little-endian and the struct is written/read in declared order, 8-byte
// aligned, so the on-disk size never depends on the host's struct padding.
type header struct {
	Magic       uint64
	Version     uint32
	ElementSize uint32
	Capacity    uint64
	Head        uint64
	Tail        uint64
	Count       uint64
	DataPathLen uint32
	_           uint32 // padding to keep DataPath 8-byte aligned
	DataPath    [maxPathLen]byte
}

func headerSize() int {
	return 8 + 4 + 4 + 8 + 8 + 8 + 8 + 4 + 4 + maxPathLen
}

func writeHeader(path string, h *header) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("ringcache: open parameters file: %w", err)
	}
	defer f.Close()
	return binary.Write(f, binary.LittleEndian, h)
}

func readHeader(path string) (*header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ringcache: open parameters file: %w", err)
	}
	defer f.Close()
	var h header
	if err := binary.Read(f, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("ringcache: read parameters file: %w", err)
	}
	if h.Magic != magic {
		return nil, ErrBadMagic
	}
	return &h, nil
}

func (h *header) dataPath() string {
	n := h.DataPathLen
	if int(n) > len(h.DataPath) {
		n = uint32(len(h.DataPath))
	}
	return string(h.DataPath[:n])
}

func (h *header) setDataPath(p string) error {
	if len(p) > maxPathLen {
		return fmt.Errorf("ringcache: data path exceeds %d bytes", maxPathLen)
	}
	var buf [maxPathLen]byte
	copy(buf[:], p)
	h.DataPath = buf
	h.DataPathLen = uint32(len(p))
	return nil
}
