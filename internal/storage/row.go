package storage

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// ErrCorrupt reports a row file whose length prefix disagrees with its
// contents.
var ErrCorrupt = errors.New("storage: corrupt row file")

// WriteRow serializes values to path as a u64 little-endian element
// count followed by the raw IEEE-754 values, least significant byte
// first. The layout is byte-compatible with the fixed-integer bincode
// encoding the downstream plotting tooling consumes.
func WriteRow(path string, values []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], uint64(len(values)))
	if _, err := w.Write(scratch[:]); err != nil {
		return err
	}
	for _, v := range values {
		binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(v))
		if _, err := w.Write(scratch[:]); err != nil {
			return err
		}
	}
	return w.Flush()
}

// ReadRow reads a row file written by WriteRow.
func ReadRow(path string) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	r := bufio.NewReader(file)
	var scratch [8]byte
	if _, err := io.ReadFull(r, scratch[:]); err != nil {
		return nil, fmt.Errorf("%w: %s: missing length prefix", ErrCorrupt, path)
	}
	n := binary.LittleEndian.Uint64(scratch[:])
	if n >= uint64(math.MaxInt64/8) || info.Size() != int64(8+8*n) {
		return nil, fmt.Errorf("%w: %s: prefix %d does not match %d bytes of data",
			ErrCorrupt, path, n, info.Size()-8)
	}
	values := make([]float64, n)
	for i := range values {
		if _, err := io.ReadFull(r, scratch[:]); err != nil {
			return nil, fmt.Errorf("%w: %s: value %d of %d", ErrCorrupt, path, i, n)
		}
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(scratch[:]))
	}
	return values, nil
}
