// SPDX-License-Identifier: MIT
// Package: tsio
//
// ensemble.go — compressed, checksummed hopf.Ensemble archive.

package tsio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"math/bits"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"

	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/hopf"
)

const (
	archiveMagic   = "HWBE"
	archiveVersion = uint16(1)

	// maxArchiveValues caps runs·regions·samples (16 GiB of float64).
	maxArchiveValues = uint64(1) << 31
)

// header is the fixed-size archive prefix.
type header struct {
	Magic      [4]byte
	Version    uint16
	Reserved   uint16
	Runs       uint32
	Regions    uint32
	Pre        uint32
	Pert       uint32
	Post       uint32
	Compressed uint64
}

// zstdEncoderPool pools encoders; EncodeAll is stateless.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			panic(fmt.Sprintf("tsio: zstd encoder: %v", err))
		}
		return enc
	},
}

// payloadSize returns the uncompressed payload size in bytes announced by h.
func payloadSize(h header) (uint64, error) {
	samples := uint64(h.Pre) + uint64(h.Pert) + uint64(h.Post)
	hi, values := bits.Mul64(uint64(h.Runs)*uint64(h.Regions), samples)
	if hi != 0 || values == 0 || values > maxArchiveValues {
		return 0, fmt.Errorf("runs=%d regions=%d samples=%d: %w", h.Runs, h.Regions, samples, ErrBadHeader)
	}

	return 8 * values, nil
}

// WriteEnsemble writes e to w in the archive format.
func WriteEnsemble(w io.Writer, e *hopf.Ensemble) error {
	data := e.Data()
	payload := make([]byte, 8*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint64(payload[8*i:], math.Float64bits(v))
	}

	enc := zstdEncoderPool.Get().(*zstd.Encoder)
	compressed := enc.EncodeAll(payload, nil)
	zstdEncoderPool.Put(enc)

	h := header{
		Version:    archiveVersion,
		Runs:       uint32(e.Runs()),
		Regions:    uint32(e.Regions()),
		Pre:        uint32(e.PhaseLen(hopf.PhasePre)),
		Pert:       uint32(e.PhaseLen(hopf.PhasePerturbation)),
		Post:       uint32(e.PhaseLen(hopf.PhasePost)),
		Compressed: uint64(len(compressed)),
	}
	copy(h.Magic[:], archiveMagic)

	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("WriteEnsemble: header: %w", err)
	}
	if _, err := w.Write(compressed); err != nil {
		return fmt.Errorf("WriteEnsemble: payload: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, xxhash.Sum64(payload)); err != nil {
		return fmt.Errorf("WriteEnsemble: checksum: %w", err)
	}

	return nil
}

// ReadEnsemble restores an ensemble written by WriteEnsemble.
//
// Errors: ErrBadMagic, ErrUnsupportedVersion, ErrTruncated, ErrChecksum,
// and hopf.ErrDimensionMismatch for a payload that does not match the
// header dimensions.
func ReadEnsemble(r io.Reader) (*hopf.Ensemble, error) {
	const op = "ReadEnsemble"
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%s: header: %w", op, truncated(err))
	}
	if string(h.Magic[:]) != archiveMagic {
		return nil, fmt.Errorf("%s: magic %q: %w", op, h.Magic[:], ErrBadMagic)
	}
	if h.Version != archiveVersion {
		return nil, fmt.Errorf("%s: version %d: %w", op, h.Version, ErrUnsupportedVersion)
	}
	size, err := payloadSize(h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var compressed bytes.Buffer
	if _, err := io.CopyN(&compressed, r, int64(h.Compressed)); err != nil {
		return nil, fmt.Errorf("%s: payload: %w", op, truncated(err))
	}
	var sum uint64
	if err := binary.Read(r, binary.LittleEndian, &sum); err != nil {
		return nil, fmt.Errorf("%s: checksum: %w", op, truncated(err))
	}

	// The decoder never produces more than the header announces.
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1), zstd.WithDecoderMaxMemory(size))
	if err != nil {
		return nil, fmt.Errorf("%s: zstd decoder: %w", op, err)
	}
	defer dec.Close()
	payload, err := dec.DecodeAll(compressed.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: decompress: %v: %w", op, err, ErrChecksum)
	}
	if xxhash.Sum64(payload) != sum {
		return nil, fmt.Errorf("%s: %w", op, ErrChecksum)
	}
	if uint64(len(payload)) != size {
		return nil, fmt.Errorf("%s: payload of %d bytes, header announces %d: %w", op, len(payload), size, ErrTruncated)
	}

	data := make([]float64, len(payload)/8)
	for i := range data {
		data[i] = math.Float64frombits(binary.LittleEndian.Uint64(payload[8*i:]))
	}

	return hopf.NewEnsemble(int(h.Runs), int(h.Regions), int(h.Pre), int(h.Pert), int(h.Post), data)
}

// truncated maps short reads to ErrTruncated.
func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%v: %w", err, ErrTruncated)
	}

	return err
}

// WriteEnsembleFile creates (or truncates) path and writes e.
func WriteEnsembleFile(path string, e *hopf.Ensemble) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return WriteEnsemble(f, e)
}

// ReadEnsembleFile opens path and reads it with ReadEnsemble.
func ReadEnsembleFile(path string) (*hopf.Ensemble, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadEnsemble(f)
}
