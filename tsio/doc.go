// Package tsio reads and writes the toolkit's matrices and simulated
// ensembles.
//
// Formats:
//
//   - CSV matrices: one row per line, comma separated, no header. Values
//     are written with the shortest representation that round-trips.
//   - CSV vectors: a single row or a single column.
//   - Ensemble archive (.hwbe): a fixed little-endian header
//
//     magic "HWBE" | version u16 | reserved u16 |
//     runs u32 | regions u32 | pre u32 | pert u32 | post u32 |
//     compressed length u64
//
//     followed by the zstd-compressed payload (runs·regions·samples
//     little-endian float64, run-major) and the xxhash64 of the
//     uncompressed payload. A checksum mismatch is ErrChecksum.
package tsio
