// Package compress provides optional at-rest compression for serialized
// CESR streams and SAD records.
//
// Compression is ambient: it never changes framing. A caller compresses
// the final CESR/JSON bytes a stream.Consumer or sad.SAD produced, stores
// the result under its own envelope, and decompresses before re-parsing.
// No compressed form appears on the wire itself.
//
// Four algorithms are available through a common Codec interface:
//   - None: no compression, useful as a baseline or when data is already
//     dense (most CESR primitives are base64, which compresses poorly)
//   - Zstd: best ratio, moderate speed; suited to cold storage
//   - S2: balanced ratio and speed; suited to hot-path persistence
//   - LZ4: fastest decompression; suited to read-heavy caches
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "sad-archive")
//	packed, err := codec.Compress(sealedBytes)
//	...
//	original, err := codec.Decompress(packed)
package compress
