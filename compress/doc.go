// Package compress provides the compression codecs used by notectl.
//
// Two distinct jobs live here:
//
//   - Inflating note bodies. Apple Notes stores each body as a gzip stream;
//     IsGzip and GunzipBounded implement the sniff-then-inflate step with a
//     hard output cap, so a corrupted or hostile blob degrades into an
//     error instead of an allocation spike.
//
//   - Compressing export archives. The Codec interface pairs one-shot
//     Compress/Decompress for a rendered export document. Gzip, zstd, lz4
//     and s2 are available, each emitting its standard file format so the
//     archives open with the usual command-line tools.
//
// Codecs are obtained through CreateCodec (fresh instance) or GetCodec
// (shared built-in). All built-ins are stateless and safe for concurrent
// use.
//
// The zstd codec has two implementations selected at build time: a cgo
// binding to libzstd when cgo is enabled, and a pure-Go fallback
// otherwise. Frames are interchangeable between the two.
package compress
