// Package rapidb64 is a fast Base64 codec for the standard alphabet with
// mandatory '=' padding (RFC 4648 §4).
//
// Encoding and decoding run on a portable table driven codec, or on a vector
// kernel that converts 24-byte blocks at a time. The vector kernel is written
// with simd/archsimd and is only compiled with GOEXPERIMENT=simd on amd64; it
// is used when the cpu supports AVX2. The choice is made once when the
// package is initialised; setting the environment variable RAPIDB64_NO_SIMD
// forces the portable codec. Every implementation produces identical output
// and identical errors.
//
// Decoding is strict: the input length must be a multiple of 4, whitespace is
// not skipped, and '=' may appear only as one or two final characters.
// Non-zero bits left over in the final character before padding are ignored.
//
// [Encoder] and [Decoder] wrap the codec for streams.
package rapidb64
