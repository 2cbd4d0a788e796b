// Package stegopix hides short text messages in the low-order bits of raster
// images, encrypting them first with a textbook modular-exponentiation cipher
// built from two caller-supplied primes.
//
// A message is encrypted into a sequence of integer blocks, each block is
// serialized at a fixed 32-bit width, a sentinel marker is appended, and the
// resulting bitstream is written into the least-significant bits of the
// carrier's color channels. Extraction reverses the process: it reads the
// low-order bits back in the same order, cuts the stream at the sentinel, and
// decrypts the recovered blocks with the private key the hiding step handed
// back to the user.
//
// This is a toy protocol. There is no padding scheme, no semantic security,
// and no resistance to statistical steganalysis. Do not use it to protect
// anything that matters.
package stegopix
