// Package crc32fold computes IEEE 802.3 CRC-32 checksums. It exposes a
// single entry point, Checksum/Update, that dispatches across several
// internal kernels chosen by input length and CPU capability; callers never
// pick a kernel directly. All kernels are guaranteed to agree bit-for-bit:
// that agreement is the property the test suite in this package exists to
// pin down.
package crc32fold
