// Package cobs provides an implementation of Consistent Overhead Byte
// Stuffing (COBS).  This encoding removes every occurrence of the zero byte
// from a payload, so that the one-byte sequence `0x00` can be used
// unambiguously as a packet delimiter on a byte stream.
package cobs
