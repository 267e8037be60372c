// Package ryu128 converts binary floating-point values into the shortest
// decimal representation that round-trips back to the same binary value
// under round-to-nearest-even. It implements the Ryu algorithm generalized
// from 64-bit mantissas to wide (up to 128-bit) mantissas.
//
// # How it works
//
// A binary float is decomposed by the caller into a DecomposedFloat:
//
//	value = (sign ? -1 : 1) * coefficient * 2^binaryExponent
//
// Convert turns that into a Decimal:
//
//	value = (sign ? -1 : 1) * coefficient * 10^decimalExponent
//
// where coefficient is the fewest decimal digits that still round-trip.
// For example, 0.1 (which has no exact binary representation) decomposes to
// coefficient=7205759403792794, binaryExponent=-56, and converts to
// coefficient=1, decimalExponent=-1 — the shortest decimal that parses back
// to the original float64 bit pattern.
//
// The conversion runs in four layers, leaf first:
//
//   - wide unsigned arithmetic (u128/u256): widening multiply, shift,
//     division by 5/10 via reciprocal multiplication, divisibility tests;
//   - a power-of-five oracle that reconstructs 5^q or 5^-q at 249-bit
//     fixed-point precision from a compact split table plus a per-index
//     error correction;
//   - log approximators (log10Pow2, log10Pow5, pow5bits) that estimate the
//     decimal exponent and the bit-width of 5^e without a logarithm call;
//   - the Ryu driver itself, which computes the legal rounding interval,
//     tracks trailing zeros through it, and removes digits until the
//     interval no longer contains two or more candidates.
//
// Everything above is a pure function over immutable inputs and the
// constant tables in pow5tables.go; there is no shared mutable state and no
// allocation beyond the returned Decimal.
//
// # Scope
//
// This package does not format a Decimal as a string, parse decimal text,
// or unpack arbitrary binary formats. ConvertFloat64 and ConvertFloat32 are
// the only bridges from a real Go float type to DecomposedFloat; they exist
// because a usable entry point needs one, not because unpacking is part of
// the conversion algorithm.
package ryu128
