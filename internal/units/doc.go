// Package units converts between human-readable size strings ("10G",
// "1.5M") and raw byte counts.
//
// Suffixes are binary (powers of 1024) and case-insensitive. Formatting
// picks the largest unit for which the value is at least one and renders a
// single fractional digit, dropping a trailing ".0".
package units
