// Package file provides a DataSource which reads Records from files matching a glob.
// Files ending in .lz4 or .zst are decompressed transparently.
package file
