// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// The Bestand builder reads file size and content through a
// FileSystemProvider, and `mdto validate` discovers documents by walking a
// Directory. Tests use MemoryFileSystem instead of the OS.
//
// Key interfaces:
//   - FileSystemProvider: opens directories and files, reads and stats paths
//   - Directory: a directory that can be walked
//   - File: an individual file with metadata and content
//
// Implementations:
//   - OSFileSystem: production implementation using the OS filesystem
//   - MemoryFileSystem: in-memory implementation for testing
package filesystem
