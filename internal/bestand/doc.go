// Package bestand builds Bestand objects from files on disk.
//
// A Builder inspects a file through a filesystem.FileSystemProvider,
// computes its checksum, identifies its format through PRONOM and links it
// to the informatieobject it represents. The informatieobject reference is
// either given directly or detected from an informatieobject document with
// DetectVerwijzing.
package bestand
