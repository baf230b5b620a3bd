// Package files groups the file-handling packages of mdto.
//
//   - filesystem: filesystem abstraction (OS and in-memory) used to read
//     the files a Bestand describes and to discover MDTO documents for
//     directory-wide validation
package files
