// Package checksum computes file digests and the MDTO checksum data group.
//
// Supported algorithms are md5, sha1, the SHA-2 family (sha224, sha256,
// sha384, sha512, sha512_224, sha512_256), the SHA-3 family (sha3_224,
// sha3_256, sha3_384, sha3_512) and BLAKE2b (blake2b, blake2b_256).
// Algorithm names are case-insensitive; sha256 is the default.
//
// # Labels
//
// The begripLabel written into checksumAlgoritme follows the MDTO
// begrippenlijst spelling: the name is upper-cased and a dash is inserted
// after SHA, so sha256 is written as SHA-256 and sha3_256 as SHA-3_256.
//
// # Example Usage
//
//	h, err := checksum.New("sha512")
//	if err != nil {
//	    return err
//	}
//	gegevens, err := h.Create(f, time.Now())
//
// # Thread Safety
//
// Hasher is safe for concurrent use by multiple goroutines.
package checksum
