package octree

import (
	"fmt"

	"lukechampine.com/blake3"
)

// Fingerprint returns a BLAKE3 digest of the octree's textual dump as a hex
// string.
//
// The digest covers the exact representation including arena handles, so two
// trees built by the same sequence of operations share a fingerprint, which
// makes snapshots cheap to compare in tests and logs.
func (oct *Octree[V]) Fingerprint() string {
	sum := blake3.Sum256([]byte(oct.String()))
	return fmt.Sprintf("%x", sum[:])
}
