// Package memzero wipes sensitive buffers once they are no longer needed.
package memzero

import "runtime"

// Zero clears every buffer in bs. Nil and empty buffers are skipped.
func Zero(bs ...[]byte) {
	for _, b := range bs {
		clear(b)
		runtime.KeepAlive(b)
	}
}
