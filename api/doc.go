// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Public contracts for hioload-ring: the bounded FIFO ring interface and the
// error taxonomy shared by the single-threaded core, the byte adapters, the
// SPSC variant and the slab pool. Implementations live in ringbuf, spsc and
// pool; this package carries no state.
package api
