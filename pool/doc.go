// Package pool
// Author: momentics <momentics@gmail.com>
//
// Slab and object recycling for hioload-ring. SlabPool hands out fixed-size
// byte slabs and keeps returned ones on a bounded ring free list, so steady
// producer/consumer traffic runs allocation-free while bursts overflow to
// the garbage collector. SyncPool is the sync.Pool-backed alternative for
// workloads without a bounded working set.
package pool
