package domain

// RegisterAccessor is the raw 32-bit register access primitive. Reads and
// writes are volatile with respect to the device: implementations must not
// cache, merge, or reorder them. Offsets are byte offsets from the base
// address the accessor was constructed with.
//
// Barrier is a full memory/execution barrier. The core invokes it after
// every state-changing write before trusting any subsequent read, and that
// ordering is load-bearing on cores that reorder memory operations.
type RegisterAccessor interface {
	Read(off uint32) uint32
	Write(off uint32, v uint32)
	Barrier()
}
