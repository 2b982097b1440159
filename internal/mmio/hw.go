package mmio

import (
	"sync/atomic"
	"unsafe"

	"rkpm/internal/domain"
)

// Hardware accesses device registers through an existing memory mapping
// of the PMU block (or the full bus for QoS ports). Accesses go through
// sync/atomic so the compiler can neither cache nor reorder them.
type Hardware struct {
	base  uintptr
	fence uint32
}

var _ domain.RegisterAccessor = (*Hardware)(nil)

// NewHardware returns an accessor rooted at base. A nil base is a
// construction-contract violation, not a runtime condition.
func NewHardware(base uintptr) *Hardware {
	if base == 0 {
		panic("mmio: nil base address")
	}
	return &Hardware{base: base}
}

func (h *Hardware) Read(off uint32) uint32 {
	return atomic.LoadUint32((*uint32)(unsafe.Pointer(h.base + uintptr(off))))
}

func (h *Hardware) Write(off uint32, v uint32) {
	atomic.StoreUint32((*uint32)(unsafe.Pointer(h.base+uintptr(off))), v)
}

// Barrier issues a sequentially consistent read-modify-write, which acts
// as a full fence on every architecture the Go runtime supports.
func (h *Hardware) Barrier() {
	atomic.AddUint32(&h.fence, 0)
}
