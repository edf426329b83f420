package opengl

import "github.com/spaghettifunk/uchiha/engine/core"

// GL 3.3 guarantees at least 16 texture units for the fragment stage.
const maxTextureUnits = 16

// unitPool allocates texture unit indices for sampler bindings. Unit
// indices are assigned independently of texture handle values: handles are
// driver-chosen and unbounded, while units are a small fixed resource. A
// texture keeps its unit until it is destroyed.
type unitPool struct {
	assigned map[uint32]int
	inUse    [maxTextureUnits]bool
}

func newUnitPool() *unitPool {
	return &unitPool{
		assigned: make(map[uint32]int),
	}
}

// acquire returns the unit already assigned to the handle, or claims the
// lowest free one.
func (u *unitPool) acquire(handle uint32) (int, error) {
	if unit, ok := u.assigned[handle]; ok {
		return unit, nil
	}
	for unit := 0; unit < maxTextureUnits; unit++ {
		if !u.inUse[unit] {
			u.inUse[unit] = true
			u.assigned[handle] = unit
			return unit, nil
		}
	}
	return 0, core.ErrNoTextureUnits
}

// release frees the unit assigned to the handle, if any.
func (u *unitPool) release(handle uint32) {
	unit, ok := u.assigned[handle]
	if !ok {
		return
	}
	delete(u.assigned, handle)
	u.inUse[unit] = false
}
