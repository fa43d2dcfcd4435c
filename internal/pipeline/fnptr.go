package pipeline

import "reflect"

// reflectFuncPointer recovers the code pointer backing a StageFn value.
// This is the closest safe Go analogue of spec.md's fn_ptr, which compares
// raw C function pointers; reflect.Value.Pointer documents that for a
// non-closure func value it returns a pointer suitable for this kind of
// identity comparison.
func reflectFuncPointer(f StageFn) uintptr {
	if f == nil {
		return 0
	}
	return reflect.ValueOf(f).Pointer()
}
