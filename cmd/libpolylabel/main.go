// Command libpolylabel builds polylabel as a shared library with a C
// interface, declared in polylabel.h.
//
//	go build -buildmode=c-shared -o libpolylabel.so ./cmd/libpolylabel
package main

/*
#include <stddef.h>

typedef struct Position {
    double x_pos;
    double y_pos;
} Position;

typedef struct Array {
    const void *data;
    size_t len;
} Array;

typedef struct WrapperArray {
    const struct Array *data;
    size_t len;
} WrapperArray;
*/
import "C"

import (
	"unsafe"

	"honnef.co/go/polylabel/internal/ffi"
)

//export polylabel_ffi
func polylabel_ffi(outer C.Array, inners C.WrapperArray, tolerance C.double) C.Position {
	pos := ffi.Label(
		*(*ffi.Array)(unsafe.Pointer(&outer)),
		*(*ffi.WrapperArray)(unsafe.Pointer(&inners)),
		float64(tolerance),
	)
	return C.Position{x_pos: C.double(pos.XPos), y_pos: C.double(pos.YPos)}
}

func main() {}
