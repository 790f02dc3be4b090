// File: capi/cstr.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

/*
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	"github.com/momentics/corebridge/api"
	"github.com/momentics/corebridge/internal/native"
	"github.com/momentics/corebridge/internal/parse"
)

// precision_from_cstr returns the decimal precision inferred from the
// numeral at ptr: the count of digits after the first '.' up to the first
// non-digit, 0 when no '.' is present. A null pointer aborts.
//
//export precision_from_cstr
func precision_from_cstr(ptr *C.char) C.uint8_t {
	if ptr == nil {
		panic(api.ErrNullPointer)
	}
	return C.uint8_t(parse.Precision(native.GoString(unsafe.Pointer(ptr))))
}

// cstr_drop reclaims a native string previously handed to the host (for
// example by uuid4_to_cstr). A null pointer aborts; a second drop of the
// same string is undefined.
//
//export cstr_drop
func cstr_drop(ptr *C.char) {
	if ptr == nil {
		panic(api.ErrNullPointer)
	}
	native.Free(unsafe.Pointer(ptr))
}
