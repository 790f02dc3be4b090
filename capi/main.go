// File: capi/main.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// C ABI surface of the corebridge boundary. Build as a shared library:
//
//	go build -buildmode=c-shared -o libcorebridge.so ./capi
//
// One exported function per declaration, grouped by concern across
// cvec.go, uuid.go, cstr.go and datetime.go. Struct shapes are fixed in
// corebridge.h.
//
// Error policy: a contract violation (null pointer, malformed identifier
// text, negative or overflowing time input) panics. A panic in an exported
// function cannot unwind into the host and terminates the process, which is
// the intended fail-fast behaviour; hosts validate inputs before calling.

package main

// main is never invoked; the package exists to be linked as c-shared.
func main() {}
