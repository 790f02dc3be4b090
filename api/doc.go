// Package api
// Author: momentics <momentics@gmail.com>
//
// Shared contract types for the corebridge native/host boundary.
// Declares the transferable descriptor shapes (CVec), allocation accounting
// DTOs, and the error taxonomy used across the library.
// All ownership rules are documented on the types themselves; the package
// holds no state and performs no allocation.
package api
