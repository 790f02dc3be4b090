// File: core/ident/ident.go
// Package ident implements the shared, reference-counted identifier.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A UUID4 wraps one native allocation holding the canonical 36-character
// identifier text. Logical copies made through Clone share that allocation;
// an atomic count stored immediately ahead of the text tracks outstanding
// references, and the allocation is reclaimed when the last one drops.
// Because the text lives on the C heap, instances can cross the boundary
// without exposing any Go pointer to the host.

package ident

import (
	"hash/fnv"
	"sync/atomic"
	"unsafe"

	"github.com/google/uuid"

	"github.com/momentics/corebridge/api"
	"github.com/momentics/corebridge/internal/native"
)

const (
	// strLen is the canonical hyphenated text length.
	strLen = 36
	// headerSize is the atomic reference count ahead of the text.
	headerSize = 8
)

// UUID4 is a value handle over a shared immutable native string.
// The zero value is invalid; obtain instances from New, FromString, Clone
// or FromRaw. Every instance obtained must be Dropped exactly once.
type UUID4 struct {
	value unsafe.Pointer // first byte of the NUL-terminated canonical text
}

// New generates a fresh random identifier with a reference count of one.
func New() UUID4 {
	return fromCanonical(uuid.NewString())
}

// FromString parses caller-supplied text into canonical form. The input
// bytes are copied, never retained. Returns ErrCodeMalformedIdentifier
// when the text is not a valid identifier.
func FromString(s string) (UUID4, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return UUID4{}, api.NewError(api.ErrCodeMalformedIdentifier, api.ErrMalformedIdentifier.Error()).
			WithContext("input", s)
	}
	return fromCanonical(parsed.String()), nil
}

// fromCanonical allocates the shared backing: count header, text, NUL.
func fromCanonical(s string) UUID4 {
	base := native.Alloc(headerSize + strLen + 1)
	(*atomic.Int64)(base).Store(1)
	text := unsafe.Add(base, headerSize)
	dst := unsafe.Slice((*byte)(text), strLen+1)
	copy(dst, s)
	dst[strLen] = 0
	return UUID4{value: text}
}

func (u UUID4) base() unsafe.Pointer {
	return unsafe.Add(u.value, -headerSize)
}

func (u UUID4) count() *atomic.Int64 {
	return (*atomic.Int64)(u.base())
}

func (u UUID4) bytes() []byte {
	return unsafe.Slice((*byte)(u.value), strLen)
}

// Clone produces a second instance sharing the backing allocation.
// O(1), no allocation; safe against concurrent Clone/Drop on related
// instances.
func (u UUID4) Clone() UUID4 {
	u.count().Add(1)
	return UUID4{value: u.value}
}

// Drop releases one reference and reclaims the backing allocation when the
// last reference goes. Using the instance afterwards, or dropping it twice,
// is undefined.
func (u UUID4) Drop() {
	if u.count().Add(-1) == 0 {
		native.Free(u.base())
	}
}

// String copies the canonical text out of native memory.
func (u UUID4) String() string {
	return string(u.bytes())
}

// Equal compares canonical text content, not allocation identity.
func (u UUID4) Equal(o UUID4) bool {
	if u.value == o.value {
		return true
	}
	return string(u.bytes()) == string(o.bytes())
}

// Hash is FNV-1a over the canonical text. Equal instances hash equal; the
// value is stable across processes.
func (u UUID4) Hash() uint64 {
	h := fnv.New64a()
	h.Write(u.bytes())
	return h.Sum64()
}

// Raw exposes the native text pointer for the C export layer. The count is
// untouched; the returned pointer stays valid while the instance lives.
func (u UUID4) Raw() unsafe.Pointer {
	return u.value
}

// FromRaw rebuilds an instance from a pointer previously produced by Raw.
// The count is untouched. A nil pointer is a contract violation.
func FromRaw(p unsafe.Pointer) UUID4 {
	if p == nil {
		panic(api.ErrNullPointer)
	}
	return UUID4{value: p}
}

// refs reports the current shared count. Test visibility only.
func (u UUID4) refs() int64 {
	return u.count().Load()
}
