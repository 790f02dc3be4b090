// File: core/ident/ident_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ident

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/momentics/corebridge/api"
	"github.com/momentics/corebridge/internal/native"
)

var canonicalRe = regexp.MustCompile(
	`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestNewIsCanonicalV4(t *testing.T) {
	u := New()
	defer u.Drop()
	assert.Regexp(t, canonicalRe, u.String())
}

func TestNewIsUnique(t *testing.T) {
	a := New()
	defer a.Drop()
	b := New()
	defer b.Drop()
	assert.False(t, a.Equal(b))
}

func TestFromStringRoundTrip(t *testing.T) {
	const s = "2d89666b-1a1e-4a75-b193-4eb3b454c757"
	u, err := FromString(s)
	require.NoError(t, err)
	defer u.Drop()
	assert.Equal(t, s, u.String())
}

func TestFromStringCanonicalizes(t *testing.T) {
	u, err := FromString("2D89666B-1A1E-4A75-B193-4EB3B454C757")
	require.NoError(t, err)
	defer u.Drop()
	assert.Equal(t, "2d89666b-1a1e-4a75-b193-4eb3b454c757", u.String())
}

func TestFromStringMalformed(t *testing.T) {
	for _, s := range []string{"", "not-a-uuid", "2d89666b-1a1e-4a75-b193", "zz89666b-1a1e-4a75-b193-4eb3b454c757"} {
		_, err := FromString(s)
		require.Errorf(t, err, "input %q", s)
		var structured *api.Error
		require.ErrorAs(t, err, &structured)
		assert.Equal(t, api.ErrCodeMalformedIdentifier, structured.Code)
	}
}

func TestCloneEquivalence(t *testing.T) {
	u := New()
	c := u.Clone()
	assert.True(t, u.Equal(c))
	assert.Equal(t, u.Hash(), c.Hash())
	assert.Equal(t, u.String(), c.String())
	c.Drop()
	u.Drop()
}

func TestEqualAcrossAllocations(t *testing.T) {
	const s = "5c5bd86a-6bd0-4a77-9a43-53b9ec5f6a1c"
	a, err := FromString(s)
	require.NoError(t, err)
	defer a.Drop()
	b, err := FromString(s)
	require.NoError(t, err)
	defer b.Drop()

	assert.NotEqual(t, a.Raw(), b.Raw(), "distinct allocations expected")
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestHashDiffersForDifferentIDs(t *testing.T) {
	a := New()
	defer a.Drop()
	b := New()
	defer b.Drop()
	// Collisions are allowed in principle; two fresh v4 IDs colliding in
	// FNV-1a would indicate a broken hash.
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestReferenceCounting(t *testing.T) {
	const n = 10

	before := native.Stats()
	u := New()
	require.Equal(t, before.TotalAlloc+1, native.Stats().TotalAlloc)

	clones := make([]UUID4, 0, n)
	for i := 0; i < n; i++ {
		clones = append(clones, u.Clone())
	}
	assert.EqualValues(t, n+1, u.refs())

	// Cloning allocates nothing.
	assert.Equal(t, before.TotalAlloc+1, native.Stats().TotalAlloc)

	for _, c := range clones {
		c.Drop()
	}
	// Backing allocation still alive under the final reference.
	assert.EqualValues(t, 1, u.refs())
	assert.Equal(t, before.TotalFree, native.Stats().TotalFree)

	u.Drop()
	after := native.Stats()
	assert.Equal(t, before.TotalFree+1, after.TotalFree)
	assert.Equal(t, before.InUse, after.InUse)
}

func TestConcurrentCloneDrop(t *testing.T) {
	const (
		workers    = 16
		iterations = 1_000
	)

	before := native.Stats()
	u := New()

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := 0; i < iterations; i++ {
				c := u.Clone()
				if !c.Equal(u) {
					return api.ErrInvalidArgument
				}
				c.Drop()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.EqualValues(t, 1, u.refs())
	u.Drop()

	after := native.Stats()
	assert.Equal(t, before.TotalFree+1, after.TotalFree)
	assert.Equal(t, before.InUse, after.InUse)
}

func TestFromRawNullAborts(t *testing.T) {
	assert.Panics(t, func() { FromRaw(nil) })
}

func TestRawFromRawIdentity(t *testing.T) {
	u := New()
	defer u.Drop()
	v := FromRaw(u.Raw())
	assert.True(t, u.Equal(v))
	assert.Equal(t, u.Raw(), v.Raw())
}
