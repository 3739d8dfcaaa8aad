// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webviewrpc/bindgen/internal/arena"
)

func TestAllocReturnsNonZeroIds(t *testing.T) {
	t.Parallel()

	a := arena.New[string]()
	id1 := a.Alloc("first")
	id2 := a.Alloc("second")

	assert.NotZero(t, id1)
	assert.NotZero(t, id2)
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, "first", *a.Get(id1))
	assert.Equal(t, "second", *a.Get(id2))
}

func TestZeroIdIsUnallocated(t *testing.T) {
	t.Parallel()

	a := arena.New[string]()
	id := a.Alloc("only")

	assert.NotEqual(t, arena.Id(0), id)
}

func TestLenExcludesReservedSlot(t *testing.T) {
	t.Parallel()

	a := arena.New[int]()
	assert.Equal(t, 0, a.Len())

	a.Alloc(1)
	a.Alloc(2)
	a.Alloc(3)
	assert.Equal(t, 3, a.Len())
}

func TestAllIteratesInAllocationOrder(t *testing.T) {
	t.Parallel()

	a := arena.New[string]()
	a.Alloc("x")
	a.Alloc("y")
	a.Alloc("z")

	var ids []arena.Id
	var vals []string
	for id, v := range a.All {
		ids = append(ids, id)
		vals = append(vals, *v)
	}

	require.Len(t, ids, 3)
	assert.Equal(t, []string{"x", "y", "z"}, vals)
	// Ids are strictly increasing and never zero.
	assert.Less(t, ids[0], ids[1])
	assert.Less(t, ids[1], ids[2])
	assert.NotZero(t, ids[0])
}

func TestAllStopsOnFalseReturn(t *testing.T) {
	t.Parallel()

	a := arena.New[int]()
	a.Alloc(10)
	a.Alloc(20)
	a.Alloc(30)

	var seen []int
	a.All(func(id arena.Id, v *int) bool {
		seen = append(seen, *v)
		return len(seen) < 2
	})

	assert.Equal(t, []int{10, 20}, seen)
}

func TestGetReturnsMutablePointer(t *testing.T) {
	t.Parallel()

	a := arena.New[int]()
	id := a.Alloc(1)
	*a.Get(id) = 42

	assert.Equal(t, 42, *a.Get(id))
}
