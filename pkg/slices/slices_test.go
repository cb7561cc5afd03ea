/*
 *     Copyright 2024 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package slices

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	assert := assert.New(t)
	assert.True(Contains([]int{1, 2, 3}, 1))
	assert.False(Contains([]int{1, 2, 3}, 4))
	assert.True(Contains([]string{"a", "b", "c"}, "a"))
	assert.False(Contains([]string{"a", "b", "c"}, "d"))
	assert.False(Contains([]string{}, "a"))
}

func TestIndex(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, Index([]string{"a", "b", "a"}, "a"))
	assert.Equal(1, Index([]string{"a", "b", "a"}, "b"))
	assert.Equal(-1, Index([]string{"a", "b"}, "c"))
}

func TestFindDuplicate(t *testing.T) {
	assert := assert.New(t)
	var (
		dupi  int
		dups  string
		found bool
	)
	dupi, found = FindDuplicate([]int{1, 2, 1, 3})
	assert.True(found)
	assert.Equal(dupi, 1)

	_, found = FindDuplicate([]int{1, 2, 3})
	assert.False(found)

	dups, found = FindDuplicate([]string{"a", "b", "c", "b"})
	assert.True(found)
	assert.Equal(dups, "b")

	_, found = FindDuplicate([]string{"a", "b", "c"})
	assert.False(found)
}

func TestDifference(t *testing.T) {
	tests := []struct {
		name   string
		l1     []string
		l2     []string
		expect func(t *testing.T, left, right []string)
	}{
		{
			name: "same elements",
			l1:   []string{"a", "b"},
			l2:   []string{"b", "a"},
			expect: func(t *testing.T, left, right []string) {
				assert := assert.New(t)
				assert.Empty(left)
				assert.Empty(right)
			},
		},
		{
			name: "left keeps the order of l1",
			l1:   []string{"e", "a", "d", "b", "c"},
			l2:   []string{"a", "b"},
			expect: func(t *testing.T, left, right []string) {
				assert := assert.New(t)
				assert.Equal([]string{"e", "d", "c"}, left)
				assert.Empty(right)
			},
		},
		{
			name: "both sides differ",
			l1:   []string{"a", "b"},
			l2:   []string{"b", "c"},
			expect: func(t *testing.T, left, right []string) {
				assert := assert.New(t)
				assert.Equal([]string{"a"}, left)
				assert.Equal([]string{"c"}, right)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			left, right := Difference(tc.l1, tc.l2)
			tc.expect(t, left, right)
		})
	}
}

func TestFilter(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]int{2, 4}, Filter([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 }))
	assert.Empty(Filter([]int{1, 3}, func(v int) bool { return v%2 == 0 }))
}
