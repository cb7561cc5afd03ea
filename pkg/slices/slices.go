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

// Contains returns true if an element is present in a collection.
func Contains[T comparable](s []T, e T) bool {
	return Index(s, e) >= 0
}

// Index returns the position of the first occurrence of e in s, or -1.
func Index[T comparable](s []T, e T) int {
	for i, v := range s {
		if v == e {
			return i
		}
	}

	return -1
}

// FindDuplicate returns duplicate element in a collection.
func FindDuplicate[T comparable](s []T) (T, bool) {
	visited := make(map[T]struct{}, len(s))
	for _, v := range s {
		if _, ok := visited[v]; ok {
			return v, true
		}

		visited[v] = struct{}{}
	}

	var zero T
	return zero, false
}

// Difference returns the difference between two slices.
// The first value is the collection of element absent of l2, in the order of l1.
// The second value is the collection of element absent of l1, in the order of l2.
func Difference[T comparable](l1 []T, l2 []T) ([]T, []T) {
	left := []T{}
	right := []T{}

	visitedLeft := make(map[T]struct{}, len(l1))
	visitedRight := make(map[T]struct{}, len(l2))

	for _, e := range l1 {
		visitedLeft[e] = struct{}{}
	}

	for _, e := range l2 {
		visitedRight[e] = struct{}{}
	}

	for _, e := range l1 {
		if _, ok := visitedRight[e]; !ok {
			left = append(left, e)
		}
	}

	for _, e := range l2 {
		if _, ok := visitedLeft[e]; !ok {
			right = append(right, e)
		}
	}

	return left, right
}

// Filter returns the elements of s for which keep returns true, in order.
func Filter[T any](s []T, keep func(T) bool) []T {
	result := make([]T, 0, len(s))
	for _, v := range s {
		if keep(v) {
			result = append(result, v)
		}
	}

	return result
}
