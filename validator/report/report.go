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

package report

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"d7y.io/dataguard/pkg/types"
)

// ErrKeyExists is returned when a report key is written twice.
var ErrKeyExists = errors.New("report key already exists")

// MissingValuesKey returns the key of the columns dropped for missing values.
func MissingValuesKey(kind types.DatasetKind) string {
	return fmt.Sprintf("missing_values_within_%s_dataset", kind)
}

// MissingColumnsKey returns the key of the base columns absent of a candidate dataset.
func MissingColumnsKey(kind types.DatasetKind) string {
	return fmt.Sprintf("missing_columns_within_%s_dataset", kind)
}

// DriftKey returns the key of the drift report of a candidate dataset.
func DriftKey(kind types.DatasetKind) string {
	name := kind.String()
	if name == "" {
		return "data drift"
	}

	return strings.ToUpper(name[:1]) + name[1:] + " data drift"
}

// Report accumulates the results of one validation run. Every key is
// written once and entries keep their insertion order.
type Report struct {
	mu     sync.RWMutex
	keys   []string
	values map[string]any
}

// New returns an empty report.
func New() *Report {
	return &Report{
		values: make(map[string]any),
	}
}

// Set records value under key.
func (r *Report) Set(key string, value any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.values[key]; ok {
		return fmt.Errorf("%w: %s", ErrKeyExists, key)
	}

	r.keys = append(r.keys, key)
	r.values[key] = value
	return nil
}

// Get returns the value recorded under key.
func (r *Report) Get(key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (r *Report) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Len returns the number of keys.
func (r *Report) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.keys)
}

// MarshalYAML encodes the report as a mapping in insertion order.
func (r *Report) MarshalYAML() (any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range r.keys {
		value := &yaml.Node{}
		if err := value.Encode(r.values[key]); err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}

		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, value)
	}

	return node, nil
}
