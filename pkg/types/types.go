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

package types

const (
	// ValidatorName is name of validator.
	ValidatorName = "validator"
)

const (
	// MetricsNamespace is namespace of metrics.
	MetricsNamespace = "dataguard"

	// ValidatorMetricsName is name of validator metrics.
	ValidatorMetricsName = "validator"
)

// DatasetKind names one of the datasets taking part in a validation run.
type DatasetKind string

const (
	// DatasetBase is the trusted reference dataset.
	DatasetBase DatasetKind = "base"

	// DatasetTrain is the train candidate dataset.
	DatasetTrain DatasetKind = "train"

	// DatasetTest is the test candidate dataset.
	DatasetTest DatasetKind = "test"
)

// String returns the name of the dataset kind.
func (k DatasetKind) String() string {
	return string(k)
}
