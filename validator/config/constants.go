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

package config

import (
	"path/filepath"
)

const (
	// DefaultMissingThreshold is default maximum fraction of missing values
	// a column may have before it is dropped.
	DefaultMissingThreshold = 0.2

	// DefaultMissingSentinel is default token replaced with missing in the base dataset.
	DefaultMissingSentinel = "na"

	// DefaultTargetColumn is default categorical label column excluded from coercion and drift.
	DefaultTargetColumn = "class"
)

var (
	// DefaultReportFilePath is default path of the validation report.
	DefaultReportFilePath = filepath.Join("artifact", "data_validation", "report.yaml")
)

const (
	// DefaultLogRotateMaxSize is default maximum size in megabytes of log files before rotation.
	DefaultLogRotateMaxSize = 1024

	// DefaultLogRotateMaxAge is default maximum number of days to retain old log files.
	DefaultLogRotateMaxAge = 7

	// DefaultLogRotateMaxBackups is default maximum number of old log files to keep.
	DefaultLogRotateMaxBackups = 20
)

const (
	// DefaultMetricsTextfileName is default name of the metrics textfile under the data directory.
	DefaultMetricsTextfileName = "validator.prom"
)
