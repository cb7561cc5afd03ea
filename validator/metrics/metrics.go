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

package metrics

import (
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"d7y.io/dataguard/pkg/types"
	"d7y.io/dataguard/validator/config"
	"d7y.io/dataguard/version"
)

// Variables declared for metrics.
var (
	ValidationCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ValidatorMetricsName,
		Name:      "validation_total",
		Help:      "Counter of the number of the validation.",
	})

	ValidationFailureCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ValidatorMetricsName,
		Name:      "validation_failure_total",
		Help:      "Counter of the number of failed of the validation.",
	}, []string{"code"})

	DroppedColumnCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ValidatorMetricsName,
		Name:      "dropped_column_total",
		Help:      "Counter of the number of columns dropped for missing values.",
	}, []string{"dataset"})

	MissingColumnCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ValidatorMetricsName,
		Name:      "missing_column_total",
		Help:      "Counter of the number of required columns missing from the dataset.",
	}, []string{"dataset"})

	DriftedColumnCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ValidatorMetricsName,
		Name:      "drifted_column_total",
		Help:      "Counter of the number of columns whose distribution drifted.",
	}, []string{"dataset"})

	VersionGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ValidatorMetricsName,
		Name:      "version",
		Help:      "Version info of the service.",
	}, []string{"major", "minor", "git_version", "git_commit", "platform", "build_time", "go_version"})
)

// Init sets the version info.
func Init() {
	VersionGauge.WithLabelValues(version.Major, version.Minor, version.GitVersion, version.GitCommit, version.Platform, version.BuildTime, version.GoVersion).Set(1)
}

// Export writes the registered metrics to the textfile in the text exposition format,
// it is read by the node exporter textfile collector.
func Export(cfg *config.MetricsConfig) error {
	if !cfg.Enable {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.TextfilePath), 0755); err != nil {
		return err
	}

	return prometheus.WriteToTextfile(cfg.TextfilePath, prometheus.DefaultGatherer)
}
