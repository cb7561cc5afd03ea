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

package validation

import (
	"context"

	logger "d7y.io/dataguard/internal/dflog"
	"d7y.io/dataguard/internal/dferrors"
	"d7y.io/dataguard/pkg/slices"
	"d7y.io/dataguard/validator/dataset"
	"d7y.io/dataguard/validator/drift"
	"d7y.io/dataguard/validator/metrics"
	"d7y.io/dataguard/validator/report"
)

// DropMissingValuesColumns drops the columns whose missing fraction is greater
// than threshold and records the dropped names under key. A column with a
// missing fraction equal to threshold is kept.
func DropMissingValuesColumns(r *report.Report, d *dataset.Dataset, threshold float64, key string) (*dataset.Dataset, error) {
	dropped := []string{}
	for _, column := range d.Columns() {
		if fraction := column.MissingFraction(); fraction > threshold {
			logger.WithReportKey(key).Debugf("drop column %s of dataset %s, missing fraction %.4f", column.Name, d.Name, fraction)
			dropped = append(dropped, column.Name)
		}
	}

	d.DropColumns(dropped...)
	if err := r.Set(key, dropped); err != nil {
		return nil, err
	}
	metrics.DroppedColumnCount.WithLabelValues(d.Name).Add(float64(len(dropped)))

	if d.IsEmpty() {
		return nil, dferrors.Newf(dferrors.CodeSchemaEmpty, "dataset %s has no columns left after dropping %d columns", d.Name, len(dropped))
	}

	logger.WithReportKey(key).Infof("dataset %s drops %d columns, %d columns left", d.Name, len(dropped), d.NumColumns())
	return d, nil
}

// IsRequiredColumnsExists records the base columns absent from current under
// key, in base order, and returns whether none is absent.
func IsRequiredColumnsExists(r *report.Report, base, current *dataset.Dataset, key string) (bool, error) {
	missing, _ := slices.Difference(base.ColumnNames(), current.ColumnNames())
	if err := r.Set(key, missing); err != nil {
		return false, err
	}
	metrics.MissingColumnCount.WithLabelValues(current.Name).Add(float64(len(missing)))

	if len(missing) > 0 {
		logger.WithReportKey(key).Warnf("dataset %s misses columns %v", current.Name, missing)
		return false, nil
	}

	return true, nil
}

// DetectDrift runs the two-sample test on every float column of base found in
// current. Missing values are left out of both samples.
func DetectDrift(ctx context.Context, base, current *dataset.Dataset) (*report.DriftReport, error) {
	drifts := report.NewDriftReport()
	for _, baseColumn := range base.Columns() {
		if !baseColumn.IsFloat() {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		currentColumn, ok := current.Column(baseColumn.Name)
		if !ok {
			logger.Debugf("skip column %s absent from dataset %s", baseColumn.Name, current.Name)
			continue
		}

		if !currentColumn.IsFloat() {
			return nil, dferrors.Newf(dferrors.CodeCoercion, "dataset %s column %q is not converted to float", current.Name, currentColumn.Name)
		}

		baseValues, currentValues := baseColumn.Float64s(), currentColumn.Float64s()
		result, err := drift.KS2Samp(baseValues, currentValues)
		if err != nil {
			return nil, dferrors.Newf(dferrors.CodeCoercion, "dataset %s column %q: %w", current.Name, baseColumn.Name, err)
		}

		baseSummary, err := drift.Summarize(baseValues)
		if err != nil {
			return nil, dferrors.Newf(dferrors.CodeCoercion, "dataset %s column %q: %w", base.Name, baseColumn.Name, err)
		}

		currentSummary, err := drift.Summarize(currentValues)
		if err != nil {
			return nil, dferrors.Newf(dferrors.CodeCoercion, "dataset %s column %q: %w", current.Name, baseColumn.Name, err)
		}

		drifts.Add(baseColumn.Name, report.ColumnDrift{
			PValue:             result.PValue,
			IsSameDistribution: result.IsSameDistribution(),
			Statistic:          result.Statistic,
			BaseSize:           baseSummary.Size,
			CurrentSize:        currentSummary.Size,
			BaseMean:           baseSummary.Mean,
			CurrentMean:        currentSummary.Mean,
			BaseMedian:         baseSummary.Median,
			CurrentMedian:      currentSummary.Median,
		})
	}

	return drifts, nil
}

// DataDrift detects drift of current against base and records it under key.
func DataDrift(ctx context.Context, r *report.Report, base, current *dataset.Dataset, key string) error {
	drifts, err := DetectDrift(ctx, base, current)
	if err != nil {
		return err
	}

	return setDrift(r, current.Name, key, drifts)
}

func setDrift(r *report.Report, name, key string, drifts *report.DriftReport) error {
	if err := r.Set(key, drifts); err != nil {
		return err
	}

	drifted := drifts.DriftedColumns()
	metrics.DriftedColumnCount.WithLabelValues(name).Add(float64(len(drifted)))
	logger.WithReportKey(key).Infof("dataset %s has %d drifted columns of %d", name, len(drifted), len(drifts.Columns()))
	return nil
}
