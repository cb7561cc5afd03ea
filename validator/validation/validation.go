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

//go:generate mockgen -destination mocks/validation_mock.go -source validation.go -package mocks

package validation

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	logger "d7y.io/dataguard/internal/dflog"
	"d7y.io/dataguard/internal/dferrors"
	"d7y.io/dataguard/pkg/types"
	"d7y.io/dataguard/validator/artifact"
	"d7y.io/dataguard/validator/config"
	"d7y.io/dataguard/validator/dataset"
	"d7y.io/dataguard/validator/report"
	"d7y.io/dataguard/validator/storage"
)

// Steps of a validation run, carried by the returned errors.
const (
	StepCheckConfig              = "check config"
	StepLoadDataset              = "load dataset"
	StepDropMissingValuesColumns = "drop missing values columns"
	StepConvertToFloat           = "convert to float"
	StepCheckRequiredColumns     = "check required columns"
	StepDataDrift                = "detect data drift"
	StepWriteReport              = "write report"
	StepWriteDriftSummary        = "write drift summary"
)

// Validation defines the interface to validate ingested datasets.
type Validation interface {
	// Validate checks the train and test datasets against the base dataset
	// and writes the report.
	Validate(context.Context, *artifact.DataIngestionArtifact) (*artifact.DataValidationArtifact, error)
}

// validation implements Validation interface.
type validation struct {
	// Validation config.
	config *config.ValidationConfig

	// Storage interface.
	storage storage.Storage
}

// New returns a new Validation.
func New(cfg *config.ValidationConfig, storage storage.Storage) Validation {
	return &validation{
		config:  cfg,
		storage: storage,
	}
}

// candidate is a dataset checked against the base dataset.
type candidate struct {
	kind    types.DatasetKind
	dataset *dataset.Dataset

	// valid is set when the dataset has every required column.
	valid bool
	drift *report.DriftReport
}

// Validate checks the train and test datasets against the base dataset
// and writes the report.
func (v *validation) Validate(ctx context.Context, ingestion *artifact.DataIngestionArtifact) (*artifact.DataValidationArtifact, error) {
	if err := v.checkConfig(ingestion); err != nil {
		return nil, dferrors.Wrap(dferrors.CodeConfiguration, StepCheckConfig, err)
	}

	r := report.New()

	// Load all datasets.
	base, err := v.load(ctx, types.DatasetBase, v.config.BaseFilePath)
	if err != nil {
		return nil, err
	}

	candidates := make([]*candidate, 0, 2)
	for _, source := range []struct {
		kind     types.DatasetKind
		filePath string
	}{
		{types.DatasetTrain, ingestion.TrainFilePath},
		{types.DatasetTest, ingestion.TestFilePath},
	} {
		d, err := v.load(ctx, source.kind, source.filePath)
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, &candidate{kind: source.kind, dataset: d})
	}

	// Train and test datasets are expected to be normalized by ingestion.
	if n := base.ReplaceSentinel(v.config.MissingSentinel); n > 0 {
		logger.WithDataset(base.Name, v.config.BaseFilePath).Infof("replace %d %q cells with missing value", n, v.config.MissingSentinel)
	}

	// Drop columns with too many missing values, base dataset first.
	if _, err := DropMissingValuesColumns(r, base, v.config.MissingThreshold, report.MissingValuesKey(types.DatasetBase)); err != nil {
		return nil, dferrors.Wrap(dferrors.CodeSchemaEmpty, StepDropMissingValuesColumns, err)
	}

	for _, c := range candidates {
		if _, err := DropMissingValuesColumns(r, c.dataset, v.config.MissingThreshold, report.MissingValuesKey(c.kind)); err != nil {
			return nil, dferrors.Wrap(dferrors.CodeSchemaEmpty, StepDropMissingValuesColumns, err)
		}
	}

	// Convert all datasets to float except the target column.
	if err := base.ConvertToFloat(v.config.TargetColumn); err != nil {
		return nil, dferrors.Wrap(dferrors.CodeCoercion, StepConvertToFloat, err)
	}

	for _, c := range candidates {
		if err := c.dataset.ConvertToFloat(v.config.TargetColumn); err != nil {
			return nil, dferrors.Wrap(dferrors.CodeCoercion, StepConvertToFloat, err)
		}
	}

	// Check required columns, a candidate with missing columns is not tested for drift.
	for _, c := range candidates {
		c.valid, err = IsRequiredColumnsExists(r, base, c.dataset, report.MissingColumnsKey(c.kind))
		if err != nil {
			return nil, dferrors.Wrap(dferrors.CodeSchemaEmpty, StepCheckRequiredColumns, err)
		}
	}

	// Detect drift of train and test datasets concurrently.
	eg, egCtx := errgroup.WithContext(ctx)
	for _, c := range candidates {
		if !c.valid {
			logger.With("dataset", c.dataset.Name).Warnf("skip data drift, dataset has missing columns")
			continue
		}

		c := c
		eg.Go(func() error {
			drift, err := DetectDrift(egCtx, base, c.dataset)
			if err != nil {
				return err
			}

			c.drift = drift
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		code := dferrors.CodeCoercion
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			code = dferrors.CodeIO
		}

		return nil, dferrors.Wrap(code, StepDataDrift, err)
	}

	// Record drift in a fixed order.
	var summaries []*report.DriftSummary
	for _, c := range candidates {
		if c.drift == nil {
			continue
		}

		if err := setDrift(r, c.dataset.Name, report.DriftKey(c.kind), c.drift); err != nil {
			return nil, dferrors.Wrap(dferrors.CodeCoercion, StepDataDrift, err)
		}

		summaries = append(summaries, c.drift.Summaries(c.dataset.Name)...)
	}

	if err := v.storage.WriteReport(v.config.ReportFilePath, r); err != nil {
		return nil, dferrors.Wrap(dferrors.CodeIO, StepWriteReport, err)
	}

	if v.config.DriftSummaryFilePath != "" {
		if summaries == nil {
			summaries = []*report.DriftSummary{}
		}

		if err := v.storage.WriteDriftSummary(v.config.DriftSummaryFilePath, summaries); err != nil {
			return nil, dferrors.Wrap(dferrors.CodeIO, StepWriteDriftSummary, err)
		}
	}

	logger.Infof("validation report is written to %s", v.config.ReportFilePath)
	return &artifact.DataValidationArtifact{
		ReportFilePath: v.config.ReportFilePath,
	}, nil
}

// checkConfig validates the config and the ingestion artifact.
func (v *validation) checkConfig(ingestion *artifact.DataIngestionArtifact) error {
	if err := v.config.Validate(); err != nil {
		return err
	}

	if ingestion == nil {
		return errors.New("ingestion artifact is required")
	}

	if ingestion.TrainFilePath == "" {
		return errors.New("ingestion artifact requires trainFilePath")
	}

	if ingestion.TestFilePath == "" {
		return errors.New("ingestion artifact requires testFilePath")
	}

	return nil
}

// load reads a dataset through storage.
func (v *validation) load(ctx context.Context, kind types.DatasetKind, filePath string) (*dataset.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, dferrors.Wrap(dferrors.CodeIO, StepLoadDataset, err)
	}

	d, err := v.storage.LoadDataset(kind, filePath)
	if err != nil {
		logger.WithDataset(kind.String(), filePath).Errorf("load dataset failed: %s", err.Error())
		return nil, dferrors.Wrap(dferrors.CodeIO, StepLoadDataset, fmt.Errorf("%s dataset %s: %w", kind, filePath, err))
	}

	return d, nil
}
