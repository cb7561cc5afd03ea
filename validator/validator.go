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

package validator

import (
	"context"
	"errors"
	"path/filepath"

	logger "d7y.io/dataguard/internal/dflog"
	"d7y.io/dataguard/internal/dferrors"
	"d7y.io/dataguard/pkg/dfpath"
	"d7y.io/dataguard/validator/artifact"
	"d7y.io/dataguard/validator/config"
	"d7y.io/dataguard/validator/metrics"
	"d7y.io/dataguard/validator/storage"
	"d7y.io/dataguard/validator/validation"
)

type Server struct {
	// Server configuration.
	config *config.Config

	// Storage interface.
	storage storage.Storage

	// Validation interface.
	validation validation.Validation
}

func New(cfg *config.Config, d dfpath.Dfpath) (*Server, error) {
	s := &Server{config: cfg}

	// Initialize storage.
	s.storage = storage.New()

	// Initialize validation.
	s.validation = validation.New(&cfg.Validation, s.storage)

	// Initialize metrics.
	if cfg.Metrics.Enable {
		if cfg.Metrics.TextfilePath == "" {
			cfg.Metrics.TextfilePath = filepath.Join(d.DataDir(), config.DefaultMetricsTextfileName)
		}

		metrics.Init()
	}

	return s, nil
}

// Run validates the ingested datasets once and exports metrics.
func (s *Server) Run(ctx context.Context) (*artifact.DataValidationArtifact, error) {
	metrics.ValidationCount.Inc()

	validationArtifact, err := s.validation.Validate(ctx, &artifact.DataIngestionArtifact{
		TrainFilePath: s.config.Ingestion.TrainFilePath,
		TestFilePath:  s.config.Ingestion.TestFilePath,
	})
	if err != nil {
		code := dferrors.CodeIO
		var e *dferrors.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		metrics.ValidationFailureCount.WithLabelValues(code.String()).Inc()
		logger.Errorf("validation failed: %s", err.Error())
	} else {
		logger.Infof("validation succeeded, report file path is %s", validationArtifact.ReportFilePath)
	}

	if s.config.Metrics.Enable {
		if err := metrics.Export(&s.config.Metrics); err != nil {
			logger.Warnf("export metrics to %s failed: %s", s.config.Metrics.TextfilePath, err.Error())
		} else {
			logger.Infof("export metrics to %s", s.config.Metrics.TextfilePath)
		}
	}

	return validationArtifact, err
}
