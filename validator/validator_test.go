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
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"d7y.io/dataguard/internal/dferrors"
	"d7y.io/dataguard/pkg/dfpath"
	"d7y.io/dataguard/validator/artifact"
	"d7y.io/dataguard/validator/config"
	"d7y.io/dataguard/validator/metrics"
	"d7y.io/dataguard/validator/validation/mocks"
)

func newDfpath(t *testing.T) dfpath.Dfpath {
	dir := t.TempDir()
	d, err := dfpath.New(
		dfpath.WithWorkHome(filepath.Join(dir, "home")),
		dfpath.WithLogDir(filepath.Join(dir, "log")),
		dfpath.WithDataDir(filepath.Join(dir, "data")),
	)
	require.NoError(t, err)
	return d
}

func TestServer_New(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(cfg *config.Config)
		expect func(t *testing.T, s *Server, d dfpath.Dfpath, err error)
	}{
		{
			name: "new server",
			mock: func(cfg *config.Config) {},
			expect: func(t *testing.T, s *Server, d dfpath.Dfpath, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.NotNil(s.storage)
				assert.NotNil(s.validation)
				assert.Empty(s.config.Metrics.TextfilePath)
			},
		},
		{
			name: "new server with default metrics textfile",
			mock: func(cfg *config.Config) {
				cfg.Metrics.Enable = true
			},
			expect: func(t *testing.T, s *Server, d dfpath.Dfpath, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(s.config.Metrics.TextfilePath, filepath.Join(d.DataDir(), "validator.prom"))
			},
		},
		{
			name: "new server with metrics textfile",
			mock: func(cfg *config.Config) {
				cfg.Metrics.Enable = true
				cfg.Metrics.TextfilePath = "foo.prom"
			},
			expect: func(t *testing.T, s *Server, d dfpath.Dfpath, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(s.config.Metrics.TextfilePath, "foo.prom")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.New()
			tc.mock(cfg)
			d := newDfpath(t)
			s, err := New(cfg, d)
			tc.expect(t, s, d, err)
		})
	}
}

func TestServer_Run(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(mv *mocks.MockValidationMockRecorder)
		expect func(t *testing.T, s *Server, validationArtifact *artifact.DataValidationArtifact, err error)
	}{
		{
			name: "run validation",
			mock: func(mv *mocks.MockValidationMockRecorder) {
				mv.Validate(gomock.Any(), &artifact.DataIngestionArtifact{
					TrainFilePath: "train.csv",
					TestFilePath:  "test.csv",
				}).Return(&artifact.DataValidationArtifact{ReportFilePath: "report.yaml"}, nil).Times(1)
			},
			expect: func(t *testing.T, s *Server, validationArtifact *artifact.DataValidationArtifact, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(validationArtifact.ReportFilePath, "report.yaml")

				data, err := os.ReadFile(s.config.Metrics.TextfilePath)
				assert.NoError(err)
				assert.Contains(string(data), "dataguard_validator_validation_total")
				assert.Contains(string(data), "dataguard_validator_version")
			},
		},
		{
			name: "run validation failed",
			mock: func(mv *mocks.MockValidationMockRecorder) {
				mv.Validate(gomock.Any(), gomock.Any()).Return(nil, dferrors.Wrap(dferrors.CodeSchemaEmpty, "foo", errors.New("bar"))).Times(1)
			},
			expect: func(t *testing.T, s *Server, validationArtifact *artifact.DataValidationArtifact, err error) {
				assert := assert.New(t)
				assert.True(dferrors.CheckError(err, dferrors.CodeSchemaEmpty))
				assert.Nil(validationArtifact)

				data, err := os.ReadFile(s.config.Metrics.TextfilePath)
				assert.NoError(err)
				assert.Contains(string(data), `dataguard_validator_validation_failure_total{code="SchemaEmptyError"}`)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			validation := mocks.NewMockValidation(ctl)
			tc.mock(validation.EXPECT())

			cfg := config.New()
			cfg.Metrics.Enable = true
			cfg.Ingestion.TrainFilePath = "train.csv"
			cfg.Ingestion.TestFilePath = "test.csv"
			s, err := New(cfg, newDfpath(t))
			require.NoError(t, err)
			s.validation = validation

			count := testutil.ToFloat64(metrics.ValidationCount)
			validationArtifact, err := s.Run(context.Background())
			assert.Equal(t, testutil.ToFloat64(metrics.ValidationCount), count+1)
			tc.expect(t, s, validationArtifact, err)
		})
	}
}
