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
	"errors"
	"math"
	"strings"

	"d7y.io/dataguard/cmd/dependency/base"
)

type Config struct {
	// Base options.
	base.Options `yaml:",inline" mapstructure:",squash"`

	// Server configuration.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Validation configuration.
	Validation ValidationConfig `yaml:"validation" mapstructure:"validation"`

	// Ingestion configuration.
	Ingestion IngestionConfig `yaml:"ingestion" mapstructure:"ingestion"`

	// Metrics configuration.
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

type ServerConfig struct {
	// Server work directory.
	WorkHome string `yaml:"workHome" mapstructure:"workHome"`

	// Server log directory.
	LogDir string `yaml:"logDir" mapstructure:"logDir"`

	// Maximum size in megabytes of log files before rotation (default: 1024)
	LogMaxSize int `yaml:"logMaxSize" mapstructure:"logMaxSize"`

	// Maximum number of days to retain old log files (default: 7)
	LogMaxAge int `yaml:"logMaxAge" mapstructure:"logMaxAge"`

	// Maximum number of old log files to keep (default: 20)
	LogMaxBackups int `yaml:"logMaxBackups" mapstructure:"logMaxBackups"`

	// Server storage data directory.
	DataDir string `yaml:"dataDir" mapstructure:"dataDir"`
}

type ValidationConfig struct {
	// BaseFilePath is path of the trusted base csv file.
	BaseFilePath string `yaml:"baseFilePath" mapstructure:"baseFilePath"`

	// ReportFilePath is path of the yaml report.
	ReportFilePath string `yaml:"reportFilePath" mapstructure:"reportFilePath"`

	// DriftSummaryFilePath is path of the drift summary csv, empty disables it.
	DriftSummaryFilePath string `yaml:"driftSummaryFilePath" mapstructure:"driftSummaryFilePath"`

	// MissingThreshold is maximum fraction of missing values kept in a column,
	// columns above it are dropped.
	MissingThreshold float64 `yaml:"missingThreshold" mapstructure:"missingThreshold"`

	// MissingSentinel is replaced with missing in the base dataset.
	MissingSentinel string `yaml:"missingSentinel" mapstructure:"missingSentinel"`

	// TargetColumn is the label column, it is neither coerced nor tested for drift.
	TargetColumn string `yaml:"targetColumn" mapstructure:"targetColumn"`
}

type IngestionConfig struct {
	// TrainFilePath is path of the train csv file.
	TrainFilePath string `yaml:"trainFilePath" mapstructure:"trainFilePath"`

	// TestFilePath is path of the test csv file.
	TestFilePath string `yaml:"testFilePath" mapstructure:"testFilePath"`
}

type MetricsConfig struct {
	// Enable metrics export.
	Enable bool `yaml:"enable" mapstructure:"enable"`

	// TextfilePath is path of the exported metrics textfile.
	TextfilePath string `yaml:"textfilePath" mapstructure:"textfilePath"`
}

// New default configuration.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			LogMaxSize:    DefaultLogRotateMaxSize,
			LogMaxAge:     DefaultLogRotateMaxAge,
			LogMaxBackups: DefaultLogRotateMaxBackups,
		},
		Validation: ValidationConfig{
			ReportFilePath:   DefaultReportFilePath,
			MissingThreshold: DefaultMissingThreshold,
			MissingSentinel:  DefaultMissingSentinel,
			TargetColumn:     DefaultTargetColumn,
		},
		Metrics: MetricsConfig{
			Enable: false,
		},
	}
}

// Validate config parameters.
func (cfg *Config) Validate() error {
	if cfg.Server.LogMaxSize <= 0 {
		return errors.New("server requires parameter logMaxSize")
	}

	if cfg.Server.LogMaxAge <= 0 {
		return errors.New("server requires parameter logMaxAge")
	}

	if cfg.Server.LogMaxBackups <= 0 {
		return errors.New("server requires parameter logMaxBackups")
	}

	if err := cfg.Validation.Validate(); err != nil {
		return err
	}

	if cfg.Ingestion.TrainFilePath == "" {
		return errors.New("ingestion requires parameter trainFilePath")
	}

	if cfg.Ingestion.TestFilePath == "" {
		return errors.New("ingestion requires parameter testFilePath")
	}

	return nil
}

// Validate validation parameters.
func (cfg *ValidationConfig) Validate() error {
	if cfg.BaseFilePath == "" {
		return errors.New("validation requires parameter baseFilePath")
	}

	if cfg.ReportFilePath == "" {
		return errors.New("validation requires parameter reportFilePath")
	}

	if math.IsNaN(cfg.MissingThreshold) || cfg.MissingThreshold < 0 || cfg.MissingThreshold > 1 {
		return errors.New("missingThreshold should be in the range [0, 1]")
	}

	if cfg.MissingSentinel == "" {
		return errors.New("validation requires parameter missingSentinel")
	}

	return nil
}

// Convert fills derived parameters.
func (cfg *Config) Convert() error {
	cfg.Validation.BaseFilePath = strings.TrimSpace(cfg.Validation.BaseFilePath)
	cfg.Ingestion.TrainFilePath = strings.TrimSpace(cfg.Ingestion.TrainFilePath)
	cfg.Ingestion.TestFilePath = strings.TrimSpace(cfg.Ingestion.TestFilePath)

	if cfg.Validation.ReportFilePath == "" {
		cfg.Validation.ReportFilePath = DefaultReportFilePath
	}

	return nil
}
