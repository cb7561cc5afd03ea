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

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"d7y.io/dataguard/cmd/dependency"
	logger "d7y.io/dataguard/internal/dflog"
	"d7y.io/dataguard/internal/dferrors"
	"d7y.io/dataguard/pkg/dfpath"
	"d7y.io/dataguard/pkg/types"
	"d7y.io/dataguard/validator"
	"d7y.io/dataguard/validator/config"
	"d7y.io/dataguard/version"
)

var (
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "validator",
	Short: "the data validator of dataguard",
	Long: `Validator checks the ingested train and test datasets against a trusted base dataset before they flow into transformation and training.
It drops columns with too many missing values, reports required columns absent from the candidates and detects per-column data drift with the two-sample Kolmogorov-Smirnov test.`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Convert config.
		if err := cfg.Convert(); err != nil {
			return dferrors.Wrap(dferrors.CodeConfiguration, "convert config", err)
		}

		// Validate config.
		if err := cfg.Validate(); err != nil {
			return dferrors.Wrap(dferrors.CodeConfiguration, "validate config", err)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		// Initialize dfpath.
		d, err := initDfpath(&cfg.Server)
		if err != nil {
			return dferrors.Wrap(dferrors.CodeIO, "init dfpath", err)
		}
		rotateConfig := logger.LogRotateConfig{
			MaxSize:    cfg.Server.LogMaxSize,
			MaxAge:     cfg.Server.LogMaxAge,
			MaxBackups: cfg.Server.LogMaxBackups}

		// Initialize logger.
		if err := logger.InitValidator(cfg.Verbose, cfg.Console, d.LogDir(), rotateConfig); err != nil {
			return fmt.Errorf("init validator logger: %w", err)
		}
		logger.RedirectStdoutAndStderr(cfg.Console, path.Join(d.LogDir(), types.ValidatorName))

		return runValidator(ctx, cmd, d)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func init() {
	// Initialize default validator config.
	cfg = config.New()

	// Initialize command and config.
	dependency.InitCommandAndConfig(rootCmd, true, cfg)

	// Add validator flags.
	flags := rootCmd.Flags()
	flags.String("base-file", cfg.Validation.BaseFilePath, "path of the trusted base csv file")
	flags.String("train-file", cfg.Ingestion.TrainFilePath, "path of the train csv file")
	flags.String("test-file", cfg.Ingestion.TestFilePath, "path of the test csv file")
	flags.String("report-file", cfg.Validation.ReportFilePath, "path of the validation report")
	flags.String("drift-summary-file", cfg.Validation.DriftSummaryFilePath, "path of the drift summary csv, disabled when empty")
	flags.Float64("missing-threshold", cfg.Validation.MissingThreshold, "maximum fraction of missing values kept in a column")

	for key, name := range map[string]string{
		"validation.baseFilePath":         "base-file",
		"ingestion.trainFilePath":         "train-file",
		"ingestion.testFilePath":          "test-file",
		"validation.reportFilePath":       "report-file",
		"validation.driftSummaryFilePath": "drift-summary-file",
		"validation.missingThreshold":     "missing-threshold",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Errorf("bind flag %s to viper: %w", name, err))
		}
	}
}

func initDfpath(cfg *config.ServerConfig) (dfpath.Dfpath, error) {
	var options []dfpath.Option
	if cfg.WorkHome != "" {
		options = append(options, dfpath.WithWorkHome(cfg.WorkHome))
	}

	if cfg.LogDir != "" {
		options = append(options, dfpath.WithLogDir(cfg.LogDir))
	}

	if cfg.DataDir != "" {
		options = append(options, dfpath.WithDataDir(cfg.DataDir))
	}

	return dfpath.New(options...)
}

func runValidator(ctx context.Context, cmd *cobra.Command, d dfpath.Dfpath) error {
	logger.Infof("version:\n%s", version.Version())

	svr, err := validator.New(cfg, d)
	if err != nil {
		return err
	}

	validationArtifact, err := svr.Run(ctx)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(validationArtifact)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}
