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

package artifact

// DataIngestionArtifact is the output of data ingestion, it locates the
// train and test candidate datasets.
type DataIngestionArtifact struct {
	// TrainFilePath is path of the train csv file.
	TrainFilePath string `yaml:"train_file_path" json:"train_file_path"`

	// TestFilePath is path of the test csv file.
	TestFilePath string `yaml:"test_file_path" json:"test_file_path"`
}

// DataValidationArtifact is the output of data validation.
type DataValidationArtifact struct {
	// ReportFilePath is path of the written validation report.
	ReportFilePath string `yaml:"report_file_path" json:"report_file_path"`
}
