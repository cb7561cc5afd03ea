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

package report

import (
	"gopkg.in/yaml.v3"
)

// ColumnDrift is the drift result of one column.
type ColumnDrift struct {
	// PValue is the p-value of the two-sample test.
	PValue float64 `yaml:"pvalue"`

	// IsSameDistribution is false when drift is detected.
	IsSameDistribution bool `yaml:"is_same_distribution"`

	// Statistic is the two-sample test statistic.
	Statistic float64 `yaml:"-"`

	// BaseSize and CurrentSize are the numbers of non-missing values tested.
	BaseSize    int `yaml:"-"`
	CurrentSize int `yaml:"-"`

	BaseMean      float64 `yaml:"-"`
	CurrentMean   float64 `yaml:"-"`
	BaseMedian    float64 `yaml:"-"`
	CurrentMedian float64 `yaml:"-"`
}

// DriftSummary is a row of the drift summary csv file.
type DriftSummary struct {
	Dataset            string  `csv:"dataset"`
	Column             string  `csv:"column"`
	BaseSize           int     `csv:"baseSize"`
	CurrentSize        int     `csv:"currentSize"`
	Statistic          float64 `csv:"statistic"`
	PValue             float64 `csv:"pvalue"`
	IsSameDistribution bool    `csv:"isSameDistribution"`
	BaseMean           float64 `csv:"baseMean"`
	CurrentMean        float64 `csv:"currentMean"`
	BaseMedian         float64 `csv:"baseMedian"`
	CurrentMedian      float64 `csv:"currentMedian"`
}

// DriftReport maps column names to their drift, in base column order.
type DriftReport struct {
	columns []string
	results map[string]ColumnDrift
}

// NewDriftReport returns an empty drift report.
func NewDriftReport() *DriftReport {
	return &DriftReport{
		results: make(map[string]ColumnDrift),
	}
}

// Add records the drift of a column, a column added twice keeps its first position.
func (d *DriftReport) Add(column string, drift ColumnDrift) {
	if _, ok := d.results[column]; !ok {
		d.columns = append(d.columns, column)
	}

	d.results[column] = drift
}

// Get returns the drift of a column.
func (d *DriftReport) Get(column string) (ColumnDrift, bool) {
	drift, ok := d.results[column]
	return drift, ok
}

// Columns returns the tested columns in order.
func (d *DriftReport) Columns() []string {
	columns := make([]string, len(d.columns))
	copy(columns, d.columns)
	return columns
}

// DriftedColumns returns the columns whose distribution changed.
func (d *DriftReport) DriftedColumns() []string {
	var drifted []string
	for _, column := range d.columns {
		if !d.results[column].IsSameDistribution {
			drifted = append(drifted, column)
		}
	}

	return drifted
}

// Summaries returns a summary row per column.
func (d *DriftReport) Summaries(dataset string) []*DriftSummary {
	summaries := make([]*DriftSummary, 0, len(d.columns))
	for _, column := range d.columns {
		drift := d.results[column]
		summaries = append(summaries, &DriftSummary{
			Dataset:            dataset,
			Column:             column,
			BaseSize:           drift.BaseSize,
			CurrentSize:        drift.CurrentSize,
			Statistic:          drift.Statistic,
			PValue:             drift.PValue,
			IsSameDistribution: drift.IsSameDistribution,
			BaseMean:           drift.BaseMean,
			CurrentMean:        drift.CurrentMean,
			BaseMedian:         drift.BaseMedian,
			CurrentMedian:      drift.CurrentMedian,
		})
	}

	return summaries
}

// MarshalYAML encodes the drift report as a mapping in column order.
func (d *DriftReport) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, column := range d.columns {
		value := &yaml.Node{}
		if err := value.Encode(d.results[column]); err != nil {
			return nil, err
		}

		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: column}, value)
	}

	return node, nil
}
