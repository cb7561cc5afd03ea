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

//go:generate mockgen -destination mocks/storage_mock.go -source storage.go -package mocks

package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	logger "d7y.io/dataguard/internal/dflog"
	"d7y.io/dataguard/pkg/types"
	"d7y.io/dataguard/validator/dataset"
	"d7y.io/dataguard/validator/report"
)

const (
	// DefaultDirMode is the mode of created artifact directories.
	DefaultDirMode = 0755

	// DefaultFileMode is the mode of written artifact files.
	DefaultFileMode = 0644

	// tempFilePattern is pattern of temporary files renamed into place.
	tempFilePattern = ".validator-*"
)

// ErrEmptyCSV is returned when a dataset file has no header.
var ErrEmptyCSV = errors.New("empty csv file given")

// Storage is the interface used for storage.
type Storage interface {
	// LoadDataset reads a csv file with header into a dataset of the given kind.
	LoadDataset(types.DatasetKind, string) (*dataset.Dataset, error)

	// WriteReport writes the report as yaml, the file is replaced atomically.
	WriteReport(string, *report.Report) error

	// WriteDriftSummary writes drift summaries as csv, the file is replaced atomically.
	WriteDriftSummary(string, []*report.DriftSummary) error
}

type storage struct {
	nullValues []string
}

// Option is a functional option for configuring the storage.
type Option func(s *storage)

// WithNullValues sets the cells read as missing values.
func WithNullValues(nullValues []string) Option {
	return func(s *storage) {
		s.nullValues = nullValues
	}
}

// New returns a new Storage instance.
func New(options ...Option) Storage {
	s := &storage{
		nullValues: dataset.DefaultNullValues,
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

// LoadDataset reads a csv file with header into a dataset of the given kind.
func (s *storage) LoadDataset(kind types.DatasetKind, filePath string) (*dataset.Dataset, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := newCSVReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filePath, err)
	}

	if len(records) == 0 {
		return nil, ErrEmptyCSV
	}

	d, err := dataset.New(kind.String(), records[0], records[1:], s.nullValues)
	if err != nil {
		return nil, err
	}

	logger.StorageLogger.Infof("load %s dataset from %s: %d rows, %d columns", kind, filePath, d.NumRows(), d.NumColumns())
	return d, nil
}

// WriteReport writes the report as yaml, the file is replaced atomically.
func (s *storage) WriteReport(filePath string, r *report.Report) error {
	if err := writeFile(filePath, func(w io.Writer) error {
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(r); err != nil {
			return err
		}

		return encoder.Close()
	}); err != nil {
		return err
	}

	logger.StorageLogger.Infof("write report with %d keys to %s", r.Len(), filePath)
	return nil
}

// WriteDriftSummary writes drift summaries as csv, the file is replaced atomically.
func (s *storage) WriteDriftSummary(filePath string, summaries []*report.DriftSummary) error {
	if err := writeFile(filePath, func(w io.Writer) error {
		return gocsv.Marshal(&summaries, w)
	}); err != nil {
		return err
	}

	logger.StorageLogger.Infof("write %d drift summaries to %s", len(summaries), filePath)
	return nil
}

// newCSVReader reads quotes lazily and keeps leading spaces of cells, so
// " NA" is neither a null value nor the sentinel.
func newCSVReader(r io.Reader) gocsv.CSVReader {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = false
	return reader
}

// writeFile writes into a temporary file of the target directory and renames it
// into place, a failed write leaves no file behind.
func writeFile(filePath string, write func(io.Writer) error) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, DefaultDirMode); err != nil {
		return err
	}

	file, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return err
	}

	if err := write(file); err != nil {
		file.Close()
		os.Remove(file.Name())
		return err
	}

	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return err
	}

	if err := os.Chmod(file.Name(), DefaultFileMode); err != nil {
		os.Remove(file.Name())
		return err
	}

	if err := os.Rename(file.Name(), filePath); err != nil {
		os.Remove(file.Name())
		return err
	}

	return nil
}
