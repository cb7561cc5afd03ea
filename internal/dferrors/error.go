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

package dferrors

import (
	"errors"
	"fmt"
)

// Code classifies the failure of a validation run.
type Code int

const (
	// CodeConfiguration is a missing or invalid configuration value.
	CodeConfiguration Code = iota + 1

	// CodeSchemaEmpty is a dataset left without columns after cleaning.
	CodeSchemaEmpty

	// CodeCoercion is a column that can not be used as numeric data.
	CodeCoercion

	// CodeIO is a dataset load or report write failure.
	CodeIO
)

// String returns the name of the code.
func (c Code) String() string {
	switch c {
	case CodeConfiguration:
		return "ConfigurationError"
	case CodeSchemaEmpty:
		return "SchemaEmptyError"
	case CodeCoercion:
		return "CoercionError"
	case CodeIO:
		return "IOError"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// Error is the error returned by every failed validation step.
type Error struct {
	Code  Code
	Step  string
	Cause error
}

func (e *Error) Error() string {
	if e.Step == "" {
		return fmt.Sprintf("[%s]%v", e.Code, e.Cause)
	}

	return fmt.Sprintf("[%s]%s: %v", e.Code, e.Step, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New returns an error with the code, the step may be stamped later by Wrap.
func New(code Code, msg string) *Error {
	return &Error{
		Code:  code,
		Cause: errors.New(msg),
	}
}

// Newf returns an error with the code and a formatted message.
func Newf(code Code, format string, a ...any) *Error {
	return &Error{
		Code:  code,
		Cause: fmt.Errorf(format, a...),
	}
}

// Wrap attaches the originating step to err. When err already carries a code,
// that code is kept and code is ignored.
func Wrap(code Code, step string, err error) error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return &Error{
			Code:  e.Code,
			Step:  step,
			Cause: e.Cause,
		}
	}

	return &Error{
		Code:  code,
		Step:  step,
		Cause: err,
	}
}

// CheckError reports whether err carries the code.
func CheckError(err error, code Code) bool {
	if err == nil {
		return false
	}

	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// StepOf returns the originating step of err, or an empty string.
func StepOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Step
	}

	return ""
}
