/*
Licensed to the Apache Software Foundation (ASF) under one or more
contributor license agreements.  See the NOTICE file distributed with
this work for additional information regarding copyright ownership.
The ASF licenses this file to You under the Apache License, Version 2.0
(the "License"); you may not use this file except in compliance with
the License.  You may obtain a copy of the License at

   http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package maven

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Severity of a Problem.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityFatal:
		return "FATAL"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Problem is something found while building the settings that may or may not abort the build.
type Problem struct {
	Severity Severity
	// Source is the file, or the element, the problem relates to.
	Source  string
	Message string
	Err     error
}

func (p Problem) Error() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(p.Severity.String())
	b.WriteString("] ")
	b.WriteString(p.Message)
	if p.Source != "" {
		b.WriteString(" @ ")
		b.WriteString(p.Source)
	}
	if p.Err != nil && p.Err.Error() != p.Message {
		b.WriteString(": ")
		b.WriteString(p.Err.Error())
	}
	return b.String()
}

// Unwrap --.
func (p Problem) Unwrap() error {
	return p.Err
}

// Problems --.
type Problems []Problem

// Add --.
func (p *Problems) Add(severity Severity, source string, message string, err error) {
	*p = append(*p, Problem{
		Severity: severity,
		Source:   source,
		Message:  message,
		Err:      err,
	})
}

// Warn --.
func (p *Problems) Warn(source string, format string, args ...interface{}) {
	p.Add(SeverityWarning, source, fmt.Sprintf(format, args...), nil)
}

// Merge --.
func (p *Problems) Merge(other Problems) {
	*p = append(*p, other...)
}

// FirstError returns the first problem with severity error or fatal.
func (p Problems) FirstError() *Problem {
	for i := range p {
		if p[i].Severity >= SeverityError {
			return &p[i]
		}
	}
	return nil
}

// Warnings --.
func (p Problems) Warnings() Problems {
	var res Problems
	for _, problem := range p {
		if problem.Severity == SeverityWarning {
			res = append(res, problem)
		}
	}
	return res
}

// Err combines all the problems, nil when there are none.
func (p Problems) Err() error {
	var err error
	for _, problem := range p {
		err = multierr.Append(err, problem)
	}
	return err
}
