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

package indentedwriter

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const indent = "  "

// Flusher --.
type Flusher interface {
	Flush() error
}

// Writer writes lines prefixed according to their nesting level.
type Writer struct {
	out io.Writer
}

// NewWriter --.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Writef --.
func (w *Writer) Writef(level int, format string, args ...interface{}) {
	fmt.Fprintf(w.out, strings.Repeat(indent, level)+format, args...)
}

// Field writes a "name: value" line, aligned with the other fields of the same block.
// Empty values are skipped.
func (w *Writer) Field(level int, name string, value interface{}) {
	s := fmt.Sprintf("%v", value)
	if s == "" {
		return
	}
	w.Writef(level, "%s:\t%s\n", name, s)
}

// Flush --.
func (w *Writer) Flush() error {
	if f, ok := w.out.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// IndentedString renders what f writes, with the fields of each block aligned.
func IndentedString(f func(w *Writer)) (string, error) {
	buf := &bytes.Buffer{}
	out := tabwriter.NewWriter(buf, 0, 8, 2, ' ', 0)

	w := NewWriter(out)
	f(w)

	if err := w.Flush(); err != nil {
		return "", err
	}

	return buf.String(), nil
}
