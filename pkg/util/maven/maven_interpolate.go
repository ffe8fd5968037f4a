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
	"bytes"
	"encoding/xml"
	"regexp"
	"strings"
)

var expressionRegexp = regexp.MustCompile(`\$\{([^}$]+)\}`)

// ValueSource resolves the value of an interpolation expression.
type ValueSource func(expression string) (string, bool)

// MapValueSource resolves expressions from a map, keys starting with prefix having
// it stripped first. An empty prefix matches every expression.
func MapValueSource(prefix string, values map[string]string) ValueSource {
	return func(expression string) (string, bool) {
		if !strings.HasPrefix(expression, prefix) {
			return "", false
		}
		v, ok := values[strings.TrimPrefix(expression, prefix)]
		return v, ok
	}
}

// Interpolate replaces the ${...} expressions of a raw settings document with the first
// value provided by the given sources. Values are escaped so that the document stays
// well formed. Expressions nobody resolves are left untouched and reported as warnings.
func Interpolate(data []byte, source string, sources ...ValueSource) ([]byte, Problems) {
	var problems Problems
	unresolved := make(map[string]bool)

	res := expressionRegexp.ReplaceAllFunc(data, func(match []byte) []byte {
		expression := strings.TrimSpace(string(match[2 : len(match)-1]))
		for _, s := range sources {
			if v, ok := s(expression); ok {
				var buf bytes.Buffer
				if err := xml.EscapeText(&buf, []byte(v)); err != nil {
					return match
				}
				return buf.Bytes()
			}
		}
		if !unresolved[expression] {
			unresolved[expression] = true
			problems.Warn(source, "failed to interpolate expression ${%s}", expression)
		}
		return match
	})

	return res, problems
}
