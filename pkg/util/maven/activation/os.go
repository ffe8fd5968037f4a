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

package activation

import (
	"regexp"
	"strings"
)

const versionRegexPrefix = "regex:"

// OSCondition holds when every declared attribute matches the running platform.
// Attributes are compared case insensitively and can be negated with a leading !.
type OSCondition struct {
	Name    string
	Family  string
	Arch    string
	Version string
}

func (OSCondition) condition() {}

// Evaluate --.
func (c OSCondition) Evaluate(ctx Context) bool {
	p := ctx.Platform

	if c.Name == "" && c.Family == "" && c.Arch == "" && c.Version == "" {
		return false
	}
	if c.Name != "" && !negatable(c.Name, func(v string) bool { return v == strings.ToLower(p.Name) }) {
		return false
	}
	if c.Family != "" && !negatable(c.Family, p.IsFamily) {
		return false
	}
	if c.Arch != "" && !negatable(c.Arch, func(v string) bool { return v == strings.ToLower(p.Arch) }) {
		return false
	}
	if c.Version != "" && !versionMatches(c.Version, p.Version) {
		return false
	}
	return true
}

func versionMatches(expected string, actual string) bool {
	if strings.HasPrefix(expected, versionRegexPrefix) {
		re, err := regexp.Compile(expected[len(versionRegexPrefix):])
		if err != nil {
			return false
		}
		return re.MatchString(actual)
	}
	return negatable(expected, func(v string) bool { return v == strings.ToLower(actual) })
}

func negatable(expected string, match func(string) bool) bool {
	expected = strings.ToLower(strings.TrimSpace(expected))
	if strings.HasPrefix(expected, "!") {
		return !match(expected[1:])
	}
	return match(expected)
}
