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
	"strings"
)

// PropertyCondition holds when a system property is set, or when it has the given
// value. A leading ! negates the name or the value.
type PropertyCondition struct {
	Name  string
	Value string
}

func (PropertyCondition) condition() {}

// Evaluate --.
func (c PropertyCondition) Evaluate(ctx Context) bool {
	name := strings.TrimSpace(c.Name)
	reverseName := false
	if strings.HasPrefix(name, "!") {
		reverseName = true
		name = name[1:]
	}
	if name == "" {
		return false
	}

	actual, _ := ctx.property(name)

	if expected := c.Value; expected != "" {
		reverseValue := false
		if strings.HasPrefix(expected, "!") {
			reverseValue = true
			expected = expected[1:]
		}
		return (expected == actual) != reverseValue
	}

	return (actual != "") != reverseName
}
