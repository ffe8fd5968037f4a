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

package label

import (
	"fmt"

	"k8s.io/apimachinery/pkg/labels"
)

// AppLabel is set on every generated resource.
const AppLabel = "app"

// The AdditionalLabels is a big string consisting of key=value, set at build time
// when set are to be added to the generated ConfigMaps.

// AdditionalLabels are labels=values, they MUST be set as key=value separated by comma ,
// example: myKey1=myValue1,myKey2=myValue2
var AdditionalLabels = ""

var FixedLabels = map[string]string{}

// parses the labels early on and fail fast if there are errors.
func init() {
	checkAdditionalLabels()
}

func checkAdditionalLabels() {
	if len(AdditionalLabels) > 0 {
		var err error
		FixedLabels, err = labels.ConvertSelectorToLabelsMap(AdditionalLabels)
		if err != nil {
			// as this should be used only in build time, it's ok to fail fast
			panic(fmt.Sprintf("Error parsing AdditionalLabels %s, Error: %s\n", AdditionalLabels, err))
		}
	}
}

// Parse converts key=value entries, each one possibly holding several comma separated pairs.
func Parse(entries ...string) (map[string]string, error) {
	res := make(map[string]string)
	for _, entry := range entries {
		set, err := labels.ConvertSelectorToLabelsMap(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid label %q: %w", entry, err)
		}
		for k, v := range set {
			res[k] = v
		}
	}
	return res, nil
}

// AddLabels returns the labels of a generated resource: the app label, the build
// time ones and then the given ones.
func AddLabels(app string, custom map[string]string) map[string]string {
	definitiveLabels := labels.Set{
		AppLabel: app,
	}
	for k, v := range FixedLabels {
		definitiveLabels[k] = v
	}
	for k, v := range custom {
		definitiveLabels[k] = v
	}
	return definitiveLabels
}
