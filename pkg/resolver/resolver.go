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

package resolver

import (
	"github.com/apache/camel-k-resolver/pkg/util/log"
)

// Log --.
var Log = log.WithName("resolver")

// ConfigurationError is returned when the Maven configuration cannot be used: the command
// line cannot be parsed, or the settings have errors.
type ConfigurationError struct {
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

// Unwrap --.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Cause is used by github.com/pkg/errors.
func (e *ConfigurationError) Cause() error {
	return e.Err
}
