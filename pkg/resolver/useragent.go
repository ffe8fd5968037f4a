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
	// Used to embed the Maven version.
	_ "embed"
	"fmt"

	"github.com/apache/camel-k-resolver/pkg/util/property"
)

const unknownVersion = "unknown-version"

//go:embed resources/pom.properties
var pomProperties string

// MavenVersion returns the version of Maven the resolver mimics.
func MavenVersion() string {
	return mavenVersion(pomProperties)
}

func mavenVersion(content string) string {
	props, err := property.ParsePropertyFile(content)
	if err != nil {
		Log.Debugf("Unable to read Maven version: %v", err)
		return unknownVersion
	}
	if v := props["version"]; v != "" {
		return v
	}
	return unknownVersion
}

// UserAgent returns the agent advertised to remote repositories.
func UserAgent(systemProperties map[string]string) string {
	return fmt.Sprintf("Apache-Maven/%s (Java %s; %s %s)",
		MavenVersion(),
		systemProperties["java.version"],
		systemProperties["os.name"],
		systemProperties["os.version"],
	)
}
