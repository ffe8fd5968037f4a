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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMavenVersion(t *testing.T) {
	assert.Equal(t, "3.8.6", MavenVersion())
	assert.Equal(t, "1.2.3", mavenVersion("version=1.2.3"))
	assert.Equal(t, unknownVersion, mavenVersion(""))
	assert.Equal(t, unknownVersion, mavenVersion("groupId=org.apache.maven"))
}

func TestUserAgent(t *testing.T) {
	agent := UserAgent(map[string]string{
		"java.version": "11.0.16",
		"os.name":      "Linux",
		"os.version":   "5.15.0",
	})

	assert.Equal(t, "Apache-Maven/3.8.6 (Java 11.0.16; Linux 5.15.0)", agent)
}
