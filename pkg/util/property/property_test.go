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

package property

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyFileEncoding(t *testing.T) {
	props := map[string]string{
		"c": "d\ne",
		"a": "b",
	}
	enc, err := EncodePropertyFile(props)
	assert.NoError(t, err)
	assert.Equal(t, "a = b\nc = d\\ne\n", enc)
}

func TestReadPropertyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "release")
	content := "IMPLEMENTOR=\"Eclipse Adoptium\"\nJAVA_VERSION=\"17.0.2\"\nhome=${user.home}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	props, err := ReadPropertyFile(path)
	require.NoError(t, err)

	assert.Equal(t, "17.0.2", Unquote(props["JAVA_VERSION"]))
	assert.Equal(t, "Eclipse Adoptium", Unquote(props["IMPLEMENTOR"]))
	assert.Equal(t, "${user.home}", props["home"])
}

func TestReadPropertyFileMissing(t *testing.T) {
	_, err := ReadPropertyFile(filepath.Join(t.TempDir(), "missing.properties"))
	assert.Error(t, err)
}

func TestParsePropertyFile(t *testing.T) {
	props, err := ParsePropertyFile("env=ci\n# comment\nmaven.repo.local : /tmp/repo\n")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"env":              "ci",
		"maven.repo.local": "/tmp/repo",
	}, props)
}

func TestUnquote(t *testing.T) {
	assert.Equal(t, "11", Unquote(`"11"`))
	assert.Equal(t, "11", Unquote(" 11 "))
	assert.Equal(t, `"`, Unquote(`"`))
}
