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

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSliceUniqueConcat(t *testing.T) {
	slice := []string{"a", "b"}
	assert.True(t, StringSliceUniqueConcat(&slice, []string{"b", "c"}))
	assert.False(t, StringSliceUniqueConcat(&slice, []string{"a"}))
	assert.Equal(t, []string{"a", "b", "c"}, slice)
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitAndTrim(" a, ,b ,", ","))
	assert.Empty(t, SplitAndTrim("", ","))
}

func TestFileAndDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "settings.xml")
	require.NoError(t, os.WriteFile(file, []byte("<settings/>"), 0o600))

	exists, err := FileExists(file)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = FileExists(dir)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = DirectoryExists(dir)
	require.NoError(t, err)
	assert.True(t, exists)

	assert.True(t, PathExists(dir))
	assert.False(t, PathExists(filepath.Join(dir, "missing")))
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, filepath.Join("base", "conf", "settings.xml"), ResolvePath("base", filepath.Join("conf", "settings.xml")))
	assert.Equal(t, "settings.xml", ResolvePath("", "settings.xml"))
	abs := filepath.Join(t.TempDir(), "settings.xml")
	assert.Equal(t, abs, ResolvePath("base", abs))
}

func TestToYAMLKeepsFieldOrder(t *testing.T) {
	content := struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}{ID: "central", URL: "https://repo.maven.apache.org/maven2"}

	data, err := ToYAML(content)
	require.NoError(t, err)
	assert.Equal(t, "id: central\nurl: https://repo.maven.apache.org/maven2\n", string(data))
}
