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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resolverConfig = `
kamel-resolver:
  log-level: debug
  mirrors:
  - https://nexus.example.com@id=nexus@mirrorOf=*
  configmap:
    name: builder
    labels:
    - team=build
`

func TestLoadConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(resolverConfig), 0o600))

	c, err := LoadConfig(file)
	require.NoError(t, err)

	root := c.Get("kamel-resolver")
	require.NotNil(t, root)
	assert.Equal(t, "debug", root["log-level"])
	assert.Equal(t, []interface{}{"https://nexus.example.com@id=nexus@mirrorOf=*"}, root["mirrors"])

	configmap := c.Get("kamel-resolver.configmap")
	require.NotNil(t, configmap)
	assert.Equal(t, "builder", configmap["name"])
	assert.Equal(t, []interface{}{"team=build"}, configmap["labels"])

	assert.IsType(t, map[string]interface{}{}, c.Values()["kamel-resolver"])
	assert.Nil(t, c.Get("kamel-resolver.settings"))
	assert.Nil(t, c.Get("kamel-resolver.log-level"))
}

func TestLoadMissingConfig(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Empty(t, c.Values())
}

func TestLoadInvalidConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("kamel-resolver: [unbalanced"), 0o600))

	_, err := LoadConfig(file)
	assert.Error(t, err)
}

func TestLoadDefaultFromEnvVar(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(resolverConfig), 0o600))
	t.Setenv(EnvConfigLocation, file)

	c, err := LoadDefault()
	require.NoError(t, err)
	assert.NotNil(t, c.Get("kamel-resolver.configmap"))
}
