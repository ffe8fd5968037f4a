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

package test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apache/camel-k-resolver/pkg/util/maven"
)

// WriteFile writes the given content, creating the missing directories.
func WriteFile(t *testing.T, path string, content string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// RepositoryIDs --.
func RepositoryIDs(repositories []maven.RemoteRepository) []string {
	res := make([]string, 0, len(repositories))
	for _, r := range repositories {
		res = append(res, r.ID)
	}
	return res
}

// HasRepository --.
func HasRepository(t *testing.T, repositories []maven.RemoteRepository, id string, url string) {
	t.Helper()

	assert.Condition(t, func() bool {
		for _, r := range repositories {
			if r.ID == id && r.URL == url {
				return true
			}
		}
		return false
	}, "repository %s (%s) not found", id, url)
}
