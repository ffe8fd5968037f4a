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

package sync

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "settings.xml")
	other := filepath.Join(dir, "settings-security.xml")
	require.NoError(t, os.WriteFile(watched, []byte("data"), 0o600))
	require.NoError(t, os.WriteFile(other, []byte("data"), 0o600))

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(100*time.Second))
	defer cancel()
	changes, err := Files(ctx, 50*time.Millisecond, watched)
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(other, []byte("other"), 0o600))

	expectedNumChanges := 3
	for i := 0; i < expectedNumChanges; i++ {
		if err := os.WriteFile(watched, []byte("data-"+strconv.Itoa(i)), 0o600); err != nil {
			t.Error(err)
		}
		time.Sleep(200 * time.Millisecond)
	}

	numChanges := 0
watch:
	for {
		select {
		case <-ctx.Done():
			return
		case path := <-changes:
			assert.Equal(t, watched, path)
			numChanges++
			if numChanges == expectedNumChanges {
				break watch
			}
		}
	}

	assert.Equal(t, expectedNumChanges, numChanges)
}

func TestFilesMissing(t *testing.T) {
	_, err := Files(context.Background(), 50*time.Millisecond, filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}

func TestFilesStopsWithContext(t *testing.T) {
	watched := filepath.Join(t.TempDir(), "settings.xml")
	require.NoError(t, os.WriteFile(watched, []byte("data"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	changes, err := Files(ctx, 50*time.Millisecond, watched)
	require.NoError(t, err)
	cancel()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(watched, []byte("changed"), 0o600))

	select {
	case <-changes:
		t.Fatal("no change expected once the context is done")
	case <-time.After(300 * time.Millisecond):
	}
}
