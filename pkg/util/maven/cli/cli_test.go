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

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmpty(t *testing.T) {
	args, err := Parse("   ")
	require.NoError(t, err)

	assert.Empty(t, args.UserSettings)
	assert.Empty(t, args.ActivateProfiles)
	assert.Empty(t, args.SystemProperties)
	assert.True(t, args.Interactive())
}

func TestParseProfiles(t *testing.T) {
	args, err := Parse("-P -P1,+P2 --offline")
	require.NoError(t, err)

	assert.Equal(t, []string{"P2"}, args.ActivateProfiles)
	assert.Equal(t, []string{"P1"}, args.DeactivateProfiles)
	assert.True(t, args.Offline)
}

func TestParseRepeatedProfiles(t *testing.T) {
	args, err := Parse("clean install -Pdev,!slow --activate-profiles=ci -P ' , qa '")
	require.NoError(t, err)

	assert.Equal(t, []string{"dev", "ci", "qa"}, args.ActivateProfiles)
	assert.Equal(t, []string{"slow"}, args.DeactivateProfiles)
}

func TestParseSettingsLocations(t *testing.T) {
	testcases := []struct {
		name   string
		line   string
		user   string
		global string
	}{
		{name: "short", line: "-s my.xml -gs global.xml", user: "my.xml", global: "global.xml"},
		{name: "long", line: "--settings=my.xml --global-settings global.xml", user: "my.xml", global: "global.xml"},
		{name: "attached", line: "-smy.xml", user: "my.xml"},
		{name: "quoted", line: `-s "/path with space/settings.xml" package`, user: "/path with space/settings.xml"},
		{name: "none", line: "-B verify"},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			args, err := Parse(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.user, args.UserSettings)
			assert.Equal(t, tc.global, args.GlobalSettings)
		})
	}
}

func TestParsePolicies(t *testing.T) {
	args, err := Parse("-U -nsu -C -c -B")
	require.NoError(t, err)

	assert.True(t, args.UpdateSnapshots)
	assert.True(t, args.NoSnapshotUpdates)
	assert.True(t, args.StrictChecksums)
	assert.True(t, args.LaxChecksums)
	assert.True(t, args.BatchMode)
	assert.False(t, args.Interactive())
	assert.False(t, args.Offline)
}

func TestParseSystemProperties(t *testing.T) {
	args, err := Parse(`-Denv=ci -D skipTests -Dmessage="hello world" --define a=b=c`)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"env":       "ci",
		"skipTests": "true",
		"message":   "hello world",
		"a":         "b=c",
	}, args.SystemProperties)
}

func TestParseIgnoresUnrelatedOptions(t *testing.T) {
	args, err := Parse("-X -e -T 1C -f sub/pom.xml -pl core,api -am -ntp --unknown-flag -o -h")
	require.NoError(t, err)

	assert.True(t, args.Offline)
	assert.Empty(t, args.UserSettings)
}

func TestParseMalformed(t *testing.T) {
	for _, line := range []string{
		`-s "unterminated`,
		"-P",
		"--settings",
		"-gs",
	} {
		t.Run(line, func(t *testing.T) {
			_, err := Parse(line)
			assert.Error(t, err)
		})
	}
}
