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

package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apache/camel-k-resolver/pkg/util/test"
)

const cmdProfiles = "profiles"

const profilesSettings = `
  <profiles>
    <profile>
      <id>default</id>
      <activation>
        <activeByDefault>true</activeByDefault>
      </activation>
    </profile>
    <profile>
      <id>ci</id>
      <activation>
        <property>
          <name>ci</name>
        </property>
      </activation>
    </profile>
    <profile>
      <id>release</id>
    </profile>
  </profiles>
  <activeProfiles>
    <activeProfile>release</activeProfile>
  </activeProfiles>`

func initializeProfilesCmdOptions(t *testing.T) (*profilesCmdOptions, *cobra.Command, *RootCmdOptions) {
	t.Helper()

	options, rootCmd := resolverTestPreAddCommandInit()
	profilesCmd, profilesOptions := newCmdProfiles(options)
	rootCmd.AddCommand(profilesCmd)
	resolverTestPostAddCommandInit(t, rootCmd, options.Flags)

	return profilesOptions, rootCmd, options
}

func TestProfiles(t *testing.T) {
	testcases := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "active by default",
			args:     []string{cmdProfiles, "--maven-args", "-P !release"},
			expected: "default\n",
		},
		{
			name:     "active profiles of the settings",
			args:     []string{cmdProfiles},
			expected: "release\n",
		},
		{
			name:     "property activation",
			args:     []string{cmdProfiles, "--maven-args", "-Dci"},
			expected: "ci\nrelease\n",
		},
		{
			name:     "all",
			args:     []string{cmdProfiles, "--all"},
			expected: "default:  inactive\nci:       inactive\nrelease:  active\n",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			isolateEnvironment(t, profilesSettings)

			_, rootCmd, _ := initializeProfilesCmdOptions(t)
			output, err := test.ExecuteCommand(rootCmd, tc.args...)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, output)
		})
	}
}

func TestProfilesAllFromEnvVar(t *testing.T) {
	isolateEnvironment(t, profilesSettings)
	t.Setenv("KAMEL_RESOLVER_PROFILES_ALL", "true")

	profilesOptions, rootCmd, _ := initializeProfilesCmdOptions(t)
	_, err := test.ExecuteCommand(rootCmd, cmdProfiles)

	require.NoError(t, err)
	assert.True(t, profilesOptions.All)
}

func TestProfilesYAML(t *testing.T) {
	isolateEnvironment(t, profilesSettings)

	_, rootCmd, _ := initializeProfilesCmdOptions(t)
	output, err := test.ExecuteCommand(rootCmd, cmdProfiles, "-o", "yaml")

	require.NoError(t, err)
	assert.Equal(t, `profiles:
- id: release
  active: true
`, output)
}
