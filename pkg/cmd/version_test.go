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

	"github.com/apache/camel-k-resolver/pkg/resolver"
	"github.com/apache/camel-k-resolver/pkg/util/defaults"
	"github.com/apache/camel-k-resolver/pkg/util/test"
)

const cmdVersion = "version"

func initializeVersionCmdOptions(t *testing.T) (*versionCmdOptions, *cobra.Command, *RootCmdOptions) {
	t.Helper()

	options, rootCmd := resolverTestPreAddCommandInit()
	versionCmd, versionOptions := newCmdVersion(options)
	rootCmd.AddCommand(versionCmd)
	resolverTestPostAddCommandInit(t, rootCmd, options.Flags)

	return versionOptions, rootCmd, options
}

func TestVersion(t *testing.T) {
	_, rootCmd, _ := initializeVersionCmdOptions(t)
	output, err := test.ExecuteCommand(rootCmd, cmdVersion)

	require.NoError(t, err)
	assert.Equal(t, "Camel K Resolver "+defaults.Version+"\nMaven "+resolver.MavenVersion()+"\n", output)
}

func TestVersionVerbose(t *testing.T) {
	versionOptions, rootCmd, _ := initializeVersionCmdOptions(t)
	output, err := test.ExecuteCommand(rootCmd, cmdVersion, "-v")

	require.NoError(t, err)
	assert.True(t, versionOptions.Verbose)
	assert.Contains(t, output, "Git Commit: "+defaults.GitCommit+"\n")
}

func TestVersionVariant(t *testing.T) {
	VersionVariant = "Nightly"
	defer func() {
		VersionVariant = ""
	}()

	_, rootCmd, _ := initializeVersionCmdOptions(t)
	output, err := test.ExecuteCommand(rootCmd, cmdVersion)

	require.NoError(t, err)
	assert.Contains(t, output, "Camel K Resolver Nightly "+defaults.Version+"\n")
}
