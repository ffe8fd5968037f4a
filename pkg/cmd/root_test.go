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
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apache/camel-k-resolver/pkg/resolver"
	"github.com/apache/camel-k-resolver/pkg/util/config"
	"github.com/apache/camel-k-resolver/pkg/util/test"
)

const settingsTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<settings xmlns="http://maven.apache.org/SETTINGS/1.0.0">
%s
</settings>
`

func resolverTestPreAddCommandInit() (*RootCmdOptions, *cobra.Command) {
	options := RootCmdOptions{
		Context: context.Background(),
		Flags:   viper.New(),
	}
	rootCmd := resolverPreAddCommandInit(&options)
	rootCmd.Run = test.EmptyRun
	return &options, rootCmd
}

func resolverTestPostAddCommandInit(t *testing.T, rootCmd *cobra.Command, v *viper.Viper) {
	t.Helper()

	err := resolverPostAddCommandInit(rootCmd, v)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// isolateEnvironment points the user home to a temporary directory and clears the
// Maven related environment variables. The user settings are written when not empty.
func isolateEnvironment(t *testing.T, userSettings string) string {
	t.Helper()

	home := t.TempDir()
	homedir.DisableCache = true
	t.Cleanup(func() {
		homedir.DisableCache = false
	})

	t.Setenv("HOME", home)
	t.Setenv(resolver.EnvM2Home, filepath.Join(home, "maven"))
	t.Setenv(resolver.EnvMavenArgs, "")
	t.Setenv(resolver.EnvProjectBaseDir, "")
	t.Setenv(resolver.EnvJavaHome, "")
	t.Setenv(resolver.EnvSystemProperties, "")
	t.Setenv(config.EnvConfigLocation, filepath.Join(home, "kamel-resolver-config.yaml"))

	if userSettings != "" {
		test.WriteFile(t, filepath.Join(home, ".m2", "settings.xml"), fmt.Sprintf(settingsTemplate, userSettings))
	}

	return home
}

func TestNewResolverCommand(t *testing.T) {
	cmd, err := NewResolverCommand(context.Background())
	require.NoError(t, err)

	names := make([]string, 0)
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"settings", "profiles", "repositories", "session", "encrypt", "configmap", "version"}, names)
}

func TestRootFlagsFromEnvVar(t *testing.T) {
	isolateEnvironment(t, "")
	t.Setenv("KAMEL_RESOLVER_EXTRA_REPOSITORIES", "https://repo1.example.com@id=repo1,https://repo2.example.com@id=repo2")
	t.Setenv("KAMEL_RESOLVER_MAVEN_ARGS", "-o -Pci")

	options, rootCmd := resolverTestPreAddCommandInit()
	resolverTestPostAddCommandInit(t, rootCmd, options.Flags)

	_, err := test.ExecuteCommand(rootCmd)
	require.NoError(t, err)
	require.NoError(t, options.preRun(rootCmd, nil))

	assert.Equal(t, []string{"https://repo1.example.com@id=repo1", "https://repo2.example.com@id=repo2"}, options.Repositories)
	assert.Equal(t, "-o -Pci", options.MavenArgs)
	assert.Equal(t, "info", options.LogLevel)
}

func TestRootFlagsPrecedenceCommandLineOverEnvVar(t *testing.T) {
	isolateEnvironment(t, "")
	t.Setenv("KAMEL_RESOLVER_LOG_LEVEL", "debug")

	options, rootCmd := resolverTestPreAddCommandInit()
	resolverTestPostAddCommandInit(t, rootCmd, options.Flags)

	_, err := test.ExecuteCommand(rootCmd, "--log-level", "error")
	require.NoError(t, err)
	require.NoError(t, options.preRun(rootCmd, nil))

	assert.Equal(t, "error", options.LogLevel)
}

func TestRootFlagsFromConfigFile(t *testing.T) {
	home := isolateEnvironment(t, "")
	test.WriteFile(t, filepath.Join(home, "kamel-resolver-config.yaml"), `
kamel-resolver:
  log-level: debug
  output: json
  mirrors:
  - https://nexus.example.com@id=nexus@mirrorOf=*
`)
	t.Setenv("KAMEL_RESOLVER_OUTPUT", "yaml")

	options, rootCmd := resolverTestPreAddCommandInit()
	resolverTestPostAddCommandInit(t, rootCmd, options.Flags)

	_, err := test.ExecuteCommand(rootCmd, "--log-level", "error")
	require.NoError(t, err)
	require.NoError(t, options.preRun(rootCmd, nil))

	assert.Equal(t, "error", options.LogLevel)
	assert.Equal(t, "yaml", options.OutputFormat)
	assert.Equal(t, []string{"https://nexus.example.com@id=nexus@mirrorOf=*"}, options.Mirrors)
}

func TestInvalidConfigFile(t *testing.T) {
	home := isolateEnvironment(t, "")
	test.WriteFile(t, filepath.Join(home, "kamel-resolver-config.yaml"), "kamel-resolver: [unbalanced")

	_, err := NewResolverCommand(context.Background())
	assert.Error(t, err)
}

func TestEngineFromFlags(t *testing.T) {
	home := isolateEnvironment(t, "")
	settings := test.WriteFile(t, filepath.Join(home, "custom", "settings.xml"), fmt.Sprintf(settingsTemplate, ""))

	options, rootCmd := resolverTestPreAddCommandInit()
	resolverTestPostAddCommandInit(t, rootCmd, options.Flags)

	_, err := test.ExecuteCommand(rootCmd, "--maven-args", "-s "+settings+" --offline", "--extra-repository", "https://repo.example.com@id=example")
	require.NoError(t, err)
	require.NoError(t, options.preRun(rootCmd, nil))

	e, err := options.Engine()
	require.NoError(t, err)
	assert.Equal(t, settings, e.UserSettings())
	assert.True(t, e.CommandLine().Offline)

	again, err := options.Engine()
	require.NoError(t, err)
	assert.Same(t, e, again)

	repositories, err := e.RemoteRepositories()
	require.NoError(t, err)
	assert.Equal(t, []string{"example", "central"}, test.RepositoryIDs(repositories))
}

func TestInvalidLogLevel(t *testing.T) {
	isolateEnvironment(t, "")

	cmd, err := NewResolverCommand(context.Background())
	require.NoError(t, err)

	_, err = test.ExecuteCommand(cmd, "version", "--log-level", "loud")
	assert.Error(t, err)
}
