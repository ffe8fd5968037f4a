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
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/apache/camel-k-resolver/pkg/resolver"
	"github.com/apache/camel-k-resolver/pkg/util/config"
	"github.com/apache/camel-k-resolver/pkg/util/log"
	"github.com/apache/camel-k-resolver/pkg/util/maven"
)

const resolverCommandLongDescription = `kamel-resolver computes the Maven configuration a build runs with:
the effective settings, the active profiles, the remote repositories
with their mirrors, proxies and credentials, and the resolution session.
`

// RootCmdOptions --.
// nolint: containedctx
type RootCmdOptions struct {
	Context context.Context `mapstructure:"-"`
	Flags   *viper.Viper    `mapstructure:"-"`

	MavenArgs    string   `mapstructure:"maven-args"`
	ProjectDir   string   `mapstructure:"project-dir"`
	LogLevel     string   `mapstructure:"log-level"`
	OutputFormat string   `mapstructure:"output"`
	Repositories []string `mapstructure:"extra-repositories"`
	Mirrors      []string `mapstructure:"mirrors"`
	ProxyFromEnv bool     `mapstructure:"proxy-from-env"`

	engine *resolver.Engine
}

// NewResolverCommand --.
func NewResolverCommand(ctx context.Context) (*cobra.Command, error) {
	v := viper.New()

	options := RootCmdOptions{
		Context: ctx,
		Flags:   v,
	}

	cmd := resolverPreAddCommandInit(&options)
	addResolverSubcommands(cmd, &options)

	if err := resolverPostAddCommandInit(cmd, v); err != nil {
		return nil, err
	}

	return cmd, nil
}

func resolverPreAddCommandInit(options *RootCmdOptions) *cobra.Command {
	cmd := cobra.Command{
		Use:          "kamel-resolver",
		Short:        "Resolve the Maven configuration of a build",
		Long:         resolverCommandLongDescription,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("maven-args", "", "The Maven command line, defaults to "+resolver.EnvMavenArgs)
	cmd.PersistentFlags().String("project-dir", "", "The base directory of the root project, defaults to "+resolver.EnvProjectBaseDir)
	cmd.PersistentFlags().String("log-level", "info", "The log level: error, info, debug or a verbosity")
	cmd.PersistentFlags().StringP("output", "o", "", "Output format. One of: xml|yaml|json|properties")
	cmd.PersistentFlags().StringArray("extra-repository", nil, "Add a repository after the ones of the active profiles, e.g. https://repo.example.com@id=example@snapshots")
	cmd.PersistentFlags().StringArray("mirror", nil, "Add a mirror, e.g. https://nexus.example.com@id=nexus@mirrorOf=*")
	cmd.PersistentFlags().Bool("proxy-from-env", false, "Add proxies out of the HTTP_PROXY, HTTPS_PROXY and NO_PROXY environment variables")

	return &cmd
}

func addResolverSubcommands(cmd *cobra.Command, options *RootCmdOptions) {
	cmd.AddCommand(cmdOnly(newCmdSettings(options)))
	cmd.AddCommand(cmdOnly(newCmdProfiles(options)))
	cmd.AddCommand(cmdOnly(newCmdRepositories(options)))
	cmd.AddCommand(cmdOnly(newCmdSession(options)))
	cmd.AddCommand(cmdOnly(newCmdEncrypt(options)))
	cmd.AddCommand(cmdOnly(newCmdConfigMap(options)))
	cmd.AddCommand(cmdOnly(newCmdVersion(options)))
}

func resolverPostAddCommandInit(cmd *cobra.Command, v *viper.Viper) error {
	if err := bindPFlags(cmd, v); err != nil {
		return err
	}
	if err := bindPFlagsHierarchy(cmd, v); err != nil {
		return err
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		return errors.Wrap(err, "cannot load the resolver configuration")
	}
	if err := v.MergeConfigMap(cfg.Values()); err != nil {
		return err
	}

	// KAMEL_RESOLVER_SETTINGS_OUTPUT for kamel-resolver.settings.output and so on
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return nil
}

func (command *RootCmdOptions) preRun(cmd *cobra.Command, _ []string) error {
	root := cmd.Root()
	if err := decodeKey(command, pathToRoot(root), command.Flags.AllSettings()); err != nil {
		return err
	}

	if _, err := log.Configure(command.LogLevel, false); err != nil {
		return err
	}

	return nil
}

// Engine returns the engine of the command, built on first use.
func (command *RootCmdOptions) Engine() (*resolver.Engine, error) {
	if command.engine != nil {
		return command.engine, nil
	}

	env, err := resolver.LoadEnvironment(command.Flags)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load the environment")
	}
	if command.MavenArgs != "" {
		env.MavenArgs = command.MavenArgs
	}
	if command.ProjectDir != "" {
		env.ProjectBaseDir = command.ProjectDir
	}

	opts := []resolver.Option{
		resolver.WithExtraRepositories(maven.ParseRepositories(command.Repositories)...),
	}
	if len(command.Mirrors) > 0 {
		opts = append(opts, resolver.WithSettingsOptions(maven.WithMirrors(maven.ParseMirrors(command.Mirrors)...)))
	}
	if command.ProxyFromEnv {
		opts = append(opts, resolver.WithSettingsOptions(maven.ProxyFromEnvironment))
	}

	e, err := resolver.NewEngine(env, opts...)
	if err != nil {
		return nil, err
	}

	command.engine = e
	return e, nil
}

func cmdOnly(cmd *cobra.Command, options interface{}) *cobra.Command {
	return cmd
}
