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
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apache/camel-k-resolver/pkg/resolver"
	"github.com/apache/camel-k-resolver/pkg/util/indentedwriter"
	"github.com/apache/camel-k-resolver/pkg/util/maven"
)

const redacted = "******"

func newCmdRepositories(rootCmdOptions *RootCmdOptions) (*cobra.Command, *repositoriesCmdOptions) {
	options := repositoriesCmdOptions{
		RootCmdOptions: rootCmdOptions,
	}

	cmd := cobra.Command{
		Use:               "repositories",
		Aliases:           []string{"repos"},
		Short:             "Display the remote repositories",
		Long:              `Display the remote repositories of the build, as reached through mirrors and proxies.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: decode(&options, rootCmdOptions.Flags),
		PreRunE:           rootCmdOptions.preRun,
		RunE:              options.run,
	}

	cmd.Flags().Bool("plugins", false, "Display the plugin repositories")
	cmd.Flags().Bool("declared", false, "Display the repositories as declared, before mirrors and proxies apply")

	return &cmd, &options
}

type repositoriesCmdOptions struct {
	*RootCmdOptions `json:"-"`
	Plugins         bool `mapstructure:"plugins"`
	Declared        bool `mapstructure:"declared"`
}

func (o *repositoriesCmdOptions) run(cmd *cobra.Command, _ []string) error {
	e, err := o.Engine()
	if err != nil {
		return err
	}
	settings, err := e.Settings()
	if err != nil {
		return err
	}

	repositories := o.repositories(e, settings)

	if o.OutputFormat != "" {
		return printValue(cmd, o.OutputFormat, map[string]interface{}{"repositories": redact(repositories)})
	}

	out, err := indentedwriter.IndentedString(func(w *indentedwriter.Writer) {
		describeRepositories(w, repositories)
	})
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func (o *repositoriesCmdOptions) repositories(e *resolver.Engine, settings maven.Settings) []maven.RemoteRepository {
	switch {
	case o.Declared && o.Plugins:
		return e.DeclaredPluginRepositories(settings)
	case o.Declared:
		return e.DeclaredRepositories(settings)
	case o.Plugins:
		return e.PluginRepositoriesWith(settings, e.NewSessionFor(settings))
	default:
		return e.RemoteRepositoriesFor(settings)
	}
}

func describeRepositories(w *indentedwriter.Writer, repositories []maven.RemoteRepository) {
	for i, r := range repositories {
		if i > 0 {
			w.Writef(0, "\n")
		}
		w.Writef(0, "%s\n", r.ID)
		w.Field(1, "URL", r.URL)
		w.Field(1, "Layout", r.Layout)
		w.Field(1, "Releases", describePolicy(r.Releases))
		w.Field(1, "Snapshots", describePolicy(r.Snapshots))
		if r.Blocked {
			w.Field(1, "Blocked", r.Blocked)
		}
		if len(r.MirroredRepositories) > 0 {
			mirrored := make([]string, 0, len(r.MirroredRepositories))
			for _, m := range r.MirroredRepositories {
				mirrored = append(mirrored, m.ID)
			}
			w.Field(1, "Mirror of", strings.Join(mirrored, ", "))
		}
		if r.Proxy != nil {
			w.Field(1, "Proxy", fmt.Sprintf("%s://%s:%d", r.Proxy.Protocol, r.Proxy.Host, r.Proxy.Port))
		}
		if r.Authentication != nil {
			w.Field(1, "Username", r.Authentication.Username)
		}
	}
}

func describePolicy(p maven.Policy) string {
	if !p.Enabled {
		return "disabled"
	}
	return fmt.Sprintf("update %s, checksum %s", p.UpdatePolicy, p.ChecksumPolicy)
}

// redact hides the secrets of the given repositories, the argument is left untouched.
func redact(repositories []maven.RemoteRepository) []maven.RemoteRepository {
	res := make([]maven.RemoteRepository, 0, len(repositories))
	for _, r := range repositories {
		r.Authentication = redactAuthentication(r.Authentication)
		if r.Proxy != nil {
			proxy := *r.Proxy
			proxy.Authentication = redactAuthentication(proxy.Authentication)
			r.Proxy = &proxy
		}
		res = append(res, r)
	}
	return res
}

func redactAuthentication(auth *maven.Authentication) *maven.Authentication {
	if auth == nil {
		return nil
	}
	a := *auth
	if a.Password != "" {
		a.Password = redacted
	}
	if a.Passphrase != "" {
		a.Passphrase = redacted
	}
	return &a
}
