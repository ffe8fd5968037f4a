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

	"github.com/spf13/cobra"

	"github.com/apache/camel-k-resolver/pkg/resolver"
	"github.com/apache/camel-k-resolver/pkg/util/defaults"
)

// VersionVariant may be overridden at build time.
var VersionVariant = ""

func newCmdVersion(rootCmdOptions *RootCmdOptions) (*cobra.Command, *versionCmdOptions) {
	options := versionCmdOptions{
		RootCmdOptions: rootCmdOptions,
	}

	cmd := cobra.Command{
		Use:               "version",
		Short:             "Display the resolver version",
		Long:              `Display the resolver version and the Maven version it reports in the user agent.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: decode(&options, rootCmdOptions.Flags),
		PreRunE:           rootCmdOptions.preRun,
		RunE:              options.run,
	}

	cmd.Flags().BoolP("verbose", "v", false, "Display all available extra information")

	return &cmd, &options
}

type versionCmdOptions struct {
	*RootCmdOptions `json:"-"`
	Verbose         bool `mapstructure:"verbose"`
}

func (o *versionCmdOptions) run(cmd *cobra.Command, _ []string) error {
	if VersionVariant != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Camel K Resolver %s %s\n", VersionVariant, defaults.Version)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Camel K Resolver %s\n", defaults.Version)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Maven %s\n", resolver.MavenVersion())
	if o.Verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "Git Commit: %s\n", defaults.GitCommit)
	}
	return nil
}
