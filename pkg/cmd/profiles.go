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

	"github.com/scylladb/go-set/strset"
	"github.com/spf13/cobra"

	"github.com/apache/camel-k-resolver/pkg/util/indentedwriter"
)

func newCmdProfiles(rootCmdOptions *RootCmdOptions) (*cobra.Command, *profilesCmdOptions) {
	options := profilesCmdOptions{
		RootCmdOptions: rootCmdOptions,
	}

	cmd := cobra.Command{
		Use:               "profiles",
		Short:             "Display the active Maven profiles",
		Long:              `Display the settings profiles active for the build, in declaration order.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: decode(&options, rootCmdOptions.Flags),
		PreRunE:           rootCmdOptions.preRun,
		RunE:              options.run,
	}

	cmd.Flags().BoolP("all", "a", false, "Display all the profiles, active or not")

	return &cmd, &options
}

type profilesCmdOptions struct {
	*RootCmdOptions `json:"-"`
	All             bool `mapstructure:"all"`
}

type profileInfo struct {
	ID     string `json:"id"`
	Active bool   `json:"active"`
}

func (o *profilesCmdOptions) run(cmd *cobra.Command, _ []string) error {
	e, err := o.Engine()
	if err != nil {
		return err
	}
	settings, err := e.Settings()
	if err != nil {
		return err
	}

	active := strset.New()
	for _, p := range e.ActiveProfiles(settings) {
		active.Add(p.ID)
	}

	profiles := make([]profileInfo, 0, len(settings.Profiles))
	for _, p := range settings.Profiles {
		if o.All || active.Has(p.ID) {
			profiles = append(profiles, profileInfo{ID: p.ID, Active: active.Has(p.ID)})
		}
	}

	if o.OutputFormat != "" {
		return printValue(cmd, o.OutputFormat, map[string]interface{}{"profiles": profiles})
	}

	out, err := indentedwriter.IndentedString(func(w *indentedwriter.Writer) {
		for _, p := range profiles {
			if o.All {
				w.Field(0, p.ID, activeOrNot(p.Active))
			} else {
				w.Writef(0, "%s\n", p.ID)
			}
		}
	})
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func activeOrNot(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}
