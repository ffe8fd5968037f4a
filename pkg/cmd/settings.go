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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/apache/camel-k-resolver/pkg/util/indentedwriter"
)

func newCmdSettings(rootCmdOptions *RootCmdOptions) (*cobra.Command, *settingsCmdOptions) {
	options := settingsCmdOptions{
		RootCmdOptions: rootCmdOptions,
	}

	cmd := cobra.Command{
		Use:               "settings",
		Short:             "Display the effective Maven settings",
		Long:              `Display the Maven settings obtained by merging the user settings over the global ones.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: decode(&options, rootCmdOptions.Flags),
		PreRunE:           rootCmdOptions.preRun,
		RunE:              options.run,
	}

	cmd.Flags().Bool("locations", false, "Display the location of the settings files instead")

	return &cmd, &options
}

type settingsCmdOptions struct {
	*RootCmdOptions `json:"-"`
	Locations       bool `mapstructure:"locations"`
}

func (o *settingsCmdOptions) run(cmd *cobra.Command, _ []string) error {
	e, err := o.Engine()
	if err != nil {
		return err
	}

	if o.Locations {
		out, err := indentedwriter.IndentedString(func(w *indentedwriter.Writer) {
			w.Field(0, "User settings", orNone(e.UserSettings()))
			w.Field(0, "Global settings", orNone(e.GlobalSettings()))
		})
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	settings, err := e.Settings()
	if err != nil {
		return err
	}

	switch o.OutputFormat {
	case "", outputXML:
		data, err := settings.MarshalBytes()
		if err != nil {
			return errors.Wrap(err, "cannot render the settings")
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	default:
		return printValue(cmd, o.OutputFormat, settings)
	}
}

func orNone(value string) string {
	if value == "" {
		return "<none>"
	}
	return value
}
