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

	"github.com/apache/camel-k-resolver/pkg/util/property"
)

const sessionPrefix = "session."

func newCmdSession(rootCmdOptions *RootCmdOptions) (*cobra.Command, *sessionCmdOptions) {
	options := sessionCmdOptions{
		RootCmdOptions: rootCmdOptions,
	}

	cmd := cobra.Command{
		Use:               "session",
		Short:             "Display the repository session",
		Long:              `Display the local repository, the policies and the configuration properties of the repository session.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: decode(&options, rootCmdOptions.Flags),
		PreRunE:           rootCmdOptions.preRun,
		RunE:              options.run,
	}

	return &cmd, &options
}

type sessionCmdOptions struct {
	*RootCmdOptions `json:"-"`
}

func (o *sessionCmdOptions) run(cmd *cobra.Command, _ []string) error {
	e, err := o.Engine()
	if err != nil {
		return err
	}
	session, err := e.NewSession()
	if err != nil {
		return err
	}

	if o.OutputFormat != "" && o.OutputFormat != outputProperties {
		return printValue(cmd, o.OutputFormat, session)
	}

	props, err := session.StringProperties()
	if err != nil {
		return err
	}
	props[sessionPrefix+"localRepository"] = session.LocalRepository
	props[sessionPrefix+"offline"] = fmt.Sprintf("%t", session.Offline)
	if session.UpdatePolicy != "" {
		props[sessionPrefix+"updatePolicy"] = string(session.UpdatePolicy)
	}
	if session.ChecksumPolicy != "" {
		props[sessionPrefix+"checksumPolicy"] = string(session.ChecksumPolicy)
	}

	out, err := property.EncodePropertyFile(props)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
