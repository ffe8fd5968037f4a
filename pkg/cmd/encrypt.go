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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/apache/camel-k-resolver/pkg/util/maven/sec"
)

func newCmdEncrypt(rootCmdOptions *RootCmdOptions) (*cobra.Command, *encryptCmdOptions) {
	options := encryptCmdOptions{
		RootCmdOptions: rootCmdOptions,
	}

	cmd := cobra.Command{
		Use:   "encrypt [password]",
		Short: "Encrypt a password for the Maven settings",
		Long: `Encrypt a server password with the master password of settings-security.xml,
or encrypt the master password itself with --master.

When no password is given it is prompted for, or read from the standard input when
that is not a terminal.`,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: decode(&options, rootCmdOptions.Flags),
		PreRunE:           rootCmdOptions.preRun,
		RunE:              options.run,
	}

	cmd.Flags().Bool("master", false, "Encrypt a master password, to be stored in settings-security.xml")

	return &cmd, &options
}

type encryptCmdOptions struct {
	*RootCmdOptions `json:"-"`
	Master          bool `mapstructure:"master"`
}

func (o *encryptCmdOptions) run(cmd *cobra.Command, args []string) error {
	password, err := readPassword(cmd, args)
	if err != nil {
		return err
	}

	if o.Master {
		encrypted, err := sec.EncryptMaster(sec.Cipher{}, password)
		if err != nil {
			return errors.Wrap(err, "cannot encrypt the master password")
		}
		fmt.Fprintln(cmd.OutOrStdout(), encrypted)
		return nil
	}

	e, err := o.Engine()
	if err != nil {
		return err
	}
	location, err := sec.Location(e.SystemProperties())
	if err != nil {
		return err
	}
	encrypted, err := sec.NewDispatcher(location).EncryptPassword(password)
	if err != nil {
		return errors.Wrap(err, "cannot encrypt the password")
	}
	fmt.Fprintln(cmd.OutOrStdout(), encrypted)
	return nil
}

func readPassword(cmd *cobra.Command, args []string) (string, error) {
	var password string
	if len(args) == 1 {
		password = args[0]
	} else if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", errors.Wrap(err, "cannot read the password")
		}
		password = string(b)
	} else {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", errors.Wrap(err, "cannot read the password")
		}
		password = strings.TrimRight(line, "\r\n")
	}

	if password == "" {
		return "", errors.New("the password must not be empty")
	}
	return password, nil
}
