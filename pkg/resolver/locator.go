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

package resolver

import (
	"path/filepath"

	"github.com/apache/camel-k-resolver/pkg/util"
	"github.com/apache/camel-k-resolver/pkg/util/maven/cli"
)

const (
	dotM2       = ".m2"
	settingsXML = "settings.xml"
)

// Locator finds the user and global settings files.
type Locator struct {
	env              Environment
	args             *cli.Args
	systemProperties map[string]string
}

// NewLocator --.
func NewLocator(env Environment, args *cli.Args, systemProperties map[string]string) Locator {
	if args == nil {
		args = &cli.Args{}
	}
	return Locator{
		env:              env,
		args:             args,
		systemProperties: systemProperties,
	}
}

// UserSettings returns the settings given with -s, or ~/.m2/settings.xml. The boolean
// is false when the file does not exist.
func (l Locator) UserSettings() (string, bool) {
	if l.args.UserSettings != "" {
		return l.resolve(l.args.UserSettings)
	}
	return existing(filepath.Join(l.env.UserHome, dotM2, settingsXML))
}

// GlobalSettings returns the settings given with -gs, or the conf/settings.xml file of
// the Maven installation (maven.home property, else M2_HOME). The boolean is false when
// the file does not exist, or when no Maven installation is known.
func (l Locator) GlobalSettings() (string, bool) {
	if l.args.GlobalSettings != "" {
		return l.resolve(l.args.GlobalSettings)
	}
	home := l.systemProperties[PropertyMavenHome]
	if home == "" {
		home = l.env.M2Home
	}
	if home == "" {
		// never relative to the working directory
		return "", false
	}
	return existing(filepath.Join(home, "conf", settingsXML))
}

// resolve looks for the given path as is, then relative to the root project directory,
// the current module directory and the user home.
func (l Locator) resolve(path string) (string, bool) {
	if p, ok := existing(path); ok {
		return p, true
	}
	if filepath.IsAbs(path) {
		return "", false
	}
	for _, base := range []string{l.env.ProjectBaseDir, l.systemProperties[PropertyBaseDir], l.env.UserHome} {
		if base == "" {
			continue
		}
		if p, ok := existing(util.ResolvePath(base, path)); ok {
			return p, true
		}
	}
	return "", false
}

func existing(path string) (string, bool) {
	if ok, err := util.FileExists(path); err == nil && ok {
		return path, true
	}
	return "", false
}
