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
	"os"
	"runtime"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/apache/camel-k-resolver/pkg/util/maven/activation"
	"github.com/apache/camel-k-resolver/pkg/util/property"
)

const (
	// EnvMavenArgs holds the command line of the running Maven build.
	EnvMavenArgs = "MAVEN_CMD_LINE_ARGS"
	// EnvM2Home --.
	EnvM2Home = "M2_HOME"
	// EnvProjectBaseDir is the base directory of the root project.
	EnvProjectBaseDir = "MAVEN_PROJECTBASEDIR"
	// EnvJavaHome --.
	EnvJavaHome = "JAVA_HOME"
	// EnvSystemProperties points to a .properties file of additional system properties.
	EnvSystemProperties = "KAMEL_RESOLVER_SYSTEM_PROPERTIES"

	// PropertyMavenHome takes precedence over M2_HOME.
	PropertyMavenHome = "maven.home"
	// PropertyBaseDir is the base directory of the current module.
	PropertyBaseDir = "basedir"
	// PropertyLocalRepository overrides the local repository of the settings.
	PropertyLocalRepository = "maven.repo.local"
)

// Environment is the ambient configuration the engine works with.
type Environment struct {
	MavenArgs      string
	M2Home         string
	ProjectBaseDir string
	JavaHome       string
	UserHome       string
	// SystemProperties are the properties a JVM would expose (user.home, os.name, java.version, ...),
	// extended with the ones of the KAMEL_RESOLVER_SYSTEM_PROPERTIES file.
	SystemProperties map[string]string
	// Variables are the process environment variables, referenced as ${env.NAME} in settings.
	Variables map[string]string
}

// LoadEnvironment reads the environment through the given viper instance, environment
// variables can then be overridden by flags bound to the same keys.
func LoadEnvironment(v *viper.Viper) (Environment, error) {
	for _, key := range []string{EnvMavenArgs, EnvM2Home, EnvProjectBaseDir, EnvJavaHome, EnvSystemProperties} {
		if err := v.BindEnv(key); err != nil {
			return Environment{}, errors.Wrapf(err, "cannot bind %s", key)
		}
	}

	home, err := homedir.Dir()
	if err != nil {
		return Environment{}, errors.Wrap(err, "cannot determine the user home")
	}

	env := Environment{
		MavenArgs:      v.GetString(EnvMavenArgs),
		M2Home:         v.GetString(EnvM2Home),
		ProjectBaseDir: v.GetString(EnvProjectBaseDir),
		JavaHome:       v.GetString(EnvJavaHome),
		UserHome:       home,
		Variables:      environmentVariables(),
	}

	var extra map[string]string
	if location := v.GetString(EnvSystemProperties); location != "" {
		if location, err = homedir.Expand(location); err != nil {
			return Environment{}, err
		}
		if extra, err = property.ReadPropertyFile(location); err != nil {
			return Environment{}, err
		}
	}

	env.SystemProperties = DefaultSystemProperties(env, activation.CurrentPlatform(), extra)

	return env, nil
}

// DefaultSystemProperties computes the system properties of the environment, the
// given extra properties taking precedence.
func DefaultSystemProperties(env Environment, platform activation.Platform, extra map[string]string) map[string]string {
	props := map[string]string{
		"user.home":      env.UserHome,
		"os.name":        platform.Name,
		"os.arch":        platform.Arch,
		"os.version":     platform.Version,
		"file.separator": string(os.PathSeparator),
		"path.separator": string(os.PathListSeparator),
		"line.separator": lineSeparator(),
	}
	if wd, err := os.Getwd(); err == nil {
		props["user.dir"] = wd
	}
	if env.JavaHome != "" {
		props["java.home"] = env.JavaHome
		if v := activation.JavaVersion(extra, env.JavaHome); v != "" {
			props["java.version"] = v
		}
	}
	for k, v := range extra {
		props[k] = v
	}
	return props
}

func lineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

func environmentVariables() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if eq := strings.Index(kv, "="); eq > 0 {
			vars[kv[:eq]] = kv[eq+1:]
		}
	}
	return vars
}
