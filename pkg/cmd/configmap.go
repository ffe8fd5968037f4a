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
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
	"sigs.k8s.io/yaml"

	"github.com/apache/camel-k-resolver/pkg/resolver"
	"github.com/apache/camel-k-resolver/pkg/util"
	"github.com/apache/camel-k-resolver/pkg/util/defaults"
	"github.com/apache/camel-k-resolver/pkg/util/label"
	"github.com/apache/camel-k-resolver/pkg/util/log"
	"github.com/apache/camel-k-resolver/pkg/util/maven"
	"github.com/apache/camel-k-resolver/pkg/util/sync"
)

const documentSeparator = "---\n"

func newCmdConfigMap(rootCmdOptions *RootCmdOptions) (*cobra.Command, *configMapCmdOptions) {
	options := configMapCmdOptions{
		RootCmdOptions: rootCmdOptions,
	}

	cmd := cobra.Command{
		Use:               "configmap",
		Short:             "Generate a ConfigMap holding the effective Maven settings",
		Long:              `Generate the manifest of a ConfigMap holding the effective Maven settings, to be used by in-cluster builds.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: decode(&options, rootCmdOptions.Flags),
		PreRunE:           rootCmdOptions.preRun,
		RunE:              options.run,
	}

	cmd.Flags().String("name", defaults.ConfigMapName(), "The base name of the ConfigMap")
	cmd.Flags().StringP("namespace", "n", defaults.Namespace(), "The namespace of the ConfigMap")
	cmd.Flags().StringArrayP("label", "l", nil, "Add a label to the ConfigMap, e.g. team=build")
	cmd.Flags().BoolP("watch", "w", false, "Generate the ConfigMap again each time a settings file changes")
	cmd.Flags().Duration("watch-interval", time.Second, "How often the settings files are checked for changes")

	return &cmd, &options
}

type configMapCmdOptions struct {
	*RootCmdOptions `json:"-"`
	Name            string        `mapstructure:"name"`
	Namespace       string        `mapstructure:"namespace"`
	Labels          []string      `mapstructure:"labels"`
	Watch           bool          `mapstructure:"watch"`
	WatchInterval   time.Duration `mapstructure:"watch-interval"`
}

func (o *configMapCmdOptions) validate() error {
	if o.Name == "" {
		return errors.New("the name of the ConfigMap must not be empty")
	}
	_, err := label.Parse(o.Labels...)
	return err
}

func (o *configMapCmdOptions) run(cmd *cobra.Command, _ []string) error {
	if err := o.validate(); err != nil {
		return err
	}

	e, err := o.Engine()
	if err != nil {
		return err
	}
	digest, err := o.print(cmd, e, "")
	if err != nil {
		return err
	}
	if !o.Watch {
		return nil
	}

	// Set maxprocs to the container CPU quota, the watch may run as a sidecar
	if _, err := maxprocs.Set(maxprocs.Logger(func(f string, a ...interface{}) { log.Info(fmt.Sprintf(f, a...)) })); err != nil {
		log.Error(err, "failed to set GOMAXPROCS from cgroups")
	}

	changes, err := sync.Files(o.Context, o.WatchInterval, e.SettingsFiles()...)
	if err != nil {
		return errors.Wrap(err, "cannot watch the settings files")
	}
	for {
		select {
		case <-o.Context.Done():
			return nil
		case path := <-changes:
			log.Infof("Settings file %s changed", path)
			e.Reload()
			// the previous ConfigMap remains in use until the settings are fixed
			if d, err := o.print(cmd, e, digest); err != nil {
				log.Error(err, "Cannot generate the ConfigMap")
			} else {
				digest = d
			}
		}
	}
}

// print writes the ConfigMap unless its digest is the given one, and returns the digest.
func (o *configMapCmdOptions) print(cmd *cobra.Command, e *resolver.Engine, previous string) (string, error) {
	settings, err := e.Settings()
	if err != nil {
		return "", err
	}
	labels, err := label.Parse(o.Labels...)
	if err != nil {
		return "", err
	}

	cm, err := maven.SettingsConfigMap(o.Namespace, o.Name, settings, labels)
	if err != nil {
		return "", errors.Wrap(err, "cannot generate the ConfigMap")
	}
	digest := cm.Annotations[maven.SettingsConfigMapDigestAnnotation]
	if digest == previous {
		log.Debugf("Settings unchanged, digest %s", digest)
		return digest, nil
	}

	var data []byte
	switch o.OutputFormat {
	case "", outputYAML:
		data, err = yaml.Marshal(cm)
		if previous != "" {
			data = append([]byte(documentSeparator), data...)
		}
	case outputJSON:
		data, err = util.ToJSON(cm)
		data = append(data, '\n')
	default:
		return "", errors.Errorf("invalid output format option '%s', should be one of: %s|%s", o.OutputFormat, outputYAML, outputJSON)
	}
	if err != nil {
		return "", err
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return digest, nil
}
