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

package maven

import (
	"bytes"
	"encoding/xml"
	"os"

	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/apache/camel-k-resolver/pkg/util"
	"github.com/apache/camel-k-resolver/pkg/util/digest"
	"github.com/apache/camel-k-resolver/pkg/util/label"
)

const (
	settingsNamespace      = "http://maven.apache.org/SETTINGS/1.0.0"
	settingsSchemaLocation = "http://maven.apache.org/SETTINGS/1.0.0 https://maven.apache.org/xsd/settings-1.0.0.xsd"
	xmlSchemaInstance      = "http://www.w3.org/2001/XMLSchema-instance"
)

// MarshalBytes --.
func (s Settings) MarshalBytes() ([]byte, error) {
	return util.EncodeXML(s.canonical())
}

// canonical resets the root element so that decoded settings encode with a single namespace declaration.
func (s Settings) canonical() Settings {
	s.XMLName = xml.Name{Local: "settings"}
	s.XMLNs = settingsNamespace
	s.XMLNsXsi = xmlSchemaInstance
	s.XsiSchemaLocation = settingsSchemaLocation
	return s
}

// SettingsOption customizes a Settings value once it has been read.
type SettingsOption interface {
	apply(settings *Settings) error
}

// SettingsOptionFunc --.
type SettingsOptionFunc func(settings *Settings) error

func (f SettingsOptionFunc) apply(settings *Settings) error {
	return f(settings)
}

// ApplyOptions --.
func ApplyOptions(settings *Settings, options ...SettingsOption) error {
	for _, option := range options {
		if err := option.apply(settings); err != nil {
			return err
		}
	}
	return nil
}

// NewSettings --.
func NewSettings(options ...SettingsOption) (Settings, error) {
	settings := Settings{}.canonical()

	if err := ApplyOptions(&settings, options...); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

// WithMirrors appends the given mirrors to the ones declared in the settings.
func WithMirrors(mirrors ...Mirror) SettingsOption {
	return SettingsOptionFunc(func(settings *Settings) error {
		settings.Mirrors = append(settings.Mirrors, mirrors...)
		return nil
	})
}

// ReadSettings reads and decodes the settings file at the given location.
func ReadSettings(path string) (Settings, Problems) {
	data, err := os.ReadFile(path)
	if err != nil {
		var problems Problems
		problems.Add(SeverityFatal, path, "cannot read settings", err)
		return Settings{}, problems
	}
	return ParseSettings(data, path)
}

// ParseSettings decodes the given settings document. Syntax errors are reported as fatal problems.
func ParseSettings(data []byte, source string) (Settings, Problems) {
	var problems Problems
	settings := Settings{}

	if len(bytes.TrimSpace(data)) == 0 {
		return settings, problems
	}

	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.Strict = true
	if err := decoder.Decode(&settings); err != nil {
		problems.Add(SeverityFatal, source, "non-parseable settings", errors.Wrap(err, source))
		return Settings{}, problems
	}
	if settings.XMLName.Local != "settings" {
		problems.Add(SeverityFatal, source, "unexpected root element "+settings.XMLName.Local, nil)
		return Settings{}, problems
	}

	for i := range settings.Servers {
		if settings.Servers[i].Configuration != nil {
			settings.Servers[i].Configuration.normalize()
		}
	}

	return settings, problems
}

// SettingsConfigMapDigestAnnotation holds the digest of the settings a ConfigMap has been generated from.
const SettingsConfigMapDigestAnnotation = "camel.apache.org/maven.settings.digest"

// SettingsConfigMap wraps the given settings into a ConfigMap, to be mounted by in-cluster builds.
// The given labels are added to the default ones.
func SettingsConfigMap(namespace string, name string, settings Settings, labels map[string]string) (*corev1.ConfigMap, error) {
	data, err := settings.MarshalBytes()
	if err != nil {
		return nil, err
	}

	cm := &corev1.ConfigMap{
		TypeMeta: metav1.TypeMeta{
			Kind:       "ConfigMap",
			APIVersion: corev1.SchemeGroupVersion.String(),
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      name + "-maven-settings",
			Namespace: namespace,
			Labels:    label.AddLabels("camel-k", labels),
			Annotations: map[string]string{
				SettingsConfigMapDigestAnnotation: digest.ComputeForSettings(data),
			},
		},
		Data: map[string]string{
			"settings.xml": string(data),
		},
	}

	return cm, nil
}
