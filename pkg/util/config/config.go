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

package config

import (
	"os"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

const (
	// DefaultConfigLocation is the main place where the resolver config is stored
	DefaultConfigLocation = "./kamel-resolver-config.yaml"
	// EnvConfigLocation overrides the default location
	EnvConfigLocation = "KAMEL_RESOLVER_CONFIG"
)

// ResolverConfig is a helper class to read resolver configuration files.
// Keys follow the command paths, e.g. kamel-resolver.configmap.name.
type ResolverConfig struct {
	config map[string]interface{}
}

// LoadDefault loads the resolver configuration from the location given by
// KAMEL_RESOLVER_CONFIG, or from the default location
func LoadDefault() (*ResolverConfig, error) {
	if location := os.Getenv(EnvConfigLocation); location != "" {
		return LoadConfig(location)
	}
	return LoadConfig(DefaultConfigLocation)
}

// LoadConfig loads a resolver configuration file, a missing file being an empty configuration
func LoadConfig(file string) (*ResolverConfig, error) {
	config := make(map[string]interface{})
	data, err := os.ReadFile(file)
	if err != nil && os.IsNotExist(err) {
		return &ResolverConfig{config: config}, nil
	} else if err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &ResolverConfig{config: convertAll(config)}, nil
}

// Values returns the whole configuration
func (c *ResolverConfig) Values() map[string]interface{} {
	return c.config
}

// Get returns the subtree at the given dot separated path, nil if there is none
func (c *ResolverConfig) Get(path string) map[string]interface{} {
	return navigate(c.config, path)
}

func navigate(values map[string]interface{}, prefix string) map[string]interface{} {
	nodes := strings.Split(prefix, ".")

	for _, node := range nodes {
		v := values[node]

		if v == nil {
			return nil
		}

		if m, ok := v.(map[string]interface{}); ok {
			values = m
		} else {
			return nil
		}
	}
	return values
}

// convertAll turns the map[interface{}]interface{} yaml produces into string keyed maps.
func convertAll(m map[string]interface{}) map[string]interface{} {
	for k, v := range m {
		m[k] = convertValue(v)
	}
	return m
}

func convertValue(v interface{}) interface{} {
	switch value := v.(type) {
	case map[interface{}]interface{}:
		return convertAll(convert(value))
	case map[string]interface{}:
		return convertAll(value)
	case []interface{}:
		for i := range value {
			value[i] = convertValue(value[i])
		}
		return value
	default:
		return v
	}
}

func convert(m map[interface{}]interface{}) map[string]interface{} {
	res := make(map[string]interface{})
	for k, v := range m {
		if ks, ok := k.(string); ok {
			res[ks] = v
		}
	}
	return res
}
