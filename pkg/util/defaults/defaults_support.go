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

package defaults

import (
	"os"

	"github.com/apache/camel-k-resolver/pkg/util/log"
)

// ConfigMapName is the prefix of the ConfigMap the settings are exported to.
func ConfigMapName() string {
	return envOrDefault(configMapName, "KAMEL_RESOLVER_CONFIGMAP_NAME")
}

// Namespace is the namespace of the exported ConfigMap, empty when not set.
func Namespace() string {
	return envOrDefault("", "KAMEL_RESOLVER_NAMESPACE", "NAMESPACE")
}

func envOrDefault(def string, envs ...string) string {
	for i := range envs {
		if val := os.Getenv(envs[i]); val != "" {
			log.Debugf("Using %s from environment variable %s", val, envs[i])
			return val
		}
	}
	return def
}
