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

package activation

import (
	"regexp"
	"strings"

	"github.com/apache/camel-k-resolver/pkg/util"
)

var fileExpressionRegexp = regexp.MustCompile(`\$\{([^}]+)\}`)

// FileCondition holds when the Exists path exists or, when Exists is not set, when the
// Missing path does not. Paths can reference ${basedir}, system properties and ${env.NAME};
// relative paths are resolved against the project directory.
type FileCondition struct {
	Exists  string
	Missing string
}

func (FileCondition) condition() {}

// Evaluate --.
func (c FileCondition) Evaluate(ctx Context) bool {
	path, missing := strings.TrimSpace(c.Exists), false
	if path == "" {
		path, missing = strings.TrimSpace(c.Missing), true
	}
	if path == "" {
		return false
	}

	path, ok := interpolatePath(path, ctx)
	if !ok {
		return false
	}
	path = util.ResolvePath(ctx.ProjectDir, path)

	return ctx.exists(path) != missing
}

func interpolatePath(path string, ctx Context) (string, bool) {
	resolved := true
	res := fileExpressionRegexp.ReplaceAllStringFunc(path, func(match string) string {
		expression := match[2 : len(match)-1]
		switch {
		case expression == "basedir" || expression == "project.basedir":
			if ctx.ProjectDir != "" {
				return ctx.ProjectDir
			}
		case strings.HasPrefix(expression, "env."):
			if v, ok := ctx.Environment[strings.TrimPrefix(expression, "env.")]; ok {
				return v
			}
		default:
			if v, ok := ctx.property(expression); ok {
				return v
			}
		}
		resolved = false
		return match
	})
	return res, resolved
}
