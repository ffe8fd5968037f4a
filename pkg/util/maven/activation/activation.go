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
	"github.com/scylladb/go-set/strset"

	"github.com/apache/camel-k-resolver/pkg/util"
	"github.com/apache/camel-k-resolver/pkg/util/maven"
)

// Context is the environment activation conditions are evaluated against.
type Context struct {
	// SystemProperties are the ambient and command line system properties.
	SystemProperties map[string]string
	// Environment holds the process environment variables, referenced as ${env.NAME}.
	Environment map[string]string
	// ProjectDir is the base directory of the current project, can be empty.
	ProjectDir string
	Platform   Platform
	// JavaVersion is the version of the running JDK, when known.
	JavaVersion string
	// FileExists overrides the lookup of files and directories.
	FileExists func(path string) bool
}

func (c Context) property(name string) (string, bool) {
	v, ok := c.SystemProperties[name]
	return v, ok
}

func (c Context) exists(path string) bool {
	if c.FileExists != nil {
		return c.FileExists(path)
	}
	return util.PathExists(path)
}

// Condition is a rule that can activate a profile.
type Condition interface {
	// Evaluate tells if the condition holds in the given context.
	Evaluate(ctx Context) bool

	condition()
}

// Conditions returns the conditions declared by the given activation, in a stable order.
func Conditions(a *maven.Activation) []Condition {
	if !a.HasConditions() {
		return nil
	}
	var conditions []Condition
	if a.Property != nil {
		conditions = append(conditions, PropertyCondition{Name: a.Property.Name, Value: a.Property.Value})
	}
	if a.OS != nil {
		conditions = append(conditions, OSCondition{Name: a.OS.Name, Family: a.OS.Family, Arch: a.OS.Arch, Version: a.OS.Version})
	}
	if a.JDK != "" {
		conditions = append(conditions, JDKCondition{Range: a.JDK})
	}
	if a.File != nil {
		conditions = append(conditions, FileCondition{Exists: a.File.Exists, Missing: a.File.Missing})
	}
	return conditions
}

// Matches tells if any of the conditions of the profile holds.
func Matches(p maven.Profile, ctx Context) bool {
	for _, c := range Conditions(p.Activation) {
		if c.Evaluate(ctx) {
			return true
		}
	}
	return false
}

// Selection holds the profiles explicitly requested.
type Selection struct {
	Activate   []string
	Deactivate []string
	// ActiveProfiles is the settings shortcut list.
	ActiveProfiles []string
}

// IsDeactivated --.
func (s Selection) IsDeactivated(id string) bool {
	for _, d := range s.Deactivate {
		if d == id {
			return true
		}
	}
	return false
}

// Select returns the active profiles in declaration order. A profile explicitly
// deactivated is never active, otherwise it is active when explicitly requested,
// when it has no conditions and is listed among the settings active profiles or when
// any of its conditions holds. Profiles marked as active by default are active only
// when no other profile is.
func Select(profiles []maven.Profile, selection Selection, ctx Context) ([]maven.Profile, maven.Problems) {
	var problems maven.Problems

	known := strset.NewWithSize(len(profiles))
	for _, p := range profiles {
		known.Add(p.ID)
	}
	activate := strset.New(selection.Activate...)
	deactivate := strset.New(selection.Deactivate...)
	shortcut := strset.New(selection.ActiveProfiles...)

	for _, id := range selection.Activate {
		if !known.Has(id) {
			problems.Warn("", "The requested Maven profile %q could not be activated because it does not exist.", id)
		}
	}
	for _, id := range selection.Deactivate {
		if !known.Has(id) {
			problems.Warn("", "The requested Maven profile %q could not be deactivated because it does not exist.", id)
		}
	}

	var active []maven.Profile
	var byDefault []maven.Profile
	selected := strset.New()

	for _, p := range profiles {
		if deactivate.Has(p.ID) || selected.Has(p.ID) {
			continue
		}
		switch {
		case activate.Has(p.ID),
			shortcut.Has(p.ID) && !p.Activation.HasConditions(),
			Matches(p, ctx):
			active = append(active, p)
			selected.Add(p.ID)
		case p.Activation != nil && p.Activation.ActiveByDefault:
			byDefault = append(byDefault, p)
		}
	}

	if len(active) == 0 {
		return byDefault, problems
	}
	return active, problems
}
