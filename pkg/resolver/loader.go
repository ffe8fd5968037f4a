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
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/apache/camel-k-resolver/pkg/util/maven"
	"github.com/apache/camel-k-resolver/pkg/util/monitoring"
)

// Loader builds the effective settings out of the global and user settings files.
// The result of the first successful build is kept until Invalidate is called.
type Loader struct {
	// UserSettings and GlobalSettings are the files to read, empty when missing.
	UserSettings     string
	GlobalSettings   string
	SystemProperties map[string]string
	Variables        map[string]string
	Options          []maven.SettingsOption
	Metrics          *monitoring.Metrics

	group    singleflight.Group
	settings atomic.Value
}

// Settings returns the effective settings, building them on first use. Concurrent
// callers of the first build share its result. The returned value must not be modified.
func (l *Loader) Settings() (maven.Settings, error) {
	if s, ok := l.settings.Load().(*maven.Settings); ok && s != nil {
		return *s, nil
	}

	v, err, _ := l.group.Do("settings", func() (interface{}, error) {
		if s, ok := l.settings.Load().(*maven.Settings); ok && s != nil {
			return *s, nil
		}
		s, err := l.build()
		if err != nil {
			return nil, err
		}
		l.settings.Store(&s)
		return s, nil
	})
	if err != nil {
		return maven.Settings{}, err
	}
	return v.(maven.Settings), nil
}

// Invalidate drops the settings built so far, the next call to Settings reads the files again.
func (l *Loader) Invalidate() {
	l.settings.Store((*maven.Settings)(nil))
}

func (l *Loader) build() (settings maven.Settings, err error) {
	begin := time.Now()
	defer func() {
		d := l.Metrics.ObserveSettings(begin, err)
		Log.Debugf("Maven settings built in %s", d)
	}()

	var problems maven.Problems

	global := l.read(l.GlobalSettings, &problems)
	user := l.read(l.UserSettings, &problems)

	settings = maven.Merge(user, global)
	if local := l.SystemProperties[PropertyLocalRepository]; local != "" {
		settings.LocalRepository = local
	}

	if err := maven.ApplyOptions(&settings, l.Options...); err != nil {
		return maven.Settings{}, &ConfigurationError{Message: "Failed to initialize Maven repository settings", Err: err}
	}

	for _, p := range problems {
		l.Metrics.Problem(p.Severity.String())
		if p.Severity >= maven.SeverityError {
			return maven.Settings{}, &ConfigurationError{Message: "Settings problem encountered at " + p.Source, Err: p}
		}
		Log.Warn("Settings problem encountered at "+p.Source, "problem", p.Error())
	}

	return settings, nil
}

// read interpolates, decodes and validates a settings file, an empty location yields
// empty settings.
func (l *Loader) read(location string, problems *maven.Problems) maven.Settings {
	if location == "" {
		return maven.Settings{}
	}

	data, err := os.ReadFile(location)
	if err != nil {
		problems.Add(maven.SeverityFatal, location, "cannot read settings", err)
		return maven.Settings{}
	}

	data, p := maven.Interpolate(data, location,
		maven.MapValueSource("env.", l.Variables),
		maven.MapValueSource("", l.SystemProperties),
	)
	problems.Merge(p)

	settings, p := maven.ParseSettings(data, location)
	problems.Merge(p)
	if p.FirstError() != nil {
		return maven.Settings{}
	}

	problems.Merge(maven.Validate(settings, location))

	Log.Debugf("Read Maven settings from %s", location)
	return settings
}
