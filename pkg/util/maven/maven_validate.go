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
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func settingsValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		if err := validate.RegisterValidation("updatepolicy", func(fl validator.FieldLevel) bool {
			_, err := ParseUpdatePolicy(fl.Field().String())
			return err == nil
		}); err != nil {
			panic(err)
		}
	})
	return validate
}

// Validate checks the given settings and reports the problems found. Missing identifiers
// and locations are errors, everything else is reported as a warning.
func Validate(settings Settings, source string) Problems {
	var problems Problems

	if err := settingsValidator().Struct(settings); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			problems.Add(SeverityError, source, "invalid settings", err)
			return problems
		}
		for _, fe := range verrs {
			problems.Add(severityOf(fe), source, describe(fe), nil)
		}
	}

	for i, s := range settings.PluginGroups {
		if s == "" {
			problems.Add(SeverityError, source, fmt.Sprintf("'pluginGroups.pluginGroup[%d]' must not be empty", i), nil)
		}
	}

	duplicates(&problems, source, "servers.server.id", settings.Servers, func(s Server) string { return s.ID })
	duplicates(&problems, source, "mirrors.mirror.id", settings.Mirrors, func(m Mirror) string { return m.ID })
	duplicates(&problems, source, "proxies.proxy.id", settings.Proxies, func(p Proxy) string { return p.ID })
	duplicates(&problems, source, "profiles.profile.id", settings.Profiles, func(p Profile) string { return p.ID })

	for _, p := range settings.Profiles {
		duplicates(&problems, source, fmt.Sprintf("profiles.profile[%s].repositories.repository.id", p.ID), p.Repositories, func(r Repository) string { return r.ID })
		duplicates(&problems, source, fmt.Sprintf("profiles.profile[%s].pluginRepositories.pluginRepository.id", p.ID), p.PluginRepositories, func(r Repository) string { return r.ID })
	}

	return problems
}

func severityOf(fe validator.FieldError) Severity {
	switch fe.Tag() {
	case "required", "ne":
		return SeverityError
	default:
		return SeverityWarning
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("'%s' is missing", fe.Namespace())
	case "ne":
		return fmt.Sprintf("'%s' must not be '%s'", fe.Namespace(), fe.Param())
	case "updatepolicy":
		return fmt.Sprintf("'%s' has unknown update policy '%v'", fe.Namespace(), fe.Value())
	case "oneof":
		return fmt.Sprintf("'%s' has unknown value '%v', expected one of [%s]", fe.Namespace(), fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("'%s' is invalid (%s): '%v'", fe.Namespace(), fe.Tag(), fe.Value())
	}
}

func duplicates[T any](problems *Problems, source string, field string, items []T, id func(T) string) {
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		key := id(item)
		if key == "" {
			continue
		}
		if seen[key] {
			problems.Warn(source, "'%s' must be unique but found duplicate %q", field, key)
		}
		seen[key] = true
	}
}
