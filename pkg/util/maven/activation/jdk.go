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
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver"
	"github.com/pkg/errors"

	"github.com/apache/camel-k-resolver/pkg/util"
	"github.com/apache/camel-k-resolver/pkg/util/property"
)

var javaVersionRegexp = regexp.MustCompile(`^(\d+)(?:\.(\d+))?(?:\.(\d+))?`)

// JDKCondition holds when the running JDK version matches the declared range:
//
//	1.8              version prefix
//	!1.8             negated version prefix
//	[1.8,11)         interval, (,1.7],[11,) for a union of intervals
//	11+              at least the given version
type JDKCondition struct {
	Range string
}

func (JDKCondition) condition() {}

// Evaluate --.
func (c JDKCondition) Evaluate(ctx Context) bool {
	jdk := strings.TrimSpace(c.Range)
	version := ctx.JavaVersion
	if jdk == "" || version == "" {
		return false
	}

	switch {
	case strings.HasPrefix(jdk, "!"):
		return !strings.HasPrefix(version, jdk[1:])
	case strings.HasSuffix(jdk, "+"):
		min, err := ParseJavaVersion(strings.TrimSuffix(jdk, "+"))
		if err != nil {
			return false
		}
		v, err := ParseJavaVersion(version)
		if err != nil {
			return false
		}
		return !v.LessThan(min)
	case strings.HasPrefix(jdk, "[") || strings.HasPrefix(jdk, "("):
		ranges, err := ParseVersionRanges(jdk)
		if err != nil {
			return false
		}
		v, err := ParseJavaVersion(version)
		if err != nil {
			return false
		}
		for _, r := range ranges {
			if r.Contains(v) {
				return true
			}
		}
		return false
	default:
		return strings.HasPrefix(version, jdk)
	}
}

// ParseJavaVersion reads the numeric part of a Java version (1.8.0_292, 11.0.2+9, 17-ea)
// as a semantic version.
func ParseJavaVersion(value string) (*semver.Version, error) {
	m := javaVersionRegexp.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return nil, errors.Errorf("invalid java version %q", value)
	}
	parts := []string{m[1]}
	for _, p := range m[2:] {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return semver.NewVersion(strings.Join(parts, "."))
}

// VersionRange is an interval of versions, a nil bound being unbounded.
type VersionRange struct {
	Lower          *semver.Version
	LowerInclusive bool
	Upper          *semver.Version
	UpperInclusive bool
}

// Contains --.
func (r VersionRange) Contains(v *semver.Version) bool {
	if r.Lower != nil {
		c := v.Compare(r.Lower)
		if c < 0 || (c == 0 && !r.LowerInclusive) {
			return false
		}
	}
	if r.Upper != nil {
		c := v.Compare(r.Upper)
		if c > 0 || (c == 0 && !r.UpperInclusive) {
			return false
		}
	}
	return true
}

// ParseVersionRanges parses a union of Maven version intervals such as (,1.7],[11,).
func ParseVersionRanges(value string) ([]VersionRange, error) {
	var ranges []VersionRange
	rest := strings.TrimSpace(value)

	for rest != "" {
		if rest[0] != '[' && rest[0] != '(' {
			return nil, errors.Errorf("invalid version range %q", value)
		}
		end := strings.IndexAny(rest, "])")
		if end < 0 {
			return nil, errors.Errorf("unterminated version range %q", value)
		}

		r, err := parseVersionRange(rest[:end+1])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid version range %q", value)
		}
		ranges = append(ranges, r)

		rest = strings.TrimSpace(rest[end+1:])
		rest = strings.TrimSpace(strings.TrimPrefix(rest, ","))
	}

	if len(ranges) == 0 {
		return nil, errors.Errorf("empty version range %q", value)
	}
	return ranges, nil
}

func parseVersionRange(s string) (VersionRange, error) {
	r := VersionRange{
		LowerInclusive: s[0] == '[',
		UpperInclusive: s[len(s)-1] == ']',
	}
	body := s[1 : len(s)-1]

	bounds := strings.Split(body, ",")
	switch len(bounds) {
	case 1:
		// [1.8] is an exact version
		v, err := ParseJavaVersion(bounds[0])
		if err != nil {
			return r, err
		}
		if !r.LowerInclusive || !r.UpperInclusive {
			return r, errors.Errorf("single version %q must be inclusive", s)
		}
		r.Lower, r.Upper = v, v
	case 2:
		if lower := strings.TrimSpace(bounds[0]); lower != "" {
			v, err := ParseJavaVersion(lower)
			if err != nil {
				return r, err
			}
			r.Lower = v
		}
		if upper := strings.TrimSpace(bounds[1]); upper != "" {
			v, err := ParseJavaVersion(upper)
			if err != nil {
				return r, err
			}
			r.Upper = v
		}
	default:
		return r, errors.Errorf("too many bounds in %q", s)
	}
	return r, nil
}

// JavaVersion returns the java.version system property, falling back to the
// JAVA_VERSION declared by the release file of the given JDK home.
func JavaVersion(systemProperties map[string]string, javaHome string) string {
	if v := systemProperties["java.version"]; v != "" {
		return v
	}
	if javaHome == "" {
		return ""
	}
	release := filepath.Join(javaHome, "release")
	if ok, err := util.FileExists(release); err != nil || !ok {
		return ""
	}
	props, err := property.ReadPropertyFile(release)
	if err != nil {
		return ""
	}
	return property.Unquote(props["JAVA_VERSION"])
}
