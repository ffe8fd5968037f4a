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

package selector

import (
	"strings"

	"github.com/apache/camel-k-resolver/pkg/util/maven"
)

const (
	wildcard             = "*"
	externalWildcard     = "external:*"
	externalHTTPWildcard = "external:http:*"
)

type mirrorDef struct {
	id              string
	url             string
	layout          string
	blocked         bool
	mirrorOf        string
	mirrorOfLayouts string
}

// MirrorSelector redirects repositories to the first matching mirror.
type MirrorSelector struct {
	mirrors []mirrorDef
}

// NewMirrorSelector --.
func NewMirrorSelector() *MirrorSelector {
	return &MirrorSelector{}
}

// Add registers a mirror, mirrors are matched in registration order.
func (s *MirrorSelector) Add(m maven.Mirror) *MirrorSelector {
	s.mirrors = append(s.mirrors, mirrorDef{
		id:              m.ID,
		url:             m.URL,
		layout:          m.Layout,
		blocked:         m.Blocked,
		mirrorOf:        m.MirrorOf,
		mirrorOfLayouts: m.MirrorOfLayouts,
	})
	return s
}

// Len --.
func (s *MirrorSelector) Len() int {
	return len(s.mirrors)
}

// Select returns the mirror of the given repository, or nil when none applies. A mirror
// naming the repository id wins over any pattern, patterns are then tried in order.
// The returned repository keeps the policies of the mirrored one.
func (s *MirrorSelector) Select(repo maven.RemoteRepository) *maven.RemoteRepository {
	m := s.find(repo)
	if m == nil {
		return nil
	}

	mirror := maven.RemoteRepository{
		ID:                   m.id,
		Layout:               repo.Layout,
		URL:                  m.url,
		Releases:             repo.Releases,
		Snapshots:            repo.Snapshots,
		Blocked:              m.blocked,
		MirroredRepositories: []maven.RemoteRepository{repo},
	}
	if m.layout != "" {
		mirror.Layout = m.layout
	}
	return &mirror
}

func (s *MirrorSelector) find(repo maven.RemoteRepository) *mirrorDef {
	for i := range s.mirrors {
		m := &s.mirrors[i]
		if repo.ID == m.mirrorOf && matchesLayout(repo.Layout, m.mirrorOfLayouts) {
			return m
		}
	}
	for i := range s.mirrors {
		m := &s.mirrors[i]
		if MatchesPattern(repo, m.mirrorOf) && matchesLayout(repo.Layout, m.mirrorOfLayouts) {
			return m
		}
	}
	return nil
}

// MatchesPattern tells if the repository is selected by the given mirrorOf pattern: a
// comma separated list of ids, * for any repository, external:* for non local ones,
// external:http:* for non local plain http ones, and !id to exclude a repository.
func MatchesPattern(repo maven.RemoteRepository, pattern string) bool {
	pattern = strings.TrimSpace(pattern)
	if pattern == wildcard || pattern == repo.ID {
		return true
	}

	result := false
	for _, p := range strings.Split(pattern, ",") {
		p = strings.TrimSpace(p)
		switch {
		case len(p) > 1 && strings.HasPrefix(p, "!"):
			if p[1:] == repo.ID {
				return false
			}
		case p == repo.ID:
			return true
		case p == externalWildcard && isExternal(repo):
			// keep going, a later entry can still exclude the repository
			result = true
		case p == externalHTTPWildcard && isExternalHTTP(repo):
			result = true
		case p == wildcard:
			result = true
		}
	}
	return result
}

func matchesLayout(layout string, pattern string) bool {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" || pattern == wildcard || pattern == layout {
		return true
	}

	result := false
	for _, p := range strings.Split(pattern, ",") {
		p = strings.TrimSpace(p)
		switch {
		case len(p) > 1 && strings.HasPrefix(p, "!"):
			if p[1:] == layout {
				return false
			}
		case p == layout:
			return true
		case p == wildcard:
			result = true
		}
	}
	return result
}

func isLocal(host string) bool {
	return host == "localhost" || host == "127.0.0.1"
}

func isExternal(repo maven.RemoteRepository) bool {
	return !isLocal(repo.Host()) && repo.Protocol() != "file"
}

func isExternalHTTP(repo maven.RemoteRepository) bool {
	switch repo.Protocol() {
	case "http", "dav":
		return !isLocal(repo.Host())
	default:
		return false
	}
}
