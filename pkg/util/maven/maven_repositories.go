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
	"strings"
)

//
// NewRepository parse the given repo url ang generated the related struct.
//
// The repository can be customized by appending @instruction to the repository
// uri, as example:
//
//     http://my-nexus:8081/repository/publicc@id=my-repo@snapshots
//
// Will enable snapshots and sets the repo it to my-repo
//
func NewRepository(repo string) Repository {
	r := Repository{
		URL: repo,
		Releases: &RepositoryPolicy{
			Enabled: boolPtr(true),
		},
		Snapshots: &RepositoryPolicy{
			Enabled: boolPtr(false),
		},
	}

	if idx := strings.Index(repo, "@"); idx != -1 {
		r.URL = repo[:idx]

		for _, attribute := range strings.Split(repo[idx+1:], "@") {
			switch {
			case attribute == "snapshots":
				r.Snapshots.Enabled = boolPtr(true)
			case attribute == "noreleases":
				r.Releases.Enabled = boolPtr(false)
			case strings.HasPrefix(attribute, "id="):
				r.ID = attribute[3:]
			case strings.HasPrefix(attribute, "name="):
				r.Name = attribute[5:]
			case strings.HasPrefix(attribute, "layout="):
				r.Layout = attribute[7:]
			case strings.HasPrefix(attribute, "checksumpolicy="):
				r.Snapshots.ChecksumPolicy = attribute[15:]
				r.Releases.ChecksumPolicy = attribute[15:]
			case strings.HasPrefix(attribute, "updatepolicy="):
				r.Snapshots.UpdatePolicy = attribute[13:]
				r.Releases.UpdatePolicy = attribute[13:]
			}
		}
	}

	return r
}

// NewMirror parses the mirror counterpart of NewRepository, e.g.
//
//     https://nexus/repository/all@id=nexus@mirrorOf=*,!snapshots
//
func NewMirror(repo string) Mirror {
	m := Mirror{
		URL: repo,
	}
	if idx := strings.Index(repo, "@"); idx != -1 {
		m.URL = repo[:idx]

		for _, attribute := range strings.Split(repo[idx+1:], "@") {
			switch {
			case strings.HasPrefix(attribute, "mirrorOf="):
				m.MirrorOf = attribute[9:]
			case strings.HasPrefix(attribute, "id="):
				m.ID = attribute[3:]
			case strings.HasPrefix(attribute, "name="):
				m.Name = attribute[5:]
			case strings.HasPrefix(attribute, "layout="):
				m.Layout = attribute[7:]
			case attribute == "blocked":
				m.Blocked = true
			}
		}
	}
	return m
}

// ParseRepositories --.
func ParseRepositories(repositories []string) []Repository {
	res := make([]Repository, 0, len(repositories))
	for _, r := range repositories {
		if r = strings.TrimSpace(r); r != "" {
			res = append(res, NewRepository(r))
		}
	}
	return res
}

// ParseMirrors --.
func ParseMirrors(mirrors []string) []Mirror {
	res := make([]Mirror, 0, len(mirrors))
	for _, m := range mirrors {
		if m = strings.TrimSpace(m); m != "" {
			res = append(res, NewMirror(m))
		}
	}
	return res
}

func boolPtr(b bool) *bool {
	return &b
}
