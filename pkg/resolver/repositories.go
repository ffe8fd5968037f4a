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
	"math"

	"github.com/scylladb/go-set/strset"

	"github.com/apache/camel-k-resolver/pkg/util/maven"
	"github.com/apache/camel-k-resolver/pkg/util/maven/activation"
)

// RepositoriesOf extracts the repositories a profile contributes.
type RepositoriesOf func(p maven.Profile) []maven.Repository

// Repositories --.
func Repositories(p maven.Profile) []maven.Repository {
	return p.Repositories
}

// PluginRepositories --.
func PluginRepositories(p maven.Profile) []maven.Repository {
	return p.PluginRepositories
}

// ResolveRepositories collects the repositories of the active profiles: first the ones
// activated by their conditions or explicitly, in declaration order, then the ones named
// by the settings active profiles, in that list order. The extra repositories follow.
// The first declaration of an id wins, and central is added when missing.
func ResolveRepositories(
	settings maven.Settings, selection activation.Selection, ctx activation.Context,
	extra []maven.Repository, of RepositoriesOf,
) ([]maven.RemoteRepository, maven.Problems) {
	if selection.ActiveProfiles == nil {
		selection.ActiveProfiles = settings.ActiveProfiles
	}

	c := newCollector()

	active, problems := activation.Select(settings.Profiles, selection, ctx)
	for _, p := range active {
		c.add(of(p)...)
	}

	profiles := settings.ProfilesAsMap()
	for _, id := range selection.ActiveProfiles {
		if selection.IsDeactivated(id) {
			continue
		}
		p, ok := profiles[id]
		if !ok {
			problems.Warn("", "The requested Maven profile %q could not be activated because it does not exist.", id)
			continue
		}
		c.add(of(p)...)
	}

	c.add(extra...)

	if !c.ids.Has(maven.DefaultRemoteRepositoryID) {
		c.repositories = append(c.repositories, maven.DefaultRemoteRepository())
	}

	return c.repositories, problems
}

type collector struct {
	ids          *strset.Set
	repositories []maven.RemoteRepository
}

func newCollector() *collector {
	return &collector{
		ids: strset.New(),
	}
}

func (c *collector) add(repositories ...maven.Repository) {
	for _, r := range repositories {
		if c.ids.Has(r.ID) {
			continue
		}
		c.ids.Add(r.ID)
		c.repositories = append(c.repositories, maven.NewRemoteRepository(r))
	}
}

// RepositorySystem rewrites the repositories a build declares into the ones actually
// queried during the resolution.
type RepositorySystem interface {
	NewResolutionRepositories(session *Session, repositories []maven.RemoteRepository) []maven.RemoteRepository
}

// MirroringSystem applies the mirrors, authentications and proxies of the session.
// Repositories redirected to the same mirror are queried as one.
type MirroringSystem struct{}

// NewResolutionRepositories --.
func (MirroringSystem) NewResolutionRepositories(session *Session, repositories []maven.RemoteRepository) []maven.RemoteRepository {
	res := make([]maven.RemoteRepository, 0, len(repositories))
	index := make(map[string]int, len(repositories))

	for _, repo := range repositories {
		if mirror := session.MirrorSelector.Select(repo); mirror != nil {
			if i, ok := index[mirror.ID]; ok {
				res[i] = mergeMirrored(res[i], *mirror)
				continue
			}
			repo = *mirror
		} else if _, ok := index[repo.ID]; ok {
			continue
		}

		index[repo.ID] = len(res)
		res = append(res, repo)
	}

	for i := range res {
		res[i].Releases = session.override(res[i].Releases)
		res[i].Snapshots = session.override(res[i].Snapshots)
		res[i].Authentication = session.AuthenticationSelector.Select(res[i])
		res[i].Proxy = session.ProxySelector.Select(res[i])
	}

	return res
}

// mergeMirrored folds into a mirror another repository it stands for: the merged policy
// enables what either enables, checks for updates as often as the most eager one and
// verifies checksums as strictly as the strictest one.
func mergeMirrored(mirror maven.RemoteRepository, other maven.RemoteRepository) maven.RemoteRepository {
	mirrored := make([]maven.RemoteRepository, 0, len(mirror.MirroredRepositories)+len(other.MirroredRepositories))
	mirrored = append(mirrored, mirror.MirroredRepositories...)
	mirrored = append(mirrored, other.MirroredRepositories...)
	mirror.MirroredRepositories = mirrored

	mirror.Releases = mergePolicy(mirror.Releases, other.Releases)
	mirror.Snapshots = mergePolicy(mirror.Snapshots, other.Snapshots)

	return mirror
}

func mergePolicy(a maven.Policy, b maven.Policy) maven.Policy {
	switch {
	case !b.Enabled:
		return a
	case !a.Enabled:
		return b
	}
	return maven.Policy{
		Enabled:        true,
		UpdatePolicy:   eagerUpdatePolicy(a.UpdatePolicy, b.UpdatePolicy),
		ChecksumPolicy: strictChecksumPolicy(a.ChecksumPolicy, b.ChecksumPolicy),
	}
}

func eagerUpdatePolicy(a maven.UpdatePolicy, b maven.UpdatePolicy) maven.UpdatePolicy {
	if updateMinutes(b) < updateMinutes(a) {
		return b
	}
	return a
}

// updateMinutes returns the minutes between two update checks.
func updateMinutes(p maven.UpdatePolicy) int {
	switch p {
	case maven.UpdatePolicyAlways:
		return 0
	case maven.UpdatePolicyDaily:
		return 24 * 60
	case maven.UpdatePolicyNever:
		return math.MaxInt32
	}
	if minutes, err := p.Interval(); err == nil {
		return minutes
	}
	return 24 * 60
}

var checksumStrictness = map[maven.ChecksumPolicy]int{
	maven.ChecksumPolicyIgnore: 0,
	maven.ChecksumPolicyWarn:   1,
	maven.ChecksumPolicyFail:   2,
}

func strictChecksumPolicy(a maven.ChecksumPolicy, b maven.ChecksumPolicy) maven.ChecksumPolicy {
	if checksumStrictness[b] > checksumStrictness[a] {
		return b
	}
	return a
}
