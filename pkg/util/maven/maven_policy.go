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
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// DefaultLayout --.
	DefaultLayout = "default"
	// DefaultRemoteRepositoryID is the id of the repository always present in the resolved list.
	DefaultRemoteRepositoryID = "central"
	// DefaultRemoteRepositoryURL --.
	DefaultRemoteRepositoryURL = "https://repo.maven.apache.org/maven2"
)

// UpdatePolicy tells how often a repository is checked for updates.
type UpdatePolicy string

const (
	UpdatePolicyNever  UpdatePolicy = "never"
	UpdatePolicyDaily  UpdatePolicy = "daily"
	UpdatePolicyAlways UpdatePolicy = "always"

	updatePolicyIntervalPrefix = "interval:"
)

// UpdatePolicyInterval --.
func UpdatePolicyInterval(minutes int) UpdatePolicy {
	return UpdatePolicy(updatePolicyIntervalPrefix + strconv.Itoa(minutes))
}

// ParseUpdatePolicy validates the given value, an empty one being the daily policy.
func ParseUpdatePolicy(value string) (UpdatePolicy, error) {
	switch v := UpdatePolicy(strings.TrimSpace(value)); v {
	case "":
		return UpdatePolicyDaily, nil
	case UpdatePolicyNever, UpdatePolicyDaily, UpdatePolicyAlways:
		return v, nil
	default:
		if _, err := v.Interval(); err != nil {
			return "", err
		}
		return v, nil
	}
}

// Interval returns the minutes of an interval:N policy.
func (p UpdatePolicy) Interval() (int, error) {
	s := string(p)
	if !strings.HasPrefix(s, updatePolicyIntervalPrefix) {
		return 0, errors.Errorf("unsupported update policy %q", s)
	}
	minutes, err := strconv.Atoi(s[len(updatePolicyIntervalPrefix):])
	if err != nil || minutes < 0 {
		return 0, errors.Errorf("invalid update policy interval %q", s)
	}
	return minutes, nil
}

// ChecksumPolicy tells what to do when a checksum does not match.
type ChecksumPolicy string

const (
	ChecksumPolicyFail   ChecksumPolicy = "fail"
	ChecksumPolicyWarn   ChecksumPolicy = "warn"
	ChecksumPolicyIgnore ChecksumPolicy = "ignore"
)

// ParseChecksumPolicy validates the given value, an empty one being the warn policy.
func ParseChecksumPolicy(value string) (ChecksumPolicy, error) {
	switch v := ChecksumPolicy(strings.TrimSpace(value)); v {
	case "":
		return ChecksumPolicyWarn, nil
	case ChecksumPolicyFail, ChecksumPolicyWarn, ChecksumPolicyIgnore:
		return v, nil
	default:
		return "", errors.Errorf("unsupported checksum policy %q", value)
	}
}

// Policy is a resolved RepositoryPolicy.
type Policy struct {
	Enabled        bool           `json:"enabled"`
	UpdatePolicy   UpdatePolicy   `json:"updatePolicy"`
	ChecksumPolicy ChecksumPolicy `json:"checksumPolicy"`
}

// DefaultPolicy is the policy of a repository that does not declare one.
func DefaultPolicy() Policy {
	return Policy{
		Enabled:        true,
		UpdatePolicy:   UpdatePolicyDaily,
		ChecksumPolicy: ChecksumPolicyWarn,
	}
}

// Resolve fills the blanks with the defaults. Values that cannot be parsed also
// fall back to the defaults, settings validation reporting them beforehand.
func (p *RepositoryPolicy) Resolve() Policy {
	policy := DefaultPolicy()
	if p == nil {
		return policy
	}
	if p.Enabled != nil {
		policy.Enabled = *p.Enabled
	}
	if up, err := ParseUpdatePolicy(p.UpdatePolicy); err == nil {
		policy.UpdatePolicy = up
	}
	if cp, err := ParseChecksumPolicy(p.ChecksumPolicy); err == nil {
		policy.ChecksumPolicy = cp
	}
	return policy
}

// Authentication --.
type Authentication struct {
	Username   string `json:"username,omitempty"`
	Password   string `json:"password,omitempty"`
	PrivateKey string `json:"privateKey,omitempty"`
	Passphrase string `json:"passphrase,omitempty"`
}

// IsEmpty --.
func (a Authentication) IsEmpty() bool {
	return a == Authentication{}
}

// RemoteProxy is a proxy as used to reach a remote repository.
type RemoteProxy struct {
	Protocol       string          `json:"protocol"`
	Host           string          `json:"host"`
	Port           int             `json:"port"`
	Authentication *Authentication `json:"authentication,omitempty"`
}

// RemoteRepository is a repository ready to be handed to the artifact resolution.
type RemoteRepository struct {
	ID                   string             `json:"id"`
	Layout               string             `json:"layout"`
	URL                  string             `json:"url"`
	Releases             Policy             `json:"releases"`
	Snapshots            Policy             `json:"snapshots"`
	Authentication       *Authentication    `json:"authentication,omitempty"`
	Proxy                *RemoteProxy       `json:"proxy,omitempty"`
	Blocked              bool               `json:"blocked,omitempty"`
	MirroredRepositories []RemoteRepository `json:"mirroredRepositories,omitempty"`
}

// NewRemoteRepository resolves the policies of the given repository.
func NewRemoteRepository(r Repository) RemoteRepository {
	return RemoteRepository{
		ID:        r.ID,
		Layout:    r.GetLayout(),
		URL:       r.URL,
		Releases:  r.Releases.Resolve(),
		Snapshots: r.Snapshots.Resolve(),
	}
}

// DefaultRemoteRepository is the central repository, releases only.
func DefaultRemoteRepository() RemoteRepository {
	snapshots := DefaultPolicy()
	snapshots.Enabled = false

	return RemoteRepository{
		ID:        DefaultRemoteRepositoryID,
		Layout:    DefaultLayout,
		URL:       DefaultRemoteRepositoryURL,
		Releases:  DefaultPolicy(),
		Snapshots: snapshots,
	}
}

// Protocol returns the scheme of the repository URL.
func (r RemoteRepository) Protocol() string {
	u, err := url.Parse(r.URL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Scheme)
}

// Host returns the host of the repository URL, without port nor credentials.
func (r RemoteRepository) Host() string {
	u, err := url.Parse(r.URL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
