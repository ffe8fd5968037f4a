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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apache/camel-k-resolver/pkg/util/maven"
	"github.com/apache/camel-k-resolver/pkg/util/maven/selector"
	"github.com/apache/camel-k-resolver/pkg/util/test"
)

func policy(enabled bool, update maven.UpdatePolicy, checksum maven.ChecksumPolicy) maven.Policy {
	return maven.Policy{Enabled: enabled, UpdatePolicy: update, ChecksumPolicy: checksum}
}

func TestMergePolicy(t *testing.T) {
	testcases := []struct {
		name     string
		a        maven.Policy
		b        maven.Policy
		expected maven.Policy
	}{
		{
			name:     "disabled ignored",
			a:        policy(true, maven.UpdatePolicyNever, maven.ChecksumPolicyIgnore),
			b:        policy(false, maven.UpdatePolicyAlways, maven.ChecksumPolicyFail),
			expected: policy(true, maven.UpdatePolicyNever, maven.ChecksumPolicyIgnore),
		},
		{
			name:     "enabled wins",
			a:        policy(false, maven.UpdatePolicyNever, maven.ChecksumPolicyIgnore),
			b:        policy(true, maven.UpdatePolicyDaily, maven.ChecksumPolicyWarn),
			expected: policy(true, maven.UpdatePolicyDaily, maven.ChecksumPolicyWarn),
		},
		{
			name:     "most eager and strictest",
			a:        policy(true, maven.UpdatePolicyDaily, maven.ChecksumPolicyFail),
			b:        policy(true, maven.UpdatePolicyInterval(60), maven.ChecksumPolicyWarn),
			expected: policy(true, maven.UpdatePolicyInterval(60), maven.ChecksumPolicyFail),
		},
		{
			name:     "always",
			a:        policy(true, maven.UpdatePolicyAlways, maven.ChecksumPolicyIgnore),
			b:        policy(true, maven.UpdatePolicyNever, maven.ChecksumPolicyIgnore),
			expected: policy(true, maven.UpdatePolicyAlways, maven.ChecksumPolicyIgnore),
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, mergePolicy(tc.a, tc.b))
			assert.Equal(t, tc.expected, mergePolicy(tc.b, tc.a))
		})
	}
}

func TestMirroringSystemMergesMirroredRepositories(t *testing.T) {
	session := &Session{
		MirrorSelector: selector.NewMirrorSelector().Add(maven.Mirror{
			ID:       "all",
			URL:      "https://mirror.example.com",
			MirrorOf: "*",
		}),
		ProxySelector:          selector.NewProxySelector(),
		AuthenticationSelector: selector.NewAuthenticationSelector().Add("all", maven.Authentication{Username: "user"}),
	}

	snapshots := maven.NewRemoteRepository(maven.NewRepository("https://snapshots.example.com@id=snapshots@snapshots@noreleases"))
	central := maven.DefaultRemoteRepository()

	res := MirroringSystem{}.NewResolutionRepositories(session, []maven.RemoteRepository{central, snapshots})

	assert.Len(t, res, 1)
	assert.Equal(t, "all", res[0].ID)
	assert.Equal(t, "https://mirror.example.com", res[0].URL)
	assert.True(t, res[0].Releases.Enabled)
	assert.True(t, res[0].Snapshots.Enabled)
	assert.Equal(t, []string{"central", "snapshots"}, test.RepositoryIDs(res[0].MirroredRepositories))
	assert.Equal(t, &maven.Authentication{Username: "user"}, res[0].Authentication)
}
