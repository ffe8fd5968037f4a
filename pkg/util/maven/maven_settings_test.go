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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apache/camel-k-resolver/pkg/util/digest"
)

const settingsXML = `<?xml version="1.0" encoding="UTF-8"?>
<settings xmlns="http://maven.apache.org/SETTINGS/1.0.0"
          xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
          xsi:schemaLocation="http://maven.apache.org/SETTINGS/1.0.0 https://maven.apache.org/xsd/settings-1.0.0.xsd">
  <localRepository>/tmp/artifacts/m2</localRepository>
  <offline>true</offline>
  <servers>
    <server>
      <id>internal</id>
      <username>deployer</username>
      <password>secret</password>
      <filePermissions>664</filePermissions>
      <configuration>
        <httpHeaders>
          <property>
            <name>X-Token</name>
            <value>abc</value>
          </property>
        </httpHeaders>
        <wagonProvider>httpclient</wagonProvider>
      </configuration>
    </server>
  </servers>
  <mirrors>
    <mirror>
      <id>nexus</id>
      <url>https://nexus.example.com/repository/all</url>
      <mirrorOf>*,!special</mirrorOf>
    </mirror>
  </mirrors>
  <profiles>
    <profile>
      <id>ci</id>
      <activation>
        <property>
          <name>env</name>
          <value>ci</value>
        </property>
      </activation>
      <properties>
        <build.mode>ci</build.mode>
      </properties>
      <repositories>
        <repository>
          <id>internal</id>
          <url>https://repo.example.com/internal</url>
          <snapshots>
            <enabled>true</enabled>
            <updatePolicy>interval:60</updatePolicy>
          </snapshots>
        </repository>
      </repositories>
    </profile>
  </profiles>
  <activeProfiles>
    <activeProfile>ci</activeProfile>
  </activeProfiles>
</settings>
`

func TestParseSettings(t *testing.T) {
	settings, problems := ParseSettings([]byte(settingsXML), "settings.xml")
	require.Empty(t, problems)

	assert.Equal(t, "/tmp/artifacts/m2", settings.LocalRepository)
	assert.True(t, settings.IsOffline())
	assert.True(t, settings.IsInteractiveMode())
	assert.Equal(t, []string{"ci"}, settings.ActiveProfiles)

	require.Len(t, settings.Servers, 1)
	server := settings.Servers[0]
	assert.Equal(t, "internal", server.ID)
	assert.Equal(t, "664", server.FilePermissions)
	require.NotNil(t, server.Configuration)
	assert.Equal(t, "", server.Configuration.XMLName.Space)
	require.NotNil(t, server.Configuration.Child("wagonProvider"))
	assert.Equal(t, "httpclient", server.Configuration.Child("wagonProvider").Content)

	require.Len(t, settings.Mirrors, 1)
	assert.Equal(t, "*,!special", settings.Mirrors[0].MirrorOf)

	profile, ok := settings.ProfilesAsMap()["ci"]
	require.True(t, ok)
	assert.Equal(t, "ci", profile.Properties["build.mode"])
	require.NotNil(t, profile.Activation)
	require.NotNil(t, profile.Activation.Property)
	assert.Equal(t, "env", profile.Activation.Property.Name)
	assert.True(t, profile.Activation.HasConditions())

	require.Len(t, profile.Repositories, 1)
	remote := NewRemoteRepository(profile.Repositories[0])
	assert.Equal(t, DefaultLayout, remote.Layout)
	assert.True(t, remote.Releases.Enabled)
	assert.True(t, remote.Snapshots.Enabled)
	assert.Equal(t, UpdatePolicyInterval(60), remote.Snapshots.UpdatePolicy)
	assert.Equal(t, ChecksumPolicyWarn, remote.Snapshots.ChecksumPolicy)
}

func TestParseSettingsEmpty(t *testing.T) {
	settings, problems := ParseSettings([]byte("  \n"), "empty.xml")
	assert.Empty(t, problems)
	assert.Empty(t, settings.Profiles)
	assert.False(t, settings.IsOffline())
}

func TestParseSettingsMalformed(t *testing.T) {
	_, problems := ParseSettings([]byte("<settings><profiles></settings>"), "broken.xml")
	require.Len(t, problems, 1)
	assert.Equal(t, SeverityFatal, problems[0].Severity)
	assert.Equal(t, "broken.xml", problems[0].Source)
	assert.NotNil(t, problems.FirstError())
	assert.Error(t, problems.Err())
}

func TestParseSettingsUnexpectedRoot(t *testing.T) {
	_, problems := ParseSettings([]byte("<project/>"), "pom.xml")
	require.Len(t, problems, 1)
	assert.Equal(t, SeverityFatal, problems[0].Severity)
}

func TestReadSettingsMissingFile(t *testing.T) {
	_, problems := ReadSettings(filepath.Join(t.TempDir(), "settings.xml"))
	require.Len(t, problems, 1)
	assert.Equal(t, SeverityFatal, problems[0].Severity)
	assert.True(t, os.IsNotExist(problems[0].Err))
}

func TestSettingsMarshalRoundTrip(t *testing.T) {
	settings, problems := ParseSettings([]byte(settingsXML), "settings.xml")
	require.Empty(t, problems)

	data, err := settings.MarshalBytes()
	require.NoError(t, err)

	content := string(data)
	assert.Equal(t, 1, strings.Count(content, `xmlns="http://maven.apache.org/SETTINGS/1.0.0"`))
	assert.Contains(t, content, "<build.mode>ci</build.mode>")
	assert.Contains(t, content, "<wagonProvider>httpclient</wagonProvider>")

	again, problems := ParseSettings(data, "marshalled.xml")
	require.Empty(t, problems)
	assert.Equal(t, settings.Profiles, again.Profiles)
	assert.Equal(t, settings.Mirrors, again.Mirrors)
}

func TestSettingsConfigMap(t *testing.T) {
	settings, err := NewSettings(WithMirrors(NewMirror("https://nexus/repository/all@id=nexus@mirrorOf=*")))
	require.NoError(t, err)

	cm, err := SettingsConfigMap("build", "camel", settings, map[string]string{"team": "build"})
	require.NoError(t, err)

	assert.Equal(t, "camel-maven-settings", cm.Name)
	assert.Equal(t, "build", cm.Namespace)
	assert.Equal(t, "ConfigMap", cm.Kind)
	assert.Equal(t, map[string]string{"app": "camel-k", "team": "build"}, cm.Labels)
	assert.Contains(t, cm.Data["settings.xml"], "<mirrorOf>*</mirrorOf>")
	assert.Equal(t, digest.ComputeForSettings([]byte(cm.Data["settings.xml"])), cm.Annotations[SettingsConfigMapDigestAnnotation])

	other, err := SettingsConfigMap("build", "camel", Settings{}, nil)
	require.NoError(t, err)
	assert.NotEqual(t, cm.Annotations[SettingsConfigMapDigestAnnotation], other.Annotations[SettingsConfigMapDigestAnnotation])
}

func TestNewRepository(t *testing.T) {
	r := NewRepository("http://nexus:8081/repository/public@id=my-repo@name=Mine@snapshots@noreleases@checksumpolicy=fail@updatepolicy=always")

	assert.Equal(t, "http://nexus:8081/repository/public", r.URL)
	assert.Equal(t, "my-repo", r.ID)
	assert.Equal(t, "Mine", r.Name)

	remote := NewRemoteRepository(r)
	assert.False(t, remote.Releases.Enabled)
	assert.True(t, remote.Snapshots.Enabled)
	assert.Equal(t, ChecksumPolicyFail, remote.Releases.ChecksumPolicy)
	assert.Equal(t, UpdatePolicyAlways, remote.Snapshots.UpdatePolicy)
}

func TestNewRepositoryDefaults(t *testing.T) {
	remote := NewRemoteRepository(NewRepository("https://repo.example.com/maven"))

	assert.Equal(t, "https://repo.example.com/maven", remote.URL)
	assert.True(t, remote.Releases.Enabled)
	assert.False(t, remote.Snapshots.Enabled)
	assert.Equal(t, "https", remote.Protocol())
	assert.Equal(t, "repo.example.com", remote.Host())
}

func TestParseMirrors(t *testing.T) {
	mirrors := ParseMirrors([]string{"", " https://m1@id=m1@mirrorOf=central@blocked ", "https://m2@id=m2@mirrorOf=*@layout=legacy"})

	require.Len(t, mirrors, 2)
	assert.Equal(t, Mirror{ID: "m1", URL: "https://m1", MirrorOf: "central", Blocked: true}, mirrors[0])
	assert.Equal(t, "legacy", mirrors[1].Layout)
}

func TestDefaultRemoteRepository(t *testing.T) {
	central := DefaultRemoteRepository()

	assert.Equal(t, "central", central.ID)
	assert.Equal(t, "https://repo.maven.apache.org/maven2", central.URL)
	assert.Equal(t, Policy{Enabled: true, UpdatePolicy: UpdatePolicyDaily, ChecksumPolicy: ChecksumPolicyWarn}, central.Releases)
	assert.Equal(t, Policy{Enabled: false, UpdatePolicy: UpdatePolicyDaily, ChecksumPolicy: ChecksumPolicyWarn}, central.Snapshots)
}

func TestPolicies(t *testing.T) {
	for _, value := range []string{"never", "daily", "always", "interval:5"} {
		_, err := ParseUpdatePolicy(value)
		assert.NoError(t, err, value)
	}
	for _, value := range []string{"hourly", "interval:", "interval:x"} {
		_, err := ParseUpdatePolicy(value)
		assert.Error(t, err, value)
	}

	minutes, err := UpdatePolicyInterval(15).Interval()
	require.NoError(t, err)
	assert.Equal(t, 15, minutes)

	p, err := ParseChecksumPolicy("")
	require.NoError(t, err)
	assert.Equal(t, ChecksumPolicyWarn, p)

	_, err = ParseChecksumPolicy("strict")
	assert.Error(t, err)

	resolved := (&RepositoryPolicy{UpdatePolicy: "hourly", ChecksumPolicy: "strict"}).Resolve()
	assert.Equal(t, DefaultPolicy(), resolved)
}

func TestNodeWithout(t *testing.T) {
	settings, problems := ParseSettings([]byte(settingsXML), "settings.xml")
	require.Empty(t, problems)

	config := settings.Servers[0].Configuration
	stripped := config.Without("wagonProvider")

	assert.Nil(t, stripped.Child("wagonProvider"))
	assert.NotNil(t, stripped.Child("httpHeaders"))
	assert.NotNil(t, config.Child("wagonProvider"))

	var nilNode *Node
	assert.Nil(t, nilNode.Without("wagonProvider"))
}
