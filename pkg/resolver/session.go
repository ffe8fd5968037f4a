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
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/apache/camel-k-resolver/pkg/util"
	"github.com/apache/camel-k-resolver/pkg/util/maven"
	"github.com/apache/camel-k-resolver/pkg/util/maven/cli"
	"github.com/apache/camel-k-resolver/pkg/util/maven/sec"
	"github.com/apache/camel-k-resolver/pkg/util/maven/selector"
	"github.com/apache/camel-k-resolver/pkg/util/monitoring"
)

const (
	defaultProxyPort = 8080

	propertyUserAgent   = "aether.connector.userAgent"
	propertyInteractive = "aether.interactive"
	propertyWagonConfig = "aether.connector.wagon.config."
	propertyFileMode    = "aether.connector.perms.fileMode."
	propertyDirMode     = "aether.connector.perms.dirMode."

	wagonProvider = "wagonProvider"
)

// Session is everything the artifact resolution needs to reach the repositories.
type Session struct {
	LocalRepository string `json:"localRepository"`
	Offline         bool   `json:"offline"`
	// UpdatePolicy and ChecksumPolicy override the ones of every repository when set.
	UpdatePolicy   maven.UpdatePolicy   `json:"updatePolicy,omitempty"`
	ChecksumPolicy maven.ChecksumPolicy `json:"checksumPolicy,omitempty"`

	MirrorSelector         *selector.MirrorSelector         `json:"-"`
	ProxySelector          *selector.ProxySelector          `json:"-"`
	AuthenticationSelector *selector.AuthenticationSelector `json:"-"`

	// ConfigProperties holds strings, except the wagon configurations that are *maven.Node.
	ConfigProperties map[string]interface{} `json:"configProperties"`
	// Problems met while decrypting the credentials.
	Problems maven.Problems `json:"-"`
}

// StringProperties returns the configuration properties as strings, the wagon
// configurations being rendered as XML.
func (s *Session) StringProperties() (map[string]string, error) {
	props := make(map[string]string, len(s.ConfigProperties))
	for k, v := range s.ConfigProperties {
		switch value := v.(type) {
		case string:
			props[k] = value
		case *maven.Node:
			data, err := xml.Marshal(value)
			if err != nil {
				return nil, err
			}
			props[k] = string(data)
		default:
			props[k] = fmt.Sprintf("%v", value)
		}
	}
	return props, nil
}

// override applies the update and checksum policies of the session to a repository policy.
func (s *Session) override(p maven.Policy) maven.Policy {
	if s.UpdatePolicy != "" {
		p.UpdatePolicy = s.UpdatePolicy
	}
	if s.ChecksumPolicy != "" {
		p.ChecksumPolicy = s.ChecksumPolicy
	}
	return p
}

type sessionBuilder struct {
	args             *cli.Args
	systemProperties map[string]string
	userHome         string
	metrics          *monitoring.Metrics
}

func (b sessionBuilder) build(settings maven.Settings) *Session {
	session := &Session{
		LocalRepository:        localRepository(settings, b.userHome),
		Offline:                settings.IsOffline() || b.args.Offline,
		MirrorSelector:         selector.NewMirrorSelector(),
		ProxySelector:          selector.NewProxySelector(),
		AuthenticationSelector: selector.NewAuthenticationSelector(),
		ConfigProperties:       make(map[string]interface{}),
	}

	switch {
	case b.args.NoSnapshotUpdates:
		session.UpdatePolicy = maven.UpdatePolicyNever
	case b.args.UpdateSnapshots:
		session.UpdatePolicy = maven.UpdatePolicyAlways
	}
	switch {
	case b.args.StrictChecksums:
		session.ChecksumPolicy = maven.ChecksumPolicyFail
	case b.args.LaxChecksums:
		session.ChecksumPolicy = maven.ChecksumPolicyWarn
	}

	decrypted := b.decrypt(settings)
	if len(decrypted.Problems) > 0 {
		Log.Warn("Problem decrypting maven settings", "problems", decrypted.Problems.Err().Error())
		b.metrics.DecryptionFailures(len(decrypted.Problems))
	}
	session.Problems = decrypted.Problems

	for _, m := range settings.Mirrors {
		session.MirrorSelector.Add(m)
	}

	for _, p := range decrypted.Proxies {
		if !p.IsActive() {
			continue
		}
		proxy := maven.RemoteProxy{
			Protocol: p.GetProtocol(),
			Host:     p.Host,
			Port:     defaultProxyPort,
		}
		if port, err := strconv.Atoi(p.Port); err == nil {
			proxy.Port = port
		}
		if p.Username != "" {
			proxy.Authentication = &maven.Authentication{
				Username: p.Username,
				Password: p.Password,
			}
		}
		session.ProxySelector.Add(proxy, p.NonProxyHosts)
	}

	session.ConfigProperties[propertyUserAgent] = UserAgent(b.systemProperties)
	session.ConfigProperties[propertyInteractive] = strconv.FormatBool(settings.IsInteractiveMode() && b.args.Interactive())
	for k, v := range b.systemProperties {
		session.ConfigProperties[k] = v
	}

	for _, s := range decrypted.Servers {
		session.AuthenticationSelector.Add(s.ID, maven.Authentication{
			Username:   s.Username,
			Password:   s.Password,
			PrivateKey: s.PrivateKey,
			Passphrase: s.Passphrase,
		})

		if s.Configuration != nil {
			session.ConfigProperties[propertyWagonConfig+s.ID] = s.Configuration.Without(wagonProvider)
		}
		if s.FilePermissions != "" {
			session.ConfigProperties[propertyFileMode+s.ID] = s.FilePermissions
		}
		if s.DirectoryPermissions != "" {
			session.ConfigProperties[propertyDirMode+s.ID] = s.DirectoryPermissions
		}
	}

	return session
}

func (b sessionBuilder) decrypt(settings maven.Settings) sec.Result {
	location, err := sec.Location(b.systemProperties)
	if err != nil {
		res := sec.Result{Servers: settings.Servers, Proxies: settings.Proxies}
		res.Problems.Add(maven.SeverityWarning, sec.SystemProperty, "cannot locate the security settings", err)
		return res
	}
	return sec.NewDecrypter(sec.NewDispatcher(location)).Decrypt(settings.Servers, settings.Proxies)
}

// localRepository returns the local repository of the settings, ~/.m2/repository if unset.
func localRepository(settings maven.Settings, userHome string) string {
	if settings.LocalRepository != "" {
		return settings.LocalRepository
	}
	return util.ResolvePath(userHome, filepath.Join(dotM2, "repository"))
}
