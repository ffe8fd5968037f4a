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
	"encoding/xml"
)

// Settings represent a maven settings.
type Settings struct {
	XMLName           xml.Name  `json:"-"`
	XMLNs             string    `xml:"xmlns,attr,omitempty" json:"-"`
	XMLNsXsi          string    `xml:"xmlns:xsi,attr,omitempty" json:"-"`
	XsiSchemaLocation string    `xml:"xsi:schemaLocation,attr,omitempty" json:"-"`
	LocalRepository   string    `xml:"localRepository,omitempty" json:"localRepository,omitempty"`
	InteractiveMode   *bool     `xml:"interactiveMode,omitempty" json:"interactiveMode,omitempty"`
	Offline           *bool     `xml:"offline,omitempty" json:"offline,omitempty"`
	PluginGroups      []string  `xml:"pluginGroups>pluginGroup,omitempty" json:"pluginGroups,omitempty"`
	Servers           []Server  `xml:"servers>server,omitempty" json:"servers,omitempty" validate:"dive"`
	Mirrors           []Mirror  `xml:"mirrors>mirror,omitempty" json:"mirrors,omitempty" validate:"dive"`
	Proxies           []Proxy   `xml:"proxies>proxy,omitempty" json:"proxies,omitempty" validate:"dive"`
	Profiles          []Profile `xml:"profiles>profile,omitempty" json:"profiles,omitempty" validate:"dive"`
	ActiveProfiles    []string  `xml:"activeProfiles>activeProfile,omitempty" json:"activeProfiles,omitempty"`
}

// IsOffline defaults to false when the settings do not say otherwise.
func (s Settings) IsOffline() bool {
	return s.Offline != nil && *s.Offline
}

// IsInteractiveMode defaults to true when the settings do not say otherwise.
func (s Settings) IsInteractiveMode() bool {
	return s.InteractiveMode == nil || *s.InteractiveMode
}

// ProfilesAsMap indexes the profiles by id. The first declaration of an id wins.
func (s Settings) ProfilesAsMap() map[string]Profile {
	profiles := make(map[string]Profile, len(s.Profiles))
	for _, p := range s.Profiles {
		if _, ok := profiles[p.ID]; !ok {
			profiles[p.ID] = p
		}
	}
	return profiles
}

// Server holds the credentials used to reach the repository, mirror or proxy with the same id.
type Server struct {
	ID                   string `xml:"id" json:"id" validate:"required"`
	Username             string `xml:"username,omitempty" json:"username,omitempty"`
	Password             string `xml:"password,omitempty" json:"password,omitempty"`
	PrivateKey           string `xml:"privateKey,omitempty" json:"privateKey,omitempty"`
	Passphrase           string `xml:"passphrase,omitempty" json:"passphrase,omitempty"`
	FilePermissions      string `xml:"filePermissions,omitempty" json:"filePermissions,omitempty"`
	DirectoryPermissions string `xml:"directoryPermissions,omitempty" json:"directoryPermissions,omitempty"`
	Configuration        *Node  `xml:"configuration,omitempty" json:"configuration,omitempty"`
}

// Mirror --.
type Mirror struct {
	ID              string `xml:"id" json:"id" validate:"required"`
	Name            string `xml:"name,omitempty" json:"name,omitempty"`
	URL             string `xml:"url" json:"url" validate:"required"`
	Layout          string `xml:"layout,omitempty" json:"layout,omitempty"`
	MirrorOf        string `xml:"mirrorOf" json:"mirrorOf" validate:"required"`
	MirrorOfLayouts string `xml:"mirrorOfLayouts,omitempty" json:"mirrorOfLayouts,omitempty"`
	Blocked         bool   `xml:"blocked,omitempty" json:"blocked,omitempty"`
}

// Proxy --.
type Proxy struct {
	ID            string `xml:"id,omitempty" json:"id,omitempty"`
	Active        *bool  `xml:"active,omitempty" json:"active,omitempty"`
	Protocol      string `xml:"protocol,omitempty" json:"protocol,omitempty"`
	Host          string `xml:"host" json:"host" validate:"required"`
	Port          string `xml:"port,omitempty" json:"port,omitempty" validate:"omitempty,numeric"`
	Username      string `xml:"username,omitempty" json:"username,omitempty"`
	Password      string `xml:"password,omitempty" json:"password,omitempty"`
	NonProxyHosts string `xml:"nonProxyHosts,omitempty" json:"nonProxyHosts,omitempty"`
}

// IsActive defaults to true when the proxy does not say otherwise.
func (p Proxy) IsActive() bool {
	return p.Active == nil || *p.Active
}

// GetProtocol defaults to http.
func (p Proxy) GetProtocol() string {
	if p.Protocol == "" {
		return "http"
	}
	return p.Protocol
}

// Profile --.
type Profile struct {
	ID                 string       `xml:"id" json:"id" validate:"required"`
	Activation         *Activation  `xml:"activation,omitempty" json:"activation,omitempty"`
	Properties         Properties   `xml:"properties,omitempty" json:"properties,omitempty"`
	Repositories       []Repository `xml:"repositories>repository,omitempty" json:"repositories,omitempty" validate:"dive"`
	PluginRepositories []Repository `xml:"pluginRepositories>pluginRepository,omitempty" json:"pluginRepositories,omitempty" validate:"dive"`
}

// Activation --.
type Activation struct {
	ActiveByDefault bool                `xml:"activeByDefault,omitempty" json:"activeByDefault,omitempty"`
	JDK             string              `xml:"jdk,omitempty" json:"jdk,omitempty"`
	OS              *ActivationOS       `xml:"os,omitempty" json:"os,omitempty"`
	Property        *ActivationProperty `xml:"property,omitempty" json:"property,omitempty"`
	File            *ActivationFile     `xml:"file,omitempty" json:"file,omitempty"`
}

// HasConditions reports whether the activation declares anything else than activeByDefault.
func (a *Activation) HasConditions() bool {
	if a == nil {
		return false
	}
	return a.JDK != "" || a.OS != nil || a.Property != nil || a.File != nil
}

// ActivationOS --.
type ActivationOS struct {
	Name    string `xml:"name,omitempty" json:"name,omitempty"`
	Family  string `xml:"family,omitempty" json:"family,omitempty"`
	Arch    string `xml:"arch,omitempty" json:"arch,omitempty"`
	Version string `xml:"version,omitempty" json:"version,omitempty"`
}

// ActivationProperty --.
type ActivationProperty struct {
	Name  string `xml:"name" json:"name"`
	Value string `xml:"value,omitempty" json:"value,omitempty"`
}

// ActivationFile --.
type ActivationFile struct {
	Exists  string `xml:"exists,omitempty" json:"exists,omitempty"`
	Missing string `xml:"missing,omitempty" json:"missing,omitempty"`
}

// Repository --.
type Repository struct {
	ID        string            `xml:"id" json:"id" validate:"required,ne=local"`
	Name      string            `xml:"name,omitempty" json:"name,omitempty"`
	URL       string            `xml:"url" json:"url" validate:"required"`
	Layout    string            `xml:"layout,omitempty" json:"layout,omitempty"`
	Releases  *RepositoryPolicy `xml:"releases,omitempty" json:"releases,omitempty"`
	Snapshots *RepositoryPolicy `xml:"snapshots,omitempty" json:"snapshots,omitempty"`
}

// GetLayout defaults to "default".
func (r Repository) GetLayout() string {
	if r.Layout == "" {
		return DefaultLayout
	}
	return r.Layout
}

// RepositoryPolicy --.
type RepositoryPolicy struct {
	Enabled        *bool  `xml:"enabled,omitempty" json:"enabled,omitempty"`
	UpdatePolicy   string `xml:"updatePolicy,omitempty" json:"updatePolicy,omitempty" validate:"omitempty,updatepolicy"`
	ChecksumPolicy string `xml:"checksumPolicy,omitempty" json:"checksumPolicy,omitempty" validate:"omitempty,oneof=fail warn ignore"`
}

// Properties --.
type Properties map[string]string

type propertiesEntry struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// AddAll --.
func (m Properties) AddAll(properties map[string]string) {
	for k, v := range properties {
		m[k] = v
	}
}

// MarshalXML --.
func (m Properties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if len(m) == 0 {
		return nil
	}

	err := e.EncodeToken(start)
	if err != nil {
		return err
	}

	for _, k := range sortedKeys(m) {
		if err := e.Encode(propertiesEntry{XMLName: xml.Name{Local: k}, Value: m[k]}); err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

// UnmarshalXML --.
func (m *Properties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	if *m == nil {
		*m = Properties{}
	}
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var value string
			if err := d.DecodeElement(&value, &t); err != nil {
				return err
			}
			(*m)[t.Name.Local] = value
		case xml.EndElement:
			return nil
		}
	}
}
