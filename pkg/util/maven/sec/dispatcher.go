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

package sec

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"

	"github.com/apache/camel-k-resolver/pkg/util"
)

const (
	// SystemProperty overrides the location of the security settings.
	SystemProperty = "settings.security"
	// DefaultLocation --.
	DefaultLocation = "~/.m2/settings-security.xml"

	masterPassphrase = "settings.security"
	maxRelocations   = 16
)

// SettingsSecurity is the content of settings-security.xml.
type SettingsSecurity struct {
	XMLName    xml.Name `xml:"settingsSecurity"`
	Master     string   `xml:"master,omitempty"`
	Relocation string   `xml:"relocation,omitempty"`
}

// Location returns the path of the security settings, honouring the settings.security
// system property.
func Location(systemProperties map[string]string) (string, error) {
	location := DefaultLocation
	if v := systemProperties[SystemProperty]; v != "" {
		location = v
	}
	return homedir.Expand(location)
}

// ReadSettingsSecurity loads the security settings at the given location, following
// relocations. A missing file yields nil.
func ReadSettingsSecurity(location string) (*SettingsSecurity, error) {
	for i := 0; i < maxRelocations; i++ {
		exists, err := util.FileExists(location)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot access %s", location)
		}
		if !exists {
			return nil, nil
		}

		data, err := os.ReadFile(location)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot read %s", location)
		}

		sec := SettingsSecurity{}
		decoder := xml.NewDecoder(bytes.NewReader(data))
		if err := decoder.Decode(&sec); err != nil {
			return nil, errors.Wrapf(err, "cannot parse %s", location)
		}
		if sec.Relocation == "" {
			return &sec, nil
		}

		relocation, err := homedir.Expand(sec.Relocation)
		if err != nil {
			return nil, err
		}
		location = util.ResolvePath(filepath.Dir(location), relocation)
	}
	return nil, errors.Errorf("too many relocations of the security settings")
}

// Dispatcher decrypts {...} values with the master password of the security settings.
// Plain values are returned untouched. A Dispatcher is not safe for concurrent use.
type Dispatcher struct {
	Cipher   Cipher
	Location string

	master   string
	resolved bool
}

// NewDispatcher --.
func NewDispatcher(location string) *Dispatcher {
	return &Dispatcher{Location: location}
}

// Master returns the clear master password.
func (d *Dispatcher) Master() (string, error) {
	if d.resolved {
		return d.master, nil
	}

	sec, err := ReadSettingsSecurity(d.Location)
	if err != nil {
		return "", err
	}
	if sec == nil {
		return "", errors.Errorf("master password file is not found: %s", d.Location)
	}
	if sec.Master == "" {
		return "", errors.Errorf("master password is not set in %s", d.Location)
	}

	master, err := d.Cipher.DecryptDecorated(sec.Master, masterPassphrase)
	if err != nil {
		return "", errors.Wrap(err, "cannot decrypt master password")
	}

	d.master = master
	d.resolved = true
	return master, nil
}

// Decrypt --.
func (d *Dispatcher) Decrypt(value string) (string, error) {
	if !IsEncrypted(value) {
		return value, nil
	}
	bare, err := Undecorate(value)
	if err != nil {
		return "", err
	}
	master, err := d.Master()
	if err != nil {
		return "", err
	}
	return d.Cipher.Decrypt(bare, master)
}

// EncryptMaster encrypts a master password, to be stored in settings-security.xml.
func EncryptMaster(c Cipher, password string) (string, error) {
	return c.EncryptAndDecorate(password, masterPassphrase)
}

// EncryptPassword encrypts a server password with the master password of the dispatcher.
func (d *Dispatcher) EncryptPassword(password string) (string, error) {
	master, err := d.Master()
	if err != nil {
		return "", err
	}
	return d.Cipher.EncryptAndDecorate(password, master)
}
