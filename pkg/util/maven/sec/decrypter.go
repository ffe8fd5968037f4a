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
	"github.com/apache/camel-k-resolver/pkg/util/maven"
)

// Decryptor decrypts a single value.
type Decryptor interface {
	Decrypt(value string) (string, error)
}

// Result holds the decrypted credentials and the problems met on the way.
type Result struct {
	Servers  []maven.Server
	Proxies  []maven.Proxy
	Problems maven.Problems
}

// Decrypter decrypts the credentials of servers and proxies.
type Decrypter struct {
	Decryptor Decryptor
}

// NewDecrypter --.
func NewDecrypter(d Decryptor) Decrypter {
	return Decrypter{Decryptor: d}
}

// Decrypt returns copies of the given entries with their secrets decrypted. A value that
// cannot be decrypted is kept as is and reported as a warning.
func (d Decrypter) Decrypt(servers []maven.Server, proxies []maven.Proxy) Result {
	res := Result{}

	if len(servers) > 0 {
		res.Servers = make([]maven.Server, 0, len(servers))
	}
	for _, s := range servers {
		source := "server: " + s.ID
		s.Password = d.decrypt(&res.Problems, source, "password", s.Password)
		s.Passphrase = d.decrypt(&res.Problems, source, "passphrase", s.Passphrase)
		s.Configuration = s.Configuration.DeepCopy()
		res.Servers = append(res.Servers, s)
	}

	if len(proxies) > 0 {
		res.Proxies = make([]maven.Proxy, 0, len(proxies))
	}
	for _, p := range proxies {
		p.Password = d.decrypt(&res.Problems, "proxy: "+p.ID, "password", p.Password)
		res.Proxies = append(res.Proxies, p)
	}

	return res
}

func (d Decrypter) decrypt(problems *maven.Problems, source string, field string, value string) string {
	if value == "" || !IsEncrypted(value) {
		return value
	}
	decrypted, err := d.Decryptor.Decrypt(value)
	if err != nil {
		problems.Add(maven.SeverityWarning, source, "Failed to decrypt "+field, err)
		return value
	}
	return decrypted
}
