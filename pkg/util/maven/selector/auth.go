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
	"github.com/apache/camel-k-resolver/pkg/util/maven"
)

// AuthenticationSelector maps server ids to the credentials of the matching repositories.
type AuthenticationSelector struct {
	auths map[string]maven.Authentication
}

// NewAuthenticationSelector --.
func NewAuthenticationSelector() *AuthenticationSelector {
	return &AuthenticationSelector{
		auths: make(map[string]maven.Authentication),
	}
}

// Add registers the credentials of a server, empty credentials are ignored.
func (s *AuthenticationSelector) Add(id string, auth maven.Authentication) *AuthenticationSelector {
	if !auth.IsEmpty() {
		s.auths[id] = auth
	}
	return s
}

// Len --.
func (s *AuthenticationSelector) Len() int {
	return len(s.auths)
}

// Select --.
func (s *AuthenticationSelector) Select(repo maven.RemoteRepository) *maven.Authentication {
	if auth, ok := s.auths[repo.ID]; ok {
		return &auth
	}
	return nil
}
