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
	"regexp"
	"strings"

	"github.com/apache/camel-k-resolver/pkg/util/maven"
)

type proxyDef struct {
	proxy         maven.RemoteProxy
	nonProxyHosts []*regexp.Regexp
}

// ProxySelector picks the proxy to be used to reach a repository.
type ProxySelector struct {
	proxies []proxyDef
}

// NewProxySelector --.
func NewProxySelector() *ProxySelector {
	return &ProxySelector{}
}

// Add registers a proxy along with the hosts it must not be used for, as a | or ,
// separated list of host names where * matches any sequence of characters.
func (s *ProxySelector) Add(proxy maven.RemoteProxy, nonProxyHosts string) *ProxySelector {
	s.proxies = append(s.proxies, proxyDef{
		proxy:         proxy,
		nonProxyHosts: compileNonProxyHosts(nonProxyHosts),
	})
	return s
}

// Len --.
func (s *ProxySelector) Len() int {
	return len(s.proxies)
}

// Select returns the proxy for the given repository, nil if none applies.
func (s *ProxySelector) Select(repo maven.RemoteRepository) *maven.RemoteProxy {
	return s.ProxyFor(repo.Protocol(), repo.Host())
}

// ProxyFor returns the first proxy registered for the protocol whose exclusions do not
// cover the host.
func (s *ProxySelector) ProxyFor(protocol string, host string) *maven.RemoteProxy {
	for i := range s.proxies {
		def := &s.proxies[i]
		if !strings.EqualFold(def.proxy.Protocol, protocol) {
			continue
		}
		if isNonProxyHost(def.nonProxyHosts, host) {
			continue
		}
		p := def.proxy
		return &p
	}
	return nil
}

func compileNonProxyHosts(value string) []*regexp.Regexp {
	var res []*regexp.Regexp
	for _, h := range strings.FieldsFunc(value, func(r rune) bool { return r == '|' || r == ',' }) {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		parts := strings.Split(h, "*")
		for i := range parts {
			parts[i] = regexp.QuoteMeta(parts[i])
		}
		res = append(res, regexp.MustCompile("(?i)^"+strings.Join(parts, ".*")+"$"))
	}
	return res
}

func isNonProxyHost(patterns []*regexp.Regexp, host string) bool {
	if host == "" {
		return false
	}
	for _, p := range patterns {
		if p.MatchString(host) {
			return true
		}
	}
	return false
}
