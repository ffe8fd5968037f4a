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

// Merge returns the settings obtained by overlaying dominant on top of recessive:
// scalars of dominant win when set, entries with an id are unioned by id with the
// dominant ones first, the string lists keep the dominant order then append the
// missing recessive entries. None of the arguments is modified.
func Merge(dominant Settings, recessive Settings) Settings {
	merged := Settings{
		XMLName:           dominant.XMLName,
		XMLNs:             dominant.XMLNs,
		XMLNsXsi:          dominant.XMLNsXsi,
		XsiSchemaLocation: dominant.XsiSchemaLocation,
		LocalRepository:   dominant.LocalRepository,
		InteractiveMode:   dominant.InteractiveMode,
		Offline:           dominant.Offline,
	}

	if merged.LocalRepository == "" {
		merged.LocalRepository = recessive.LocalRepository
	}
	if merged.InteractiveMode == nil {
		merged.InteractiveMode = recessive.InteractiveMode
	}
	if merged.Offline == nil {
		merged.Offline = recessive.Offline
	}

	merged.PluginGroups = mergeStrings(dominant.PluginGroups, recessive.PluginGroups)
	merged.ActiveProfiles = mergeStrings(dominant.ActiveProfiles, recessive.ActiveProfiles)

	merged.Servers = mergeByID(dominant.Servers, recessive.Servers, func(s Server) string { return s.ID })
	merged.Mirrors = mergeByID(dominant.Mirrors, recessive.Mirrors, func(m Mirror) string { return m.ID })
	merged.Proxies = mergeByID(dominant.Proxies, recessive.Proxies, func(p Proxy) string { return p.ID })
	merged.Profiles = mergeByID(dominant.Profiles, recessive.Profiles, func(p Profile) string { return p.ID })

	return merged
}

func mergeStrings(dominant []string, recessive []string) []string {
	if len(dominant) == 0 && len(recessive) == 0 {
		return nil
	}
	res := make([]string, 0, len(dominant)+len(recessive))
	seen := make(map[string]bool, len(dominant)+len(recessive))
	for _, s := range dominant {
		res = append(res, s)
		seen[s] = true
	}
	for _, s := range recessive {
		if !seen[s] {
			res = append(res, s)
			seen[s] = true
		}
	}
	return res
}

func mergeByID[T any](dominant []T, recessive []T, id func(T) string) []T {
	if len(dominant) == 0 && len(recessive) == 0 {
		return nil
	}
	res := make([]T, 0, len(dominant)+len(recessive))
	seen := make(map[string]bool, len(dominant))
	for _, e := range dominant {
		res = append(res, e)
		seen[id(e)] = true
	}
	for _, e := range recessive {
		if key := id(e); key == "" || !seen[key] {
			res = append(res, e)
		}
	}
	return res
}
