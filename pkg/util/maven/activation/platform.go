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

package activation

import (
	"runtime"
	"strings"
)

// Platform describes the running operating system, using the names a JVM reports.
type Platform struct {
	Name    string `json:"name"`
	Arch    string `json:"arch"`
	Version string `json:"version"`
}

// CurrentPlatform --.
func CurrentPlatform() Platform {
	return Platform{
		Name:    osName(runtime.GOOS),
		Arch:    osArch(runtime.GOARCH),
		Version: osVersion(),
	}
}

// IsFamily tells if the platform belongs to the given family (windows, unix, mac, ...).
func (p Platform) IsFamily(family string) bool {
	name := strings.ToLower(p.Name)
	switch strings.ToLower(family) {
	case "windows":
		return strings.Contains(name, "windows")
	case "win9x":
		return strings.Contains(name, "windows") &&
			(strings.Contains(name, "95") || strings.Contains(name, "98") || strings.Contains(name, "me") || strings.Contains(name, "ce"))
	case "dos":
		return strings.Contains(name, "windows")
	case "mac":
		return strings.Contains(name, "mac")
	case "unix":
		return !strings.Contains(name, "windows") && !strings.Contains(name, "openvms") &&
			(!strings.Contains(name, "mac") || strings.HasSuffix(name, "x"))
	case "os/2":
		return strings.Contains(name, "os/2")
	case "netware":
		return strings.Contains(name, "netware")
	case "tandem":
		return strings.Contains(name, "nonstop_kernel")
	case "z/os":
		return strings.Contains(name, "z/os") || strings.Contains(name, "os/390")
	case "os/400":
		return strings.Contains(name, "os/400")
	case "openvms":
		return strings.Contains(name, "openvms")
	default:
		return strings.Contains(name, strings.ToLower(family))
	}
}

// Family returns the most specific family of the platform.
func (p Platform) Family() string {
	for _, f := range []string{"windows", "mac", "unix"} {
		if p.IsFamily(f) {
			return f
		}
	}
	return ""
}

func osName(goos string) string {
	switch goos {
	case "linux", "android":
		return "Linux"
	case "darwin", "ios":
		return "Mac OS X"
	case "windows":
		return "Windows"
	case "freebsd":
		return "FreeBSD"
	case "netbsd":
		return "NetBSD"
	case "openbsd":
		return "OpenBSD"
	case "solaris", "illumos":
		return "SunOS"
	case "aix":
		return "AIX"
	default:
		return goos
	}
}

func osArch(goarch string) string {
	switch goarch {
	case "arm64":
		return "aarch64"
	case "386":
		return "x86"
	default:
		return goarch
	}
}
