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

package cli

import (
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Args are the options of a Maven command line that affect how settings, profiles
// and repositories are resolved.
type Args struct {
	UserSettings       string
	GlobalSettings     string
	ActivateProfiles   []string
	DeactivateProfiles []string
	Offline            bool
	UpdateSnapshots    bool
	NoSnapshotUpdates  bool
	StrictChecksums    bool
	LaxChecksums       bool
	BatchMode          bool
	SystemProperties   map[string]string
}

// Interactive --.
func (a *Args) Interactive() bool {
	return !a.BatchMode
}

// multi-letter short options, pflag only knows single letter shorthands.
var longForms = map[string]string{
	"-gs":  "--global-settings",
	"-gt":  "--global-toolchains",
	"-nsu": "--no-snapshot-updates",
	"-cpu": "--check-plugin-updates",
	"-npu": "--no-plugin-updates",
	"-npr": "--no-plugin-registry",
	"-up":  "--update-plugins",
	"-ff":  "--fail-fast",
	"-fae": "--fail-at-end",
	"-fn":  "--fail-never",
	"-rf":  "--resume-from",
	"-pl":  "--projects",
	"-am":  "--also-make",
	"-amd": "--also-make-dependents",
	"-emp": "--encrypt-master-password",
	"-ep":  "--encrypt-password",
	"-llr": "--legacy-local-repository",
	"-ntp": "--no-transfer-progress",
	"-itr": "--ignore-transitive-repositories",
}

// Parse splits the given command line the way a shell does and extracts the options
// known to Maven. Goals, phases and unknown options are ignored.
func Parse(line string) (*Args, error) {
	args := &Args{
		SystemProperties: make(map[string]string),
	}
	if strings.TrimSpace(line) == "" {
		return args, nil
	}

	tokens, err := shellwords.Parse(line)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse maven command line %q", line)
	}

	var profiles []string
	var defines []string

	fs := pflag.NewFlagSet("mvn", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetInterspersed(true)
	fs.Usage = func() {}

	fs.StringVarP(&args.UserSettings, "settings", "s", "", "")
	fs.StringVar(&args.GlobalSettings, "global-settings", "", "")
	fs.StringArrayVarP(&profiles, "activate-profiles", "P", nil, "")
	fs.StringArrayVarP(&defines, "define", "D", nil, "")
	fs.BoolVarP(&args.Offline, "offline", "o", false, "")
	fs.BoolVarP(&args.UpdateSnapshots, "update-snapshots", "U", false, "")
	fs.BoolVar(&args.NoSnapshotUpdates, "no-snapshot-updates", false, "")
	fs.BoolVarP(&args.StrictChecksums, "strict-checksums", "C", false, "")
	fs.BoolVarP(&args.LaxChecksums, "lax-checksums", "c", false, "")
	fs.BoolVarP(&args.BatchMode, "batch-mode", "B", false, "")
	ignored(fs)

	if err := fs.Parse(normalize(tokens)); err != nil {
		return nil, errors.Wrapf(err, "unable to parse maven command line %q", line)
	}

	for _, value := range profiles {
		for _, id := range strings.Split(value, ",") {
			id = strings.TrimSpace(id)
			switch {
			case id == "":
				continue
			case strings.HasPrefix(id, "-"), strings.HasPrefix(id, "!"):
				if id = id[1:]; id != "" {
					args.DeactivateProfiles = append(args.DeactivateProfiles, id)
				}
			case strings.HasPrefix(id, "+"):
				if id = id[1:]; id != "" {
					args.ActivateProfiles = append(args.ActivateProfiles, id)
				}
			default:
				args.ActivateProfiles = append(args.ActivateProfiles, id)
			}
		}
	}

	for _, define := range defines {
		name, value := define, "true"
		if eq := strings.Index(define, "="); eq >= 0 {
			name, value = define[:eq], define[eq+1:]
		}
		if name = strings.TrimSpace(name); name != "" {
			args.SystemProperties[name] = value
		}
	}

	return args, nil
}

func normalize(tokens []string) []string {
	res := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if long, ok := longForms[t]; ok {
			t = long
		}
		res = append(res, t)
	}
	return res
}

// ignored registers the remaining Maven options so that their values are consumed.
func ignored(fs *pflag.FlagSet) {
	for _, name := range []string{
		"global-toolchains", "resume-from", "projects",
	} {
		fs.String(name, "", "")
	}
	for _, f := range []struct{ name, shorthand string }{
		{"file", "f"}, {"toolchains", "t"}, {"log-file", "l"}, {"threads", "T"}, {"builder", "b"},
	} {
		fs.StringP(f.name, f.shorthand, "", "")
	}
	for _, f := range []struct{ name, shorthand string }{
		{"help", "h"}, {"version", "v"}, {"show-version", "V"}, {"quiet", "q"}, {"debug", "X"},
		{"errors", "e"}, {"non-recursive", "N"},
	} {
		fs.BoolP(f.name, f.shorthand, false, "")
	}
	for _, name := range []string{
		"check-plugin-updates", "no-plugin-updates", "no-plugin-registry", "update-plugins",
		"fail-fast", "fail-at-end", "fail-never", "also-make", "also-make-dependents",
		"legacy-local-repository", "no-transfer-progress", "ignore-transitive-repositories",
	} {
		fs.Bool(name, false, "")
	}

	// optional argument
	for _, name := range []string{"encrypt-master-password", "encrypt-password"} {
		fs.String(name, "", "")
		fs.Lookup(name).NoOptDefVal = " "
	}
}
