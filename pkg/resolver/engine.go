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
	"github.com/prometheus/client_golang/prometheus"

	"github.com/apache/camel-k-resolver/pkg/util"
	"github.com/apache/camel-k-resolver/pkg/util/maven"
	"github.com/apache/camel-k-resolver/pkg/util/maven/activation"
	"github.com/apache/camel-k-resolver/pkg/util/maven/cli"
	"github.com/apache/camel-k-resolver/pkg/util/maven/sec"
	"github.com/apache/camel-k-resolver/pkg/util/monitoring"
)

const (
	kindRepositories       = "repositories"
	kindPluginRepositories = "pluginRepositories"
)

// Option customizes an Engine.
type Option func(e *Engine)

// WithSystem sets the repository system the resolved repositories are handed to.
func WithSystem(system RepositorySystem) Option {
	return func(e *Engine) {
		e.system = system
	}
}

// WithPlatform sets the platform OS activation conditions are evaluated against.
func WithPlatform(platform activation.Platform) Option {
	return func(e *Engine) {
		e.platform = &platform
	}
}

// WithRegisterer registers the engine metrics.
func WithRegisterer(registerer prometheus.Registerer) Option {
	return func(e *Engine) {
		e.registerer = registerer
	}
}

// WithExtraRepositories adds repositories after the ones of the active profiles.
func WithExtraRepositories(repositories ...maven.Repository) Option {
	return func(e *Engine) {
		e.extraRepositories = append(e.extraRepositories, repositories...)
	}
}

// WithSettingsOptions applies the given options to the effective settings.
func WithSettingsOptions(options ...maven.SettingsOption) Option {
	return func(e *Engine) {
		e.settingsOptions = append(e.settingsOptions, options...)
	}
}

// Engine computes the Maven settings, sessions and repositories of a build. The settings
// and the settings locations are computed once per Engine, an Engine is safe for
// concurrent use.
type Engine struct {
	env               Environment
	args              *cli.Args
	systemProperties  map[string]string
	platform          *activation.Platform
	system            RepositorySystem
	registerer        prometheus.Registerer
	extraRepositories []maven.Repository
	settingsOptions   []maven.SettingsOption
	metrics           *monitoring.Metrics

	userSettings   string
	globalSettings string
	loader         *Loader
}

// NewEngine parses the Maven command line of the environment and locates the settings
// files. Reading the settings is deferred to the first use.
func NewEngine(env Environment, opts ...Option) (*Engine, error) {
	e := &Engine{
		env:     env,
		system:  MirroringSystem{},
		metrics: monitoring.NewMetrics(),
	}
	for _, o := range opts {
		o(e)
	}

	args, err := cli.Parse(env.MavenArgs)
	if err != nil {
		return nil, &ConfigurationError{Message: "Failed to parse Maven command line arguments", Err: err}
	}
	e.args = args

	e.systemProperties = util.CopyMap(env.SystemProperties)
	if e.systemProperties == nil {
		e.systemProperties = make(map[string]string, len(args.SystemProperties))
	}
	for k, v := range args.SystemProperties {
		e.systemProperties[k] = v
	}

	if e.registerer != nil {
		if err := e.metrics.Register(e.registerer); err != nil {
			return nil, err
		}
	}

	locator := NewLocator(env, args, e.systemProperties)
	if location, ok := locator.UserSettings(); ok {
		e.userSettings = location
	} else if args.UserSettings != "" {
		Log.Warnf("User settings file %s does not exist", args.UserSettings)
	}
	if location, ok := locator.GlobalSettings(); ok {
		e.globalSettings = location
	} else if args.GlobalSettings != "" {
		Log.Warnf("Global settings file %s does not exist", args.GlobalSettings)
	}

	e.loader = &Loader{
		UserSettings:     e.userSettings,
		GlobalSettings:   e.globalSettings,
		SystemProperties: e.systemProperties,
		Variables:        env.Variables,
		Options:          e.settingsOptions,
		Metrics:          e.metrics,
	}

	return e, nil
}

// Settings returns the effective settings.
func (e *Engine) Settings() (maven.Settings, error) {
	return e.loader.Settings()
}

// Reload makes the next calls read the settings files again.
func (e *Engine) Reload() {
	e.loader.Invalidate()
}

// SettingsFiles returns the existing files the settings are built from, the security
// settings included.
func (e *Engine) SettingsFiles() []string {
	files := make([]string, 0, 3)
	for _, f := range []string{e.globalSettings, e.userSettings} {
		if f != "" {
			files = append(files, f)
		}
	}
	if location, err := sec.Location(e.systemProperties); err == nil {
		if ok, _ := util.FileExists(location); ok {
			files = append(files, location)
		}
	}
	return files
}

// NewSession builds a session out of the effective settings.
func (e *Engine) NewSession() (*Session, error) {
	settings, err := e.Settings()
	if err != nil {
		return nil, err
	}
	return e.NewSessionFor(settings), nil
}

// NewSessionFor builds a session out of the given settings.
func (e *Engine) NewSessionFor(settings maven.Settings) *Session {
	b := sessionBuilder{
		args:             e.args,
		systemProperties: e.systemProperties,
		userHome:         e.env.UserHome,
		metrics:          e.metrics,
	}
	return b.build(settings)
}

// RemoteRepositories returns the repositories of the effective settings, as queried
// through a session built out of them.
func (e *Engine) RemoteRepositories() ([]maven.RemoteRepository, error) {
	settings, err := e.Settings()
	if err != nil {
		return nil, err
	}
	return e.RemoteRepositoriesFor(settings), nil
}

// RemoteRepositoriesFor returns the repositories of the given settings, as queried
// through a session built out of them.
func (e *Engine) RemoteRepositoriesFor(settings maven.Settings) []maven.RemoteRepository {
	return e.RemoteRepositoriesWith(settings, e.NewSessionFor(settings))
}

// RemoteRepositoriesWith returns the repositories of the given settings, as queried
// through the given session.
func (e *Engine) RemoteRepositoriesWith(settings maven.Settings, session *Session) []maven.RemoteRepository {
	return e.resolve(settings, session, Repositories, kindRepositories)
}

// PluginRepositoriesWith is the plugin repositories counterpart of RemoteRepositoriesWith.
func (e *Engine) PluginRepositoriesWith(settings maven.Settings, session *Session) []maven.RemoteRepository {
	return e.resolve(settings, session, PluginRepositories, kindPluginRepositories)
}

// DeclaredRepositories returns the repositories of the given settings before mirrors,
// proxies and authentications apply.
func (e *Engine) DeclaredRepositories(settings maven.Settings) []maven.RemoteRepository {
	return e.declared(settings, Repositories)
}

// DeclaredPluginRepositories is the plugin repositories counterpart of DeclaredRepositories.
func (e *Engine) DeclaredPluginRepositories(settings maven.Settings) []maven.RemoteRepository {
	return e.declared(settings, PluginRepositories)
}

func (e *Engine) declared(settings maven.Settings, of RepositoriesOf) []maven.RemoteRepository {
	repositories, problems := ResolveRepositories(settings, e.selection(settings), e.activationContext(), e.extraRepositories, of)
	e.report(problems)
	return repositories
}

func (e *Engine) resolve(settings maven.Settings, session *Session, of RepositoriesOf, kind string) []maven.RemoteRepository {
	repositories, problems := ResolveRepositories(settings, e.selection(settings), e.activationContext(), e.extraRepositories, of)
	e.report(problems)

	repositories = e.system.NewResolutionRepositories(session, repositories)
	e.metrics.Repositories(kind, len(repositories))

	return repositories
}

// ActiveProfiles returns the profiles of the given settings active for the build.
func (e *Engine) ActiveProfiles(settings maven.Settings) []maven.Profile {
	profiles, problems := activation.Select(settings.Profiles, e.selection(settings), e.activationContext())
	e.report(problems)
	return profiles
}

// LocalRepository returns the local repository of the given settings.
func (e *Engine) LocalRepository(settings maven.Settings) string {
	return localRepository(settings, e.env.UserHome)
}

// CommandLine returns the parsed Maven command line.
func (e *Engine) CommandLine() cli.Args {
	return *e.args
}

// SystemProperties returns a copy of the system properties in use, the command line
// ones included.
func (e *Engine) SystemProperties() map[string]string {
	return util.CopyMap(e.systemProperties)
}

// UserSettings returns the user settings file, empty if there is none.
func (e *Engine) UserSettings() string {
	return e.userSettings
}

// GlobalSettings returns the global settings file, empty if there is none.
func (e *Engine) GlobalSettings() string {
	return e.globalSettings
}

func (e *Engine) selection(settings maven.Settings) activation.Selection {
	return activation.Selection{
		Activate:       e.args.ActivateProfiles,
		Deactivate:     e.args.DeactivateProfiles,
		ActiveProfiles: settings.ActiveProfiles,
	}
}

func (e *Engine) activationContext() activation.Context {
	projectDir := e.systemProperties[PropertyBaseDir]
	if projectDir == "" {
		projectDir = e.env.ProjectBaseDir
	}

	ctx := activation.Context{
		SystemProperties: e.systemProperties,
		Environment:      e.env.Variables,
		ProjectDir:       projectDir,
		JavaVersion:      activation.JavaVersion(e.systemProperties, e.env.JavaHome),
	}
	if e.platform != nil {
		ctx.Platform = *e.platform
	} else {
		ctx.Platform = activation.CurrentPlatform()
	}
	return ctx
}

func (e *Engine) report(problems maven.Problems) {
	for _, p := range problems {
		e.metrics.Problem(p.Severity.String())
		Log.Warn(p.Message)
	}
}
