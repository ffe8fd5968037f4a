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

package log

import (
	"fmt"
	"sync"

	"github.com/go-logr/logr"
)

// Log --.
var Log Logger

var sink = &delegatingSink{}

func init() {
	Log = Logger{
		delegate: logr.New(sink).WithName("camel-k-resolver"),
	}
}

// Logger --.
type Logger struct {
	delegate logr.Logger
}

// Debugf --.
func (l Logger) Debugf(format string, args ...interface{}) {
	l.delegate.V(1).Info(fmt.Sprintf(format, args...))
}

// Infof --.
func (l Logger) Infof(format string, args ...interface{}) {
	l.delegate.Info(fmt.Sprintf(format, args...))
}

// Warnf logs at info level, tagged so that warnings can be filtered.
func (l Logger) Warnf(format string, args ...interface{}) {
	l.delegate.Info(fmt.Sprintf(format, args...), "severity", "warning")
}

// Errorf --.
func (l Logger) Errorf(err error, format string, args ...interface{}) {
	l.delegate.Error(err, fmt.Sprintf(format, args...))
}

// Debug --.
func (l Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.delegate.V(1).Info(msg, keysAndValues...)
}

// Info --.
func (l Logger) Info(msg string, keysAndValues ...interface{}) {
	l.delegate.Info(msg, keysAndValues...)
}

// Warn --.
func (l Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.delegate.Info(msg, append([]interface{}{"severity", "warning"}, keysAndValues...)...)
}

// Error --.
func (l Logger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.delegate.Error(err, msg, keysAndValues...)
}

// WithName --.
func (l Logger) WithName(name string) Logger {
	return Logger{
		delegate: l.delegate.WithName(name),
	}
}

// WithValues --.
func (l Logger) WithValues(keysAndValues ...interface{}) Logger {
	return Logger{
		delegate: l.delegate.WithValues(keysAndValues...),
	}
}

// ForRepository --.
func (l Logger) ForRepository(id string, url string) Logger {
	return l.WithValues(
		"repository", id,
		"url", url,
	)
}

// ForServer --.
func (l Logger) ForServer(id string) Logger {
	return l.WithValues("server", id)
}

// AsLogger --.
func (l Logger) AsLogger() logr.Logger {
	return l.delegate
}

// SetLogger replaces the sink every Logger created from this package writes to,
// including the ones obtained before the call.
func SetLogger(l logr.Logger) {
	sink.set(l.GetSink())
}

// delegatingSink forwards to a sink that can be swapped once the process
// has parsed its logging configuration. It discards until then.
type delegatingSink struct {
	lock     sync.RWMutex
	delegate logr.LogSink
	info     logr.RuntimeInfo
}

func (s *delegatingSink) set(delegate logr.LogSink) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if delegate != nil {
		delegate.Init(s.info)
	}
	s.delegate = delegate
}

func (s *delegatingSink) current() logr.LogSink {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.delegate
}

func (s *delegatingSink) Init(info logr.RuntimeInfo) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.info = logr.RuntimeInfo{CallDepth: info.CallDepth + 1}
}

func (s *delegatingSink) Enabled(level int) bool {
	if d := s.current(); d != nil {
		return d.Enabled(level)
	}
	return false
}

func (s *delegatingSink) Info(level int, msg string, keysAndValues ...interface{}) {
	if d := s.current(); d != nil {
		d.Info(level, msg, keysAndValues...)
	}
}

func (s *delegatingSink) Error(err error, msg string, keysAndValues ...interface{}) {
	if d := s.current(); d != nil {
		d.Error(err, msg, keysAndValues...)
	}
}

func (s *delegatingSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	return &childSink{parent: s, values: keysAndValues}
}

func (s *delegatingSink) WithName(name string) logr.LogSink {
	return &childSink{parent: s, names: []string{name}}
}

// childSink records names and values and applies them to whatever the root
// delegate is at the time of the log call.
type childSink struct {
	parent *delegatingSink
	names  []string
	values []interface{}
}

func (c *childSink) resolve() logr.LogSink {
	d := c.parent.current()
	if d == nil {
		return nil
	}
	for _, n := range c.names {
		d = d.WithName(n)
	}
	if len(c.values) > 0 {
		d = d.WithValues(c.values...)
	}
	return d
}

func (c *childSink) Init(logr.RuntimeInfo) {}

func (c *childSink) Enabled(level int) bool {
	if d := c.resolve(); d != nil {
		return d.Enabled(level)
	}
	return false
}

func (c *childSink) Info(level int, msg string, keysAndValues ...interface{}) {
	if d := c.resolve(); d != nil {
		d.Info(level, msg, keysAndValues...)
	}
}

func (c *childSink) Error(err error, msg string, keysAndValues ...interface{}) {
	if d := c.resolve(); d != nil {
		d.Error(err, msg, keysAndValues...)
	}
}

func (c *childSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	values := make([]interface{}, 0, len(c.values)+len(keysAndValues))
	values = append(values, c.values...)
	values = append(values, keysAndValues...)
	return &childSink{parent: c.parent, names: c.names, values: values}
}

func (c *childSink) WithName(name string) logr.LogSink {
	names := make([]string, 0, len(c.names)+1)
	names = append(names, c.names...)
	names = append(names, name)
	return &childSink{parent: c.parent, names: names, values: c.values}
}

// ***********************************
//
// Helpers
//
// ***********************************

// WithName --.
func WithName(name string) Logger {
	return Log.WithName(name)
}

// WithValues --.
func WithValues(keysAndValues ...interface{}) Logger {
	return Log.WithValues(keysAndValues...)
}

// Debugf --.
func Debugf(format string, args ...interface{}) {
	Log.Debugf(format, args...)
}

// Infof --.
func Infof(format string, args ...interface{}) {
	Log.Infof(format, args...)
}

// Warnf --.
func Warnf(format string, args ...interface{}) {
	Log.Warnf(format, args...)
}

// Errorf --.
func Errorf(err error, format string, args ...interface{}) {
	Log.Errorf(err, format, args...)
}

// Debug --.
func Debug(msg string, keysAndValues ...interface{}) {
	Log.Debug(msg, keysAndValues...)
}

// Info --.
func Info(msg string, keysAndValues ...interface{}) {
	Log.Info(msg, keysAndValues...)
}

// Error --.
func Error(err error, msg string, keysAndValues ...interface{}) {
	Log.Error(err, msg, keysAndValues...)
}
