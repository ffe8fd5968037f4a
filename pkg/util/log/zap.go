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
	"strconv"
	"strings"

	"github.com/go-logr/zapr"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel converts the LOG_LEVEL syntax into a zap level.
//
// Numeric values are logr verbosities, so they get negated to match zap levels.
func ParseLevel(value string) (zapcore.Level, error) {
	switch strings.ToLower(value) {
	case "":
		return zapcore.InfoLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	default:
		customLevel, err := strconv.Atoi(strings.ToLower(value))
		if err != nil {
			return zapcore.InfoLevel, errors.Wrapf(err, "invalid log level %q", value)
		}
		return zapcore.Level(int8(customLevel) * -1), nil
	}
}

// Configure installs a zap backed logger as the delegate of every Logger.
func Configure(level string, development bool) (*zap.Logger, error) {
	logLevel, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var config zap.Config
	if development {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	// Use and set atomic level that all following log events are compared with
	// in order to evaluate if a given log level on the event is enabled.
	config.Level = zap.NewAtomicLevelAt(logLevel)
	config.OutputPaths = []string{"stderr"}

	zl, err := config.Build()
	if err != nil {
		return nil, errors.Wrap(err, "cannot build logger")
	}

	SetLogger(zapr.NewLogger(zl))

	return zl, nil
}
