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
	"testing"

	"github.com/go-logr/zapr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	testcases := []struct {
		value    string
		expected zapcore.Level
	}{
		{value: "", expected: zapcore.InfoLevel},
		{value: "info", expected: zapcore.InfoLevel},
		{value: "DEBUG", expected: zapcore.DebugLevel},
		{value: "error", expected: zapcore.ErrorLevel},
		{value: "2", expected: zapcore.Level(-2)},
	}

	for _, tc := range testcases {
		t.Run(tc.value, func(t *testing.T) {
			level, err := ParseLevel(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, level)
		})
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLoggerCreatedBeforeSetLoggerFollowsDelegate(t *testing.T) {
	logger := WithName("maven").WithValues("k", "v")

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zapr.NewLogger(zap.New(core)))
	defer SetLogger(zapr.NewLogger(zap.NewNop()))

	logger.Warnf("profile %s does not exist", "foo")
	logger.Debug("details")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "profile foo does not exist", entries[0].Message)
	assert.Equal(t, "camel-k-resolver.maven", entries[0].LoggerName)
	assert.Equal(t, "warning", entries[0].ContextMap()["severity"])
	assert.Equal(t, "v", entries[0].ContextMap()["k"])
	assert.Equal(t, "details", entries[1].Message)
}
