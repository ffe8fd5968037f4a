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

package monitoring

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics()

	require.NoError(t, m.Register(registry))
	require.NoError(t, m.Register(registry))

	m.ObserveSettings(time.Now(), nil)
	m.ObserveSettings(time.Now(), errors.New("boom"))
	m.Problem("WARNING")
	m.Problem("WARNING")
	m.Problem("ERROR")
	m.DecryptionFailures(2)
	m.DecryptionFailures(0)
	m.Repositories("repositories", 3)

	assert.Equal(t, 2, testutil.CollectAndCount(m.settingsDuration))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.problems.WithLabelValues("WARNING")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.problems.WithLabelValues("ERROR")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.decryptionFailures))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.resolvedRepositories.WithLabelValues("repositories")))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	assert.NoError(t, m.Register(prometheus.NewRegistry()))
	assert.NotPanics(t, func() {
		m.ObserveSettings(time.Now(), nil)
		m.Problem("WARNING")
		m.DecryptionFailures(1)
		m.Repositories("repositories", 1)
	})
}

func TestObserveSettingsDuration(t *testing.T) {
	m := NewMetrics()
	begin := time.Now().Add(-2 * time.Second)

	d := m.ObserveSettings(begin, nil)
	assert.GreaterOrEqual(t, d, 2*time.Second)
	assert.Equal(t, 1, testutil.CollectAndCount(m.settingsDuration))

	var missing *Metrics
	assert.GreaterOrEqual(t, missing.ObserveSettings(begin, nil), 2*time.Second)
}
