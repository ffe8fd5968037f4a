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
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

type resultLabelValue string

const (
	// Succeeded --.
	Succeeded resultLabelValue = "Succeeded"
	// Failed --.
	Failed resultLabelValue = "Failed"

	resultLabel   = "result"
	severityLabel = "severity"
	kindLabel     = "kind"
)

// Metrics groups the collectors of the resolver.
type Metrics struct {
	settingsDuration     *prometheus.HistogramVec
	problems             *prometheus.CounterVec
	decryptionFailures   prometheus.Counter
	resolvedRepositories *prometheus.GaugeVec
}

// NewMetrics creates unregistered collectors.
func NewMetrics() *Metrics {
	return &Metrics{
		settingsDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "camel_k_resolver_settings_duration_seconds",
				Help: "Maven settings build duration",
				Buckets: []float64{
					(5 * time.Millisecond).Seconds(),
					(25 * time.Millisecond).Seconds(),
					(100 * time.Millisecond).Seconds(),
					(500 * time.Millisecond).Seconds(),
					1 * time.Second.Seconds(),
					5 * time.Second.Seconds(),
				},
			},
			[]string{
				resultLabel,
			},
		),
		problems: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "camel_k_resolver_settings_problems_total",
				Help: "Problems reported while building the Maven settings",
			},
			[]string{
				severityLabel,
			},
		),
		decryptionFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "camel_k_resolver_decryption_failures_total",
				Help: "Server and proxy credentials that could not be decrypted",
			},
		),
		resolvedRepositories: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "camel_k_resolver_repositories",
				Help: "Remote repositories of the last resolution",
			},
			[]string{
				kindLabel,
			},
		),
	}
}

// Register adds the collectors to the given registerer, collectors already registered
// are left in place.
func (m *Metrics) Register(registerer prometheus.Registerer) error {
	if m == nil || registerer == nil {
		return nil
	}
	for _, c := range m.collectors() {
		if err := registerer.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.settingsDuration,
		m.problems,
		m.decryptionFailures,
		m.resolvedRepositories,
	}
}

// ObserveSettings records the outcome of a settings build started at begin, and
// returns how long the build took.
func (m *Metrics) ObserveSettings(begin time.Time, err error) time.Duration {
	d := time.Since(begin)
	if m == nil {
		return d
	}
	result := Succeeded
	if err != nil {
		result = Failed
	}
	m.settingsDuration.WithLabelValues(string(result)).Observe(d.Seconds())
	return d
}

// Problem counts a problem of the given severity.
func (m *Metrics) Problem(severity string) {
	if m == nil {
		return
	}
	m.problems.WithLabelValues(severity).Inc()
}

// DecryptionFailures --.
func (m *Metrics) DecryptionFailures(count int) {
	if m == nil || count <= 0 {
		return
	}
	m.decryptionFailures.Add(float64(count))
}

// Repositories records the number of repositories of the given kind (repositories, pluginRepositories).
func (m *Metrics) Repositories(kind string, count int) {
	if m == nil {
		return
	}
	m.resolvedRepositories.WithLabelValues(kind).Set(float64(count))
}
