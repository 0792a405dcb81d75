// SPDX-License-Identifier: MIT

// Package promexport exposes benchmark Reports as Prometheus gauges.
//
// Collector is a const-metric collector: Add stores the latest Report per
// (algorithm, description, n), and every scrape re-emits one sample per
// statistic series of every stored Report:
//
//	<ns>_mean{algorithm, description, n, quantity}
//	<ns>_stddev{algorithm, description, n, quantity}
//	<ns>_normalized_mean{algorithm, description, n, quantity}
//	<ns>_attempts{algorithm, description, n}
//
// quantity is the series name ("compares", "swaps", …, "time").
package promexport

import (
	"sort"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvlbench/bench"
)

// DefaultNamespace is used when NewCollector gets an empty namespace.
const DefaultNamespace = "lvlbench"

// Label names.
const (
	LabelAlgorithm   = "algorithm"
	LabelDescription = "description"
	LabelN           = "n"
	LabelQuantity    = "quantity"
)

type reportKey struct {
	algorithm   string
	description string
	n           int
}

// Collector implements prometheus.Collector over stored Reports.
// Safe for concurrent Add and Collect.
type Collector struct {
	mean           *prometheus.Desc
	stddev         *prometheus.Desc
	normalizedMean *prometheus.Desc
	attempts       *prometheus.Desc

	mu      sync.RWMutex
	reports map[reportKey]bench.Report
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector builds a Collector whose metric names start with namespace.
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	seriesLabels := []string{LabelAlgorithm, LabelDescription, LabelN, LabelQuantity}

	return &Collector{
		mean: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "mean"),
			"Mean of a measured quantity over the runs of one benchmark.",
			seriesLabels, nil),
		stddev: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "stddev"),
			"Population standard deviation of a measured quantity.",
			seriesLabels, nil),
		normalizedMean: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "normalized_mean"),
			"Mean divided by the quantity's complexity normalizer at n.",
			seriesLabels, nil),
		attempts: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "attempts"),
			"Measurements taken before the timing was accepted.",
			[]string{LabelAlgorithm, LabelDescription, LabelN}, nil),
		reports: make(map[reportKey]bench.Report),
	}
}

// Add stores rep, replacing any earlier report with the same algorithm,
// description and n.
func (c *Collector) Add(rep bench.Report) {
	c.mu.Lock()
	c.reports[reportKey{algorithm: rep.Algorithm, description: rep.Description, n: rep.N}] = rep
	c.mu.Unlock()
}

// Len returns the number of stored reports.
func (c *Collector) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.reports)
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.mean
	ch <- c.stddev
	ch <- c.normalizedMean
	ch <- c.attempts
}

// Collect implements prometheus.Collector. Empty series are skipped.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, key := range c.sortedKeys() {
		rep := c.reports[key]
		n := strconv.Itoa(key.n)
		ch <- prometheus.MustNewConstMetric(c.attempts, prometheus.GaugeValue, float64(rep.Attempts), key.algorithm, key.description, n)

		for _, s := range rep.Series() {
			if s.Count() == 0 {
				continue
			}
			ch <- prometheus.MustNewConstMetric(c.mean, prometheus.GaugeValue, s.Mean(), key.algorithm, key.description, n, s.Name())
			ch <- prometheus.MustNewConstMetric(c.stddev, prometheus.GaugeValue, s.StdDev(), key.algorithm, key.description, n, s.Name())
			ch <- prometheus.MustNewConstMetric(c.normalizedMean, prometheus.GaugeValue, s.NormalizedMean(), key.algorithm, key.description, n, s.Name())
		}
	}
}

func (c *Collector) sortedKeys() []reportKey {
	keys := make([]reportKey, 0, len(c.reports))
	for k := range c.reports {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].algorithm != keys[j].algorithm {
			return keys[i].algorithm < keys[j].algorithm
		}
		if keys[i].description != keys[j].description {
			return keys[i].description < keys[j].description
		}
		return keys[i].n < keys[j].n
	})

	return keys
}
