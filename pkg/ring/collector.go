/*
 * Copyright (C) 2020-2022, IrineSistiana
 *
 * This file is part of ringlist.
 *
 * ringlist is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * ringlist is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package ring

import (
	"github.com/prometheus/client_golang/prometheus"
)

var _ prometheus.Collector = (*Collector)(nil)

// Collector exports the node allocation counters of a List.
// Collect reads the list, so it must not run concurrently with
// list mutations.
type Collector struct {
	stats func() Stats

	allocated *prometheus.Desc
	released  *prometheus.Desc
	live      *prometheus.Desc
	slots     *prometheus.Desc
}

// NewCollector returns a Collector for l. Metric names are prefixed
// with nameSpace, if it is not empty.
func NewCollector[T comparable](l *List[T], nameSpace string) *Collector {
	name := func(n string) string {
		return prometheus.BuildFQName(nameSpace, "ring", n)
	}
	return &Collector{
		stats:     l.Stats,
		allocated: prometheus.NewDesc(name("nodes_allocated_total"), "The total number of node allocations", nil, nil),
		released:  prometheus.NewDesc(name("nodes_released_total"), "The total number of node releases", nil, nil),
		live:      prometheus.NewDesc(name("nodes_live"), "The number of nodes currently in the list", nil, nil),
		slots:     prometheus.NewDesc(name("arena_slots"), "The number of node slots in the arena", nil, nil),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.allocated
	ch <- c.released
	ch <- c.live
	ch <- c.slots
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.stats()
	ch <- prometheus.MustNewConstMetric(c.allocated, prometheus.CounterValue, float64(s.Allocated))
	ch <- prometheus.MustNewConstMetric(c.released, prometheus.CounterValue, float64(s.Released))
	ch <- prometheus.MustNewConstMetric(c.live, prometheus.GaugeValue, float64(s.Live))
	ch <- prometheus.MustNewConstMetric(c.slots, prometheus.GaugeValue, float64(s.Slots))
}
