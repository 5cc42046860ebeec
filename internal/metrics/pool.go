package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type PoolStat struct {
	Acquired          int32
	Idle              int32
	Total             int32
	Max               int32
	AcquireCount      int64
	EmptyAcquireCount int64
	AcquireDuration   time.Duration
}

type PoolStatFunc func() PoolStat

type poolCollector struct {
	stat PoolStatFunc

	acquired        *prometheus.Desc
	idle            *prometheus.Desc
	total           *prometheus.Desc
	max             *prometheus.Desc
	acquireCount    *prometheus.Desc
	emptyAcquire    *prometheus.Desc
	acquireDuration *prometheus.Desc
}

func NewPoolCollector(namespace string, stat PoolStatFunc) prometheus.Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "db_pool", name), help, nil, nil)
	}
	return &poolCollector{
		stat:            stat,
		acquired:        desc("acquired_conns", "Connections currently checked out of the pool."),
		idle:            desc("idle_conns", "Idle connections in the pool."),
		total:           desc("total_conns", "Total connections owned by the pool."),
		max:             desc("max_conns", "Maximum pool size."),
		acquireCount:    desc("acquires_total", "Successful connection acquisitions."),
		emptyAcquire:    desc("empty_acquires_total", "Acquisitions that had to wait for a connection."),
		acquireDuration: desc("acquire_duration_seconds_total", "Total time spent waiting to acquire connections."),
	}
}

func (c *poolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.acquired
	ch <- c.idle
	ch <- c.total
	ch <- c.max
	ch <- c.acquireCount
	ch <- c.emptyAcquire
	ch <- c.acquireDuration
}

func (c *poolCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.stat()
	ch <- prometheus.MustNewConstMetric(c.acquired, prometheus.GaugeValue, float64(s.Acquired))
	ch <- prometheus.MustNewConstMetric(c.idle, prometheus.GaugeValue, float64(s.Idle))
	ch <- prometheus.MustNewConstMetric(c.total, prometheus.GaugeValue, float64(s.Total))
	ch <- prometheus.MustNewConstMetric(c.max, prometheus.GaugeValue, float64(s.Max))
	ch <- prometheus.MustNewConstMetric(c.acquireCount, prometheus.CounterValue, float64(s.AcquireCount))
	ch <- prometheus.MustNewConstMetric(c.emptyAcquire, prometheus.CounterValue, float64(s.EmptyAcquireCount))
	ch <- prometheus.MustNewConstMetric(c.acquireDuration, prometheus.CounterValue, s.AcquireDuration.Seconds())
}
