// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 执行器的统计数据, 定期输出到日志
package metrics

import (
	"sync"
	"time"

	"github.com/33cn/rps/types"
	log "github.com/inconshreveable/log15"
	go_metrics "github.com/rcrowley/go-metrics"
)

var mlog = log.New("module", "metrics")

//Namespace 指标名前缀
var Namespace = "rps"

//Reporter 定期把 registry 写到日志
type Reporter struct {
	registry go_metrics.Registry
	interval time.Duration
	done     chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

//StartMetrics 根据配置文件相关参数启动, 未开启时返回 nil
func StartMetrics(cfg *types.Metrics) *Reporter {
	if cfg == nil || !cfg.EnableMetrics {
		mlog.Info("Metrics data is not enabled to emit")
		return nil
	}
	r := NewReporter(go_metrics.DefaultRegistry, time.Duration(cfg.Duration)*time.Second)
	r.Start()
	return r
}

//NewReporter new
func NewReporter(registry go_metrics.Registry, interval time.Duration) *Reporter {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Reporter{registry: registry, interval: interval, done: make(chan struct{})}
}

//Start 启动后台输出
func (r *Reporter) Start() {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.Report()
			case <-r.done:
				return
			}
		}
	}()
}

//Report 输出一次
func (r *Reporter) Report() {
	r.registry.Each(func(name string, i interface{}) {
		switch m := i.(type) {
		case go_metrics.Counter:
			mlog.Info("counter", "name", name, "count", m.Count())
		case go_metrics.Meter:
			s := m.Snapshot()
			mlog.Info("meter", "name", name, "count", s.Count(), "rate1", s.Rate1(), "mean", s.RateMean())
		case go_metrics.Timer:
			s := m.Snapshot()
			mlog.Info("timer", "name", name, "count", s.Count(), "min", time.Duration(s.Min()),
				"max", time.Duration(s.Max()), "mean", time.Duration(int64(s.Mean())), "p99", time.Duration(int64(s.Percentile(0.99))))
		case go_metrics.Gauge:
			mlog.Info("gauge", "name", name, "value", m.Value())
		}
	})
}

//Stop 停止
func (r *Reporter) Stop() {
	if r == nil {
		return
	}
	r.once.Do(func() {
		close(r.done)
		r.wg.Wait()
	})
}

//Name 加上前缀的指标名
func Name(parts ...string) string {
	name := Namespace
	for _, p := range parts {
		name += "." + p
	}
	return name
}

//Meter 取得或注册一个 meter
func Meter(registry go_metrics.Registry, parts ...string) go_metrics.Meter {
	return go_metrics.GetOrRegisterMeter(Name(parts...), registry)
}

//Timer 取得或注册一个 timer
func Timer(registry go_metrics.Registry, parts ...string) go_metrics.Timer {
	return go_metrics.GetOrRegisterTimer(Name(parts...), registry)
}

//Gauge 取得或注册一个 gauge
func Gauge(registry go_metrics.Registry, parts ...string) go_metrics.Gauge {
	return go_metrics.GetOrRegisterGauge(Name(parts...), registry)
}
