// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"
	"sync"

	"github.com/33cn/rps/metrics"
	rpstypes "github.com/33cn/rps/plugin/dapp/rps/types"
	drivers "github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
	log "github.com/inconshreveable/log15"
	go_metrics "github.com/rcrowley/go-metrics"
)

var glog = log.New("module", "execs.rps")

//subConfig [exec.sub.rps]
type subConfig struct {
	MinTimeoutDelta int64 `toml:"minTimeoutDelta"`
	MaxTimeoutDelta int64 `toml:"maxTimeoutDelta"`
}

func defaultConfig() *subConfig {
	return &subConfig{
		MinTimeoutDelta: rpstypes.DefaultMinTimeoutDelta,
		MaxTimeoutDelta: rpstypes.DefaultMaxTimeoutDelta,
	}
}

func (c *subConfig) check() error {
	if c.MinTimeoutDelta < 1 || c.MaxTimeoutDelta < c.MinTimeoutDelta {
		return fmt.Errorf("rps: bad timeout range [%d, %d]", c.MinTimeoutDelta, c.MaxTimeoutDelta)
	}
	return nil
}

var (
	confMu       sync.RWMutex
	conf         = defaultConfig()
	registerOnce sync.Once
)

//Init 读取配置并注册执行器, 配置错误时 panic
func Init(name string, cfg *types.Config) {
	sub := defaultConfig()
	cfg.MustDecodeSubConfig(name, sub)
	if err := sub.check(); err != nil {
		panic(err)
	}
	confMu.Lock()
	conf = sub
	confMu.Unlock()
	glog.Info("Init", "name", name, "minTimeoutDelta", sub.MinTimeoutDelta, "maxTimeoutDelta", sub.MaxTimeoutDelta)
	registerOnce.Do(func() {
		drivers.Register(name, newRps)
	})
}

func getConfig() subConfig {
	confMu.RLock()
	defer confMu.RUnlock()
	return *conf
}

//GetName 执行器名
func GetName() string {
	return newRps().GetName()
}

//Rps 执行器
type Rps struct {
	drivers.DriverBase
	conf subConfig
}

func newRps() drivers.Driver {
	r := &Rps{conf: getConfig()}
	r.SetChild(r)
	return r
}

//GetDriverName 驱动名
func (r *Rps) GetDriverName() string {
	return rpstypes.RpsX
}

//GetPayloadValue payload
func (r *Rps) GetPayloadValue() drivers.ExecutorAction {
	return &rpstypes.RpsAction{}
}

func markAction(name string) {
	metrics.Meter(go_metrics.DefaultRegistry, "exec", rpstypes.RpsX, name).Mark(1)
}
