// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/33cn/rps/common"
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/common/limits"
	clog "github.com/33cn/rps/common/log"
	"github.com/33cn/rps/common/version"
	"github.com/33cn/rps/consensus/solo"
	"github.com/33cn/rps/executor"
	"github.com/33cn/rps/metrics"
	"github.com/33cn/rps/pluginmgr"
	"github.com/33cn/rps/queue"
	"github.com/33cn/rps/rpc"
	rpctypes "github.com/33cn/rps/rpc/types"
	"github.com/33cn/rps/types"
	"github.com/33cn/rps/util"
)

var (
	configPath = flag.String("f", "", "configfile")
	datadir    = flag.String("datadir", "", "data dir of rpsd, include logs and datas")
	versionCmd = flag.Bool("v", false, "version")
)

var rlog = clog.New("module", "rpsd")

//RunRpsd 加载各个模块组合成单节点的游戏链: 数据库, 执行器, 插件, solo 出块, rpc.
//收到 SIGINT 或 SIGTERM 后按启动的逆序关闭
func RunRpsd(name string) {
	flag.Parse()
	if *versionCmd {
		fmt.Println(version.GetVersion())
		return
	}
	if *configPath == "" {
		*configPath = name + ".toml"
	}
	if err := limits.SetLimits(); err != nil {
		panic(err)
	}
	cfg, err := types.InitCfg(*configPath)
	if err != nil {
		panic(err)
	}
	if *datadir != "" {
		util.ResetDatadir(cfg, *datadir)
	}
	if err := util.CheckConfig(cfg); err != nil {
		panic(err)
	}
	clog.SetFileLog(cfg.Log)
	rlog.Info(cfg.Title + " " + version.GetVersion())

	stateDB := dbm.NewDB("statedb", cfg.Store.Driver, cfg.Store.DbPath, cfg.Store.DbCache)
	defer stateDB.Close()
	localDB := dbm.NewDB("localdb", cfg.LocalStore.Driver, cfg.LocalStore.DbPath, cfg.LocalStore.DbCache)
	defer localDB.Close()

	q := queue.New("channel")
	defer q.Close()
	for _, execer := range pluginmgr.ExecNames() {
		if err := logEvents(q, execer); err != nil {
			panic(err)
		}
	}

	rlog.Info("loading executor module")
	exec := executor.New(stateDB, localDB, q)
	defer exec.Close()
	pluginmgr.InitExec(cfg)

	//插件的 rpc 和 log 解码在这里注册
	rlog.Info("loading rpc module")
	server, err := rpc.NewJSONRPCServer(cfg.RPC, exec)
	if err != nil {
		panic(err)
	}

	rlog.Info("loading consensus module", "name", cfg.Consensus.Name)
	cs := solo.New(cfg.Consensus, exec)
	if err := cs.Start(); err != nil {
		panic(err)
	}
	defer cs.Close()

	reporter := metrics.StartMetrics(cfg.Metrics)
	defer reporter.Stop()

	port, err := server.Listen()
	if err != nil {
		panic(err)
	}
	defer server.Close()
	rlog.Info("rpc listen", "addr", cfg.RPC.JrpcBindAddr, "port", port)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	rlog.Info("rpsd exit", "signal", s.String())
}

//订阅执行器事件, 队列关闭后退出
func logEvents(q *queue.Queue, execer string) error {
	sub, err := q.Sub(execer, 0)
	if err != nil {
		return err
	}
	go func() {
		for msg := range sub.Recv() {
			event, ok := msg.Data.(*executor.TxEvent)
			if !ok {
				continue
			}
			rlog.Info("tx event", "execer", execer, "height", event.Height,
				"log", rpctypes.LogName(execer, event.Log.Ty), "hash", common.ToHex(event.Hash))
		}
	}()
	return nil
}
