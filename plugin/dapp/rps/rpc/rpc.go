// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc rps 的 jsonrpc 服务, 服务名为执行器名
package rpc

import (
	"sync"

	"github.com/33cn/rps/common/log"
	rpstypes "github.com/33cn/rps/plugin/dapp/rps/types"
	rpctypes "github.com/33cn/rps/rpc/types"
)

var (
	rpclog  = log.New("module", "rps.rpc")
	logOnce sync.Once
)

type channelClient struct {
	rpctypes.ChannelClient
}

//Jrpc rps jsonrpc 服务
type Jrpc struct {
	cli *channelClient
}

//Init 注册 rps 的 log 解码和 jrpc 服务
func Init(name string, s rpctypes.RPCServer) {
	logOnce.Do(func() {
		rpctypes.RegisterLog(name, rpstypes.DecodeLog, rpstypes.LogName)
	})
	cli := &channelClient{}
	cli.Init(name, s, &Jrpc{cli: cli})
	rpclog.Debug("Init", "name", name)
}
