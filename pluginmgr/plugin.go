// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pluginmgr 管理 dapp 插件, 插件在 init 中注册, 节点启动时初始化执行器和 rpc, 命令行启动时加载子命令
package pluginmgr

import (
	"github.com/33cn/rps/rpc/types"
	ctypes "github.com/33cn/rps/types"
	"github.com/spf13/cobra"
)

//Plugin 插件接口
type Plugin interface {
	// 获取整个插件的包名，用以计算唯一值、做前缀等
	GetName() string
	// 获取插件中执行器名
	GetExecutorName() string
	// 初始化执行器时会调用该接口
	InitExec(cfg *ctypes.Config)
	AddCmd(rootCmd *cobra.Command)
	AddRPC(s types.RPCServer)
}
