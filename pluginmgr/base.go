// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"github.com/33cn/rps/rpc/types"
	ctypes "github.com/33cn/rps/types"
	"github.com/spf13/cobra"
)

//PluginBase 插件的默认实现, 不需要的部分留空
type PluginBase struct {
	Name     string
	ExecName string
	RPC      func(name string, s types.RPCServer)
	Exec     func(name string, cfg *ctypes.Config)
	Cmd      func() *cobra.Command
}

//GetName 插件名
func (p *PluginBase) GetName() string {
	return p.Name
}

//GetExecutorName 执行器名
func (p *PluginBase) GetExecutorName() string {
	return p.ExecName
}

//InitExec 初始化执行器
func (p *PluginBase) InitExec(cfg *ctypes.Config) {
	if p.Exec != nil {
		p.Exec(p.ExecName, cfg)
	}
}

//AddCmd 加载命令行
func (p *PluginBase) AddCmd(rootCmd *cobra.Command) {
	if p.Cmd != nil {
		cmd := p.Cmd()
		if cmd == nil {
			return
		}
		rootCmd.AddCommand(cmd)
	}
}

//AddRPC 注册 rpc
func (p *PluginBase) AddRPC(c types.RPCServer) {
	if p.RPC != nil {
		p.RPC(p.GetExecutorName(), c)
	}
}
