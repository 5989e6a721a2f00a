// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"sort"
	"sync"

	"github.com/33cn/rps/common/log"
	"github.com/33cn/rps/rpc/types"
	ctypes "github.com/33cn/rps/types"
	"github.com/spf13/cobra"
)

var (
	mgrlog      = log.New("module", "plugin.manager")
	pluginItems = make(map[string]Plugin)
	mu          sync.RWMutex
)

//Register 注册插件, 在插件包的 init 中调用, 重名会 panic
func Register(p Plugin) {
	if p == nil {
		panic("plugin param is nil")
	}
	packageName := p.GetName()
	if len(packageName) == 0 {
		panic("plugin package name is empty")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, ok := pluginItems[packageName]; ok {
		panic("execute plugin item is existed. name = " + packageName)
	}
	pluginItems[packageName] = p
}

//按名字排序, 保证初始化顺序稳定
func items() []Plugin {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(pluginItems))
	for name := range pluginItems {
		names = append(names, name)
	}
	sort.Strings(names)
	list := make([]Plugin, len(names))
	for i, name := range names {
		list[i] = pluginItems[name]
	}
	return list
}

//InitExec 初始化所有插件的执行器
func InitExec(cfg *ctypes.Config) {
	for _, item := range items() {
		mgrlog.Debug("InitExec", "plugin", item.GetName(), "exec", item.GetExecutorName())
		item.InitExec(cfg)
	}
}

//AddCmd 加载所有插件的命令行
func AddCmd(rootCmd *cobra.Command) {
	for _, item := range items() {
		item.AddCmd(rootCmd)
	}
}

//AddRPC 注册所有插件的 rpc
func AddRPC(s types.RPCServer) {
	for _, item := range items() {
		item.AddRPC(s)
	}
}

//ExecNames 所有插件提供的执行器名
func ExecNames() []string {
	var names []string
	for _, item := range items() {
		if name := item.GetExecutorName(); name != "" {
			names = append(names, name)
		}
	}
	return names
}
