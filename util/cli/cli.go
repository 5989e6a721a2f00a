// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli 命令行入口, 系统命令加上所有插件注册的命令
package cli

import (
	"fmt"
	"os"

	"github.com/33cn/rps/common/log"
	"github.com/33cn/rps/pluginmgr"
	"github.com/33cn/rps/system/dapp/commands"
	"github.com/spf13/cobra"
)

//NewRootCmd 根命令
func NewRootCmd(rpcAddr string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rps-cli",
		Short: "rps client tools",
	}
	rootCmd.AddCommand(
		commands.AccountCmd(),
		commands.TxCmd(),
		commands.HeightCmd(),
		commands.VersionCmd(),
		commands.OneStepSendCmd(),
	)
	pluginmgr.AddCmd(rootCmd)
	rootCmd.PersistentFlags().String("rpc_laddr", rpcAddr, "http url")
	return rootCmd
}

//Run :
func Run(rpcAddr string) {
	log.SetLogLevel("error")
	rootCmd := NewRootCmd(rpcAddr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
