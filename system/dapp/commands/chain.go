// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/rps/rpc/jsonclient"
	rpctypes "github.com/33cn/rps/rpc/types"
	"github.com/spf13/cobra"
)

// HeightCmd 当前区块高度
func HeightCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "height",
		Short: "Get current block height",
		Run: func(cmd *cobra.Command, args []string) {
			rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
			var res rpctypes.ReplyHeight
			ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.GetHeight", nil, &res)
			ctx.SetOutput(cmd.OutOrStdout())
			ctx.Run()
		},
	}
	return cmd
}

// VersionCmd 节点版本
func VersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Get node version",
		Run: func(cmd *cobra.Command, args []string) {
			rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
			ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.Version", nil, nil)
			ctx.SetOutput(cmd.OutOrStdout())
			ctx.RunWithoutMarshal()
		},
	}
	return cmd
}
