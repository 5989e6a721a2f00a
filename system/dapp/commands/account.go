// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 系统命令: 账户, 交易和节点信息
package commands

import (
	"fmt"
	"os"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/address"
	"github.com/33cn/rps/common/crypto"
	"github.com/33cn/rps/common/crypto/secp256k1"
	"github.com/33cn/rps/rpc/jsonclient"
	rpctypes "github.com/33cn/rps/rpc/types"
	"github.com/33cn/rps/types"
	"github.com/spf13/cobra"
)

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		KeyGenCmd(),
		GetBalanceCmd(),
	)

	return cmd
}

// KeyGenCmd 本地生成 secp256k1 私钥
func KeyGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new private key and its address",
		Run:   keyGen,
	}
	return cmd
}

//KeyPair 私钥和地址
type KeyPair struct {
	PrivKey string `json:"privkey"`
	PubKey  string `json:"pubkey"`
	Addr    string `json:"addr"`
}

//GenKeyPair 生成私钥
func GenKeyPair() (*KeyPair, error) {
	c, err := crypto.New(secp256k1.Name)
	if err != nil {
		return nil, err
	}
	priv, err := c.GenKey()
	if err != nil {
		return nil, err
	}
	pub := priv.PubKey().Bytes()
	return &KeyPair{
		PrivKey: common.ToHex(priv.Bytes()),
		PubKey:  common.ToHex(pub),
		Addr:    address.PubKeyToAddr(pub),
	}, nil
}

func keyGen(cmd *cobra.Command, args []string) {
	kp, err := GenKeyPair()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	printJSON(cmd, kp)
}

// GetBalanceCmd get balance of an address
func GetBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get coins balance of a account address",
		Run:   balance,
	}
	addBalanceFlags(cmd)
	return cmd
}

func addBalanceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
}

//AccountResult 余额以币为单位显示
type AccountResult struct {
	Addr    string `json:"addr"`
	Balance string `json:"balance"`
}

func balance(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	addr, _ := cmd.Flags().GetString("addr")
	params := rpctypes.ReqAddr{Addr: addr}
	var res rpctypes.Account
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.GetAccount", params, &res)
	ctx.SetOutput(cmd.OutOrStdout())
	ctx.SetResultCb(parseAccount)
	ctx.Run()
}

func parseAccount(res interface{}) (interface{}, error) {
	acc := res.(*rpctypes.Account)
	return &AccountResult{Addr: acc.Addr, Balance: types.FormatCoins(acc.Balance)}, nil
}
