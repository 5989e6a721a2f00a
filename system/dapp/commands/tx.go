// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/crypto"
	"github.com/33cn/rps/common/crypto/secp256k1"
	"github.com/33cn/rps/rpc/jsonclient"
	rpctypes "github.com/33cn/rps/rpc/types"
	"github.com/33cn/rps/types"
	"github.com/spf13/cobra"
)

// TxCmd transaction command
func TxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction sign, send and query",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		SignRawTxCmd(),
		SendTxCmd(),
		QueryTxCmd(),
	)

	return cmd
}

// SignRawTxCmd 本地用私钥签名
func SignRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign raw transaction with a hex private key",
		Run:   signRawTx,
	}
	cmd.Flags().StringP("data", "d", "", "raw transaction hex")
	cmd.MarkFlagRequired("data")
	cmd.Flags().StringP("key", "k", "", "private key hex")
	cmd.MarkFlagRequired("key")
	cmd.Flags().StringP("type", "t", secp256k1.Name, "signature type")
	return cmd
}

//SignRawTx 解码未签名交易并用 signType 签名, 返回签名后的 hex
func SignRawTx(data, key, signType string) (string, error) {
	ty := crypto.GetType(signType)
	if ty == 0 {
		return "", types.ErrInvalidParam
	}
	tx, err := types.DecodeHexTx(data)
	if err != nil {
		return "", err
	}
	keyBytes, err := common.FromHex(key)
	if err != nil {
		return "", types.ErrDecode
	}
	c, err := crypto.New(signType)
	if err != nil {
		return "", err
	}
	priv, err := c.PrivKeyFromBytes(keyBytes)
	if err != nil {
		return "", err
	}
	tx.Sign(int32(ty), priv)
	return types.HexTx(tx), nil
}

func signRawTx(cmd *cobra.Command, args []string) {
	data, _ := cmd.Flags().GetString("data")
	key, _ := cmd.Flags().GetString("key")
	signType, _ := cmd.Flags().GetString("type")
	signed, err := SignRawTx(data, key, signType)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), signed)
}

// SendTxCmd 发送签名后的交易
func SendTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send signed transaction",
		Run:   sendTx,
	}
	cmd.Flags().StringP("data", "d", "", "signed transaction hex")
	cmd.MarkFlagRequired("data")
	return cmd
}

func sendTx(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	data, _ := cmd.Flags().GetString("data")
	params := rpctypes.RawParm{Data: data}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.SendTransaction", params, nil)
	ctx.SetOutput(cmd.OutOrStdout())
	ctx.RunWithoutMarshal()
}

// QueryTxCmd 根据哈希查询交易结果
func QueryTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query transaction result by hash",
		Run:   queryTx,
	}
	cmd.Flags().StringP("hash", "s", "", "transaction hash")
	cmd.MarkFlagRequired("hash")
	return cmd
}

func queryTx(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	hash, _ := cmd.Flags().GetString("hash")
	params := rpctypes.ReqHash{Hash: hash}
	var res rpctypes.TxResult
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.GetTxResult", params, &res)
	ctx.SetOutput(cmd.OutOrStdout())
	ctx.Run()
}

func printJSON(cmd *cobra.Command, v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
}
