// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands rps 的命令行, 构造交易的命令只输出未签名交易的 hex
package commands

import (
	"fmt"
	"os"

	"github.com/33cn/rps/common"
	rpsrpc "github.com/33cn/rps/plugin/dapp/rps/rpc"
	rpstypes "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/rpc/jsonclient"
	rpctypes "github.com/33cn/rps/rpc/types"
	"github.com/33cn/rps/types"
	"github.com/spf13/cobra"
)

//Cmd rps 命令
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   rpstypes.RpsX,
		Short: "Rock-paper-scissors game management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CommitCmd(),
		CreateRawTxCmd(),
		JoinRawTxCmd(),
		RevealRawTxCmd(),
		ForceRawTxCmd(),
		RewardRawTxCmd(),
		WithdrawRawTxCmd(),
		SessionCmd(),
		BalanceCmd(),
		ListCmd(),
	)
	return cmd
}

const secretSize = 32

func method(name string) string {
	return rpstypes.RpsX + "." + name
}

//CommitCmd 计算承诺
func CommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Calculate the commitment of a move, used as the game id",
		Run:   commit,
	}
	cmd.Flags().StringP("move", "m", "", "rock, paper or scissor")
	cmd.MarkFlagRequired("move")
	cmd.Flags().StringP("secret", "s", "", "secret, hex if starts with 0x, random if empty")
	cmd.Flags().StringP("addr", "a", "", "address of the creator")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func commit(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	move, _ := cmd.Flags().GetString("move")
	secret, _ := cmd.Flags().GetString("secret")
	addr, _ := cmd.Flags().GetString("addr")
	if secret == "" {
		secret = randSecret()
		fmt.Fprintln(cmd.ErrOrStderr(), "secret:", secret, "(keep it for rps reveal)")
	}
	params := &rpsrpc.CommitmentReq{Move: move, Secret: secret, Committer: addr}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, method("CalcCommitment"), params, nil)
	ctx.SetOutput(cmd.OutOrStdout())
	ctx.RunWithoutMarshal()
}

//随机 secret, 0x 开头的 hex
func randSecret() string {
	return common.ToHex(common.GetRandBytes(secretSize, secretSize))
}

//CreateRawTxCmd createGameRoom
func CreateRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a game room with a commitment and a stake",
		Run:   createRawTx,
	}
	cmd.Flags().StringP("id", "i", "", "commitment, see rps commit")
	cmd.MarkFlagRequired("id")
	cmd.Flags().Int64P("timeout", "t", 100, "blocks before the room expires")
	cmd.Flags().StringP("amount", "a", "0", "stake in coins")
	return cmd
}

func createRawTx(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	id, _ := cmd.Flags().GetString("id")
	timeout, _ := cmd.Flags().GetInt64("timeout")
	stake, ok := stakeFlag(cmd)
	if !ok {
		return
	}
	params := &rpsrpc.CreateTxReq{ID: id, TimeoutDelta: timeout, Stake: stake}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, method("CreateRawCreateTx"), params, nil)
	ctx.SetOutput(cmd.OutOrStdout())
	ctx.RunWithoutMarshal()
}

//JoinRawTxCmd joinGameRoom
func JoinRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join a game room with a plain move and a stake",
		Run:   joinRawTx,
	}
	cmd.Flags().StringP("id", "i", "", "game id")
	cmd.MarkFlagRequired("id")
	cmd.Flags().StringP("move", "m", "", "rock, paper or scissor")
	cmd.MarkFlagRequired("move")
	cmd.Flags().StringP("amount", "a", "0", "stake in coins")
	return cmd
}

func joinRawTx(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	id, _ := cmd.Flags().GetString("id")
	move, _ := cmd.Flags().GetString("move")
	stake, ok := stakeFlag(cmd)
	if !ok {
		return
	}
	params := &rpsrpc.JoinTxReq{ID: id, Move: move, Stake: stake}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, method("CreateRawJoinTx"), params, nil)
	ctx.SetOutput(cmd.OutOrStdout())
	ctx.RunWithoutMarshal()
}

//RevealRawTxCmd revealGame
func RevealRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal the committed move",
		Run:   revealRawTx,
	}
	cmd.Flags().StringP("id", "i", "", "game id")
	cmd.MarkFlagRequired("id")
	cmd.Flags().StringP("move", "m", "", "rock, paper or scissor")
	cmd.MarkFlagRequired("move")
	cmd.Flags().StringP("secret", "s", "", "secret used in rps commit")
	cmd.MarkFlagRequired("secret")
	return cmd
}

func revealRawTx(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	id, _ := cmd.Flags().GetString("id")
	move, _ := cmd.Flags().GetString("move")
	secret, _ := cmd.Flags().GetString("secret")
	params := &rpsrpc.RevealTxReq{ID: id, Move: move, Secret: secret}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, method("CreateRawRevealTx"), params, nil)
	ctx.SetOutput(cmd.OutOrStdout())
	ctx.RunWithoutMarshal()
}

//ForceRawTxCmd revealGameForce
func ForceRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "force",
		Short: "Resolve an expired game the creator did not reveal",
		Run:   idRawTx("CreateRawRevealForceTx"),
	}
	addIDFlag(cmd)
	return cmd
}

//RewardRawTxCmd rewardGame
func RewardRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reward",
		Short: "Credit the pot of a resolved game to the ledger",
		Run:   idRawTx("CreateRawRewardTx"),
	}
	addIDFlag(cmd)
	return cmd
}

func addIDFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("id", "i", "", "game id")
	cmd.MarkFlagRequired("id")
}

func idRawTx(name string) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
		id, _ := cmd.Flags().GetString("id")
		params := &rpsrpc.GameIDReq{ID: id}
		ctx := jsonclient.NewRPCCtx(rpcLaddr, method(name), params, nil)
		ctx.SetOutput(cmd.OutOrStdout())
		ctx.RunWithoutMarshal()
	}
}

//WithdrawRawTxCmd withdraw
func WithdrawRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw the whole ledger balance of the signer",
		Run: func(cmd *cobra.Command, args []string) {
			rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
			ctx := jsonclient.NewRPCCtx(rpcLaddr, method("CreateRawWithdrawTx"), nil, nil)
			ctx.SetOutput(cmd.OutOrStdout())
			ctx.RunWithoutMarshal()
		},
	}
	return cmd
}

//SessionCmd 查询 session
func SessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Show a game session",
		Run:   session,
	}
	addIDFlag(cmd)
	return cmd
}

func session(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	id, _ := cmd.Flags().GetString("id")
	params := &rpsrpc.GameIDReq{ID: id}
	var res rpstypes.Session
	ctx := jsonclient.NewRPCCtx(rpcLaddr, method("GetSession"), params, &res)
	ctx.SetOutput(cmd.OutOrStdout())
	ctx.SetResultCb(parseSession)
	ctx.Run()
}

//BalanceCmd 结算账本余额
func BalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the withdrawable ledger balance of an address",
		Run:   balance,
	}
	cmd.Flags().StringP("addr", "a", "", "address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

//BalanceResult 余额以币为单位显示
type BalanceResult struct {
	Addr    string `json:"addr"`
	Balance string `json:"balance"`
}

func balance(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	addr, _ := cmd.Flags().GetString("addr")
	params := &rpctypes.ReqAddr{Addr: addr}
	var res rpstypes.ReplyBalance
	ctx := jsonclient.NewRPCCtx(rpcLaddr, method("GetBalance"), params, &res)
	ctx.SetOutput(cmd.OutOrStdout())
	ctx.SetResultCb(func(res interface{}) (interface{}, error) {
		b := res.(*rpstypes.ReplyBalance)
		return &BalanceResult{Addr: b.Addr, Balance: types.FormatCoins(b.Balance)}, nil
	})
	ctx.Run()
}

//ListCmd 按状态分页
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List game sessions by status and address",
		Run:   list,
	}
	cmd.Flags().StringP("status", "s", "created", "created, joined, revealed or settled")
	cmd.Flags().StringP("addr", "a", "", "only sessions of this player")
	cmd.Flags().Int64P("index", "i", 0, "start after this index, 0 for the first page")
	cmd.Flags().Int32P("count", "c", rpstypes.DefaultCount, "page size")
	cmd.Flags().Int32P("direction", "d", rpstypes.ListDESC, "0: newest first, 1: oldest first")
	return cmd
}

func list(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	params := &rpsrpc.ListSessionsReq{}
	params.Status, _ = cmd.Flags().GetString("status")
	params.Addr, _ = cmd.Flags().GetString("addr")
	params.Index, _ = cmd.Flags().GetInt64("index")
	params.Count, _ = cmd.Flags().GetInt32("count")
	params.Direction, _ = cmd.Flags().GetInt32("direction")
	var res rpstypes.ReplySessions
	ctx := jsonclient.NewRPCCtx(rpcLaddr, method("ListSessions"), params, &res)
	ctx.SetOutput(cmd.OutOrStdout())
	ctx.SetResultCb(func(res interface{}) (interface{}, error) {
		reply := res.(*rpstypes.ReplySessions)
		result := make([]*SessionResult, len(reply.Sessions))
		for i, s := range reply.Sessions {
			result[i] = newSessionResult(s)
		}
		return result, nil
	})
	ctx.Run()
}

func stakeFlag(cmd *cobra.Command) (int64, bool) {
	amount, _ := cmd.Flags().GetString("amount")
	stake, err := types.ParseCoins(amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid amount:", amount)
		return 0, false
	}
	return stake, true
}
