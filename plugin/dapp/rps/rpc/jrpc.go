// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/33cn/rps/common/address"
	rpstypes "github.com/33cn/rps/plugin/dapp/rps/types"
	rpctypes "github.com/33cn/rps/rpc/types"
	"github.com/33cn/rps/types"
)

//CreateRawCreateTx 未签名的创建交易
func (c *Jrpc) CreateRawCreateTx(in *CreateTxReq, result *interface{}) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	id, err := rpstypes.ParseCommitmentID(in.ID)
	if err != nil {
		return err
	}
	if in.Stake < 0 {
		return rpstypes.ErrInvalidStake
	}
	*result = types.HexTx(rpstypes.CreateRawCreateTx(id, in.TimeoutDelta, in.Stake))
	return nil
}

//CreateRawJoinTx 未签名的加入交易
func (c *Jrpc) CreateRawJoinTx(in *JoinTxReq, result *interface{}) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	id, err := rpstypes.ParseCommitmentID(in.ID)
	if err != nil {
		return err
	}
	move, err := rpstypes.ParseMove(in.Move)
	if err != nil {
		return err
	}
	if in.Stake < 0 {
		return rpstypes.ErrInvalidStake
	}
	*result = types.HexTx(rpstypes.CreateRawJoinTx(id, move, in.Stake))
	return nil
}

//CreateRawRevealTx 未签名的公开交易
func (c *Jrpc) CreateRawRevealTx(in *RevealTxReq, result *interface{}) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	id, err := rpstypes.ParseCommitmentID(in.ID)
	if err != nil {
		return err
	}
	move, err := rpstypes.ParseMove(in.Move)
	if err != nil {
		return err
	}
	secret, err := rpstypes.ParseSecret(in.Secret)
	if err != nil {
		return err
	}
	*result = types.HexTx(rpstypes.CreateRawRevealTx(id, move, secret))
	return nil
}

//CreateRawRevealForceTx 未签名的超时判定交易
func (c *Jrpc) CreateRawRevealForceTx(in *GameIDReq, result *interface{}) error {
	id, err := parseGameID(in)
	if err != nil {
		return err
	}
	*result = types.HexTx(rpstypes.CreateRawRevealForceTx(id))
	return nil
}

//CreateRawRewardTx 未签名的结算交易
func (c *Jrpc) CreateRawRewardTx(in *GameIDReq, result *interface{}) error {
	id, err := parseGameID(in)
	if err != nil {
		return err
	}
	*result = types.HexTx(rpstypes.CreateRawRewardTx(id))
	return nil
}

//CreateRawWithdrawTx 未签名的提取交易
func (c *Jrpc) CreateRawWithdrawTx(in *rpctypes.ReqNil, result *interface{}) error {
	*result = types.HexTx(rpstypes.CreateRawWithdrawTx())
	return nil
}

//CalcCommitment 计算承诺, 结果作为创建交易的 id
func (c *Jrpc) CalcCommitment(in *CommitmentReq, result *interface{}) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	move, err := rpstypes.ParseMove(in.Move)
	if err != nil {
		return err
	}
	secret, err := rpstypes.ParseSecret(in.Secret)
	if err != nil {
		return err
	}
	reply, err := c.cli.Query(rpstypes.RpsX, rpstypes.FuncNameCalcCommitment,
		&rpstypes.ReqCalcCommitment{Move: move, Secret: secret, Committer: in.Committer})
	if err != nil {
		return err
	}
	*result = reply.(*rpstypes.ReplyCommitment).ID.Hex()
	return nil
}

//GetSession 查询 session
func (c *Jrpc) GetSession(in *GameIDReq, result *interface{}) error {
	id, err := parseGameID(in)
	if err != nil {
		return err
	}
	reply, err := c.cli.Query(rpstypes.RpsX, rpstypes.FuncNameGetSession, &rpstypes.ReqSession{ID: id})
	if err != nil {
		return err
	}
	*result = reply
	return nil
}

//GetBalance 查询结算账本中可以提取的余额
func (c *Jrpc) GetBalance(in *rpctypes.ReqAddr, result *interface{}) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.Query(rpstypes.RpsX, rpstypes.FuncNameGetBalance, &rpstypes.ReqAddr{Addr: in.Addr})
	if err != nil {
		return err
	}
	*result = reply
	return nil
}

//ListSessions 按状态和地址分页查询
func (c *Jrpc) ListSessions(in *ListSessionsReq, result *interface{}) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	status, err := rpstypes.ParseStatus(in.Status)
	if err != nil {
		return err
	}
	if in.Addr != "" {
		if err := address.CheckAddress(in.Addr); err != nil {
			return types.ErrInvalidAddress
		}
	}
	req := &rpstypes.ReqListSessions{
		Status:    status,
		Addr:      in.Addr,
		Index:     in.Index,
		Count:     in.Count,
		Direction: in.Direction,
	}
	reply, err := c.cli.Query(rpstypes.RpsX, rpstypes.FuncNameListSessions, req)
	if err != nil {
		return err
	}
	*result = reply
	return nil
}

//Say 回显, 用于检查 rps 服务是否可用
func (c *Jrpc) Say(in *SayReq, result *interface{}) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	reply, err := c.cli.Query(rpstypes.RpsX, rpstypes.FuncNameSay, &types.ReqString{Data: in.Msg})
	if err != nil {
		return err
	}
	*result = reply.(*types.ReplyString).Data
	return nil
}

func parseGameID(in *GameIDReq) (rpstypes.CommitmentID, error) {
	if in == nil {
		return rpstypes.CommitmentID{}, types.ErrInvalidParam
	}
	return rpstypes.ParseCommitmentID(in.ID)
}
