// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/address"
	"github.com/33cn/rps/common/version"
	rpctypes "github.com/33cn/rps/rpc/types"
	"github.com/33cn/rps/types"
)

// SendTransaction 发送签名后的交易, 返回交易哈希
func (c *Chain33) SendTransaction(in rpctypes.RawParm, result *interface{}) error {
	tx, err := types.DecodeHexTx(in.Data)
	if err != nil {
		return err
	}
	if _, err := c.api.SendTx(tx); err != nil {
		return err
	}
	*result = common.ToHex(tx.Hash())
	return nil
}

// GetTxResult 根据交易哈希查询执行结果
func (c *Chain33) GetTxResult(in rpctypes.ReqHash, result *interface{}) error {
	hash, err := common.FromHex(in.Hash)
	if err != nil {
		return types.ErrDecode
	}
	reply, err := c.api.GetTxResult(hash)
	if err != nil {
		return err
	}
	txResult, err := rpctypes.DecodeTxResult(reply)
	if err != nil {
		return err
	}
	*result = txResult
	return nil
}

// GetAccount 币账户余额
func (c *Chain33) GetAccount(in rpctypes.ReqAddr, result *interface{}) error {
	if err := address.CheckAddress(in.Addr); err != nil {
		return types.ErrInvalidAddress
	}
	acc := c.api.GetAccount(in.Addr)
	*result = &rpctypes.Account{Addr: acc.Addr, Balance: acc.Balance}
	return nil
}

// GetHeight 当前区块高度
func (c *Chain33) GetHeight(in *rpctypes.ReqNil, result *interface{}) error {
	*result = &rpctypes.ReplyHeight{Height: c.api.GetHeight()}
	return nil
}

// Version 节点版本
func (c *Chain33) Version(in *rpctypes.ReqNil, result *interface{}) error {
	*result = version.GetVersion()
	return nil
}
