// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package client rpc 和其它模块访问执行器的接口
package client

import "github.com/33cn/rps/types"

//QueueProtocolAPI 节点对外提供的接口, 由 executor.Executor 实现
type QueueProtocolAPI interface {
	// 执行交易, 返回执行结果
	SendTx(tx *types.Transaction) (*types.TxResult, error)
	// 调用执行器的 Query_X 方法
	Query(driver, funcName string, param types.Message) (types.Message, error)
	// 币账户
	GetAccount(addr string) *types.Account
	// 当前区块高度
	GetHeight() int64
	// 根据交易哈希查询执行结果
	GetTxResult(hash []byte) (*types.TxResult, error)
}
