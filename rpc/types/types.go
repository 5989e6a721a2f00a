// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types jsonrpc 的参数和返回值, 以及插件注册 rpc 的接口
package types

import (
	"net/rpc"

	"github.com/33cn/rps/client"
)

//RPCServer 插件通过它注册自己的 jsonrpc 服务
type RPCServer interface {
	JRPC() *rpc.Server
	API() client.QueueProtocolAPI
}

//ChannelClient 插件 rpc 的公共部分
type ChannelClient struct {
	client.QueueProtocolAPI
}

//Init 注册 jrpc 服务, name 为服务名, 比如 rps
func (c *ChannelClient) Init(name string, s RPCServer, jrpc interface{}) {
	if c.QueueProtocolAPI == nil {
		c.QueueProtocolAPI = s.API()
	}
	if jrpc != nil {
		if err := s.JRPC().RegisterName(name, jrpc); err != nil {
			panic(err)
		}
	}
}

//RawParm 十六进制编码的数据, 比如签名后的交易
type RawParm struct {
	Data string `json:"data"`
}

//ReqAddr 地址
type ReqAddr struct {
	Addr string `json:"addr"`
}

//ReqHash 交易哈希
type ReqHash struct {
	Hash string `json:"hash"`
}

//ReqNil 无参数
type ReqNil struct{}

//ReplyHeight 当前高度
type ReplyHeight struct {
	Height int64 `json:"height"`
}

//Account 币账户
type Account struct {
	Addr    string `json:"addr"`
	Balance int64  `json:"balance"`
}

//Transaction 交易的 json 展示
type Transaction struct {
	Execer    string `json:"execer"`
	Payload   string `json:"payload"`
	Amount    int64  `json:"amount"`
	Nonce     int64  `json:"nonce"`
	From      string `json:"from,omitempty"`
	Hash      string `json:"hash"`
	Signature string `json:"signature,omitempty"`
}

//TxResult 交易执行结果
type TxResult struct {
	Height    int64              `json:"height"`
	Index     int32              `json:"index"`
	BlockTime int64              `json:"blockTime"`
	Tx        *Transaction       `json:"tx"`
	Receipt   *ReceiptDataResult `json:"receipt"`
}
