// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// coin conversation
const (
	Coin           int64 = 1e8
	MaxCoin        int64 = 1e17
	MaxTxSize            = 100000 //100K
	MaxTxsPerBlock       = 100000
)

//执行结果
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

//系统 log 类型, 插件的 log 类型从 700 开始
const (
	TyLogReserved = 0
	TyLogErr      = 1
	TyLogTransfer = 3
	TyLogGenesis  = 4
)

//CoinsX 币账户执行器名
const CoinsX = "coins"

//本地数据库中的 key 前缀
var (
	TxResultPrefix = []byte("LODB-tx-")
	TxDupPrefix    = []byte("LODB-txdup-")
)

//CalcTxKey 交易结果在本地数据库中的 key
func CalcTxKey(hash []byte) []byte {
	return append(append([]byte{}, TxResultPrefix...), hash...)
}

//CalcTxDupKey 重复交易检查的 key
func CalcTxDupKey(hash []byte) []byte {
	return append(append([]byte{}, TxDupPrefix...), hash...)
}
