// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/rps/common/db"
	rpstypes "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
	"google.golang.org/protobuf/encoding/protowire"
)

//TransferFunc 把 amount 从托管账户转给 addr
type TransferFunc func(addr string, amount int64) error

//Ledger 结算账本: 只有结算增加余额, 只有提取减少余额
type Ledger struct {
	db  dbm.KV
	kvs []*types.KeyValue
}

//NewLedger new
func NewLedger(db dbm.KV) *Ledger {
	return &Ledger{db: db}
}

//Balance 可提取余额
func (l *Ledger) Balance(addr string) int64 {
	data, err := l.db.Get(BalanceKey(addr))
	if err != nil || len(data) == 0 {
		return 0
	}
	v, n := protowire.ConsumeVarint(data)
	if n < 0 {
		panic(protowire.ParseError(n)) //数据错误了，已经被修改了
	}
	return int64(v)
}

func (l *Ledger) set(addr string, balance int64) {
	kv := &types.KeyValue{Key: BalanceKey(addr), Value: protowire.AppendVarint(nil, uint64(balance))}
	if err := l.db.Set(kv.Key, kv.Value); err != nil {
		panic(err)
	}
	l.kvs = append(l.kvs, kv)
}

//Credit 结算时记账, 返回新的余额
func (l *Ledger) Credit(addr string, amount int64) int64 {
	balance := l.Balance(addr) + amount
	l.set(addr, balance)
	return balance
}

//Withdraw 先清零再转账. transfer 里重入 Withdraw 只能看到 0
func (l *Ledger) Withdraw(addr string, transfer TransferFunc) (int64, error) {
	balance := l.Balance(addr)
	if balance == 0 {
		return 0, rpstypes.ErrNothingToWithdraw
	}
	l.set(addr, 0)
	if err := transfer(addr, balance); err != nil {
		return 0, err
	}
	return balance, nil
}

//KV 本次写入的修改
func (l *Ledger) KV() []*types.KeyValue {
	return l.kvs
}
