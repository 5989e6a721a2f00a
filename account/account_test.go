// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	"github.com/33cn/rps/common/address"
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = address.ExecAddress("user1")
	addr2 = address.ExecAddress("user2")
)

func newTestAccountDB(t *testing.T) *DB {
	db, err := dbm.NewGoMemDB("test", "", 0)
	require.NoError(t, err)
	return NewCoinsAccount(db)
}

func TestGenesisInit(t *testing.T) {
	acc := newTestAccountDB(t)
	receipt, err := acc.GenesisInit(addr1, 100*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, int32(types.TyLogGenesis), receipt.Logs[0].Ty)
	assert.Equal(t, 100*types.Coin, acc.LoadAccount(addr1).Balance)

	_, err = acc.GenesisInit("bad", 1)
	assert.Equal(t, types.ErrInvalidAddress, err)
	_, err = acc.GenesisInit(addr1, types.MaxCoin)
	assert.Equal(t, types.ErrAmount, err)
}

func TestTransfer(t *testing.T) {
	acc := newTestAccountDB(t)
	_, err := acc.GenesisInit(addr1, 100*types.Coin)
	require.NoError(t, err)

	receipt, err := acc.Transfer(addr1, addr2, 30*types.Coin)
	require.NoError(t, err)
	require.Len(t, receipt.KV, 2)
	require.Len(t, receipt.Logs, 2)
	var transfer types.ReceiptAccountTransfer
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &transfer))
	assert.Equal(t, 100*types.Coin, transfer.Prev.Balance)
	assert.Equal(t, 70*types.Coin, transfer.Current.Balance)

	assert.Equal(t, 70*types.Coin, acc.LoadAccount(addr1).Balance)
	assert.Equal(t, 30*types.Coin, acc.LoadAccount(addr2).Balance)

	assert.NoError(t, acc.CheckTransfer(addr2, addr1, 30*types.Coin))
	assert.Equal(t, types.ErrNoBalance, acc.CheckTransfer(addr2, addr1, 31*types.Coin))
	_, err = acc.Transfer(addr2, addr1, 31*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = acc.Transfer(addr1, addr1, 1)
	assert.Equal(t, types.ErrSendSameToRecv, err)
	_, err = acc.Transfer(addr1, addr2, 0)
	assert.Equal(t, types.ErrAmount, err)
	_, err = acc.Transfer(addr1, "bad", 1)
	assert.Equal(t, types.ErrInvalidAddress, err)
}

func TestMergeReceipt(t *testing.T) {
	r1 := &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{{Key: []byte("a")}}}
	r2 := &types.Receipt{Ty: types.ExecOk, Logs: []*types.ReceiptLog{{Ty: 1}}}
	r := MergeReceipt(r1, r2)
	assert.Len(t, r.KV, 1)
	assert.Len(t, r.Logs, 1)
	assert.Equal(t, r2, MergeReceipt(nil, r2))
	assert.Equal(t, r1, MergeReceipt(r1, nil))
}
