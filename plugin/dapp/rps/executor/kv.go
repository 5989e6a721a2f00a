// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"

	dbm "github.com/33cn/rps/common/db"
	rpstypes "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
)

var (
	sessionPrefix = "mavl-" + rpstypes.RpsX + "-session-"
	balancePrefix = "mavl-" + rpstypes.RpsX + "-balance-"
)

//SessionKey session 在状态数据库中的 key
func SessionKey(id rpstypes.CommitmentID) []byte {
	return []byte(sessionPrefix + id.Hex())
}

//BalanceKey 结算账本在状态数据库中的 key
func BalanceKey(addr string) []byte {
	return []byte(balancePrefix + addr)
}

//readSession 不存在时返回 ErrRoomNotFound, 其他数据库错误原样返回
func readSession(db dbm.KV, id rpstypes.CommitmentID) (*rpstypes.Session, error) {
	data, err := db.Get(SessionKey(id))
	if err == dbm.ErrNotFoundInDb {
		return nil, rpstypes.ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	var s rpstypes.Session
	if err := types.Decode(data, &s); err != nil {
		panic(err) //数据错误了，已经被修改了
	}
	return &s, nil
}

func saveSession(db dbm.KV, s *rpstypes.Session) *types.KeyValue {
	kv := &types.KeyValue{Key: SessionKey(s.ID), Value: types.Encode(s)}
	if err := db.Set(kv.Key, kv.Value); err != nil {
		panic(err)
	}
	return kv
}

func calcStatusIndexKey(status int32, index int64) []byte {
	return []byte(fmt.Sprintf("rps-status:%d:%018d", status, index))
}

func calcStatusIndexPrefix(status int32) []byte {
	return []byte(fmt.Sprintf("rps-status:%d:", status))
}

func calcAddrIndexKey(addr string, status int32, index int64) []byte {
	return []byte(fmt.Sprintf("rps-addr:%s:%d:%018d", addr, status, index))
}

func calcAddrIndexPrefix(addr string, status int32) []byte {
	return []byte(fmt.Sprintf("rps-addr:%s:%d:", addr, status))
}

func addStatusIndex(status int32, id rpstypes.CommitmentID, index int64) *types.KeyValue {
	record := &rpstypes.SessionRecord{ID: id, Index: index}
	return &types.KeyValue{Key: calcStatusIndexKey(status, index), Value: types.Encode(record)}
}

func addAddrIndex(addr string, status int32, id rpstypes.CommitmentID, index int64) *types.KeyValue {
	record := &rpstypes.SessionRecord{ID: id, Index: index}
	return &types.KeyValue{Key: calcAddrIndexKey(addr, status, index), Value: types.Encode(record)}
}

func delStatusIndex(status int32, index int64) *types.KeyValue {
	return &types.KeyValue{Key: calcStatusIndexKey(status, index)}
}

//value 置 nil, 提交时删除
func delAddrIndex(addr string, status int32, index int64) *types.KeyValue {
	return &types.KeyValue{Key: calcAddrIndexKey(addr, status, index)}
}
