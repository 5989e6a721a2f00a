// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rpstypes "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
)

//ExecLocal_Create 索引
func (r *Rps) ExecLocal_Create(payload *rpstypes.RpsCreate, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execLocal(receipt), nil
}

//ExecLocal_Join 索引
func (r *Rps) ExecLocal_Join(payload *rpstypes.RpsJoin, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execLocal(receipt), nil
}

//ExecLocal_Reveal 索引
func (r *Rps) ExecLocal_Reveal(payload *rpstypes.RpsReveal, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execLocal(receipt), nil
}

//ExecLocal_RevealForce 索引
func (r *Rps) ExecLocal_RevealForce(payload *rpstypes.RpsRevealForce, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execLocal(receipt), nil
}

//ExecLocal_Reward 索引
func (r *Rps) ExecLocal_Reward(payload *rpstypes.RpsReward, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return r.execLocal(receipt), nil
}

func (r *Rps) execLocal(receipt *types.ReceiptData) *types.LocalDBSet {
	set := &types.LocalDBSet{}
	for _, item := range receipt.Logs {
		if rpstypes.LogName(item.Ty) == "" || item.Ty == rpstypes.TyLogWithdraw {
			continue
		}
		msg, err := rpstypes.DecodeLog(item.Ty, item.Log)
		if err != nil {
			panic(err) //数据错误了，已经被修改了
		}
		set.KV = append(set.KV, updateIndex(msg)...)
	}
	return set
}

//updateIndex 加入新状态的索引, 删除上一个状态的索引
func updateIndex(msg types.Message) (kvs []*types.KeyValue) {
	switch l := msg.(type) {
	case *rpstypes.LogCreateGameRoom:
		kvs = append(kvs, addStatusIndex(rpstypes.StatusCreated, l.ID, l.Index))
		kvs = append(kvs, addAddrIndex(l.PlayerA, rpstypes.StatusCreated, l.ID, l.Index))
	case *rpstypes.LogJoinGameRoom:
		kvs = append(kvs, moveIndex(l.ID, l.PlayerA, l.PlayerB, rpstypes.StatusJoined, l.Index, l.PrevIndex)...)
	case *rpstypes.LogRevealGame:
		kvs = append(kvs, moveIndex(l.ID, l.PlayerA, l.PlayerB, rpstypes.StatusRevealed, l.Index, l.PrevIndex)...)
	case *rpstypes.LogRewardGame:
		kvs = append(kvs, moveIndex(l.ID, l.PlayerA, l.PlayerB, rpstypes.StatusSettled, l.Index, l.PrevIndex)...)
	}
	return kvs
}

func moveIndex(id rpstypes.CommitmentID, playerA, playerB string, status int32, index, prevIndex int64) (kvs []*types.KeyValue) {
	prev := status - 1
	kvs = append(kvs, addStatusIndex(status, id, index))
	kvs = append(kvs, addAddrIndex(playerA, status, id, index))
	kvs = append(kvs, addAddrIndex(playerB, status, id, index))
	kvs = append(kvs, delStatusIndex(prev, prevIndex))
	kvs = append(kvs, delAddrIndex(playerA, prev, prevIndex))
	if prev != rpstypes.StatusCreated {
		kvs = append(kvs, delAddrIndex(playerB, prev, prevIndex))
	}
	return kvs
}
