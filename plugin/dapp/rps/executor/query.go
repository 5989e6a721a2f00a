// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/rps/common/address"
	dbm "github.com/33cn/rps/common/db"
	rpstypes "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
)

//Query_GetSession 按承诺查询 session
func (r *Rps) Query_GetSession(in *rpstypes.ReqSession) (types.Message, error) {
	return readSession(r.GetStateDB(), in.ID)
}

//Query_GetBalance 结算账本余额
func (r *Rps) Query_GetBalance(in *rpstypes.ReqAddr) (types.Message, error) {
	if err := address.CheckAddress(in.Addr); err != nil {
		return nil, types.ErrInvalidAddress
	}
	return &rpstypes.ReplyBalance{Addr: in.Addr, Balance: NewLedger(r.GetStateDB()).Balance(in.Addr)}, nil
}

//Query_ListSessions 按状态(和地址)分页
func (r *Rps) Query_ListSessions(in *rpstypes.ReqListSessions) (types.Message, error) {
	if in.Status < rpstypes.StatusCreated || in.Status > rpstypes.StatusSettled {
		return nil, types.ErrInvalidParam
	}
	direction := rpstypes.ListDESC
	if in.Direction == rpstypes.ListASC {
		direction = rpstypes.ListASC
	}
	count := rpstypes.DefaultCount
	if 0 < in.Count && in.Count <= rpstypes.MaxCount {
		count = in.Count
	}
	var prefix, key []byte
	if in.Addr == "" {
		prefix = calcStatusIndexPrefix(in.Status)
		key = calcStatusIndexKey(in.Status, in.Index)
	} else {
		prefix = calcAddrIndexPrefix(in.Addr, in.Status)
		key = calcAddrIndexKey(in.Addr, in.Status, in.Index)
	}
	if in.Index == 0 { //第一页
		key = nil
	}
	helper := dbm.NewListHelper(r.GetLocalDB())
	values := helper.List(prefix, key, count, direction)
	reply := &rpstypes.ReplySessions{Total: helper.PrefixCount(prefix)}
	for _, value := range values {
		var record rpstypes.SessionRecord
		if err := types.Decode(value, &record); err != nil {
			continue
		}
		s, err := readSession(r.GetStateDB(), record.ID)
		if err == rpstypes.ErrRoomNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		reply.Sessions = append(reply.Sessions, s)
	}
	return reply, nil
}

//Query_CalcCommitment 计算承诺, 和创建时使用的一致
func (r *Rps) Query_CalcCommitment(in *rpstypes.ReqCalcCommitment) (types.Message, error) {
	if !in.Move.IsConcrete() {
		return nil, rpstypes.ErrInvalidMove
	}
	if err := address.CheckAddress(in.Committer); err != nil {
		return nil, types.ErrInvalidAddress
	}
	return &rpstypes.ReplyCommitment{ID: rpstypes.CalcCommitment(in.Move, in.Secret, in.Committer)}, nil
}

//Query_Say 回显
func (r *Rps) Query_Say(in *types.ReqString) (types.Message, error) {
	return &types.ReplyString{Data: in.Data}, nil
}
