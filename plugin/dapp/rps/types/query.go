// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/rps/types"
)

//ReqSession 按承诺查询
//
//	message ReqSession {
//	    bytes id = 1;
//	}
type ReqSession struct {
	ID CommitmentID `json:"id"`
}

//Marshal 编码
func (r *ReqSession) Marshal() []byte {
	return marshalID(r.ID)
}

//Unmarshal 解码
func (r *ReqSession) Unmarshal(data []byte) error {
	return unmarshalID(data, &r.ID)
}

//ReqAddr 按地址查询
//
//	message ReqAddr {
//	    string addr = 1;
//	}
type ReqAddr struct {
	Addr string `json:"addr"`
}

//Marshal 编码
func (r *ReqAddr) Marshal() []byte {
	e := &types.Encoder{}
	return e.String(1, r.Addr).Encoded()
}

//Unmarshal 解码
func (r *ReqAddr) Unmarshal(data []byte) error {
	*r = ReqAddr{}
	return types.DecodeFields(data, func(f types.Field) error {
		if f.Num == 1 {
			r.Addr = f.String()
		}
		return nil
	})
}

//ReplyBalance 结算账本中的可提取余额
//
//	message ReplyBalance {
//	    string addr = 1;
//	    int64 balance = 2;
//	}
type ReplyBalance struct {
	Addr    string `json:"addr"`
	Balance int64  `json:"balance"`
}

//Marshal 编码
func (r *ReplyBalance) Marshal() []byte {
	e := &types.Encoder{}
	return e.String(1, r.Addr).Int64(2, r.Balance).Encoded()
}

//Unmarshal 解码
func (r *ReplyBalance) Unmarshal(data []byte) error {
	*r = ReplyBalance{}
	return types.DecodeFields(data, func(f types.Field) error {
		switch f.Num {
		case 1:
			r.Addr = f.String()
		case 2:
			r.Balance = f.Int64()
		}
		return nil
	})
}

//ReqListSessions 按状态(和地址)分页, Index 为上一页最后一条的 Index, 0 表示第一页
//
//	message ReqListSessions {
//	    int32 status = 1;
//	    string addr = 2;
//	    int64 index = 3;
//	    int32 count = 4;
//	    int32 direction = 5;
//	}
type ReqListSessions struct {
	Status    int32  `json:"status"`
	Addr      string `json:"addr,omitempty"`
	Index     int64  `json:"index"`
	Count     int32  `json:"count"`
	Direction int32  `json:"direction"`
}

//Marshal 编码
func (r *ReqListSessions) Marshal() []byte {
	e := &types.Encoder{}
	return e.Int32(1, r.Status).String(2, r.Addr).Int64(3, r.Index).Int32(4, r.Count).
		Int32(5, r.Direction).Encoded()
}

//Unmarshal 解码
func (r *ReqListSessions) Unmarshal(data []byte) error {
	*r = ReqListSessions{}
	return types.DecodeFields(data, func(f types.Field) error {
		switch f.Num {
		case 1:
			r.Status = f.Int32()
		case 2:
			r.Addr = f.String()
		case 3:
			r.Index = f.Int64()
		case 4:
			r.Count = f.Int32()
		case 5:
			r.Direction = f.Int32()
		}
		return nil
	})
}

//ReplySessions 列表结果, Total 为该状态(和地址)下的总数
//
//	message ReplySessions {
//	    repeated Session sessions = 1;
//	    int64 total = 2;
//	}
type ReplySessions struct {
	Sessions []*Session `json:"sessions"`
	Total    int64      `json:"total"`
}

//Marshal 编码
func (r *ReplySessions) Marshal() []byte {
	e := &types.Encoder{}
	for _, s := range r.Sessions {
		e.Message(1, s)
	}
	return e.Int64(2, r.Total).Encoded()
}

//Unmarshal 解码
func (r *ReplySessions) Unmarshal(data []byte) error {
	*r = ReplySessions{}
	return types.DecodeFields(data, func(f types.Field) error {
		switch f.Num {
		case 1:
			s := &Session{}
			if err := f.Decode(s); err != nil {
				return err
			}
			r.Sessions = append(r.Sessions, s)
		case 2:
			r.Total = f.Int64()
		}
		return nil
	})
}

//ReqCalcCommitment 计算承诺
//
//	message ReqCalcCommitment {
//	    int32 move = 1;
//	    bytes secret = 2;
//	    string committer = 3;
//	}
type ReqCalcCommitment struct {
	Move      Move   `json:"move"`
	Secret    []byte `json:"secret"`
	Committer string `json:"committer"`
}

//Marshal 编码
func (r *ReqCalcCommitment) Marshal() []byte {
	e := &types.Encoder{}
	return e.Int32(1, int32(r.Move)).Bytes(2, r.Secret).String(3, r.Committer).Encoded()
}

//Unmarshal 解码
func (r *ReqCalcCommitment) Unmarshal(data []byte) error {
	*r = ReqCalcCommitment{}
	return types.DecodeFields(data, func(f types.Field) error {
		switch f.Num {
		case 1:
			r.Move = Move(f.Int32())
		case 2:
			r.Secret = f.Bytes()
		case 3:
			r.Committer = f.String()
		}
		return nil
	})
}

//ReplyCommitment 承诺
type ReplyCommitment = ReqSession

//SessionRecord 本地索引的 value
//
//	message SessionRecord {
//	    bytes id = 1;
//	    int64 index = 2;
//	}
type SessionRecord struct {
	ID    CommitmentID `json:"id"`
	Index int64        `json:"index"`
}

//Marshal 编码
func (r *SessionRecord) Marshal() []byte {
	e := &types.Encoder{}
	return e.Bytes(1, r.ID[:]).Int64(2, r.Index).Encoded()
}

//Unmarshal 解码
func (r *SessionRecord) Unmarshal(data []byte) error {
	*r = SessionRecord{}
	return types.DecodeFields(data, func(f types.Field) error {
		var err error
		switch f.Num {
		case 1:
			r.ID, err = commitmentFromBytes(f.Bytes())
		case 2:
			r.Index = f.Int64()
		}
		return err
	})
}
