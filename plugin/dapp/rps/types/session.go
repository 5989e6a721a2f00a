// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/rps/types"
)

//Session 一局游戏, 以承诺为 key 保存在状态数据库, 不会被删除
//
//	message Session {
//	    bytes id = 1;
//	    string playerA = 2;
//	    string playerB = 3;
//	    int32 playerAMove = 4;
//	    int32 playerBMove = 5;
//	    int64 pot = 6;
//	    int64 createdAt = 7;
//	    int64 timeoutAt = 8;
//	    string winner = 9;
//	    int32 status = 10;
//	    bool forced = 11;
//	    int64 index = 12;
//	    int64 prevIndex = 13;
//	}
type Session struct {
	ID          CommitmentID `json:"id"`
	PlayerA     string       `json:"playerA"`
	PlayerB     string       `json:"playerB,omitempty"`
	PlayerAMove Move         `json:"playerAMove"`
	PlayerBMove Move         `json:"playerBMove"`
	Pot         int64        `json:"pot"`
	CreatedAt   int64        `json:"createdAt"`
	TimeoutAt   int64        `json:"timeoutAt"`
	Winner      string       `json:"winner,omitempty"`
	Status      int32        `json:"status"`
	Forced      bool         `json:"forced,omitempty"`
	//height*MaxTxsPerBlock+index, 本地索引使用
	Index     int64 `json:"index"`
	PrevIndex int64 `json:"prevIndex"`
}

//Marshal 编码
func (s *Session) Marshal() []byte {
	e := &types.Encoder{}
	return e.Bytes(1, s.ID[:]).String(2, s.PlayerA).String(3, s.PlayerB).
		Int32(4, int32(s.PlayerAMove)).Int32(5, int32(s.PlayerBMove)).Int64(6, s.Pot).
		Int64(7, s.CreatedAt).Int64(8, s.TimeoutAt).String(9, s.Winner).Int32(10, s.Status).
		Bool(11, s.Forced).Int64(12, s.Index).Int64(13, s.PrevIndex).Encoded()
}

//Unmarshal 解码
func (s *Session) Unmarshal(data []byte) error {
	*s = Session{}
	return types.DecodeFields(data, func(f types.Field) error {
		var err error
		switch f.Num {
		case 1:
			s.ID, err = commitmentFromBytes(f.Bytes())
		case 2:
			s.PlayerA = f.String()
		case 3:
			s.PlayerB = f.String()
		case 4:
			s.PlayerAMove = Move(f.Int32())
		case 5:
			s.PlayerBMove = Move(f.Int32())
		case 6:
			s.Pot = f.Int64()
		case 7:
			s.CreatedAt = f.Int64()
		case 8:
			s.TimeoutAt = f.Int64()
		case 9:
			s.Winner = f.String()
		case 10:
			s.Status = f.Int32()
		case 11:
			s.Forced = f.Bool()
		case 12:
			s.Index = f.Int64()
		case 13:
			s.PrevIndex = f.Int64()
		}
		return err
	})
}

//IsDraw 已经开奖且平局
func (s *Session) IsDraw() bool {
	return s.Status >= StatusRevealed && s.Winner == ""
}
