// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/rps/types"
)

//每个成功的 rps 操作在回执里恰好有一条下面的 log

//LogCreateGameRoom createGameRoom
//
//	message LogCreateGameRoom {
//	    bytes id = 1;
//	    string playerA = 2;
//	    int64 createdAt = 3;
//	    int64 timeoutAt = 4;
//	    int64 pot = 5;
//	    int64 index = 6;
//	}
type LogCreateGameRoom struct {
	ID        CommitmentID `json:"id"`
	PlayerA   string       `json:"playerA"`
	CreatedAt int64        `json:"createdAt"`
	TimeoutAt int64        `json:"timeoutAt"`
	Pot       int64        `json:"pot"`
	Index     int64        `json:"index"`
}

//Marshal 编码
func (l *LogCreateGameRoom) Marshal() []byte {
	e := &types.Encoder{}
	return e.Bytes(1, l.ID[:]).String(2, l.PlayerA).Int64(3, l.CreatedAt).Int64(4, l.TimeoutAt).
		Int64(5, l.Pot).Int64(6, l.Index).Encoded()
}

//Unmarshal 解码
func (l *LogCreateGameRoom) Unmarshal(data []byte) error {
	*l = LogCreateGameRoom{}
	return types.DecodeFields(data, func(f types.Field) error {
		var err error
		switch f.Num {
		case 1:
			l.ID, err = commitmentFromBytes(f.Bytes())
		case 2:
			l.PlayerA = f.String()
		case 3:
			l.CreatedAt = f.Int64()
		case 4:
			l.TimeoutAt = f.Int64()
		case 5:
			l.Pot = f.Int64()
		case 6:
			l.Index = f.Int64()
		}
		return err
	})
}

//LogJoinGameRoom joinGameRoom, Pot 为加入后的总额
//
//	message LogJoinGameRoom {
//	    bytes id = 1;
//	    string playerA = 2;
//	    string playerB = 3;
//	    int32 playerBMove = 4;
//	    int64 pot = 5;
//	    int64 index = 6;
//	    int64 prevIndex = 7;
//	}
type LogJoinGameRoom struct {
	ID          CommitmentID `json:"id"`
	PlayerA     string       `json:"playerA"`
	PlayerB     string       `json:"playerB"`
	PlayerBMove Move         `json:"playerBMove"`
	Pot         int64        `json:"pot"`
	Index       int64        `json:"index"`
	PrevIndex   int64        `json:"prevIndex"`
}

//Marshal 编码
func (l *LogJoinGameRoom) Marshal() []byte {
	e := &types.Encoder{}
	return e.Bytes(1, l.ID[:]).String(2, l.PlayerA).String(3, l.PlayerB).Int32(4, int32(l.PlayerBMove)).
		Int64(5, l.Pot).Int64(6, l.Index).Int64(7, l.PrevIndex).Encoded()
}

//Unmarshal 解码
func (l *LogJoinGameRoom) Unmarshal(data []byte) error {
	*l = LogJoinGameRoom{}
	return types.DecodeFields(data, func(f types.Field) error {
		var err error
		switch f.Num {
		case 1:
			l.ID, err = commitmentFromBytes(f.Bytes())
		case 2:
			l.PlayerA = f.String()
		case 3:
			l.PlayerB = f.String()
		case 4:
			l.PlayerBMove = Move(f.Int32())
		case 5:
			l.Pot = f.Int64()
		case 6:
			l.Index = f.Int64()
		case 7:
			l.PrevIndex = f.Int64()
		}
		return err
	})
}

//LogRevealGame revealGame 和 revealGameForce, Winner 为空表示平局
//
//	message LogRevealGame {
//	    bytes id = 1;
//	    string playerA = 2;
//	    string playerB = 3;
//	    int64 pot = 4;
//	    int32 playerAMove = 5;
//	    int32 playerBMove = 6;
//	    string winner = 7;
//	    bool isOver = 8;
//	    bool forced = 9;
//	    int64 index = 10;
//	    int64 prevIndex = 11;
//	}
type LogRevealGame struct {
	ID          CommitmentID `json:"id"`
	PlayerA     string       `json:"playerA"`
	PlayerB     string       `json:"playerB"`
	Pot         int64        `json:"pot"`
	PlayerAMove Move         `json:"playerAMove"`
	PlayerBMove Move         `json:"playerBMove"`
	Winner      string       `json:"winner"`
	IsOver      bool         `json:"isOver"`
	Forced      bool         `json:"forced"`
	Index       int64        `json:"index"`
	PrevIndex   int64        `json:"prevIndex"`
}

//Marshal 编码
func (l *LogRevealGame) Marshal() []byte {
	e := &types.Encoder{}
	return e.Bytes(1, l.ID[:]).String(2, l.PlayerA).String(3, l.PlayerB).Int64(4, l.Pot).
		Int32(5, int32(l.PlayerAMove)).Int32(6, int32(l.PlayerBMove)).String(7, l.Winner).
		Bool(8, l.IsOver).Bool(9, l.Forced).Int64(10, l.Index).Int64(11, l.PrevIndex).Encoded()
}

//Unmarshal 解码
func (l *LogRevealGame) Unmarshal(data []byte) error {
	*l = LogRevealGame{}
	return types.DecodeFields(data, func(f types.Field) error {
		var err error
		switch f.Num {
		case 1:
			l.ID, err = commitmentFromBytes(f.Bytes())
		case 2:
			l.PlayerA = f.String()
		case 3:
			l.PlayerB = f.String()
		case 4:
			l.Pot = f.Int64()
		case 5:
			l.PlayerAMove = Move(f.Int32())
		case 6:
			l.PlayerBMove = Move(f.Int32())
		case 7:
			l.Winner = f.String()
		case 8:
			l.IsOver = f.Bool()
		case 9:
			l.Forced = f.Bool()
		case 10:
			l.Index = f.Int64()
		case 11:
			l.PrevIndex = f.Int64()
		}
		return err
	})
}

//LogRewardGame rewardGame, Pot 为清零之前的金额, 余额为结算后的账本余额
//
//	message LogRewardGame {
//	    bytes id = 1;
//	    string playerA = 2;
//	    string playerB = 3;
//	    int64 pot = 4;
//	    string winner = 5;
//	    int64 playerABalance = 6;
//	    int64 playerBBalance = 7;
//	    bool isReward = 8;
//	    int64 index = 9;
//	    int64 prevIndex = 10;
//	}
type LogRewardGame struct {
	ID             CommitmentID `json:"id"`
	PlayerA        string       `json:"playerA"`
	PlayerB        string       `json:"playerB"`
	Pot            int64        `json:"pot"`
	Winner         string       `json:"winner"`
	PlayerABalance int64        `json:"playerABalance"`
	PlayerBBalance int64        `json:"playerBBalance"`
	IsReward       bool         `json:"isReward"`
	Index          int64        `json:"index"`
	PrevIndex      int64        `json:"prevIndex"`
}

//Marshal 编码
func (l *LogRewardGame) Marshal() []byte {
	e := &types.Encoder{}
	return e.Bytes(1, l.ID[:]).String(2, l.PlayerA).String(3, l.PlayerB).Int64(4, l.Pot).
		String(5, l.Winner).Int64(6, l.PlayerABalance).Int64(7, l.PlayerBBalance).Bool(8, l.IsReward).
		Int64(9, l.Index).Int64(10, l.PrevIndex).Encoded()
}

//Unmarshal 解码
func (l *LogRewardGame) Unmarshal(data []byte) error {
	*l = LogRewardGame{}
	return types.DecodeFields(data, func(f types.Field) error {
		var err error
		switch f.Num {
		case 1:
			l.ID, err = commitmentFromBytes(f.Bytes())
		case 2:
			l.PlayerA = f.String()
		case 3:
			l.PlayerB = f.String()
		case 4:
			l.Pot = f.Int64()
		case 5:
			l.Winner = f.String()
		case 6:
			l.PlayerABalance = f.Int64()
		case 7:
			l.PlayerBBalance = f.Int64()
		case 8:
			l.IsReward = f.Bool()
		case 9:
			l.Index = f.Int64()
		case 10:
			l.PrevIndex = f.Int64()
		}
		return err
	})
}

//LogWithdraw withdraw
//
//	message LogWithdraw {
//	    string player = 1;
//	    int64 amount = 2;
//	}
type LogWithdraw struct {
	Player string `json:"player"`
	Amount int64  `json:"amount"`
}

//Marshal 编码
func (l *LogWithdraw) Marshal() []byte {
	e := &types.Encoder{}
	return e.String(1, l.Player).Int64(2, l.Amount).Encoded()
}

//Unmarshal 解码
func (l *LogWithdraw) Unmarshal(data []byte) error {
	*l = LogWithdraw{}
	return types.DecodeFields(data, func(f types.Field) error {
		switch f.Num {
		case 1:
			l.Player = f.String()
		case 2:
			l.Amount = f.Int64()
		}
		return nil
	})
}

//DecodeLog 按 log 类型解码, 不是 rps 的 log 返回 ErrNotFound
func DecodeLog(ty int32, data []byte) (types.Message, error) {
	var msg types.Message
	switch ty {
	case TyLogCreateGameRoom:
		msg = &LogCreateGameRoom{}
	case TyLogJoinGameRoom:
		msg = &LogJoinGameRoom{}
	case TyLogRevealGame:
		msg = &LogRevealGame{}
	case TyLogRewardGame:
		msg = &LogRewardGame{}
	case TyLogWithdraw:
		msg = &LogWithdraw{}
	default:
		return nil, types.ErrNotFound
	}
	if err := types.Decode(data, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
