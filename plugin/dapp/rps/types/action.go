// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/rps/types"
)

//RpsAction 交易 payload, Ty 决定哪个字段有效
//
//	message RpsAction {
//	    int32 ty = 1;
//	    RpsCreate create = 2;
//	    RpsJoin join = 3;
//	    RpsReveal reveal = 4;
//	    RpsRevealForce revealForce = 5;
//	    RpsReward reward = 6;
//	    RpsWithdraw withdraw = 7;
//	}
type RpsAction struct {
	Ty          int32           `json:"ty"`
	Create      *RpsCreate      `json:"create,omitempty"`
	Join        *RpsJoin        `json:"join,omitempty"`
	Reveal      *RpsReveal      `json:"reveal,omitempty"`
	RevealForce *RpsRevealForce `json:"revealForce,omitempty"`
	Reward      *RpsReward      `json:"reward,omitempty"`
	Withdraw    *RpsWithdraw    `json:"withdraw,omitempty"`
}

//Marshal 编码
func (a *RpsAction) Marshal() []byte {
	e := &types.Encoder{}
	return e.Int32(1, a.Ty).Message(2, a.Create).Message(3, a.Join).Message(4, a.Reveal).
		Message(5, a.RevealForce).Message(6, a.Reward).Message(7, a.Withdraw).Encoded()
}

//Unmarshal 解码
func (a *RpsAction) Unmarshal(data []byte) error {
	*a = RpsAction{}
	return types.DecodeFields(data, func(f types.Field) error {
		switch f.Num {
		case 1:
			a.Ty = f.Int32()
		case 2:
			a.Create = &RpsCreate{}
			return f.Decode(a.Create)
		case 3:
			a.Join = &RpsJoin{}
			return f.Decode(a.Join)
		case 4:
			a.Reveal = &RpsReveal{}
			return f.Decode(a.Reveal)
		case 5:
			a.RevealForce = &RpsRevealForce{}
			return f.Decode(a.RevealForce)
		case 6:
			a.Reward = &RpsReward{}
			return f.Decode(a.Reward)
		case 7:
			a.Withdraw = &RpsWithdraw{}
			return f.Decode(a.Withdraw)
		}
		return nil
	})
}

var actionNames = map[int32]string{
	RpsActionCreate:      "Create",
	RpsActionJoin:        "Join",
	RpsActionReveal:      "Reveal",
	RpsActionRevealForce: "RevealForce",
	RpsActionReward:      "Reward",
	RpsActionWithdraw:    "Withdraw",
}

//GetActionName 对应执行器的 Exec_X
func (a *RpsAction) GetActionName() string {
	if name, ok := actionNames[a.Ty]; ok {
		return name
	}
	return "unknown"
}

//GetValue Ty 对应的字段
func (a *RpsAction) GetValue() types.Message {
	switch a.Ty {
	case RpsActionCreate:
		return a.Create
	case RpsActionJoin:
		return a.Join
	case RpsActionReveal:
		return a.Reveal
	case RpsActionRevealForce:
		return a.RevealForce
	case RpsActionReward:
		return a.Reward
	case RpsActionWithdraw:
		return a.Withdraw
	}
	return nil
}

//RpsCreate createGameRoom, 赌注为交易的 Amount
//
//	message RpsCreate {
//	    bytes id = 1;
//	    int64 timeoutDelta = 2;
//	}
type RpsCreate struct {
	ID           CommitmentID `json:"id"`
	TimeoutDelta int64        `json:"timeoutDelta"`
}

//Marshal 编码
func (c *RpsCreate) Marshal() []byte {
	e := &types.Encoder{}
	return e.Bytes(1, c.ID[:]).Int64(2, c.TimeoutDelta).Encoded()
}

//Unmarshal 解码
func (c *RpsCreate) Unmarshal(data []byte) error {
	*c = RpsCreate{}
	return types.DecodeFields(data, func(f types.Field) error {
		var err error
		switch f.Num {
		case 1:
			c.ID, err = commitmentFromBytes(f.Bytes())
		case 2:
			c.TimeoutDelta = f.Int64()
		}
		return err
	})
}

//RpsJoin joinGameRoom, 赌注为交易的 Amount
//
//	message RpsJoin {
//	    bytes id = 1;
//	    int32 move = 2;
//	}
type RpsJoin struct {
	ID   CommitmentID `json:"id"`
	Move Move         `json:"move"`
}

//Marshal 编码
func (j *RpsJoin) Marshal() []byte {
	e := &types.Encoder{}
	return e.Bytes(1, j.ID[:]).Int32(2, int32(j.Move)).Encoded()
}

//Unmarshal 解码
func (j *RpsJoin) Unmarshal(data []byte) error {
	*j = RpsJoin{}
	return types.DecodeFields(data, func(f types.Field) error {
		var err error
		switch f.Num {
		case 1:
			j.ID, err = commitmentFromBytes(f.Bytes())
		case 2:
			j.Move = Move(f.Int32())
		}
		return err
	})
}

//RpsReveal revealGame
//
//	message RpsReveal {
//	    bytes id = 1;
//	    int32 move = 2;
//	    bytes secret = 3;
//	}
type RpsReveal struct {
	ID     CommitmentID `json:"id"`
	Move   Move         `json:"move"`
	Secret []byte       `json:"secret"`
}

//Marshal 编码
func (r *RpsReveal) Marshal() []byte {
	e := &types.Encoder{}
	return e.Bytes(1, r.ID[:]).Int32(2, int32(r.Move)).Bytes(3, r.Secret).Encoded()
}

//Unmarshal 解码
func (r *RpsReveal) Unmarshal(data []byte) error {
	*r = RpsReveal{}
	return types.DecodeFields(data, func(f types.Field) error {
		var err error
		switch f.Num {
		case 1:
			r.ID, err = commitmentFromBytes(f.Bytes())
		case 2:
			r.Move = Move(f.Int32())
		case 3:
			r.Secret = f.Bytes()
		}
		return err
	})
}

//RpsRevealForce revealGameForce
//
//	message RpsRevealForce {
//	    bytes id = 1;
//	}
type RpsRevealForce struct {
	ID CommitmentID `json:"id"`
}

//Marshal 编码
func (r *RpsRevealForce) Marshal() []byte {
	return marshalID(r.ID)
}

//Unmarshal 解码
func (r *RpsRevealForce) Unmarshal(data []byte) error {
	return unmarshalID(data, &r.ID)
}

//RpsReward rewardGame
//
//	message RpsReward {
//	    bytes id = 1;
//	}
type RpsReward struct {
	ID CommitmentID `json:"id"`
}

//Marshal 编码
func (r *RpsReward) Marshal() []byte {
	return marshalID(r.ID)
}

//Unmarshal 解码
func (r *RpsReward) Unmarshal(data []byte) error {
	return unmarshalID(data, &r.ID)
}

//RpsWithdraw withdraw, 没有参数
//
//	message RpsWithdraw {}
type RpsWithdraw struct{}

//Marshal 编码
func (w *RpsWithdraw) Marshal() []byte {
	return []byte{}
}

//Unmarshal 解码
func (w *RpsWithdraw) Unmarshal(data []byte) error {
	return types.DecodeFields(data, func(f types.Field) error { return nil })
}

func marshalID(id CommitmentID) []byte {
	e := &types.Encoder{}
	return e.Bytes(1, id[:]).Encoded()
}

func unmarshalID(data []byte, id *CommitmentID) error {
	*id = CommitmentID{}
	return types.DecodeFields(data, func(f types.Field) error {
		if f.Num != 1 {
			return nil
		}
		var err error
		*id, err = commitmentFromBytes(f.Bytes())
		return err
	})
}
