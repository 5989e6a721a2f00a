// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "strings"

//Move 出拳
type Move int32

const (
	//MoveNone 还没有公开
	MoveNone Move = iota
	//MoveRock 石头
	MoveRock
	//MovePaper 布
	MovePaper
	//MoveScissor 剪刀
	MoveScissor
)

//IsConcrete 石头, 布, 剪刀之一
func (m Move) IsConcrete() bool {
	return m == MoveRock || m == MovePaper || m == MoveScissor
}

func (m Move) String() string {
	switch m {
	case MoveNone:
		return "none"
	case MoveRock:
		return "rock"
	case MovePaper:
		return "paper"
	case MoveScissor:
		return "scissor"
	}
	return "unknown"
}

//ParseMove 名字或者数字
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock", "1":
		return MoveRock, nil
	case "paper", "2":
		return MovePaper, nil
	case "scissor", "scissors", "3":
		return MoveScissor, nil
	}
	return MoveNone, ErrInvalidMove
}
