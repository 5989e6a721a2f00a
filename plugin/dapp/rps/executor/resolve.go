// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rpstypes "github.com/33cn/rps/plugin/dapp/rps/types"
)

//Outcome 比较结果
type Outcome int32

//Outcome
const (
	Draw Outcome = iota
	AWins
	BWins
)

func (o Outcome) String() string {
	switch o {
	case AWins:
		return "AWins"
	case BWins:
		return "BWins"
	}
	return "Draw"
}

func beats(x, y rpstypes.Move) bool {
	return (x == rpstypes.MoveRock && y == rpstypes.MoveScissor) ||
		(x == rpstypes.MovePaper && y == rpstypes.MoveRock) ||
		(x == rpstypes.MoveScissor && y == rpstypes.MovePaper)
}

//Resolve 石头赢剪刀, 布赢石头, 剪刀赢布.
//没有出拳(或者无效)的一方输, 双方都没有出拳算平局
func Resolve(a, b rpstypes.Move) Outcome {
	switch {
	case !a.IsConcrete() && !b.IsConcrete():
		return Draw
	case !a.IsConcrete():
		return BWins
	case !b.IsConcrete():
		return AWins
	case beats(a, b):
		return AWins
	case beats(b, a):
		return BWins
	}
	return Draw
}

//winnerOf 胜者地址, 平局为空
func winnerOf(s *rpstypes.Session) string {
	switch Resolve(s.PlayerAMove, s.PlayerBMove) {
	case AWins:
		return s.PlayerA
	case BWins:
		return s.PlayerB
	}
	return ""
}
