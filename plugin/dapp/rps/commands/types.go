// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	rpstypes "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
)

//SessionResult session 的命令行展示, 金额以币为单位
type SessionResult struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	PlayerA     string `json:"playerA"`
	PlayerB     string `json:"playerB,omitempty"`
	PlayerAMove string `json:"playerAMove"`
	PlayerBMove string `json:"playerBMove"`
	Pot         string `json:"pot"`
	CreatedAt   int64  `json:"createdAt"`
	TimeoutAt   int64  `json:"timeoutAt"`
	Winner      string `json:"winner,omitempty"`
	Draw        bool   `json:"draw,omitempty"`
	Forced      bool   `json:"forced,omitempty"`
}

func newSessionResult(s *rpstypes.Session) *SessionResult {
	return &SessionResult{
		ID:          s.ID.Hex(),
		Status:      rpstypes.StatusName(s.Status),
		PlayerA:     s.PlayerA,
		PlayerB:     s.PlayerB,
		PlayerAMove: s.PlayerAMove.String(),
		PlayerBMove: s.PlayerBMove.String(),
		Pot:         types.FormatCoins(s.Pot),
		CreatedAt:   s.CreatedAt,
		TimeoutAt:   s.TimeoutAt,
		Winner:      s.Winner,
		Draw:        s.IsDraw(),
		Forced:      s.Forced,
	}
}

func parseSession(res interface{}) (interface{}, error) {
	return newSessionResult(res.(*rpstypes.Session)), nil
}
