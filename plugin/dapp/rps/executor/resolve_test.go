// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	rpstypes "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	var (
		none    = rpstypes.MoveNone
		rock    = rpstypes.MoveRock
		paper   = rpstypes.MovePaper
		scissor = rpstypes.MoveScissor
	)
	cases := []struct {
		a, b rpstypes.Move
		want Outcome
	}{
		{rock, scissor, AWins},
		{scissor, rock, BWins},
		{paper, rock, AWins},
		{rock, paper, BWins},
		{scissor, paper, AWins},
		{paper, scissor, BWins},
		{rock, rock, Draw},
		{paper, paper, Draw},
		{scissor, scissor, Draw},
		{none, rock, BWins},
		{none, paper, BWins},
		{none, scissor, BWins},
		{rock, none, AWins},
		{none, none, Draw},
		{rpstypes.Move(7), paper, BWins},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Resolve(c.a, c.b), "%s vs %s", c.a, c.b)
	}
}

func TestWinnerOf(t *testing.T) {
	s := &rpstypes.Session{PlayerA: "a", PlayerB: "b", PlayerAMove: rpstypes.MovePaper, PlayerBMove: rpstypes.MoveRock}
	assert.Equal(t, "a", winnerOf(s))
	s.PlayerAMove = rpstypes.MoveNone
	assert.Equal(t, "b", winnerOf(s))
	s.PlayerAMove = rpstypes.MoveRock
	assert.Equal(t, "", winnerOf(s))
	assert.Equal(t, "Draw", Draw.String())
}
