// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rpstypes "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/33cn/rps/types"
)

//Exec_Create createGameRoom
func (r *Rps) Exec_Create(payload *rpstypes.RpsCreate, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(r, tx, index).CreateGameRoom(payload)
}

//Exec_Join joinGameRoom
func (r *Rps) Exec_Join(payload *rpstypes.RpsJoin, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(r, tx, index).JoinGameRoom(payload)
}

//Exec_Reveal revealGame
func (r *Rps) Exec_Reveal(payload *rpstypes.RpsReveal, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(r, tx, index).RevealGame(payload)
}

//Exec_RevealForce revealGameForce
func (r *Rps) Exec_RevealForce(payload *rpstypes.RpsRevealForce, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(r, tx, index).RevealGameForce(payload)
}

//Exec_Reward rewardGame
func (r *Rps) Exec_Reward(payload *rpstypes.RpsReward, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(r, tx, index).RewardGame(payload)
}

//Exec_Withdraw withdraw
func (r *Rps) Exec_Withdraw(payload *rpstypes.RpsWithdraw, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(r, tx, index).Withdraw(payload)
}
