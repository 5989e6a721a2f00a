// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/rps/types"
)

//CreateRawCreateTx 未签名的 createGameRoom 交易, stake 随交易转入托管
func CreateRawCreateTx(id CommitmentID, timeoutDelta, stake int64) *types.Transaction {
	action := &RpsAction{Ty: RpsActionCreate, Create: &RpsCreate{ID: id, TimeoutDelta: timeoutDelta}}
	return types.CreateTx(RpsX, action, stake)
}

//CreateRawJoinTx 未签名的 joinGameRoom 交易
func CreateRawJoinTx(id CommitmentID, move Move, stake int64) *types.Transaction {
	action := &RpsAction{Ty: RpsActionJoin, Join: &RpsJoin{ID: id, Move: move}}
	return types.CreateTx(RpsX, action, stake)
}

//CreateRawRevealTx 未签名的 revealGame 交易
func CreateRawRevealTx(id CommitmentID, move Move, secret []byte) *types.Transaction {
	action := &RpsAction{Ty: RpsActionReveal, Reveal: &RpsReveal{ID: id, Move: move, Secret: secret}}
	return types.CreateTx(RpsX, action, 0)
}

//CreateRawRevealForceTx 未签名的 revealGameForce 交易
func CreateRawRevealForceTx(id CommitmentID) *types.Transaction {
	action := &RpsAction{Ty: RpsActionRevealForce, RevealForce: &RpsRevealForce{ID: id}}
	return types.CreateTx(RpsX, action, 0)
}

//CreateRawRewardTx 未签名的 rewardGame 交易
func CreateRawRewardTx(id CommitmentID) *types.Transaction {
	action := &RpsAction{Ty: RpsActionReward, Reward: &RpsReward{ID: id}}
	return types.CreateTx(RpsX, action, 0)
}

//CreateRawWithdrawTx 未签名的 withdraw 交易
func CreateRawWithdrawTx() *types.Transaction {
	action := &RpsAction{Ty: RpsActionWithdraw, Withdraw: &RpsWithdraw{}}
	return types.CreateTx(RpsX, action, 0)
}
