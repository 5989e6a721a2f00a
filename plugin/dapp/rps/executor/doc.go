// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
石头剪刀布, 先承诺后公开:

1. 承诺: id = keccak256(move, secret, 创建者地址), 在钱包(客户端)中计算
2. 创建: createGameRoom(id, timeoutDelta), 交易金额为赌注, 转入合约托管账户
3. 加入: joinGameRoom(id, move), 明文出拳, 交易金额为赌注, 必须在 timeoutAt 之前
4. 公开: revealGame(id, move, secret), 只有创建者, 超时后只要对方还没有强制开奖也可以
5. 超时: revealGameForce(id), 只有加入者, 高度到达 timeoutAt 之后, 创建者判负
6. 结算: rewardGame(id), 任何人都可以, 奖池记入结算账本, 平局各得一半, 奇数的余数留在合约
7. 提取: withdraw(), 先把账本余额清零再转账

status: Created 1 -> Joined 2 -> Revealed 3 -> Settled 4

本地索引:
	rps-status:<status>:<HeightIndex>
	rps-addr:<addr>:<status>:<HeightIndex>
	HeightIndex=fmt.Sprintf("%018d", height*types.MaxTxsPerBlock+index)
状态变化时加入新的索引, 删除上一个状态的索引
*/
