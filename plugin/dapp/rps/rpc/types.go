// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

//CreateTxReq createGameRoom, Stake 单位为 1e-8 币
type CreateTxReq struct {
	ID           string `json:"id"`
	TimeoutDelta int64  `json:"timeoutDelta"`
	Stake        int64  `json:"stake"`
}

//JoinTxReq joinGameRoom
type JoinTxReq struct {
	ID    string `json:"id"`
	Move  string `json:"move"`
	Stake int64  `json:"stake"`
}

//RevealTxReq revealGame, Secret 以 0x 开头时按 hex 解码
type RevealTxReq struct {
	ID     string `json:"id"`
	Move   string `json:"move"`
	Secret string `json:"secret"`
}

//GameIDReq 只需要 id 的请求
type GameIDReq struct {
	ID string `json:"id"`
}

//CommitmentReq 计算承诺
type CommitmentReq struct {
	Move      string `json:"move"`
	Secret    string `json:"secret"`
	Committer string `json:"committer"`
}

//ListSessionsReq 分页查询, Status 为状态名或者数字
type ListSessionsReq struct {
	Status    string `json:"status"`
	Addr      string `json:"addr,omitempty"`
	Index     int64  `json:"index"`
	Count     int32  `json:"count"`
	Direction int32  `json:"direction"`
}

//SayReq 回显
type SayReq struct {
	Msg string `json:"msg"`
}
