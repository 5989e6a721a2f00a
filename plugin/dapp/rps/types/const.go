// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"strconv"
	"strings"
)

//RpsX 执行器名
const RpsX = "rps"

//ExecerRps 执行器名
var ExecerRps = []byte(RpsX)

//rps action ty
const (
	RpsActionCreate = iota + 1
	RpsActionJoin
	RpsActionReveal
	RpsActionRevealForce
	RpsActionReward
	RpsActionWithdraw
)

//rps log ty, 插件的 log 从 700 开始
const (
	TyLogCreateGameRoom = 701
	TyLogJoinGameRoom   = 702
	TyLogRevealGame     = 703
	TyLogRewardGame     = 704
	TyLogWithdraw       = 705
)

//session 状态, 只能向前变化
const (
	StatusNonExistent = int32(iota)
	StatusCreated
	StatusJoined
	StatusRevealed
	StatusSettled
)

//查询函数名
const (
	FuncNameGetSession     = "GetSession"
	FuncNameGetBalance     = "GetBalance"
	FuncNameListSessions   = "ListSessions"
	FuncNameCalcCommitment = "CalcCommitment"
	FuncNameSay            = "Say"
)

//列表查询
const (
	ListDESC     = int32(0)
	ListASC      = int32(1)
	DefaultCount = int32(20)
	MaxCount     = int32(100)
)

//timeoutDelta 的默认范围, 单位为区块
const (
	DefaultMinTimeoutDelta = int64(1)
	DefaultMaxTimeoutDelta = int64(100000)
)

var statusNames = map[int32]string{
	StatusNonExistent: "NonExistent",
	StatusCreated:     "Created",
	StatusJoined:      "Joined",
	StatusRevealed:    "Revealed",
	StatusSettled:     "Settled",
}

//StatusName 状态名
func StatusName(status int32) string {
	if name, ok := statusNames[status]; ok {
		return name
	}
	return "unknown"
}

//ParseStatus 状态名(不区分大小写)或者数字, 只接受可以查询的状态
func ParseStatus(s string) (int32, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		if int32(n) >= StatusCreated && int32(n) <= StatusSettled {
			return int32(n), nil
		}
		return 0, ErrWrongState
	}
	for status, name := range statusNames {
		if status != StatusNonExistent && strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return 0, ErrWrongState
}

var logNames = map[int32]string{
	TyLogCreateGameRoom: "LogCreateGameRoom",
	TyLogJoinGameRoom:   "LogJoinGameRoom",
	TyLogRevealGame:     "LogRevealGame",
	TyLogRewardGame:     "LogRewardGame",
	TyLogWithdraw:       "LogWithdraw",
}

//LogName 事件名, 不是 rps 的 log 返回空
func LogName(ty int32) string {
	return logNames[ty]
}
