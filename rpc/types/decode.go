// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"sync"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/types"
)

//LogDecoder 把回执中的 log 解码成可以 json 输出的结构
type LogDecoder func(ty int32, data []byte) (types.Message, error)

//LogNamer log 类型名
type LogNamer func(ty int32) string

type logType struct {
	decode LogDecoder
	name   LogNamer
}

var (
	logMu    sync.RWMutex
	logTypes = make(map[string]logType)
)

//RegisterLog 注册执行器的 log 解码函数, 重复注册会 panic
func RegisterLog(execer string, decode LogDecoder, name LogNamer) {
	logMu.Lock()
	defer logMu.Unlock()
	if decode == nil || name == nil {
		panic("rpc: RegisterLog decoder is nil")
	}
	if _, dup := logTypes[execer]; dup {
		panic("rpc: RegisterLog called twice for " + execer)
	}
	logTypes[execer] = logType{decode: decode, name: name}
}

func loadLog(execer string) (logType, bool) {
	logMu.RLock()
	defer logMu.RUnlock()
	lt, ok := logTypes[execer]
	return lt, ok
}

//ReceiptLogResult 解码后的 log
type ReceiptLogResult struct {
	Ty     int32           `json:"ty"`
	TyName string          `json:"tyName"`
	Log    json.RawMessage `json:"log"`
	RawLog string          `json:"rawLog"`
}

//ReceiptDataResult 解码后的回执
type ReceiptDataResult struct {
	Ty     int32               `json:"ty"`
	TyName string              `json:"tyName"`
	Logs   []*ReceiptLogResult `json:"logs"`
}

//DecodeLog 解码回执, 转账类 log 是系统 log, 其余按执行器注册的解码函数
func DecodeLog(execer []byte, rlog *types.ReceiptData) (*ReceiptDataResult, error) {
	var rTy string
	switch rlog.Ty {
	case types.ExecErr:
		rTy = "ExecErr"
	case types.ExecPack:
		rTy = "ExecPack"
	case types.ExecOk:
		rTy = "ExecOk"
	default:
		rTy = "Unknown"
	}
	rd := &ReceiptDataResult{Ty: rlog.Ty, TyName: rTy}
	lt, hasType := loadLog(string(execer))
	for _, l := range rlog.Logs {
		lTy := "unknownType"
		var logIns json.RawMessage
		var msg types.Message
		var err error
		switch {
		case l.Ty == types.TyLogTransfer || l.Ty == types.TyLogGenesis:
			lTy = systemLogName(l.Ty)
			rt := &types.ReceiptAccountTransfer{}
			err = types.Decode(l.Log, rt)
			msg = rt
		case hasType:
			//解不出来的 log 只输出原始数据
			if m, derr := lt.decode(l.Ty, l.Log); derr == nil {
				lTy = lt.name(l.Ty)
				msg = m
			}
		}
		if err != nil {
			return nil, err
		}
		if msg != nil {
			logIns, err = json.Marshal(msg)
			if err != nil {
				return nil, err
			}
		}
		rd.Logs = append(rd.Logs, &ReceiptLogResult{Ty: l.Ty, TyName: lTy, Log: logIns, RawLog: common.ToHex(l.Log)})
	}
	return rd, nil
}

//LogName log 类型名, 没有注册时返回 unknownType
func LogName(execer string, ty int32) string {
	if ty == types.TyLogTransfer || ty == types.TyLogGenesis {
		return systemLogName(ty)
	}
	if lt, ok := loadLog(execer); ok {
		return lt.name(ty)
	}
	return "unknownType"
}

func systemLogName(ty int32) string {
	if ty == types.TyLogGenesis {
		return "LogGenesis"
	}
	return "LogTransfer"
}

//DecodeTx 交易转成 json 展示结构
func DecodeTx(tx *types.Transaction) *Transaction {
	if tx == nil {
		return nil
	}
	t := &Transaction{
		Execer:  string(tx.Execer),
		Payload: common.ToHex(tx.Payload),
		Amount:  tx.Amount,
		Nonce:   tx.Nonce,
		From:    tx.From(),
		Hash:    common.ToHex(tx.Hash()),
	}
	if tx.Signature != nil {
		t.Signature = common.ToHex(tx.Signature.Signature)
	}
	return t
}

//DecodeTxResult 执行结果转成 json 展示结构
func DecodeTxResult(r *types.TxResult) (*TxResult, error) {
	out := &TxResult{
		Height:    r.Height,
		Index:     r.Index,
		BlockTime: r.BlockTime,
		Tx:        DecodeTx(r.Tx),
	}
	if r.Receipt != nil && r.Tx != nil {
		rd, err := DecodeLog(r.Tx.Execer, r.Receipt)
		if err != nil {
			return nil, err
		}
		out.Receipt = rd
	}
	return out, nil
}
