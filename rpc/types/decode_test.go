// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"
	"testing"

	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testExecer = "decodetest"

func init() {
	RegisterLog(testExecer, func(ty int32, data []byte) (types.Message, error) {
		if ty != 100 {
			return nil, errors.New("bad log type")
		}
		var s types.ReqString
		err := types.Decode(data, &s)
		return &s, err
	}, func(ty int32) string {
		if ty == 100 {
			return "LogEcho"
		}
		return "unknownType"
	})
}

func TestRegisterLogDup(t *testing.T) {
	assert.Panics(t, func() {
		RegisterLog(testExecer, func(int32, []byte) (types.Message, error) { return nil, nil }, func(int32) string { return "" })
	})
	assert.Panics(t, func() { RegisterLog("other", nil, nil) })
}

func TestDecodeLog(t *testing.T) {
	transfer := &types.ReceiptAccountTransfer{Prev: &types.Account{Addr: "a"}, Current: &types.Account{Addr: "a", Balance: 5}}
	receipt := &types.ReceiptData{
		Ty: types.ExecOk,
		Logs: []*types.ReceiptLog{
			{Ty: types.TyLogTransfer, Log: types.Encode(transfer)},
			{Ty: 100, Log: types.Encode(&types.ReqString{Data: "hi"})},
			{Ty: 101, Log: []byte{1, 2}},
		},
	}
	rd, err := DecodeLog([]byte(testExecer), receipt)
	require.NoError(t, err)
	assert.Equal(t, "ExecOk", rd.TyName)
	require.Len(t, rd.Logs, 3)
	assert.Equal(t, "LogTransfer", rd.Logs[0].TyName)
	assert.Contains(t, string(rd.Logs[0].Log), `"balance":5`)
	assert.Equal(t, "LogEcho", rd.Logs[1].TyName)
	assert.JSONEq(t, `{"data":"hi"}`, string(rd.Logs[1].Log))
	assert.Equal(t, "unknownType", rd.Logs[2].TyName)
	assert.Nil(t, rd.Logs[2].Log)
	assert.Equal(t, "0x0102", rd.Logs[2].RawLog)

	rd, err = DecodeLog([]byte("nobody"), receipt)
	require.NoError(t, err)
	assert.Equal(t, "LogTransfer", rd.Logs[0].TyName)
	assert.Equal(t, "unknownType", rd.Logs[1].TyName)
}

func TestLogName(t *testing.T) {
	assert.Equal(t, "LogGenesis", LogName("nobody", types.TyLogGenesis))
	assert.Equal(t, "LogTransfer", LogName(testExecer, types.TyLogTransfer))
	assert.Equal(t, "LogEcho", LogName(testExecer, 100))
	assert.Equal(t, "unknownType", LogName("nobody", 100))
}
