// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"testing"

	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoAction struct {
	Ty  int32
	Say *types.ReqString
}

func (a *echoAction) Marshal() []byte {
	e := &types.Encoder{}
	return e.Int32(1, a.Ty).Message(2, a.Say).Encoded()
}

func (a *echoAction) Unmarshal(data []byte) error {
	*a = echoAction{}
	return types.DecodeFields(data, func(f types.Field) error {
		switch f.Num {
		case 1:
			a.Ty = f.Int32()
		case 2:
			a.Say = &types.ReqString{}
			return f.Decode(a.Say)
		}
		return nil
	})
}

func (a *echoAction) GetActionName() string {
	if a.Ty == 1 {
		return "Say"
	}
	return "unknown"
}

func (a *echoAction) GetValue() types.Message {
	return a.Say
}

type echo struct {
	DriverBase
}

func newEcho() Driver {
	e := &echo{}
	e.SetChild(e)
	return e
}

func (e *echo) GetDriverName() string { return "echo" }

func (e *echo) GetPayloadValue() ExecutorAction { return &echoAction{} }

func (e *echo) Exec_Say(say *types.ReqString, tx *types.Transaction, index int) (*types.Receipt, error) {
	if say.Data == "" {
		return nil, types.ErrInvalidParam
	}
	kv := &types.KeyValue{Key: []byte("mavl-echo-" + say.Data), Value: []byte(say.Data)}
	if err := e.GetStateDB().Set(kv.Key, kv.Value); err != nil {
		return nil, err
	}
	return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{kv}}, nil
}

func (e *echo) ExecLocal_Say(say *types.ReqString, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{KV: []*types.KeyValue{{Key: []byte("LODB-echo-" + say.Data), Value: []byte{1}}}}, nil
}

func (e *echo) Query_Echo(in *types.ReqString) (types.Message, error) {
	return &types.ReplyString{Data: in.Data + "@" + e.GetName()}, nil
}

// 签名不对的方法不会进入方法表
func (e *echo) Exec_Bad(say *types.ReqString) error { return nil }

func init() {
	Register("echo", newEcho)
}

func TestListMethod(t *testing.T) {
	funcmap := newEcho().GetFuncMap()
	assert.Contains(t, funcmap, "Exec_Say")
	assert.Contains(t, funcmap, "ExecLocal_Say")
	assert.Contains(t, funcmap, "Query_Echo")
	assert.NotContains(t, funcmap, "Exec_Bad")
}

func TestDriverExec(t *testing.T) {
	d, err := LoadDriver("echo")
	require.NoError(t, err)
	db, _ := dbm.NewGoMemDB("test", "", 0)
	d.SetStateDB(db)
	d.SetLocalDB(db)
	d.SetEnv(10, 1000)
	assert.Equal(t, int64(10), d.GetHeight())
	assert.Equal(t, int64(1000), d.GetBlockTime())

	tx := types.CreateTx("echo", &echoAction{Ty: 1, Say: &types.ReqString{Data: "hi"}}, 0)
	require.NoError(t, d.CheckTx(tx, 0))
	receipt, err := d.Exec(tx, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	v, err := db.Get([]byte("mavl-echo-hi"))
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), v)

	set, err := d.ExecLocal(tx, receipt.ToReceiptData(), 0)
	require.NoError(t, err)
	require.Len(t, set.KV, 1)
	set, err = d.ExecLocal(tx, &types.ReceiptData{Ty: types.ExecErr}, 0)
	require.NoError(t, err)
	assert.Len(t, set.KV, 0)

	tx = types.CreateTx("echo", &echoAction{Ty: 1, Say: &types.ReqString{}}, 0)
	_, err = d.Exec(tx, 0)
	assert.Equal(t, types.ErrInvalidParam, err)

	tx = types.CreateTx("echo", &echoAction{Ty: 2, Say: &types.ReqString{Data: "x"}}, 0)
	_, err = d.Exec(tx, 0)
	assert.Equal(t, types.ErrActionNotSupport, err)

	tx = types.CreateTx("echo", &echoAction{Ty: 1}, 0)
	_, err = d.Exec(tx, 0)
	assert.Equal(t, types.ErrActionNotSupport, err)

	tx = types.CreateTx("other", &echoAction{Ty: 1}, 0)
	assert.Equal(t, types.ErrActionNotSupport, d.CheckTx(tx, 0))
}

func TestDriverQuery(t *testing.T) {
	d, err := LoadDriver("echo")
	require.NoError(t, err)
	reply, err := d.Query("Echo", types.Encode(&types.ReqString{Data: "ping"}))
	require.NoError(t, err)
	assert.Equal(t, "ping@echo", reply.(*types.ReplyString).Data)

	_, err = d.Query("Nothing", nil)
	assert.Equal(t, types.ErrQueryNotSupport, err)
}

func TestRegister(t *testing.T) {
	_, err := LoadDriver("none")
	assert.Equal(t, types.ErrUnRegistedDriver, err)
	assert.Panics(t, func() { Register("echo", newEcho) })
	assert.Panics(t, func() { Register("nil", nil) })
	assert.True(t, IsDriverAddress(ExecAddress("echo")))
	assert.False(t, IsDriverAddress(ExecAddress("none")))
	assert.Contains(t, GetDriverName(), "echo")
}
