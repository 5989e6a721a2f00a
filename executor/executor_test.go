// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/rps/common/address"
	"github.com/33cn/rps/common/crypto"
	"github.com/33cn/rps/common/crypto/secp256k1"
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/queue"
	drivers "github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noteAction struct {
	Ty   int32
	Note *types.ReqString
}

func (a *noteAction) Marshal() []byte {
	e := &types.Encoder{}
	return e.Int32(1, a.Ty).Message(2, a.Note).Encoded()
}

func (a *noteAction) Unmarshal(data []byte) error {
	*a = noteAction{}
	return types.DecodeFields(data, func(f types.Field) error {
		switch f.Num {
		case 1:
			a.Ty = f.Int32()
		case 2:
			a.Note = &types.ReqString{}
			return f.Decode(a.Note)
		}
		return nil
	})
}

func (a *noteAction) GetActionName() string { return "Note" }

func (a *noteAction) GetValue() types.Message { return a.Note }

// 写入状态后, 内容为 "fail" 时返回错误
type notes struct {
	drivers.DriverBase
}

func newNotes() drivers.Driver {
	n := &notes{}
	n.SetChild(n)
	return n
}

func (n *notes) GetDriverName() string { return "notes" }

func (n *notes) GetPayloadValue() drivers.ExecutorAction { return &noteAction{} }

func (n *notes) Exec_Note(note *types.ReqString, tx *types.Transaction, index int) (*types.Receipt, error) {
	if err := n.GetStateDB().Set([]byte("mavl-notes-"+note.Data), []byte(tx.From())); err != nil {
		return nil, err
	}
	if note.Data == "fail" {
		return nil, types.ErrInvalidParam
	}
	return &types.Receipt{Ty: types.ExecOk, Logs: []*types.ReceiptLog{{Ty: 700, Log: []byte(note.Data)}}}, nil
}

func (n *notes) ExecLocal_Note(note *types.ReqString, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{KV: []*types.KeyValue{{Key: []byte("LODB-notes-" + note.Data), Value: []byte{1}}}}, nil
}

func (n *notes) Query_Get(in *types.ReqString) (types.Message, error) {
	v, err := n.GetStateDB().Get([]byte("mavl-notes-" + in.Data))
	if err != nil {
		return nil, types.ErrNotFound
	}
	return &types.ReplyString{Data: string(v)}, nil
}

func init() {
	drivers.Register("notes", newNotes)
}

type env struct {
	exec    *Executor
	stateDB dbm.DB
	localDB dbm.DB
	client  *queue.Queue
	priv    crypto.PrivKey
	addr    string
}

func newEnv(t *testing.T) *env {
	c, err := crypto.New(secp256k1.Name)
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)
	stateDB, _ := dbm.NewGoMemDB("state", "", 0)
	localDB, _ := dbm.NewGoMemDB("local", "", 0)
	client := queue.New("test")
	e := &env{
		exec:    New(stateDB, localDB, client),
		stateDB: stateDB,
		localDB: localDB,
		client:  client,
		priv:    priv,
		addr:    address.PubKeyToAddr(priv.PubKey().Bytes()),
	}
	require.NoError(t, e.exec.Genesis([]*types.GenesisAlloc{{Addr: e.addr, Amount: 100 * types.Coin}}))
	require.NoError(t, e.exec.NewBlock(1, 500))
	return e
}

func (e *env) note(data string, amount int64) *types.Transaction {
	tx := types.CreateTx("notes", &noteAction{Ty: 1, Note: &types.ReqString{Data: data}}, amount)
	tx.Sign(types.SECP256K1, e.priv)
	return tx
}

func TestGenesis(t *testing.T) {
	e := newEnv(t)
	assert.Equal(t, 100*types.Coin, e.exec.GetAccount(e.addr).Balance)
	require.NoError(t, e.exec.Genesis([]*types.GenesisAlloc{{Addr: e.addr, Amount: 100 * types.Coin}}))
	assert.Equal(t, 100*types.Coin, e.exec.GetAccount(e.addr).Balance)
}

func TestSendTx(t *testing.T) {
	e := newEnv(t)
	sub, err := e.client.Sub("notes", 10)
	require.NoError(t, err)
	defer sub.Close()
	require.NoError(t, e.exec.NewBlock(1, 1000))

	tx := e.note("hello", 3*types.Coin)
	result, err := e.exec.SendTx(tx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Height)
	assert.Equal(t, int32(0), result.Index)
	assert.Equal(t, int32(types.ExecOk), result.Receipt.Ty)
	require.Len(t, result.Receipt.Logs, 3)
	assert.Equal(t, int32(types.TyLogTransfer), result.Receipt.Logs[0].Ty)

	assert.Equal(t, 97*types.Coin, e.exec.GetAccount(e.addr).Balance)
	assert.Equal(t, 3*types.Coin, e.exec.GetAccount(drivers.ExecAddress("notes")).Balance)
	_, err = e.localDB.Get([]byte("LODB-notes-hello"))
	assert.NoError(t, err)

	saved, err := e.exec.GetTxResult(tx.Hash())
	require.NoError(t, err)
	assert.Equal(t, result.Index, saved.Index)
	assert.Equal(t, tx.Hash(), saved.Tx.Hash())

	msg := <-sub.Recv()
	event := msg.Data.(*TxEvent)
	assert.Equal(t, tx.Hash(), event.Hash)
	assert.Equal(t, []byte("hello"), event.Log.Log)

	reply, err := e.exec.Query("notes", "Get", &types.ReqString{Data: "hello"})
	require.NoError(t, err)
	assert.Equal(t, e.addr, reply.(*types.ReplyString).Data)

	_, err = e.exec.SendTx(tx)
	assert.Equal(t, types.ErrTxDup, err)

	result, err = e.exec.SendTx(e.note("again", 0))
	require.NoError(t, err)
	assert.Equal(t, int32(1), result.Index)
}

func TestSendTxFailKeepsState(t *testing.T) {
	e := newEnv(t)
	_, err := e.exec.SendTx(e.note("fail", 5*types.Coin))
	assert.Equal(t, types.ErrInvalidParam, err)
	assert.Equal(t, 100*types.Coin, e.exec.GetAccount(e.addr).Balance)
	assert.Equal(t, int64(0), e.exec.GetAccount(drivers.ExecAddress("notes")).Balance)
	_, err = e.stateDB.Get([]byte("mavl-notes-fail"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)

	_, err = e.exec.SendTx(e.note("rich", 1000*types.Coin))
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = e.stateDB.Get([]byte("mavl-notes-rich"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)
}

func TestSendTxCheck(t *testing.T) {
	e := newEnv(t)
	tx := types.CreateTx("notes", &noteAction{Ty: 1, Note: &types.ReqString{Data: "x"}}, 0)
	_, err := e.exec.SendTx(tx)
	assert.Equal(t, types.ErrNoSignature, err)

	tx = e.note("x", 0)
	tx.Nonce++
	_, err = e.exec.SendTx(tx)
	assert.Equal(t, types.ErrSign, err)

	tx = types.CreateTx("none", &noteAction{Ty: 1, Note: &types.ReqString{Data: "x"}}, 0)
	tx.Sign(types.SECP256K1, e.priv)
	_, err = e.exec.SendTx(tx)
	assert.Equal(t, types.ErrUnRegistedDriver, err)

	_, err = e.exec.GetTxResult(tx.Hash())
	assert.Equal(t, types.ErrNotFound, err)
	_, err = e.exec.Query("notes", "Nothing", nil)
	assert.Equal(t, types.ErrQueryNotSupport, err)
}

func TestHeight(t *testing.T) {
	e := newEnv(t)
	assert.Equal(t, int64(1), e.exec.GetHeight())
	require.NoError(t, e.exec.NewBlock(5, 2000))
	assert.Equal(t, types.ErrInvalidParam, e.exec.NewBlock(4, 2001))
	assert.Equal(t, int64(5), e.exec.GetHeight())
	first, err := e.exec.SendTx(e.note("loud", 0))
	require.NoError(t, err)
	assert.Equal(t, int32(0), first.Index)

	exec := New(e.stateDB, e.localDB, nil)
	assert.Equal(t, int64(5), exec.GetHeight())
	result, err := exec.SendTx(e.note("quiet", 0))
	require.NoError(t, err)
	assert.Equal(t, int64(5), result.Height)
	assert.Equal(t, int32(1), result.Index)

	//同一高度再次进入不会重置序号
	require.NoError(t, exec.NewBlock(5, 2002))
	result, err = exec.SendTx(e.note("again", 0))
	require.NoError(t, err)
	assert.Equal(t, int32(2), result.Index)

	require.NoError(t, exec.NewBlock(6, 2003))
	exec.Close()
	exec = New(e.stateDB, e.localDB, nil)
	result, err = exec.SendTx(e.note("fresh", 0))
	require.NoError(t, err)
	assert.Equal(t, int64(6), result.Height)
	assert.Equal(t, int32(0), result.Index)
	exec.Close()
}

func TestSendTxBeforeFirstBlock(t *testing.T) {
	stateDB, _ := dbm.NewGoMemDB("state", "", 0)
	localDB, _ := dbm.NewGoMemDB("local", "", 0)
	e := newEnv(t)
	exec := New(stateDB, localDB, nil)
	defer exec.Close()
	require.NoError(t, exec.Genesis([]*types.GenesisAlloc{{Addr: e.addr, Amount: types.Coin}}))
	_, err := exec.SendTx(e.note("early", 0))
	assert.Equal(t, types.ErrNoBlock, err)

	require.NoError(t, exec.NewBlock(1, 100))
	result, err := exec.SendTx(e.note("early", 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Height)
	assert.Equal(t, int32(0), result.Index)
}
