// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"testing"

	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	alice = "1KSBd17H7ZK8iT37aJztFB22XGwsPTdwE4"
	bob   = "1JRNjdEqp4LJ5fqycUBm9ayCKSeeskgMKR"
)

func TestCalcCommitment(t *testing.T) {
	secret := []byte("this_is_player_defined_secret_string")
	id := CalcCommitment(MoveRock, secret, alice)
	assert.Equal(t, id, CalcCommitment(MoveRock, secret, alice))
	assert.False(t, id.IsZero())

	seen := map[CommitmentID]bool{id: true}
	others := []CommitmentID{
		CalcCommitment(MovePaper, secret, alice),
		CalcCommitment(MoveScissor, secret, alice),
		CalcCommitment(MoveRock, secret, bob),
		CalcCommitment(MoveRock, []byte("some_string"), alice),
		CalcCommitment(MoveRock, nil, alice),
		// 长度前缀: secret 和 committer 的边界不能移动
		CalcCommitment(MoveRock, append(secret, alice[0]), alice[1:]),
	}
	for _, other := range others {
		assert.False(t, seen[other])
		seen[other] = true
	}
}

func TestParseCommitmentID(t *testing.T) {
	id := CalcCommitment(MovePaper, []byte("s"), alice)
	parsed, err := ParseCommitmentID(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
	parsed, err = ParseCommitmentID(id.Hex()[2:])
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseCommitmentID("0x1234")
	assert.Equal(t, ErrInvalidCommitment, err)
	_, err = ParseCommitmentID("zz")
	assert.Equal(t, ErrInvalidCommitment, err)

	data, err := json.Marshal(&ReqSession{ID: id})
	require.NoError(t, err)
	assert.Equal(t, `{"id":"`+id.Hex()+`"}`, string(data))
	var req ReqSession
	require.NoError(t, json.Unmarshal(data, &req))
	assert.Equal(t, id, req.ID)
}

func TestParseMove(t *testing.T) {
	for s, want := range map[string]Move{"rock": MoveRock, "Paper": MovePaper, "3": MoveScissor, " scissors ": MoveScissor} {
		m, err := ParseMove(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, m)
		assert.True(t, m.IsConcrete())
	}
	for _, s := range []string{"", "0", "4", "lizard"} {
		_, err := ParseMove(s)
		assert.Equal(t, ErrInvalidMove, err, s)
	}
	assert.False(t, MoveNone.IsConcrete())
	assert.False(t, Move(4).IsConcrete())
	assert.Equal(t, "none", MoveNone.String())
}

func TestActionPayload(t *testing.T) {
	id := CalcCommitment(MoveRock, []byte("s"), alice)
	tx := CreateRawRevealTx(id, MoveRock, []byte("s"))
	assert.Equal(t, ExecerRps, tx.Execer)

	var action RpsAction
	require.NoError(t, types.Decode(tx.Payload, &action))
	assert.Equal(t, "Reveal", action.GetActionName())
	reveal := action.GetValue().(*RpsReveal)
	assert.Equal(t, id, reveal.ID)
	assert.Equal(t, []byte("s"), reveal.Secret)

	tx = CreateRawWithdrawTx()
	require.NoError(t, types.Decode(tx.Payload, &action))
	assert.Equal(t, "Withdraw", action.GetActionName())
	assert.NotNil(t, action.GetValue())

	action = RpsAction{Ty: 99}
	assert.Equal(t, "unknown", action.GetActionName())
	assert.Nil(t, action.GetValue())
}

func TestSessionDecodeBadID(t *testing.T) {
	e := &types.Encoder{}
	var s Session
	assert.Equal(t, ErrInvalidCommitment, s.Unmarshal(e.Bytes(1, []byte{1, 2}).Encoded()))

	var create RpsCreate
	assert.Error(t, types.Decode([]byte{0xff}, &create))
}

func TestDecodeLog(t *testing.T) {
	in := &LogWithdraw{Player: alice, Amount: 50}
	msg, err := DecodeLog(TyLogWithdraw, types.Encode(in))
	require.NoError(t, err)
	assert.Equal(t, in, msg)
	_, err = DecodeLog(types.TyLogTransfer, nil)
	assert.Equal(t, types.ErrNotFound, err)
	assert.Equal(t, "LogWithdraw", LogName(TyLogWithdraw))
	assert.Equal(t, "Settled", StatusName(StatusSettled))
}

func TestParseSecret(t *testing.T) {
	b, err := ParseSecret("0x0102")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)
	b, err = ParseSecret("my secret")
	require.NoError(t, err)
	assert.Equal(t, []byte("my secret"), b)
	b, err = ParseSecret("0X0A0b")
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 11}, b)
	_, err = ParseSecret("0xzz")
	assert.Equal(t, types.ErrDecode, err)
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("joined")
	require.NoError(t, err)
	assert.Equal(t, StatusJoined, status)
	status, err = ParseStatus("4")
	require.NoError(t, err)
	assert.Equal(t, StatusSettled, status)
	_, err = ParseStatus("0")
	assert.Equal(t, ErrWrongState, err)
	_, err = ParseStatus("NonExistent")
	assert.Equal(t, ErrWrongState, err)
	_, err = ParseStatus("done")
	assert.Equal(t, ErrWrongState, err)
}

// 按注释中 message 的字段号手工编码
func TestWireFieldNumbers(t *testing.T) {
	id := CalcCommitment(MoveRock, []byte("s"), alice)
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendBytes(b, id[:])
	b = protowire.AppendTag(b, 3, protowire.BytesType)
	b = protowire.AppendString(b, bob)
	b = protowire.AppendTag(b, 5, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(MovePaper))
	b = protowire.AppendTag(b, 10, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(StatusJoined))
	b = protowire.AppendTag(b, 12, protowire.VarintType)
	b = protowire.AppendVarint(b, 500001)
	var s Session
	require.NoError(t, types.Decode(b, &s))
	assert.Equal(t, id, s.ID)
	assert.Equal(t, bob, s.PlayerB)
	assert.Equal(t, MovePaper, s.PlayerBMove)
	assert.Equal(t, StatusJoined, s.Status)
	assert.Equal(t, int64(500001), s.Index)

	var reply []byte
	reply = protowire.AppendTag(reply, 1, protowire.BytesType)
	reply = protowire.AppendBytes(reply, b)
	reply = protowire.AppendTag(reply, 2, protowire.VarintType)
	reply = protowire.AppendVarint(reply, 7)
	var list ReplySessions
	require.NoError(t, types.Decode(reply, &list))
	require.Len(t, list.Sessions, 1)
	assert.Equal(t, s, *list.Sessions[0])
	assert.Equal(t, int64(7), list.Total)
	assert.Equal(t, reply, types.Encode(&list))
}
