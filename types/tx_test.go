// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/rps/common/address"
	"github.com/33cn/rps/common/crypto"
	"github.com/33cn/rps/common/crypto/secp256k1"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genKey(t *testing.T) crypto.PrivKey {
	c, err := crypto.New(secp256k1.Name)
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)
	return priv
}

func TestTxSign(t *testing.T) {
	priv := genKey(t)
	tx := CreateTx("rps", &ReqString{Data: "payload"}, 10*Coin)
	hash := tx.Hash()
	assert.Error(t, tx.Check())
	assert.False(t, tx.CheckSign())
	assert.Equal(t, "", tx.From())

	tx.Sign(SECP256K1, priv)
	assert.True(t, tx.CheckSign())
	assert.NoError(t, tx.Check())
	assert.Equal(t, hash, tx.Hash(), "hash does not cover the signature")
	assert.Equal(t, address.PubKeyToAddr(priv.PubKey().Bytes()), tx.From())

	tx2, err := DecodeHexTx(HexTx(tx))
	require.NoError(t, err)
	assert.Equal(t, tx, tx2)
	assert.True(t, tx2.CheckSign())

	tx2.Amount++
	assert.False(t, tx2.CheckSign())
	assert.NotEqual(t, hash, tx2.Hash())
}

func TestTxCheck(t *testing.T) {
	priv := genKey(t)
	tx := CreateTx("rps", &ReqString{}, -1)
	tx.Sign(SECP256K1, priv)
	assert.Equal(t, ErrAmount, tx.Check())

	tx = CreateTx("", &ReqString{}, 0)
	tx.Sign(SECP256K1, priv)
	assert.Equal(t, ErrInvalidParam, tx.Check())

	tx = CreateTx("rps", &ReqString{}, 0)
	tx.Sign(SECP256K1, priv)
	tx.Signature.Ty = 99
	assert.False(t, tx.CheckSign())
}

func TestDecodeHexTxError(t *testing.T) {
	_, err := DecodeHexTx("zz")
	assert.Equal(t, ErrDecode, err)
	_, err = DecodeHexTx("0x0a")
	assert.Equal(t, ErrDecode, errors.Cause(err))
}

func TestReceiptEncode(t *testing.T) {
	r := &TxResult{
		Height:    3,
		Index:     1,
		BlockTime: 100,
		Tx:        &Transaction{Execer: []byte("rps"), Amount: 5},
		Receipt: &ReceiptData{Ty: ExecOk, Logs: []*ReceiptLog{
			{Ty: TyLogTransfer, Log: Encode(&ReceiptAccountTransfer{Prev: &Account{Addr: "a"}, Current: &Account{Addr: "a", Balance: 5}})},
			{Ty: 701, Log: []byte{1, 2}},
		}},
	}
	var r2 TxResult
	require.NoError(t, Decode(Encode(r), &r2))
	assert.Equal(t, r, &r2)

	var transfer ReceiptAccountTransfer
	require.NoError(t, Decode(r2.Receipt.Logs[0].Log, &transfer))
	assert.Equal(t, int64(0), transfer.Prev.Balance)
	assert.Equal(t, int64(5), transfer.Current.Balance)
}

func TestDecodeSkipsUnknownFields(t *testing.T) {
	e := &Encoder{}
	e.String(1, "addr").Int64(2, 7).Uint64(9, 1).Bytes(10, []byte("x"))
	var acc Account
	require.NoError(t, Decode(e.Encoded(), &acc))
	assert.Equal(t, Account{Addr: "addr", Balance: 7}, acc)

	var kv KeyValue
	require.NoError(t, Decode(Encode(&KeyValue{}), &kv))
	assert.Nil(t, kv.Key)
}

func TestNegativeVarint(t *testing.T) {
	var acc Account
	require.NoError(t, Decode(Encode(&Account{Balance: -5}), &acc))
	assert.Equal(t, int64(-5), acc.Balance)
}
