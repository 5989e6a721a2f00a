// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/address"
	"github.com/33cn/rps/common/crypto"
	"github.com/33cn/rps/common/crypto/secp256k1"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

//SECP256K1 默认签名类型
const SECP256K1 = secp256k1.ID

//Signature 交易签名
//
//	message Signature {
//	    int32 ty = 1;
//	    bytes pubkey = 2;
//	    bytes signature = 3;
//	}
type Signature struct {
	Ty        int32  `json:"ty"`
	Pubkey    []byte `json:"pubkey"`
	Signature []byte `json:"signature"`
}

//Marshal 编码
func (sig *Signature) Marshal() []byte {
	e := &Encoder{}
	return e.Int32(1, sig.Ty).Bytes(2, sig.Pubkey).Bytes(3, sig.Signature).Encoded()
}

//Unmarshal 解码
func (sig *Signature) Unmarshal(data []byte) error {
	*sig = Signature{}
	return DecodeFields(data, func(f Field) error {
		switch f.Num {
		case 1:
			sig.Ty = f.Int32()
		case 2:
			sig.Pubkey = f.Bytes()
		case 3:
			sig.Signature = f.Bytes()
		}
		return nil
	})
}

//Transaction 交易, Amount 为随交易转入执行器托管账户的金额
//
//	message Transaction {
//	    bytes execer = 1;
//	    bytes payload = 2;
//	    int64 amount = 3;
//	    int64 nonce = 4;
//	    Signature signature = 5;
//	}
type Transaction struct {
	Execer    []byte     `json:"execer"`
	Payload   []byte     `json:"payload"`
	Amount    int64      `json:"amount"`
	Nonce     int64      `json:"nonce"`
	Signature *Signature `json:"signature"`
}

//Marshal 编码
func (tx *Transaction) Marshal() []byte {
	e := &Encoder{}
	return e.Bytes(1, tx.Execer).Bytes(2, tx.Payload).Int64(3, tx.Amount).
		Int64(4, tx.Nonce).Message(5, tx.Signature).Encoded()
}

//Unmarshal 解码
func (tx *Transaction) Unmarshal(data []byte) error {
	*tx = Transaction{}
	return DecodeFields(data, func(f Field) error {
		switch f.Num {
		case 1:
			tx.Execer = f.Bytes()
		case 2:
			tx.Payload = f.Bytes()
		case 3:
			tx.Amount = f.Int64()
		case 4:
			tx.Nonce = f.Int64()
		case 5:
			tx.Signature = &Signature{}
			return f.Decode(tx.Signature)
		}
		return nil
	})
}

func (tx *Transaction) unsigned() []byte {
	copytx := *tx
	copytx.Signature = nil
	return Encode(&copytx)
}

//Hash 交易哈希, 不包含签名
func (tx *Transaction) Hash() []byte {
	return chainhash.HashB(tx.unsigned())
}

//Sign 用私钥签名
func (tx *Transaction) Sign(ty int32, priv crypto.PrivKey) {
	sign := priv.Sign(tx.unsigned())
	tx.Signature = &Signature{
		Ty:        ty,
		Pubkey:    priv.PubKey().Bytes(),
		Signature: sign.Bytes(),
	}
}

//CheckSign 检查签名
func (tx *Transaction) CheckSign() bool {
	if tx.Signature == nil {
		return false
	}
	c, err := crypto.New(crypto.GetName(int(tx.Signature.Ty)))
	if err != nil {
		return false
	}
	pub, err := c.PubKeyFromBytes(tx.Signature.Pubkey)
	if err != nil {
		return false
	}
	sig, err := c.SignatureFromBytes(tx.Signature.Signature)
	if err != nil {
		return false
	}
	return pub.VerifyBytes(tx.unsigned(), sig)
}

//From 交易发送者的地址, 未签名返回空
func (tx *Transaction) From() string {
	if tx.Signature == nil {
		return ""
	}
	return address.PubKeyToAddr(tx.Signature.Pubkey)
}

//Check 检查交易的基本格式
func (tx *Transaction) Check() error {
	if len(tx.Execer) == 0 {
		return ErrInvalidParam
	}
	if tx.Amount < 0 || tx.Amount >= MaxCoin {
		return ErrAmount
	}
	if len(Encode(tx)) > MaxTxSize {
		return ErrTxMsgSizeTooBig
	}
	if tx.Signature == nil {
		return ErrNoSignature
	}
	return nil
}

//HexTx 交易的 hex 编码
func HexTx(tx *Transaction) string {
	return common.ToHex(Encode(tx))
}

//DecodeHexTx 从 hex 解码交易
func DecodeHexTx(hexstr string) (*Transaction, error) {
	data, err := common.FromHex(hexstr)
	if err != nil {
		return nil, ErrDecode
	}
	tx := &Transaction{}
	if err := Decode(data, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

//CreateTx 创建未签名交易
func CreateTx(execer string, action Message, amount int64) *Transaction {
	return &Transaction{
		Execer:  []byte(execer),
		Payload: Encode(action),
		Amount:  amount,
		Nonce:   common.RandInt64(),
	}
}
