// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//KeyValue 状态数据库或本地数据库的一次写入, Value 为空表示删除
//
//	message KeyValue {
//	    bytes key = 1;
//	    bytes value = 2;
//	}
type KeyValue struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value"`
}

//Marshal 编码
func (kv *KeyValue) Marshal() []byte {
	e := &Encoder{}
	return e.Bytes(1, kv.Key).Bytes(2, kv.Value).Encoded()
}

//Unmarshal 解码
func (kv *KeyValue) Unmarshal(data []byte) error {
	*kv = KeyValue{}
	return DecodeFields(data, func(f Field) error {
		switch f.Num {
		case 1:
			kv.Key = f.Bytes()
		case 2:
			kv.Value = f.Bytes()
		}
		return nil
	})
}

//ReceiptLog 回执中的一条日志
//
//	message ReceiptLog {
//	    int32 ty = 1;
//	    bytes log = 2;
//	}
type ReceiptLog struct {
	Ty  int32  `json:"ty"`
	Log []byte `json:"log"`
}

//Marshal 编码
func (l *ReceiptLog) Marshal() []byte {
	e := &Encoder{}
	return e.Int32(1, l.Ty).Bytes(2, l.Log).Encoded()
}

//Unmarshal 解码
func (l *ReceiptLog) Unmarshal(data []byte) error {
	*l = ReceiptLog{}
	return DecodeFields(data, func(f Field) error {
		switch f.Num {
		case 1:
			l.Ty = f.Int32()
		case 2:
			l.Log = f.Bytes()
		}
		return nil
	})
}

//Receipt 执行器 Exec 的结果: 状态写入以及日志
type Receipt struct {
	Ty   int32
	KV   []*KeyValue
	Logs []*ReceiptLog
}

//ReceiptData 回执中需要保存的部分
//
//	message ReceiptData {
//	    int32 ty = 1;
//	    repeated ReceiptLog logs = 2;
//	}
type ReceiptData struct {
	Ty   int32         `json:"ty"`
	Logs []*ReceiptLog `json:"logs"`
}

//Marshal 编码
func (r *ReceiptData) Marshal() []byte {
	e := &Encoder{}
	e.Int32(1, r.Ty)
	for _, l := range r.Logs {
		e.Message(2, l)
	}
	return e.Encoded()
}

//Unmarshal 解码
func (r *ReceiptData) Unmarshal(data []byte) error {
	*r = ReceiptData{}
	return DecodeFields(data, func(f Field) error {
		switch f.Num {
		case 1:
			r.Ty = f.Int32()
		case 2:
			l := &ReceiptLog{}
			if err := f.Decode(l); err != nil {
				return err
			}
			r.Logs = append(r.Logs, l)
		}
		return nil
	})
}

//ToReceiptData 去掉状态写入部分
func (r *Receipt) ToReceiptData() *ReceiptData {
	return &ReceiptData{Ty: r.Ty, Logs: r.Logs}
}

//LocalDBSet ExecLocal 的结果
type LocalDBSet struct {
	KV []*KeyValue
}

//TxResult 交易执行结果, 按交易哈希保存在本地数据库
//
//	message TxResult {
//	    int64 height = 1;
//	    int32 index = 2;
//	    int64 blockTime = 3;
//	    Transaction tx = 4;
//	    ReceiptData receipt = 5;
//	}
type TxResult struct {
	Height    int64        `json:"height"`
	Index     int32        `json:"index"`
	BlockTime int64        `json:"blockTime"`
	Tx        *Transaction `json:"tx"`
	Receipt   *ReceiptData `json:"receipt"`
}

//Marshal 编码
func (r *TxResult) Marshal() []byte {
	e := &Encoder{}
	return e.Int64(1, r.Height).Int32(2, r.Index).Int64(3, r.BlockTime).
		Message(4, r.Tx).Message(5, r.Receipt).Encoded()
}

//Unmarshal 解码
func (r *TxResult) Unmarshal(data []byte) error {
	*r = TxResult{}
	return DecodeFields(data, func(f Field) error {
		switch f.Num {
		case 1:
			r.Height = f.Int64()
		case 2:
			r.Index = f.Int32()
		case 3:
			r.BlockTime = f.Int64()
		case 4:
			r.Tx = &Transaction{}
			return f.Decode(r.Tx)
		case 5:
			r.Receipt = &ReceiptData{}
			return f.Decode(r.Receipt)
		}
		return nil
	})
}

//Account 币账户
//
//	message Account {
//	    string addr = 1;
//	    int64 balance = 2;
//	}
type Account struct {
	Addr    string `json:"addr"`
	Balance int64  `json:"balance"`
}

//Marshal 编码
func (acc *Account) Marshal() []byte {
	e := &Encoder{}
	return e.String(1, acc.Addr).Int64(2, acc.Balance).Encoded()
}

//Unmarshal 解码
func (acc *Account) Unmarshal(data []byte) error {
	*acc = Account{}
	return DecodeFields(data, func(f Field) error {
		switch f.Num {
		case 1:
			acc.Addr = f.String()
		case 2:
			acc.Balance = f.Int64()
		}
		return nil
	})
}

//ReceiptAccountTransfer 账户变化前后的状态
//
//	message ReceiptAccountTransfer {
//	    Account prev = 1;
//	    Account current = 2;
//	}
type ReceiptAccountTransfer struct {
	Prev    *Account `json:"prev"`
	Current *Account `json:"current"`
}

//Marshal 编码
func (r *ReceiptAccountTransfer) Marshal() []byte {
	e := &Encoder{}
	return e.Message(1, r.Prev).Message(2, r.Current).Encoded()
}

//Unmarshal 解码
func (r *ReceiptAccountTransfer) Unmarshal(data []byte) error {
	*r = ReceiptAccountTransfer{}
	return DecodeFields(data, func(f Field) error {
		switch f.Num {
		case 1:
			r.Prev = &Account{}
			return f.Decode(r.Prev)
		case 2:
			r.Current = &Account{}
			return f.Decode(r.Current)
		}
		return nil
	})
}

//ReqString 字符串参数
//
//	message ReqString {
//	    string data = 1;
//	}
type ReqString struct {
	Data string `json:"data"`
}

//Marshal 编码
func (r *ReqString) Marshal() []byte {
	e := &Encoder{}
	return e.String(1, r.Data).Encoded()
}

//Unmarshal 解码
func (r *ReqString) Unmarshal(data []byte) error {
	*r = ReqString{}
	return DecodeFields(data, func(f Field) error {
		if f.Num == 1 {
			r.Data = f.String()
		}
		return nil
	})
}

//ReplyString 字符串返回
type ReplyString = ReqString
