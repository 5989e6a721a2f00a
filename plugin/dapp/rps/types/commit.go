// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/binary"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/types"
)

//CommitmentID 出拳承诺, 同时也是 session 的 id
type CommitmentID [32]byte

//CalcCommitment keccak256(move || len(secret) || secret || committer).
//committer 参与计算, 别人不能重放同一个承诺
func CalcCommitment(move Move, secret []byte, committer string) CommitmentID {
	var size [4]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(secret)))
	var id CommitmentID
	copy(id[:], common.ShaKeccak256([]byte{byte(move)}, size[:], secret, []byte(committer)))
	return id
}

//ParseCommitmentID 0x 开头或者不带前缀的 hex
func ParseCommitmentID(s string) (CommitmentID, error) {
	var id CommitmentID
	b, err := common.FromHex(s)
	if err != nil || len(b) != len(id) {
		return id, ErrInvalidCommitment
	}
	copy(id[:], b)
	return id, nil
}

//ParseSecret 命令行和 rpc 中的 secret, 0x 开头按 hex 解码, 否则直接使用字符串的字节
func ParseSecret(s string) ([]byte, error) {
	if common.HasHexPrefix(s) {
		b, err := common.FromHex(s)
		if err != nil {
			return nil, types.ErrDecode
		}
		return b, nil
	}
	return []byte(s), nil
}

func commitmentFromBytes(b []byte) (CommitmentID, error) {
	var id CommitmentID
	if len(b) != len(id) {
		return id, ErrInvalidCommitment
	}
	copy(id[:], b)
	return id, nil
}

//Hex 带 0x 前缀
func (id CommitmentID) Hex() string {
	return common.ToHex(id[:])
}

func (id CommitmentID) String() string {
	return id.Hex()
}

//IsZero 没有设置
func (id CommitmentID) IsZero() bool {
	return id == CommitmentID{}
}

//MarshalText json 中使用 hex
func (id CommitmentID) MarshalText() ([]byte, error) {
	return []byte(id.Hex()), nil
}

//UnmarshalText hex
func (id *CommitmentID) UnmarshalText(text []byte) error {
	parsed, err := ParseCommitmentID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
