// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
)

var (
	randomLock sync.Mutex
	random     = rand.New(rand.NewSource(seed()))
)

func seed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

//RandInt64 非负随机数, 用作交易 nonce
func RandInt64() int64 {
	randomLock.Lock()
	defer randomLock.Unlock()
	return random.Int63()
}

//GetRandBytes 长度在 [min, max] 之间的随机字节
func GetRandBytes(min, max int) []byte {
	length := max
	if min < max {
		randomLock.Lock()
		length = min + random.Intn(max-min+1)
		randomLock.Unlock()
	}
	b := make([]byte, length)
	if _, err := crand.Read(b); err != nil {
		panic(err)
	}
	return b
}
