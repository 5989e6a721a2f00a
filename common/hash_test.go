// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "", ToHex(nil))
	assert.Equal(t, "0x0102ff", ToHex([]byte{1, 2, 255}))

	b, err := FromHex("0x0102ff")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 255}, b)

	b, err = FromHex("102ff")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 255}, b)

	_, err = FromHex("0xzz")
	assert.Error(t, err)
	assert.True(t, HasHexPrefix("0x12"))
	assert.True(t, HasHexPrefix("0X12"))
	assert.False(t, HasHexPrefix("12"))
	assert.False(t, HasHexPrefix("0"))

	b, err = FromHex("0X0A")
	require.NoError(t, err)
	assert.Equal(t, []byte{10}, b)
}

func TestKeccak(t *testing.T) {
	//keccak256("") from the ethereum yellow paper
	assert.Equal(t, "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", ToHex(ShaKeccak256()))
	assert.Equal(t, ShaKeccak256([]byte("ab")), ShaKeccak256([]byte("a"), []byte("b")))
	assert.Equal(t, "0xe3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", ToHex(Sha256(nil)))
	assert.NotEqual(t, Sha256([]byte("ab")), ShaKeccak256([]byte("ab")))
}

func TestCopyBytes(t *testing.T) {
	assert.Nil(t, CopyBytes(nil))
	src := []byte{1, 2, 3}
	dst := CopyBytes(src)
	dst[0] = 9
	assert.Equal(t, byte(1), src[0])
}

func TestRimp160(t *testing.T) {
	h := Rimp160AfterSha256([]byte("hello"))
	assert.Len(t, h, 20)
	assert.NotEqual(t, [20]byte{}, h)
	s := Sha2Sum([]byte("hello"))
	assert.Equal(t, Sha256(Sha256([]byte("hello"))), s[:])
}
