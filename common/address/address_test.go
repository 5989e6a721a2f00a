// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"testing"

	"github.com/33cn/rps/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecAddress(t *testing.T) {
	addr := ExecAddress("rps")
	assert.Equal(t, addr, ExecAddress("rps"))
	assert.NotEqual(t, addr, ExecAddress("coins"))
	require.NoError(t, CheckAddress(addr))
}

func TestAddressRoundTrip(t *testing.T) {
	pub := []byte{2, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32}
	addr := PubKeyToAddr(pub)
	require.NoError(t, CheckAddress(addr))

	a := PubKeyToAddress(pub)
	assert.Equal(t, common.Rimp160AfterSha256(pub), a.Hash160)
	assert.Equal(t, addr, a.String())
}

func TestCheckAddressError(t *testing.T) {
	assert.Error(t, CheckAddress(""))
	assert.Error(t, CheckAddress("0OIl"))
	addr := ExecAddress("rps")
	//flip the last character so the checksum no longer matches
	bad := []byte(addr)
	if bad[len(bad)-1] == 'a' {
		bad[len(bad)-1] = 'b'
	} else {
		bad[len(bad)-1] = 'a'
	}
	assert.Error(t, CheckAddress(string(bad)))
}
