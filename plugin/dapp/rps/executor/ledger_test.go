// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"errors"
	"testing"

	dbm "github.com/33cn/rps/common/db"
	rpstypes "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerCredit(t *testing.T) {
	db, _ := dbm.NewGoMemDB("ledger", "", 0)
	l := NewLedger(db)
	assert.Equal(t, int64(0), l.Balance("a"))
	assert.Equal(t, int64(30), l.Credit("a", 30))
	assert.Equal(t, int64(45), l.Credit("a", 15))
	assert.Equal(t, int64(45), NewLedger(db).Balance("a"))
	assert.Len(t, l.KV(), 2)
}

func TestLedgerWithdrawReentrant(t *testing.T) {
	db, _ := dbm.NewGoMemDB("ledger", "", 0)
	l := NewLedger(db)
	l.Credit("a", 50)

	var paid []int64
	var reentered error
	amount, err := l.Withdraw("a", func(addr string, amount int64) error {
		assert.Equal(t, "a", addr)
		assert.Equal(t, int64(0), l.Balance("a"), "balance must be zero before the transfer")
		_, reentered = l.Withdraw("a", func(string, int64) error {
			paid = append(paid, -1)
			return nil
		})
		paid = append(paid, amount)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50), amount)
	assert.Equal(t, rpstypes.ErrNothingToWithdraw, reentered)
	assert.Equal(t, []int64{50}, paid)

	_, err = l.Withdraw("a", func(string, int64) error { return nil })
	assert.Equal(t, rpstypes.ErrNothingToWithdraw, err)
}

func TestLedgerWithdrawTransferFails(t *testing.T) {
	db, _ := dbm.NewGoMemDB("ledger", "", 0)
	l := NewLedger(db)
	l.Credit("a", 7)
	boom := errors.New("boom")
	_, err := l.Withdraw("a", func(string, int64) error { return boom })
	assert.Equal(t, boom, err)
}
