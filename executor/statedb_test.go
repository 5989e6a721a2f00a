// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	dbm "github.com/33cn/rps/common/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateDB(t *testing.T) {
	db, _ := dbm.NewGoMemDB("test", "", 0)
	require.NoError(t, db.Set([]byte("a"), []byte("1")))
	require.NoError(t, db.Set([]byte("d"), []byte("4")))

	s := NewStateDB(db)
	v, err := s.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)

	require.NoError(t, s.Set([]byte("b"), []byte("2")))
	require.NoError(t, s.Set([]byte("a"), []byte("3")))
	require.NoError(t, s.Set([]byte("d"), nil))
	v, err = s.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), v)
	_, err = s.Get([]byte("d"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)

	// 写入之前底层数据库不变
	v, _ = db.Get([]byte("a"))
	assert.Equal(t, []byte("1"), v)
	_, err = db.Get([]byte("b"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)

	kvs := s.KVList()
	require.Len(t, kvs, 3)
	assert.Equal(t, "a", string(kvs[0].Key))
	assert.Equal(t, "b", string(kvs[1].Key))

	batch := db.NewBatch(true)
	s.WriteTo(batch)
	require.NoError(t, batch.Write())
	v, _ = db.Get([]byte("a"))
	assert.Equal(t, []byte("3"), v)
	v, _ = db.Get([]byte("b"))
	assert.Equal(t, []byte("2"), v)
	_, err = db.Get([]byte("d"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)
}
