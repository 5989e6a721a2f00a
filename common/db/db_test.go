// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strs(values [][]byte) []string {
	var out []string
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}

// 迭代测试
func testDBIterator(t *testing.T, db DB) {
	for _, k := range []string{"aaaaaa/1", "my_key/1", "my_key/2", "my_key/3", "my_key/4", "my", "my_", "zzzzzz/1"} {
		require.NoError(t, db.Set([]byte(k), []byte(k)))
	}
	require.NoError(t, db.Set([]byte{0xff}, []byte("0xff")))

	v, err := db.Get([]byte("aaaaaa/1"))
	require.NoError(t, err)
	require.Equal(t, "aaaaaa/1", string(v))
	_, err = db.Get([]byte("nothing"))
	require.Equal(t, ErrNotFoundInDb, err)

	it := NewListHelper(db)
	require.Equal(t, []string{"aaaaaa/1", "my", "my_", "my_key/1", "my_key/2", "my_key/3", "my_key/4", "zzzzzz/1", "0xff"}, strs(it.IteratorScanFromFirst(nil, -1)))
	require.Equal(t, []string{"my", "my_"}, strs(it.IteratorScanFromFirst([]byte("my"), 2)))
	require.Equal(t, []string{"my_key/4", "my_key/3", "my_key/2", "my_key/1", "my_", "my"}, strs(it.IteratorScanFromLast([]byte("my"), 100)))
	require.Equal(t, []string{"my_key/4"}, strs(it.List([]byte("my"), []byte("my_key/3"), 100, ListASC)))
	require.Equal(t, []string{"my_key/2", "my_key/1"}, strs(it.List([]byte("my"), []byte("my_key/3"), 2, ListDESC)))
	require.Equal(t, []string{"my_key/1", "my_key/2"}, strs(it.List([]byte("my_key/"), nil, 2, ListASC)))
	require.Equal(t, []string{"0xff"}, strs(it.List([]byte{0xff}, nil, 10, ListDESC)))
	// key 不存在时从下一个位置开始
	require.Equal(t, []string{"my_key/2", "my_key/3"}, strs(it.List([]byte("my_key/"), []byte("my_key/1a"), 2, ListASC)))
	require.Equal(t, []string{"my_key/1"}, strs(it.List([]byte("my_key/"), []byte("my_key/1a"), 2, ListDESC)))
	require.Equal(t, int64(4), it.PrefixCount([]byte("my_key/")))
	require.Nil(t, it.List([]byte("none"), nil, 10, ListASC))
}

func testDBBatch(t *testing.T, db DB) {
	require.NoError(t, db.Set([]byte("del"), []byte("v")))
	batch := db.NewBatch(true)
	batch.Set([]byte("k1"), []byte("v1"))
	batch.Set([]byte("k2"), []byte("v2"))
	batch.Delete([]byte("del"))
	assert.True(t, batch.ValueSize() > 0)

	// 写入之前不可见
	_, err := db.Get([]byte("k1"))
	require.Equal(t, ErrNotFoundInDb, err)

	require.NoError(t, batch.Write())
	v, err := db.Get([]byte("k2"))
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), v)
	_, err = db.Get([]byte("del"))
	require.Equal(t, ErrNotFoundInDb, err)

	batch.Reset()
	assert.Equal(t, 0, batch.ValueSize())
	require.NoError(t, db.Delete([]byte("k1")))
	_, err = db.Get([]byte("k1"))
	require.Equal(t, ErrNotFoundInDb, err)
	assert.NotNil(t, db.Stats())
}

func TestGoMemDB(t *testing.T) {
	db := NewDB("test", MemDBBackendStr, "", 0)
	defer db.Close()
	testDBIterator(t, db)
	testDBBatch(t, db)
}

func TestGoLevelDB(t *testing.T) {
	db := NewDB("test", GoLevelDBBackendStr, t.TempDir(), 16)
	defer db.Close()
	testDBIterator(t, db)
	testDBBatch(t, db)
}

func TestGoBadgerDB(t *testing.T) {
	db := NewDB("test", GoBadgerDBBackendStr, t.TempDir(), 16)
	defer db.Close()
	testDBIterator(t, db)
	testDBBatch(t, db)
}

func TestNewDBUnknownBackend(t *testing.T) {
	assert.False(t, HasBackend("nodb"))
	assert.Panics(t, func() { NewDB("test", "nodb", "", 0) })
}

func TestPrefixEnd(t *testing.T) {
	assert.Equal(t, []byte("mz"), prefixEnd([]byte("my")))
	assert.Equal(t, []byte{0x02}, prefixEnd([]byte{0x01, 0xff}))
	assert.Nil(t, prefixEnd([]byte{0xff, 0xff}))
	assert.Nil(t, prefixEnd(nil))
}
