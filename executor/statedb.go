// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sort"

	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
)

//StateDB 一笔交易执行期间的状态缓存: 读穿透到底层数据库, 写只进缓存,
//执行成功后 WriteTo 一次性写入, 失败时直接丢弃
type StateDB struct {
	db    dbm.KV
	cache map[string][]byte
}

//NewStateDB new
func NewStateDB(db dbm.KV) *StateDB {
	return &StateDB{db: db, cache: make(map[string][]byte)}
}

//Get get
func (s *StateDB) Get(key []byte) ([]byte, error) {
	if value, ok := s.cache[string(key)]; ok {
		if value == nil {
			return nil, dbm.ErrNotFoundInDb
		}
		return copyBytes(value), nil
	}
	return s.db.Get(key)
}

//Set set, value 为 nil 表示删除
func (s *StateDB) Set(key []byte, value []byte) error {
	s.cache[string(key)] = copyBytes(value)
	return nil
}

//KVList 按 key 排序的修改列表
func (s *StateDB) KVList() []*types.KeyValue {
	keys := make([]string, 0, len(s.cache))
	for k := range s.cache {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	kvs := make([]*types.KeyValue, len(keys))
	for i, k := range keys {
		kvs[i] = &types.KeyValue{Key: []byte(k), Value: s.cache[k]}
	}
	return kvs
}

//WriteTo 把修改写入批量写
func (s *StateDB) WriteTo(batch dbm.Batch) {
	for _, kv := range s.KVList() {
		if kv.Value == nil {
			batch.Delete(kv.Key)
		} else {
			batch.Set(kv.Key, kv.Value)
		}
	}
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
