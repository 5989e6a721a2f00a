// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db 键值数据库的统一接口以及 memdb, goleveldb, gobadgerdb 三种后端
package db

import (
	"bytes"
	"errors"
	"fmt"
)

//ErrNotFoundInDb 数据库中不存在
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

//KV 读写接口, 状态数据库和执行器缓存都实现它
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
}

//IteratorDB 迭代
type IteratorDB interface {
	Iterator(prefix []byte, reverse bool) Iterator
}

//DB 数据库
type DB interface {
	KV
	IteratorDB
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	Close()
	NewBatch(sync bool) Batch
	Stats() map[string]string
}

//Batch 批量写
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

//Iterator 迭代器, 只在 prefix 范围内移动
type Iterator interface {
	Rewind() bool
	//Seek 正向定位到 >= key 的第一个键, 反向定位到 <= key 的最后一个键
	Seek(key []byte) bool
	Next() bool
	Valid() bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Close()
}

//const
const (
	MemDBBackendStr      = "memdb"
	GoLevelDBBackendStr  = "goleveldb"
	LevelDBBackendStr    = "leveldb"
	GoBadgerDBBackendStr = "gobadgerdb"
	BadgerDBBackendStr   = "badger"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

//NewDB new
func NewDB(name string, backend string, dir string, cache int32) DB {
	dbCreator, ok := backends[backend]
	if !ok {
		panic(fmt.Sprintf("Error initializing DB: %v", backend))
	}
	db, err := dbCreator(name, dir, int(cache))
	if err != nil {
		panic(fmt.Sprintf("Error initializing DB: %v", err))
	}
	return db
}

//HasBackend 是否支持该后端
func HasBackend(backend string) bool {
	_, ok := backends[backend]
	return ok
}

func cloneByte(v []byte) []byte {
	if v == nil {
		return nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value
}

//prefixEnd 返回大于所有以 prefix 开头的键的最小键, 空表示无上界
func prefixEnd(prefix []byte) []byte {
	end := cloneByte(prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}

func hasPrefix(key, prefix []byte) bool {
	return bytes.HasPrefix(key, prefix)
}

func sprintf(format string, v ...interface{}) string {
	return fmt.Sprintf(format, v...)
}
