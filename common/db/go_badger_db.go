// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"path"

	"github.com/dgraph-io/badger"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "db.gobadgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(BadgerDBBackendStr, dbCreator, false)
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

//GoBadgerDB db
type GoBadgerDB struct {
	db *badger.DB
}

// badgerLogger 把 badger 的内部日志转到 log15
type badgerLogger struct {
	log.Logger
}

func (l badgerLogger) Errorf(f string, v ...interface{})   { l.Error("badger", "msg", sprintf(f, v...)) }
func (l badgerLogger) Warningf(f string, v ...interface{}) { l.Warn("badger", "msg", sprintf(f, v...)) }
func (l badgerLogger) Infof(f string, v ...interface{})    { l.Debug("badger", "msg", sprintf(f, v...)) }
func (l badgerLogger) Debugf(f string, v ...interface{})   { l.Debug("badger", "msg", sprintf(f, v...)) }

//NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	dbPath := path.Join(dir, name+".db")
	opts := badger.DefaultOptions(dbPath).WithLogger(badgerLogger{blog})
	db, err := badger.Open(opts)
	if err != nil {
		blog.Error("NewGoBadgerDB", "error", err)
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

//Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, ErrNotFoundInDb
		}
		blog.Error("Get", "error", err)
		return nil, err
	}
	if val == nil {
		val = []byte{}
	}
	return val, nil
}

//Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
	}
	return err
}

//SetSync 同步, badger 默认 SyncWrites
func (db *GoBadgerDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete 删除
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
	}
	return err
}

//DeleteSync 删除同步
func (db *GoBadgerDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

//DB db
func (db *GoBadgerDB) DB() *badger.DB {
	return db.db
}

//Close 关闭
func (db *GoBadgerDB) Close() {
	if err := db.db.Close(); err != nil {
		blog.Error("Close", "error", err)
	}
}

//Stats ...
func (db *GoBadgerDB) Stats() map[string]string {
	lsm, vlog := db.db.Size()
	return map[string]string{
		"lsm":  sprintf("%d", lsm),
		"vlog": sprintf("%d", vlog),
	}
}

//Iterator 迭代器, 持有一个只读事务直到 Close
func (db *GoBadgerDB) Iterator(prefix []byte, reverse bool) Iterator {
	txn := db.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	it := txn.NewIterator(opts)
	dbit := &goBadgerDBIt{Iterator: it, txn: txn, prefix: cloneByte(prefix), reverse: reverse}
	dbit.Rewind()
	return dbit
}

type goBadgerDBIt struct {
	*badger.Iterator
	txn     *badger.Txn
	prefix  []byte
	reverse bool
	err     error
}

func (it *goBadgerDBIt) Rewind() bool {
	if !it.reverse {
		it.Iterator.Seek(it.prefix)
		return it.Valid()
	}
	end := prefixEnd(it.prefix)
	if end == nil {
		it.Iterator.Rewind()
		return it.Valid()
	}
	it.Iterator.Seek(end)
	if it.Iterator.Valid() && bytes.Equal(it.Iterator.Item().Key(), end) {
		it.Iterator.Next()
	}
	return it.Valid()
}

func (it *goBadgerDBIt) Seek(key []byte) bool {
	it.Iterator.Seek(key)
	return it.Valid()
}

func (it *goBadgerDBIt) Next() bool {
	it.Iterator.Next()
	return it.Valid()
}

func (it *goBadgerDBIt) Valid() bool {
	return it.Iterator.ValidForPrefix(it.prefix)
}

func (it *goBadgerDBIt) Key() []byte {
	return it.Iterator.Item().Key()
}

func (it *goBadgerDBIt) Value() []byte {
	return it.ValueCopy()
}

func (it *goBadgerDBIt) ValueCopy() []byte {
	value, err := it.Iterator.Item().ValueCopy(nil)
	if err != nil {
		it.err = err
	}
	return value
}

func (it *goBadgerDBIt) Error() error {
	return it.err
}

func (it *goBadgerDBIt) Close() {
	it.Iterator.Close()
	it.txn.Discard()
}

type badgerOp struct {
	key    []byte
	value  []byte
	delete bool
}

// badger 的事务大小有限, 批量写在 Write 时按事务提交, 事务过大时拆分
type goBadgerDBBatch struct {
	db   *GoBadgerDB
	ops  []badgerOp
	size int
}

//NewBatch new
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &goBadgerDBBatch{db: db}
}

func (mBatch *goBadgerDBBatch) Set(key, value []byte) {
	mBatch.ops = append(mBatch.ops, badgerOp{key: cloneByte(key), value: cloneByte(value)})
	mBatch.size += len(value)
}

func (mBatch *goBadgerDBBatch) Delete(key []byte) {
	mBatch.ops = append(mBatch.ops, badgerOp{key: cloneByte(key), delete: true})
	mBatch.size++
}

func (mBatch *goBadgerDBBatch) Write() error {
	txn := mBatch.db.db.NewTransaction(true)
	defer func() { txn.Discard() }()
	for _, op := range mBatch.ops {
		err := mBatch.apply(txn, op)
		if err == badger.ErrTxnTooBig {
			if err = txn.Commit(); err != nil {
				blog.Error("Write", "error", err)
				return err
			}
			txn = mBatch.db.db.NewTransaction(true)
			err = mBatch.apply(txn, op)
		}
		if err != nil {
			blog.Error("Write", "error", err)
			return err
		}
	}
	if err := txn.Commit(); err != nil {
		blog.Error("Write", "error", err)
		return err
	}
	return nil
}

func (mBatch *goBadgerDBBatch) apply(txn *badger.Txn, op badgerOp) error {
	if op.delete {
		return txn.Delete(op.key)
	}
	return txn.Set(op.key, op.value)
}

func (mBatch *goBadgerDBBatch) ValueSize() int {
	return mBatch.size
}

func (mBatch *goBadgerDBBatch) Reset() {
	mBatch.ops = mBatch.ops[:0]
	mBatch.size = 0
}
