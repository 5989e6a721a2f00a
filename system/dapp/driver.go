// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 执行器(dapp)的驱动接口和公共实现
package dapp

//dapp 的 Exec, ExecLocal, Query 通过反射分发到子类的 Exec_X, ExecLocal_X, Query_X 方法,
//X 为交易 payload 中 action 的名字或者查询的函数名

import (
	"reflect"
	"sync"

	"github.com/33cn/rps/account"
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/types"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "execs.base")

//LocalDB 本地数据库, 保存索引, 可以按前缀迭代
type LocalDB interface {
	dbm.KV
	dbm.IteratorDB
}

//ExecutorAction 交易 payload 的统一形式
type ExecutorAction interface {
	types.Message
	GetActionName() string
	GetValue() types.Message
}

//Driver 执行器驱动
type Driver interface {
	SetStateDB(dbm.KV)
	GetStateDB() dbm.KV
	SetLocalDB(LocalDB)
	GetLocalDB() LocalDB
	SetEnv(height, blocktime int64)
	GetHeight() int64
	GetBlockTime() int64
	SetName(string)
	GetName() string
	GetDriverName() string
	GetPayloadValue() ExecutorAction
	GetFuncMap() map[string]reflect.Method
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
}

var funcMapCache sync.Map

//DriverBase 公共实现, 子类嵌入后调用 SetChild
type DriverBase struct {
	statedb    dbm.KV
	localdb    LocalDB
	height     int64
	blocktime  int64
	name       string
	child      Driver
	childValue reflect.Value
	funcmap    map[string]reflect.Method
}

//SetChild 设置子类, 反射得到子类的方法表
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
	d.childValue = reflect.ValueOf(e)
	typ := reflect.TypeOf(e)
	if m, ok := funcMapCache.Load(typ); ok {
		d.funcmap = m.(map[string]reflect.Method)
		return
	}
	d.funcmap = ListMethod(e)
	funcMapCache.Store(typ, d.funcmap)
}

//GetFuncMap 方法表
func (d *DriverBase) GetFuncMap() map[string]reflect.Method {
	return d.funcmap
}

//GetPayloadValue 默认没有 payload
func (d *DriverBase) GetPayloadValue() ExecutorAction {
	return nil
}

//SetEnv 设置区块高度和时间
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

//SetStateDB 设置状态数据库
func (d *DriverBase) SetStateDB(db dbm.KV) {
	d.statedb = db
}

//GetStateDB 状态数据库
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

//SetLocalDB 设置本地数据库
func (d *DriverBase) SetLocalDB(db LocalDB) {
	d.localdb = db
}

//GetLocalDB 本地数据库
func (d *DriverBase) GetLocalDB() LocalDB {
	return d.localdb
}

//GetHeight 区块高度
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

//GetBlockTime 区块时间
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

//GetName 执行器名
func (d *DriverBase) GetName() string {
	if d.name == "" {
		return d.child.GetDriverName()
	}
	return d.name
}

//SetName 设置执行器名
func (d *DriverBase) SetName(name string) {
	d.name = name
}

//GetExecAddress 执行器托管账户的地址
func (d *DriverBase) GetExecAddress() string {
	return ExecAddress(d.GetName())
}

//GetCoinsAccount 基于当前状态数据库的币账户
func (d *DriverBase) GetCoinsAccount() *account.DB {
	return account.NewCoinsAccount(d.statedb)
}

//CheckTx 默认只检查执行器名
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	if string(tx.Execer) != d.GetName() {
		return types.ErrActionNotSupport
	}
	return nil
}

func (d *DriverBase) decodeAction(tx *types.Transaction) (string, types.Message, error) {
	action := d.child.GetPayloadValue()
	if action == nil {
		return "", nil, types.ErrActionNotSupport
	}
	if err := types.Decode(tx.Payload, action); err != nil {
		return "", nil, err
	}
	value := action.GetValue()
	if isNil(value) {
		return "", nil, types.ErrActionNotSupport
	}
	return action.GetActionName(), value, nil
}

//Exec 分发到子类的 Exec_X
func (d *DriverBase) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	name, value, err := d.decodeAction(tx)
	if err != nil {
		return nil, err
	}
	method, ok := d.funcmap[ExecPrefix+name]
	if !ok || method.Type.In(1) != reflect.TypeOf(value) {
		blog.Error("Exec", "execer", d.GetName(), "action", name, "err", types.ErrActionNotSupport)
		return nil, types.ErrActionNotSupport
	}
	r, err := callMethod(method, d.childValue, reflect.ValueOf(value), reflect.ValueOf(tx), reflect.ValueOf(index))
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	return r.(*types.Receipt), nil
}

//ExecLocal 分发到子类的 ExecLocal_X, 没有实现时返回空集合
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.Ty != types.ExecOk {
		return set, nil
	}
	name, value, err := d.decodeAction(tx)
	if err != nil {
		return nil, err
	}
	method, ok := d.funcmap[ExecLocalPrefix+name]
	if !ok || method.Type.In(1) != reflect.TypeOf(value) {
		return set, nil
	}
	r, err := callMethod(method, d.childValue, reflect.ValueOf(value), reflect.ValueOf(tx), reflect.ValueOf(receipt), reflect.ValueOf(index))
	if err != nil {
		return nil, err
	}
	if r != nil {
		set = r.(*types.LocalDBSet)
	}
	return set, nil
}

//Query 分发到子类的 Query_X
func (d *DriverBase) Query(funcName string, params []byte) (types.Message, error) {
	method, ok := d.funcmap[QueryPrefix+funcName]
	if !ok {
		blog.Debug("Query", "execer", d.GetName(), "func", funcName, "err", types.ErrQueryNotSupport)
		return nil, types.ErrQueryNotSupport
	}
	arg := newArg(method)
	if err := types.Decode(params, arg); err != nil {
		return nil, err
	}
	r, err := callMethod(method, d.childValue, reflect.ValueOf(arg))
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, types.ErrNotFound
	}
	return r.(types.Message), nil
}

func isNil(m types.Message) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
