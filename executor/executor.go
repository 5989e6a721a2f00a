// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 交易执行器: 逐笔串行执行交易, 状态原子提交, 维护本地索引和交易回执
package executor

import (
	"strconv"
	"sync"
	"time"

	"github.com/33cn/rps/account"
	"github.com/33cn/rps/common"
	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/metrics"
	"github.com/33cn/rps/queue"
	drivers "github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
	"github.com/golang/snappy"
	log "github.com/inconshreveable/log15"
	go_metrics "github.com/rcrowley/go-metrics"
)

var elog = log.New("module", "execs")

var (
	heightKey  = []byte("LODB-height")
	indexKey   = []byte("LODB-txindex")
	genesisKey = []byte("mavl-genesis")
)

//Executor 执行器, 所有修改状态的操作都在 mu 下串行
type Executor struct {
	mu        sync.Mutex
	stateDB   dbm.DB
	localDB   dbm.DB
	client    *queue.Queue
	height    int64
	blocktime int64
	index     int

	registry    go_metrics.Registry
	execTimer   go_metrics.Timer
	failMeter   go_metrics.Meter
	heightGauge go_metrics.Gauge
}

//New new, 高度和区块内的交易序号从本地数据库恢复
func New(stateDB, localDB dbm.DB, client *queue.Queue) *Executor {
	exec := &Executor{
		stateDB:  stateDB,
		localDB:  localDB,
		client:   client,
		registry: go_metrics.DefaultRegistry,
	}
	exec.execTimer = metrics.Timer(exec.registry, "exec")
	exec.failMeter = metrics.Meter(exec.registry, "exec", "fail")
	exec.heightGauge = metrics.Gauge(exec.registry, "height")
	exec.height = exec.loadInt(heightKey)
	exec.index = int(exec.loadInt(indexKey))
	exec.blocktime = time.Now().Unix()
	return exec
}

func (exec *Executor) loadInt(key []byte) int64 {
	value, err := exec.localDB.Get(key)
	if err != nil {
		return 0
	}
	n, err := strconv.ParseInt(string(value), 10, 64)
	if err != nil {
		panic(err) //数据库已经损坏
	}
	return n
}

//NewBlock 进入新的区块高度, 高度只能增加.
//高度不变时只更新区块时间, 交易序号继续累加
func (exec *Executor) NewBlock(height, blocktime int64) error {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if height < exec.height {
		elog.Error("NewBlock", "height", height, "current", exec.height)
		return types.ErrInvalidParam
	}
	exec.blocktime = blocktime
	if height == exec.height {
		return nil
	}
	batch := exec.localDB.NewBatch(true)
	batch.Set(heightKey, []byte(strconv.FormatInt(height, 10)))
	batch.Set(indexKey, []byte("0"))
	if err := batch.Write(); err != nil {
		return err
	}
	exec.height = height
	exec.index = 0
	exec.heightGauge.Update(height)
	return nil
}

//GetHeight 当前高度
func (exec *Executor) GetHeight() int64 {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	return exec.height
}

//Genesis 创世分配, 只执行一次
func (exec *Executor) Genesis(allocs []*types.GenesisAlloc) error {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if _, err := exec.stateDB.Get(genesisKey); err == nil {
		elog.Debug("Genesis already done")
		return nil
	}
	state := NewStateDB(exec.stateDB)
	coins := account.NewCoinsAccount(state)
	for _, alloc := range allocs {
		if _, err := coins.GenesisInit(alloc.Addr, alloc.Amount); err != nil {
			elog.Error("Genesis", "addr", alloc.Addr, "amount", alloc.Amount, "err", err)
			return err
		}
		elog.Info("Genesis", "addr", alloc.Addr, "amount", alloc.Amount)
	}
	if err := state.Set(genesisKey, []byte{1}); err != nil {
		return err
	}
	batch := exec.stateDB.NewBatch(true)
	state.WriteTo(batch)
	return batch.Write()
}

func (exec *Executor) loadDriver(name string, state dbm.KV) (drivers.Driver, error) {
	driver, err := drivers.LoadDriver(name)
	if err != nil {
		return nil, err
	}
	driver.SetStateDB(state)
	driver.SetLocalDB(exec.localDB)
	driver.SetEnv(exec.height, exec.blocktime)
	return driver, nil
}

//SendTx 执行一笔交易. 失败时状态不变; 成功时状态修改一次写入,
//随交易附带的金额先转入执行器的托管账户
func (exec *Executor) SendTx(tx *types.Transaction) (*types.TxResult, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	start := time.Now()
	defer exec.execTimer.UpdateSince(start)

	result, err := exec.execTx(tx)
	if err != nil {
		exec.failMeter.Mark(1)
		elog.Error("SendTx", "execer", string(tx.Execer), "from", tx.From(), "err", err)
		return nil, err
	}
	return result, nil
}

func (exec *Executor) execTx(tx *types.Transaction) (*types.TxResult, error) {
	if exec.height == 0 {
		return nil, types.ErrNoBlock
	}
	if err := tx.Check(); err != nil {
		return nil, err
	}
	if !tx.CheckSign() {
		return nil, types.ErrSign
	}
	hash := tx.Hash()
	if _, err := exec.localDB.Get(types.CalcTxDupKey(hash)); err == nil {
		return nil, types.ErrTxDup
	}
	if exec.index >= types.MaxTxsPerBlock {
		return nil, types.ErrBlockFull
	}
	name := string(tx.Execer)
	state := NewStateDB(exec.stateDB)
	driver, err := exec.loadDriver(name, state)
	if err != nil {
		return nil, err
	}
	if err := driver.CheckTx(tx, exec.index); err != nil {
		return nil, err
	}

	var receipt *types.Receipt
	if tx.Amount > 0 {
		coins := account.NewCoinsAccount(state)
		escrow := drivers.ExecAddress(name)
		//余额不足时不进入 dapp 的执行
		if err := coins.CheckTransfer(tx.From(), escrow, tx.Amount); err != nil {
			return nil, err
		}
		receipt, err = coins.Transfer(tx.From(), escrow, tx.Amount)
		if err != nil {
			return nil, err
		}
	}
	execReceipt, err := driver.Exec(tx, exec.index)
	if err != nil {
		return nil, err
	}
	if execReceipt != nil {
		for _, kv := range execReceipt.KV {
			state.Set(kv.Key, kv.Value)
		}
	}
	receipt = account.MergeReceipt(receipt, execReceipt)
	if receipt == nil {
		receipt = &types.Receipt{}
	}
	receipt.Ty = types.ExecOk
	receipt.KV = state.KVList()

	batch := exec.stateDB.NewBatch(true)
	state.WriteTo(batch)
	if err := batch.Write(); err != nil {
		panic(err) //状态数据库写入失败
	}

	result := &types.TxResult{
		Height:    exec.height,
		Index:     int32(exec.index),
		BlockTime: exec.blocktime,
		Tx:        tx,
		Receipt:   receipt.ToReceiptData(),
	}
	exec.execLocal(driver, tx, hash, result)
	exec.index++
	metrics.Meter(exec.registry, "exec", name).Mark(1)
	for _, l := range receipt.Logs {
		if exec.client != nil && l.Ty != types.TyLogTransfer {
			exec.client.Publish(name, int64(l.Ty), &TxEvent{Hash: hash, Height: exec.height, Log: l})
		}
	}
	elog.Debug("SendTx", "execer", name, "hash", common.ToHex(hash), "height", exec.height, "index", result.Index)
	return result, nil
}

// 本地数据库: dapp 的索引, 交易回执, 去重标记以及下一笔交易的序号
func (exec *Executor) execLocal(driver drivers.Driver, tx *types.Transaction, hash []byte, result *types.TxResult) {
	set, err := driver.ExecLocal(tx, result.Receipt, int(result.Index))
	if err != nil {
		elog.Error("ExecLocal", "execer", string(tx.Execer), "hash", common.ToHex(hash), "err", err)
		set = &types.LocalDBSet{}
	}
	batch := exec.localDB.NewBatch(true)
	for _, kv := range set.KV {
		if kv.Value == nil {
			batch.Delete(kv.Key)
		} else {
			batch.Set(kv.Key, kv.Value)
		}
	}
	batch.Set(types.CalcTxKey(hash), snappy.Encode(nil, types.Encode(result)))
	batch.Set(types.CalcTxDupKey(hash), []byte{1})
	batch.Set(indexKey, []byte(strconv.FormatInt(int64(result.Index)+1, 10)))
	if err := batch.Write(); err != nil {
		panic(err) //本地数据库写入失败
	}
}

//TxEvent 执行器发布到队列的事件, topic 为执行器名
type TxEvent struct {
	Hash   []byte
	Height int64
	Log    *types.ReceiptLog
}

//GetTxResult 根据交易哈希查询执行结果
func (exec *Executor) GetTxResult(hash []byte) (*types.TxResult, error) {
	value, err := exec.localDB.Get(types.CalcTxKey(hash))
	if err != nil {
		return nil, types.ErrNotFound
	}
	data, err := snappy.Decode(nil, value)
	if err != nil {
		panic(err) //数据库已经损坏
	}
	var result types.TxResult
	if err := types.Decode(data, &result); err != nil {
		panic(err)
	}
	return &result, nil
}

//Query 调用执行器的 Query_X, 只读
func (exec *Executor) Query(driver, funcName string, param types.Message) (types.Message, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	d, err := exec.loadDriver(driver, NewStateDB(exec.stateDB))
	if err != nil {
		return nil, err
	}
	var data []byte
	if param != nil {
		data = types.Encode(param)
	}
	return d.Query(funcName, data)
}

//GetAccount 币账户
func (exec *Executor) GetAccount(addr string) *types.Account {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	return account.NewCoinsAccount(exec.stateDB).LoadAccount(addr)
}

//Close 关闭
func (exec *Executor) Close() {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	elog.Info("executor closed", "height", exec.height)
}
