// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solo 单节点共识: 按固定间隔推进区块高度
package solo

import (
	"sync"
	"time"

	"github.com/33cn/rps/types"
	log "github.com/inconshreveable/log15"
)

var slog = log.New("module", "solo")

//Chain 出块需要的执行器接口
type Chain interface {
	Genesis(allocs []*types.GenesisAlloc) error
	GetHeight() int64
	NewBlock(height, blocktime int64) error
}

//Client solo
type Client struct {
	cfg   *types.Consensus
	chain Chain
	quit  chan struct{}
	done  chan struct{}
	once  sync.Once

	mu      sync.Mutex
	running bool
}

//New new
func New(cfg *types.Consensus, chain Chain) *Client {
	return &Client{
		cfg:   cfg,
		chain: chain,
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

//Start 高度为 0 时写入创世分配, 然后开始出块
func (client *Client) Start() error {
	if client.chain.GetHeight() == 0 {
		if err := client.chain.Genesis(client.cfg.Genesis); err != nil {
			return err
		}
	}
	client.mu.Lock()
	client.running = true
	client.mu.Unlock()
	go client.createBlock()
	slog.Info("consensus solo started", "height", client.chain.GetHeight(), "interval", client.interval())
	return nil
}

func (client *Client) interval() time.Duration {
	if client.cfg.BlockInterval <= 0 {
		return time.Second
	}
	return time.Duration(client.cfg.BlockInterval) * time.Millisecond
}

func (client *Client) createBlock() {
	defer close(client.done)
	ticker := time.NewTicker(client.interval())
	defer ticker.Stop()
	for {
		select {
		case <-client.quit:
			return
		case now := <-ticker.C:
			height := client.chain.GetHeight() + 1
			if err := client.chain.NewBlock(height, now.Unix()); err != nil {
				slog.Error("createBlock", "height", height, "err", err)
				continue
			}
			slog.Debug("createBlock", "height", height)
		}
	}
}

//Close 停止出块
func (client *Client) Close() {
	client.once.Do(func() {
		close(client.quit)
		client.mu.Lock()
		running := client.running
		client.mu.Unlock()
		if running {
			<-client.done
		}
		slog.Info("consensus solo closed")
	})
}
