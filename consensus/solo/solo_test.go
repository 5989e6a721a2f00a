// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solo

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChain struct {
	mu       sync.Mutex
	height   int64
	genesis  int
	failNext bool
}

func (c *fakeChain) Genesis(allocs []*types.GenesisAlloc) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.genesis += len(allocs)
	return nil
}

func (c *fakeChain) GetHeight() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.height
}

func (c *fakeChain) NewBlock(height, blocktime int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failNext {
		c.failNext = false
		return errors.New("busy")
	}
	c.height = height
	return nil
}

func TestSolo(t *testing.T) {
	chain := &fakeChain{failNext: true}
	cfg := &types.Consensus{Name: "solo", BlockInterval: 5, Genesis: []*types.GenesisAlloc{{Addr: "a", Amount: 1}}}
	client := New(cfg, chain)
	require.NoError(t, client.Start())
	assert.Eventually(t, func() bool { return chain.GetHeight() >= 3 }, 2*time.Second, 5*time.Millisecond)
	client.Close()
	client.Close()
	height := chain.GetHeight()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, height, chain.GetHeight())
	assert.Equal(t, 1, chain.genesis)
}

func TestSoloSkipGenesis(t *testing.T) {
	chain := &fakeChain{height: 10}
	client := New(&types.Consensus{Genesis: []*types.GenesisAlloc{{Addr: "a", Amount: 1}}}, chain)
	assert.Equal(t, time.Second, client.interval())
	require.NoError(t, client.Start())
	client.Close()
	assert.Equal(t, 0, chain.genesis)
}

func TestSoloCloseWithoutStart(t *testing.T) {
	New(&types.Consensus{}, &fakeChain{}).Close()
}
