// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/33cn/rps/common"
	"github.com/33cn/rps/common/crypto"
	"github.com/33cn/rps/common/crypto/secp256k1"
	"github.com/33cn/rps/common/version"
	"github.com/33cn/rps/rpc/jsonclient"
	rpctypes "github.com/33cn/rps/rpc/types"
	"github.com/33cn/rps/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAPI struct {
	mu      sync.Mutex
	results map[string]*types.TxResult
	height  int64
}

func newMockAPI() *mockAPI {
	return &mockAPI{results: make(map[string]*types.TxResult), height: 10}
}

func (m *mockAPI) SendTx(tx *types.Transaction) (*types.TxResult, error) {
	if err := tx.Check(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := string(tx.Hash())
	if _, ok := m.results[key]; ok {
		return nil, types.ErrTxDup
	}
	r := &types.TxResult{Height: m.height, Tx: tx, Receipt: &types.ReceiptData{Ty: types.ExecOk}}
	m.results[key] = r
	return r, nil
}

func (m *mockAPI) Query(driver, funcName string, param types.Message) (types.Message, error) {
	return nil, types.ErrQueryNotSupport
}

func (m *mockAPI) GetAccount(addr string) *types.Account {
	return &types.Account{Addr: addr, Balance: 5 * types.Coin}
}

func (m *mockAPI) GetHeight() int64 {
	return m.height
}

func (m *mockAPI) GetTxResult(hash []byte) (*types.TxResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.results[string(hash)]
	if !ok {
		return nil, types.ErrNotFound
	}
	return r, nil
}

func newTestServer(t *testing.T, cfg *types.RPC) (*JSONRPCServer, *jsonclient.JSONClient) {
	if cfg == nil {
		cfg = types.MustInitCfgString("").RPC
	}
	s, err := NewJSONRPCServer(cfg, newMockAPI())
	require.NoError(t, err)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	client, err := jsonclient.NewJSONClient(ts.URL)
	require.NoError(t, err)
	return s, client
}

func signedTx(t *testing.T) *types.Transaction {
	c, err := crypto.New(secp256k1.Name)
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)
	tx := types.CreateTx("notes", &types.ReqString{Data: "hello"}, 0)
	tx.Sign(types.SECP256K1, priv)
	return tx
}

func TestChain33(t *testing.T) {
	_, client := newTestServer(t, nil)

	tx := signedTx(t)
	var hash string
	require.NoError(t, client.Call("Chain33.SendTransaction", rpctypes.RawParm{Data: types.HexTx(tx)}, &hash))
	assert.Equal(t, common.ToHex(tx.Hash()), hash)

	err := client.Call("SendTransaction", rpctypes.RawParm{Data: types.HexTx(tx)}, &hash)
	require.Error(t, err)
	assert.Equal(t, types.ErrTxDup.Error(), err.Error())

	unsigned := types.CreateTx("notes", &types.ReqString{Data: "x"}, 0)
	err = client.Call("SendTransaction", rpctypes.RawParm{Data: types.HexTx(unsigned)}, &hash)
	require.Error(t, err)
	assert.Equal(t, types.ErrNoSignature.Error(), err.Error())

	var result rpctypes.TxResult
	require.NoError(t, client.Call("GetTxResult", rpctypes.ReqHash{Hash: hash}, &result))
	assert.Equal(t, int64(10), result.Height)
	assert.Equal(t, "notes", result.Tx.Execer)
	assert.Equal(t, hash, result.Tx.Hash)
	assert.Equal(t, tx.From(), result.Tx.From)
	assert.Equal(t, "ExecOk", result.Receipt.TyName)

	err = client.Call("GetTxResult", rpctypes.ReqHash{Hash: "0x1234"}, &result)
	require.Error(t, err)
	assert.Equal(t, types.ErrNotFound.Error(), err.Error())

	var acc rpctypes.Account
	require.NoError(t, client.Call("GetAccount", rpctypes.ReqAddr{Addr: tx.From()}, &acc))
	assert.Equal(t, 5*types.Coin, acc.Balance)
	err = client.Call("GetAccount", rpctypes.ReqAddr{Addr: "bad"}, &acc)
	require.Error(t, err)
	assert.Equal(t, types.ErrInvalidAddress.Error(), err.Error())

	var height rpctypes.ReplyHeight
	require.NoError(t, client.Call("GetHeight", nil, &height))
	assert.Equal(t, int64(10), height.Height)

	var v string
	require.NoError(t, client.Call("Version", nil, &v))
	assert.Equal(t, version.GetVersion(), v)

	err = client.Call("Chain33.NotExist", nil, &v)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "can't find method"))
}

func TestHandler(t *testing.T) {
	cfg := types.MustInitCfgString("").RPC
	s, err := NewJSONRPCServer(cfg, newMockAPI())
	require.NoError(t, err)
	h := s.Handler()

	body := `{"method":"Chain33.GetHeight","params":[null],"id":1}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.RemoteAddr = "8.8.8.8:1234"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "127.0.0.1:1234"
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/other", strings.NewReader(body))
	req.RemoteAddr = "127.0.0.1:1234"
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	cfg.Whitelist = []string{"*"}
	s, err = NewJSONRPCServer(cfg, newMockAPI())
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.RemoteAddr = "8.8.8.8:1234"
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"height":10`)
}

func TestIPWhitelist(t *testing.T) {
	s := &JSONRPCServer{whitelist: initIPWhitelist([]string{"192.168.1.2"})}
	assert.True(t, s.checkIPWhitelist("127.0.0.1"))
	assert.True(t, s.checkIPWhitelist("::1"))
	assert.True(t, s.checkIPWhitelist("192.168.1.2"))
	assert.False(t, s.checkIPWhitelist("192.168.1.3"))
	assert.False(t, s.checkIPWhitelist("not an ip"))

	s = &JSONRPCServer{whitelist: initIPWhitelist([]string{"0.0.0.0"})}
	assert.True(t, s.checkIPWhitelist("192.168.1.3"))
}

func TestRateLimit(t *testing.T) {
	cfg := types.MustInitCfgString("").RPC
	s, err := NewJSONRPCServer(cfg, newMockAPI())
	require.NoError(t, err)
	assert.Nil(t, s.limiter)
	for i := 0; i < 100; i++ {
		assert.True(t, s.checkRateLimit("1.1.1.1"))
	}

	cfg.RateLimit = 1
	cfg.RateBurst = 10
	s, err = NewJSONRPCServer(cfg, newMockAPI())
	require.NoError(t, err)
	require.NotNil(t, s.limiter)
	assert.True(t, s.checkRateLimit("1.1.1.1"))
	assert.True(t, s.checkRateLimit("2.2.2.2"))
}

func TestListen(t *testing.T) {
	cfg := types.MustInitCfgString("").RPC
	cfg.JrpcBindAddr = "localhost:0"
	s, err := NewJSONRPCServer(cfg, newMockAPI())
	require.NoError(t, err)
	port, err := s.Listen()
	require.NoError(t, err)
	assert.True(t, port > 0)
	_, err = s.Listen()
	assert.Error(t, err)

	client, err := jsonclient.NewJSONClient("localhost:" + strconv.Itoa(port))
	require.NoError(t, err)
	var height rpctypes.ReplyHeight
	require.NoError(t, client.Call("Chain33.GetHeight", nil, &height))
	assert.Equal(t, int64(10), height.Height)

	s.Close()
	s.Close()
	assert.Error(t, client.Call("Chain33.GetHeight", nil, &height))
}
