// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc 节点的 jsonrpc 服务, 系统服务名为 Chain33, 插件通过 pluginmgr 注册自己的服务
package rpc

import (
	"net"
	"net/http"
	"net/rpc"
	"sync"
	"time"

	"github.com/33cn/rps/client"
	"github.com/33cn/rps/common/log"
	"github.com/33cn/rps/pluginmgr"
	"github.com/33cn/rps/types"
	"github.com/kevinms/leakybucket-go"
	"github.com/pkg/errors"
	"golang.org/x/net/netutil"
)

var rlog = log.New("module", "rpc_server")

// Chain33  系统 jsonrpc 服务
type Chain33 struct {
	api client.QueueProtocolAPI
}

// JSONRPCServer  a json rpcserver object
type JSONRPCServer struct {
	cfg       *types.RPC
	api       client.QueueProtocolAPI
	jrpc      *Chain33
	s         *rpc.Server
	whitelist map[string]bool
	limiter   *leakybucket.Collector

	mu  sync.Mutex
	l   net.Listener
	srv *http.Server
}

// NewJSONRPCServer new json rpcserver object, 同时注册所有插件的 rpc
func NewJSONRPCServer(cfg *types.RPC, api client.QueueProtocolAPI) (*JSONRPCServer, error) {
	j := &JSONRPCServer{
		cfg:       cfg,
		api:       api,
		jrpc:      &Chain33{api: api},
		s:         rpc.NewServer(),
		whitelist: initIPWhitelist(cfg.Whitelist),
	}
	if cfg.RateLimit > 0 {
		j.limiter = leakybucket.NewCollector(cfg.RateLimit, cfg.RateBurst, true)
	}
	if err := j.s.RegisterName("Chain33", j.jrpc); err != nil {
		return nil, errors.Wrap(err, "register Chain33")
	}
	pluginmgr.AddRPC(j)
	return j, nil
}

// JRPC 插件注册服务用
func (j *JSONRPCServer) JRPC() *rpc.Server {
	return j.s
}

// API 节点接口
func (j *JSONRPCServer) API() client.QueueProtocolAPI {
	return j.api
}

// Listen 开始监听, 返回实际监听的端口
func (j *JSONRPCServer) Listen() (int, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.l != nil {
		return 0, errors.New("rpc: already listening")
	}
	listener, err := net.Listen("tcp", j.cfg.JrpcBindAddr)
	if err != nil {
		return 0, errors.Wrap(err, "listen "+j.cfg.JrpcBindAddr)
	}
	if j.cfg.MaxConnections > 0 {
		listener = netutil.LimitListener(listener, j.cfg.MaxConnections)
	}
	j.l = listener
	j.srv = &http.Server{Handler: j.Handler(), ReadHeaderTimeout: 10 * time.Second}
	srv := j.srv
	go func() {
		err := srv.Serve(listener)
		if err != nil && err != http.ErrServerClosed {
			rlog.Error("jrpc serve", "err", err)
		}
	}()
	rlog.Info("jrpc listen", "addr", listener.Addr().String())
	return listener.Addr().(*net.TCPAddr).Port, nil
}

// Close json rpcserver close
func (j *JSONRPCServer) Close() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.srv == nil {
		return
	}
	if err := j.srv.Close(); err != nil {
		rlog.Error("JSONRPCServer close", "err", err)
	}
	j.srv = nil
	j.l = nil
}

func initIPWhitelist(list []string) map[string]bool {
	whitelist := make(map[string]bool)
	for _, ip := range list {
		if ip == "*" {
			ip = "0.0.0.0"
		}
		whitelist[ip] = true
	}
	return whitelist
}

func (j *JSONRPCServer) checkIPWhitelist(addr string) bool {
	//回环网络直接允许
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	if ip.IsLoopback() {
		return true
	}
	if ipv4 := ip.To4(); ipv4 != nil {
		addr = ipv4.String()
	}
	if j.whitelist["0.0.0.0"] {
		return true
	}
	return j.whitelist[addr]
}

// 每个 ip 一个漏桶, 桶满时拒绝
func (j *JSONRPCServer) checkRateLimit(ip string) bool {
	if j.limiter == nil {
		return true
	}
	if j.limiter.Remaining(ip) <= 0 {
		return false
	}
	j.limiter.Add(ip, 1)
	return true
}

func (j *JSONRPCServer) corsOrigins() []string {
	if len(j.cfg.CorsOrigins) == 0 {
		return []string{"*"}
	}
	return j.cfg.CorsOrigins
}
