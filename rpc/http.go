// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"io"
	"net"
	"net/http"
	"net/rpc/jsonrpc"

	"github.com/rs/cors"
)

// HTTPConn adapt HTTP connection to ReadWriteCloser
type HTTPConn struct {
	in  io.Reader
	out io.Writer
}

func (c *HTTPConn) Read(p []byte) (n int, err error)  { return c.in.Read(p) }
func (c *HTTPConn) Write(d []byte) (n int, err error) { return c.out.Write(d) }

// Close 请求结束时由 http 关闭
func (c *HTTPConn) Close() error { return nil }

// Handler 一个 http 请求对应一个 jsonrpc 请求
func (j *JSONRPCServer) Handler() http.Handler {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !j.checkIPWhitelist(ip) {
			rlog.Error("HandlerFunc", "remote ip not in whitelist", ip)
			http.Error(w, "reject", http.StatusUnauthorized)
			return
		}
		if !j.checkRateLimit(ip) {
			rlog.Debug("HandlerFunc", "rate limited", ip)
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		serverCodec := jsonrpc.NewServerCodec(&HTTPConn{in: r.Body, out: w})
		w.Header().Set("Content-type", "application/json")
		w.WriteHeader(http.StatusOK)
		err = j.s.ServeRequest(serverCodec)
		if err != nil {
			rlog.Debug("Error while serving JSON request", "err", err)
		}
	})
	co := cors.New(cors.Options{
		AllowedOrigins: j.corsOrigins(),
		AllowedMethods: []string{http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return co.Handler(handler)
}
