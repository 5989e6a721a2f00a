// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package util 节点启动用到的工具函数
package util

import (
	"os"
	"os/user"
	"path/filepath"

	dbm "github.com/33cn/rps/common/db"
	"github.com/33cn/rps/common/log"
	"github.com/33cn/rps/types"
	"github.com/pkg/errors"
)

var ulog = log.New("module", "util")

//ResetDatadir 重写datadir, 日志和数据库的相对路径都放到 datadir 下
func ResetDatadir(cfg *types.Config, datadir string) string {
	// Check in case of paths like "/something/~/something/"
	if len(datadir) >= 2 && datadir[:2] == "~/" {
		usr, err := user.Current()
		if err != nil {
			panic(err)
		}
		dir := usr.HomeDir
		datadir = filepath.Join(dir, datadir[2:])
	}
	if len(datadir) >= 6 && datadir[:6] == "$TEMP/" {
		dir, err := os.MkdirTemp("", "rpsdatadir-")
		if err != nil {
			panic(err)
		}
		datadir = filepath.Join(dir, datadir[6:])
	}
	ulog.Info("current user data dir is ", "dir", datadir)
	if cfg.Log.LogFile != "" && !filepath.IsAbs(cfg.Log.LogFile) {
		cfg.Log.LogFile = filepath.Join(datadir, cfg.Log.LogFile)
	}
	if !filepath.IsAbs(cfg.Store.DbPath) {
		cfg.Store.DbPath = filepath.Join(datadir, cfg.Store.DbPath)
	}
	if !filepath.IsAbs(cfg.LocalStore.DbPath) {
		cfg.LocalStore.DbPath = filepath.Join(datadir, cfg.LocalStore.DbPath)
	}
	return datadir
}

//CheckConfig 启动前检查数据库后端和共识是否支持
func CheckConfig(cfg *types.Config) error {
	if !dbm.HasBackend(cfg.Store.Driver) {
		return errors.Wrap(types.ErrInvalidParam, "unknown store driver "+cfg.Store.Driver)
	}
	if !dbm.HasBackend(cfg.LocalStore.Driver) {
		return errors.Wrap(types.ErrInvalidParam, "unknown localStore driver "+cfg.LocalStore.Driver)
	}
	if cfg.Consensus.Name != "solo" {
		return errors.Wrap(types.ErrInvalidParam, "unsupported consensus "+cfg.Consensus.Name)
	}
	return nil
}
