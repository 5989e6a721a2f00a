// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows && !plan9
// +build !windows,!plan9

// Package limits 设置进程可打开的文件数, leveldb 和 badger 都需要较多文件句柄
package limits

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

const (
	fileLimitWant = 2048
	fileLimitMin  = 1024
)

//SetLimits 把 RLIMIT_NOFILE 调整到 fileLimitWant, 至少 fileLimitMin
func SetLimits() error {
	rLimit, err := GetLimits()
	if err != nil {
		return err
	}
	if rLimit.Cur > fileLimitWant {
		return nil
	}
	if rLimit.Max < fileLimitMin {
		return errors.Errorf("need at least %v file descriptors, max %v", fileLimitMin, rLimit.Max)
	}
	rLimit.Cur = fileLimitWant
	if rLimit.Max < fileLimitWant {
		rLimit.Cur = rLimit.Max
	}
	if err = unix.Setrlimit(unix.RLIMIT_NOFILE, &rLimit); err != nil {
		rLimit.Cur = fileLimitMin
		if err = unix.Setrlimit(unix.RLIMIT_NOFILE, &rLimit); err != nil {
			return errors.Wrap(err, "setrlimit")
		}
	}
	return nil
}

//GetLimits 获取 RLIMIT_NOFILE
func GetLimits() (unix.Rlimit, error) {
	var rLimit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &rLimit); err != nil {
		return unix.Rlimit{}, errors.Wrap(err, "getrlimit")
	}
	return rLimit, nil
}
