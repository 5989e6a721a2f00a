// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plugin 引用这个包会注册所有的 dapp 插件
package plugin

import (
	_ "github.com/33cn/rps/plugin/dapp/rps" //auto gen
)
