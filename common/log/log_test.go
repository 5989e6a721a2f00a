// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/33cn/rps/types"
	log15 "github.com/inconshreveable/log15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, log15.LvlDebug, getLevel("debug"))
	assert.Equal(t, log15.LvlInfo, getLevel("info"))
	assert.Equal(t, log15.LvlError, getLevel("nosuchlevel"))
}

func TestSetFileLog(t *testing.T) {
	defer SetLogLevel("crit")
	file := filepath.Join(t.TempDir(), "rps.log")
	cfg := &types.Log{LogFile: file, Loglevel: "info", LogConsoleLevel: "crit"}
	SetFileLog(cfg)
	New("module", "test").Info("hello", "k", "v")
	New("module", "test").Debug("filtered")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "module=test"))
	assert.True(t, strings.Contains(string(data), "msg=hello"))
	assert.False(t, strings.Contains(string(data), "filtered"))
}

func TestSetFileLogDefaults(t *testing.T) {
	defer SetLogLevel("crit")
	cfg := &types.Log{}
	SetFileLog(cfg)
	assert.Equal(t, "eror", cfg.Loglevel)
	assert.Equal(t, "eror", cfg.LogConsoleLevel)
}
