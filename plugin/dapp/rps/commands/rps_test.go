// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"testing"

	rpstypes "github.com/33cn/rps/plugin/dapp/rps/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandSecret(t *testing.T) {
	s := randSecret()
	b, err := rpstypes.ParseSecret(s)
	require.NoError(t, err)
	assert.Len(t, b, secretSize)
	assert.NotEqual(t, s, randSecret())
}

func TestCommitSecretOptional(t *testing.T) {
	cmd := CommitCmd()
	flag := cmd.Flags().Lookup("secret")
	require.NotNil(t, flag)
	_, required := flag.Annotations[cobra.BashCompOneRequiredFlag]
	assert.False(t, required)
	_, required = cmd.Flags().Lookup("move").Annotations[cobra.BashCompOneRequiredFlag]
	assert.True(t, required)
}
