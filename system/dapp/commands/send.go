// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/33cn/rps/common/crypto/secp256k1"
	"github.com/33cn/rps/rpc/jsonclient"
	rpctypes "github.com/33cn/rps/rpc/types"
	"github.com/spf13/cobra"
)

// OneStepSendCmd send cmd
func OneStepSendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "send",
		Short:              "Create, sign and send tx in one step",
		DisableFlagParsing: true,
		Run: func(cmd *cobra.Command, args []string) {
			oneStepSend(cmd, os.Args[0], args)
		},
	}
	cmd.Flags().StringP("key", "k", "", "private key for sign tx")
	return cmd
}

//SplitKeyParams 取出 send 命令的 key 参数, 保留原始构建交易的参数列表
func SplitKeyParams(params []string) (createParams, keyParams []string) {
	nextIgnore := false
	for i, v := range params {
		if nextIgnore {
			nextIgnore = false
			continue
		}
		if strings.HasPrefix(v, "-k=") || strings.HasPrefix(v, "--key=") {
			keyParams = append(keyParams, v)
			continue
		} else if (v == "-k" || v == "--key") && i < len(params)-1 {
			keyParams = append(keyParams, v, params[i+1])
			nextIgnore = true
			continue
		}
		createParams = append(createParams, v)
	}
	return createParams, keyParams
}

// one step send
func oneStepSend(cmd *cobra.Command, cmdName string, params []string) {
	if len(params) < 1 || params[0] == "help" || params[0] == "--help" || params[0] == "-h" {
		loadSendHelp()
		return
	}
	createParams, keyParams := SplitKeyParams(params)

	//创建交易命令
	cmdCreate := exec.Command(cmdName, createParams...)
	createRes, err := execCmd(cmdCreate)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	//cli不传任何参数不会报错, 输出帮助信息
	if strings.Contains(createRes, "\n") {
		fmt.Println(createRes)
		return
	}

	err = cmd.Flags().Parse(keyParams)
	key, _ := cmd.Flags().GetString("key")
	if len(key) <= 0 || err != nil {
		loadSendHelp()
		fmt.Fprintln(os.Stderr, "Error: required flag(s) \"key\" not proper set")
		return
	}
	signed, err := SignRawTx(createRes, key, secp256k1.Name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	//采用内部的构造交易命令,解析rpc_laddr地址参数
	createCmd, createFlags, _ := cmd.Root().Traverse(createParams)
	_ = createCmd.ParseFlags(createFlags)
	rpcAddr, _ := createCmd.Flags().GetString("rpc_laddr")
	ctx := jsonclient.NewRPCCtx(rpcAddr, "Chain33.SendTransaction", rpctypes.RawParm{Data: signed}, nil)
	ctx.RunWithoutMarshal()
}

func execCmd(c *exec.Cmd) (string, error) {
	var outBuf, errBuf bytes.Buffer
	c.Stderr = &errBuf
	c.Stdout = &outBuf

	if err := c.Run(); err != nil {
		return "", errors.New(err.Error() + "\n" + errBuf.String())
	}
	if len(errBuf.String()) > 0 {
		return "", errors.New(errBuf.String())
	}
	return strings.TrimSuffix(outBuf.String(), "\n"), nil
}

func loadSendHelp() {
	help := `[Integrate create/sign/send transaction operations in one command]
Usage:
  -cli send [flags]

Examples:
rps-cli send rps create -i 0x... -a 1 -k 0x...

equivalent to three steps:
1. rps-cli rps create -i 0x... -a 1   //create raw tx
2. rps-cli tx sign -d rawTx -k 0x...   //sign raw tx
3. rps-cli tx send -d signTx           //send tx to block chain

Flags:
  -h, --help         help for send
  -k, --key          private key for sign tx`
	fmt.Println(help)
}
