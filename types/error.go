// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

//运行时的通用错误
var (
	ErrNotFound          = errors.New("ErrNotFound")
	ErrNoBalance         = errors.New("ErrNoBalance")
	ErrAmount            = errors.New("ErrAmount")
	ErrSign              = errors.New("ErrSign")
	ErrNoSignature       = errors.New("ErrNoSignature")
	ErrTxDup             = errors.New("ErrTxDup")
	ErrTxMsgSizeTooBig   = errors.New("ErrTxMsgSizeTooBig")
	ErrActionNotSupport  = errors.New("ErrActionNotSupport")
	ErrUnRegistedDriver  = errors.New("ErrUnRegistedDriver")
	ErrQueryNotSupport   = errors.New("ErrQueryNotSupport")
	ErrInvalidParam      = errors.New("ErrInvalidParam")
	ErrInvalidAddress    = errors.New("ErrInvalidAddress")
	ErrDecode            = errors.New("ErrDecode")
	ErrEmpty             = errors.New("ErrEmpty")
	ErrSendSameToRecv    = errors.New("ErrSendSameToRecv")
	ErrChannelClosed     = errors.New("ErrChannelClosed")
	ErrConfigUnknownKeys = errors.New("ErrConfigUnknownKeys")
	ErrBlockFull         = errors.New("ErrBlockFull")
	ErrNoBlock           = errors.New("ErrNoBlock")
)
