// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrDuplicateCommitment = errors.New("ErrDuplicateCommitment")
	ErrRoomNotFound        = errors.New("ErrRoomNotFound")
	ErrInvalidMove         = errors.New("ErrInvalidMove")
	ErrRoomAlreadyStarted  = errors.New("ErrRoomAlreadyStarted")
	ErrRoomExpired         = errors.New("ErrRoomExpired")
	ErrCommitmentMismatch  = errors.New("ErrCommitmentMismatch")
	ErrNotExpiredYet       = errors.New("ErrNotExpiredYet")
	ErrWrongState          = errors.New("ErrWrongState")
	ErrAlreadySettled      = errors.New("ErrAlreadySettled")
	ErrNothingToWithdraw   = errors.New("ErrNothingToWithdraw")
	ErrPermissionDenied    = errors.New("ErrPermissionDenied")
	ErrJoinOwnRoom         = errors.New("ErrJoinOwnRoom")
	ErrInvalidTimeout      = errors.New("ErrInvalidTimeout")
	ErrNotPayable          = errors.New("ErrNotPayable")
	ErrInvalidStake        = errors.New("ErrInvalidStake")
	ErrInvalidCommitment   = errors.New("ErrInvalidCommitment")
)
