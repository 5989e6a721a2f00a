// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows || plan9
// +build windows plan9

package limits

//SetLimits 其它平台不需要调整
func SetLimits() error {
	return nil
}
