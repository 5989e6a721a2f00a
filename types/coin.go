// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/shopspring/decimal"
)

var coinUnit = decimal.New(Coin, 0)

//FormatCoins 最小单位转成币, 比如 150000000 -> "1.5"
func FormatCoins(amount int64) string {
	return decimal.New(amount, 0).Div(coinUnit).String()
}

//ParseCoins 币转成最小单位, 最多 8 位小数, 不能为负
func ParseCoins(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrAmount
	}
	if d.IsNegative() {
		return 0, ErrAmount
	}
	units := d.Mul(coinUnit)
	if !units.Equal(units.Truncate(0)) {
		return 0, ErrAmount
	}
	if units.GreaterThanOrEqual(decimal.New(MaxCoin, 0)) {
		return 0, ErrAmount
	}
	return units.IntPart(), nil
}
