// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/33cn/rps/types"
)

var (
	typeOfError      = reflect.TypeOf((*error)(nil)).Elem()
	typeOfMessage    = reflect.TypeOf((*types.Message)(nil)).Elem()
	typeOfReceipt    = reflect.TypeOf(&types.Receipt{})
	typeOfLocalDBSet = reflect.TypeOf(&types.LocalDBSet{})
	typeOfTx         = reflect.TypeOf(&types.Transaction{})
	typeOfReceiptDat = reflect.TypeOf(&types.ReceiptData{})
	typeOfInt        = reflect.TypeOf(int(0))
)

//方法名前缀
const (
	ExecPrefix      = "Exec_"
	ExecLocalPrefix = "ExecLocal_"
	QueryPrefix     = "Query_"
)

// Is this an exported - upper case - name?
func isExported(name string) bool {
	rune, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(rune)
}

//ListMethod 列出 Exec_, ExecLocal_, Query_ 开头且签名正确的方法
//  Exec_X(payload *T, tx *types.Transaction, index int) (*types.Receipt, error)
//  ExecLocal_X(payload *T, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
//  Query_X(param *T) (types.Message, error)
func ListMethod(driver interface{}) map[string]reflect.Method {
	typ := reflect.TypeOf(driver)
	methods := make(map[string]reflect.Method)
	for m := 0; m < typ.NumMethod(); m++ {
		method := typ.Method(m)
		mname := method.Name
		// Method must be exported.
		if method.PkgPath != "" || !isExported(mname) {
			continue
		}
		mtype := method.Type
		switch {
		case strings.HasPrefix(mname, ExecLocalPrefix):
			if checkIn(mtype, typeOfTx, typeOfReceiptDat, typeOfInt) && checkOut(mtype, typeOfLocalDBSet) {
				methods[mname] = method
			}
		case strings.HasPrefix(mname, ExecPrefix):
			if checkIn(mtype, typeOfTx, typeOfInt) && checkOut(mtype, typeOfReceipt) {
				methods[mname] = method
			}
		case strings.HasPrefix(mname, QueryPrefix):
			if checkIn(mtype) && checkOut(mtype, typeOfMessage) {
				methods[mname] = method
			}
		}
	}
	return methods
}

// 第0个参数是接收者, 第1个是实现了 types.Message 的指针, 后面依次为 rest
func checkIn(mtype reflect.Type, rest ...reflect.Type) bool {
	if mtype.NumIn() != 2+len(rest) {
		return false
	}
	arg := mtype.In(1)
	if arg.Kind() != reflect.Ptr || !arg.Implements(typeOfMessage) {
		return false
	}
	for i, t := range rest {
		if mtype.In(2+i) != t {
			return false
		}
	}
	return true
}

func checkOut(mtype reflect.Type, first reflect.Type) bool {
	return mtype.NumOut() == 2 && mtype.Out(0) == first && mtype.Out(1) == typeOfError
}

func callMethod(method reflect.Method, args ...reflect.Value) (interface{}, error) {
	ret := method.Func.Call(args)
	var err error
	if e := ret[1].Interface(); e != nil {
		err = e.(error)
	}
	if ret[0].Kind() == reflect.Ptr || ret[0].Kind() == reflect.Interface {
		if ret[0].IsNil() {
			return nil, err
		}
	}
	return ret[0].Interface(), err
}

//newArg 生成方法第一个参数类型的新值
func newArg(method reflect.Method) types.Message {
	return reflect.New(method.Type.In(1).Elem()).Interface().(types.Message)
}
