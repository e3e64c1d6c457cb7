// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package ginkgohelper builds a ginkgo Context per table entry,
// for tables whose entries need their own setup nodes.
package ginkgohelper

import (
	"fmt"
	"reflect"

	"github.com/onsi/ginkgo/v2"
)

type ContextTableEntryT struct {
	fmtArgs []any
	args    []reflect.Value
}

// ContextTable calls fn inside a Context for every entry.
// Nil arguments of an entry become the zero value
// of the matching parameter of fn.
func ContextTable(message string, fn any, entries ...*ContextTableEntryT) {
	vfn := reflect.ValueOf(fn)
	if vfn.Kind() != reflect.Func {
		panic(fmt.Sprintf("ContextTable expects a function, got %T", fn))
	}

	for i := range entries {
		entry := entries[i]
		if len(entry.args) != vfn.Type().NumIn() {
			panic(fmt.Sprintf(
				"ContextTable entry %d has %d arguments, function takes %d",
				i, len(entry.args), vfn.Type().NumIn(),
			))
		}

		ginkgo.Context(fmt.Sprintf(message, entry.fmtArgs...), func() {
			args := make([]reflect.Value, len(entry.args))
			for j := range entry.args {
				args[j] = entry.args[j]
				if !args[j].IsValid() {
					args[j] = reflect.New(vfn.Type().In(j)).Elem()
				}
			}
			vfn.Call(args)
		})
	}
}

// WithFmt replaces the arguments used to format the Context message.
func (c *ContextTableEntryT) WithFmt(args ...any) *ContextTableEntryT {
	c.fmtArgs = args
	return c
}

func ContextTableEntry(args ...any) *ContextTableEntryT {
	ret := &ContextTableEntryT{}
	for i := range args {
		ret.args = append(ret.args, reflect.ValueOf(args[i]))
	}
	ret.fmtArgs = args
	return ret
}
