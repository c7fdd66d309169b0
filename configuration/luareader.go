// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"io/ioutil"
	"path/filepath"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"
)

// ParseConfigurationFile - run a Lua configuration file and map the
// table it returns onto config
//
// the script sees:
//   arg[0]           the configuration file name
//   variables.NAME   each entry of variables
//   read_file(name)  file contents as a string, or nil if unreadable;
//                    relative names are taken from the directory of
//                    the configuration file
func ParseConfigurationFile(fileName string, config interface{}, variables map[string]string) error {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	arg := L.NewTable()
	arg.RawSetInt(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	vars := L.NewTable()
	for k, v := range variables {
		vars.RawSetString(k, lua.LString(v))
	}
	L.SetGlobal("variables", vars)

	L.SetGlobal("read_file", L.NewFunction(readFile(filepath.Dir(fileName))))

	if err := L.DoFile(fileName); nil != err {
		return err
	}

	table, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return fmt.Errorf("configuration: %q did not return a table", fileName)
	}

	mapper := gluamapper.NewMapper(gluamapper.Option{
		NameFunc: func(s string) string { return s },
		TagName:  "gluamapper",
	})
	return mapper.Map(table, config)
}

func readFile(directory string) lua.LGFunction {
	return func(L *lua.LState) int {
		name := L.CheckString(1)
		if !filepath.IsAbs(name) {
			name = filepath.Join(directory, name)
		}
		data, err := ioutil.ReadFile(name)
		if nil != err {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(lua.LString(data))
		return 1
	}
}
