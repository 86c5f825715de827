// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/joho/godotenv"
)

// Environment variables holding default values
const (
	EnvDirOut   = "GOFRAME_DIROUT"
	EnvNworkers = "GOFRAME_NWORKERS"
	EnvMaxCond  = "GOFRAME_MAXCOND"
)

// Env holds default values read from the environment and from an optional .env file
type Env map[string]string

// LoadEnv reads the .env file in dir, if any. Variables already set in the process
// environment take precedence over the ones in the file.
func LoadEnv(dir string) (env Env, err error) {
	env = make(Env)
	fn := filepath.Join(dir, ".env")
	if _, e := os.Stat(fn); e == nil {
		vals, e := godotenv.Read(fn)
		if e != nil {
			return nil, chk.Err("cannot read environment file %q:\n%v", fn, e)
		}
		for k, v := range vals {
			env[k] = v
		}
	}
	for _, key := range []string{EnvDirOut, EnvNworkers, EnvMaxCond} {
		if val, ok := os.LookupEnv(key); ok {
			env[key] = val
		}
	}
	return
}

// Apply sets the default values of data. Invalid numbers are ignored
func (o Env) Apply(data *Data) {
	if val, ok := o[EnvDirOut]; ok && val != "" {
		data.DirOut = val
	}
	if val, ok := o[EnvNworkers]; ok {
		if n, err := strconv.Atoi(val); err == nil {
			data.Nworkers = n
		}
	}
	if val, ok := o[EnvMaxCond]; ok {
		if c, err := strconv.ParseFloat(val, 64); err == nil && c > 0 {
			data.MaxCond = c
		}
	}
}
