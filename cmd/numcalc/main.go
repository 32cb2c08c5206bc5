// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command numcalc evaluates exact arithmetic on numeric literals.
//
// Usage:
//
//	numcalc show LITERAL...
//	numcalc eval A OP B        OP is one of + - * / %
//	numcalc pow X N
//	numcalc fact N
//	numcalc key LITERAL...
//
// Division and modulo take a machine word divisor. See numcalc help for the
// list of flags.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
