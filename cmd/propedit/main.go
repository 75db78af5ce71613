// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command propedit edits the array properties of the objects saved
// in a store file. When a pattern matches several objects, the edit
// is applied to all of them, with the last one as the primary target.
package main

import (
	"fmt"
	"os"

	"cogentcore.org/editkit/base/logx"
	"github.com/docopt/docopt-go"
)

// Version is the propedit version.
const Version = "0.1.0"

const usage = `Edit the array properties of the objects in a store file.

Store files are .toml, .yaml, or .yml files. <objects> is a glob
pattern matching object names. Values use their text form, such as
"[1, 2, 3]" for a Vector3 or "#ff8000" for a Color.

Usage:
    propedit find <file> [<objects>] [options]
    propedit len <file> <objects> <path> [options]
    propedit get <file> <objects> <path> [<index>] [options]
    propedit set <file> <objects> <path> <index> <value> [options]
    propedit insert <file> <objects> <path> <index> <value> [options]
    propedit append <file> <objects> <path> <value> [options]
    propedit remove <file> <objects> <path> <value> [--all] [options]
    propedit delete <file> <objects> <path> <index> [options]
    propedit move <file> <objects> <path> <from> <to> [options]
    propedit resize <file> <objects> <path> <len> [options]
    propedit clear <file> <objects> <path> [options]
    propedit dedup <file> <objects> <path> [options]
    propedit -h | --help
    propedit --version

Options:
    -h --help            Show this screen.
    --version            Show version.
    --config=<config>    Config file. [default: propedit.toml]
    --type=<type>        Only edit objects of this type.
    --output=<output>    Save to this file instead of <file>.
    --dry-run            Print the changes instead of saving them.
    --all                Remove every matching element.
    -v --verbose         Log info messages.
    --vv                 Log debug messages.
    -q --quiet           Only log errors.`

// commands are the command names, in usage order.
var commands = []string{"find", "len", "get", "set", "insert", "append", "remove", "delete", "move", "resize", "clear", "dedup"}

func main() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], Version)
	if err != nil {
		panic(err)
	}
	c, r, err := parseOpts(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logx.UserLevel = c.Log.Level()
	logx.SetDefaultLogger()
	if err := Run(c, r, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseOpts returns the config and request given by the parsed
// command line options.
func parseOpts(opts docopt.Opts) (*Config, *Request, error) {
	configFile, _ := opts.String("--config")
	c, err := LoadConfig(configFile)
	if err != nil {
		return nil, nil, err
	}
	if typ, err := opts.String("--type"); err == nil {
		c.Type = typ
	}
	if output, err := opts.String("--output"); err == nil {
		c.Output = output
	}
	if dryRun, _ := opts.Bool("--dry-run"); dryRun {
		c.DryRun = true
	}
	if v, _ := opts.Bool("--verbose"); v {
		c.Log.Verbose = true
	}
	if vv, _ := opts.Bool("--vv"); vv {
		c.Log.VeryVerbose = true
	}
	if q, _ := opts.Bool("--quiet"); q {
		c.Log.Quiet = true
	}

	r := &Request{}
	for _, cmd := range commands {
		if ok, _ := opts.Bool(cmd); ok {
			r.Command = cmd
			break
		}
	}
	r.File, _ = opts.String("<file>")
	r.Pattern, _ = opts.String("<objects>")
	r.Path, _ = opts.String("<path>")
	r.All, _ = opts.Bool("--all")
	// indexes come before values
	for _, key := range []string{"<index>", "<from>", "<to>", "<len>", "<value>"} {
		if arg, err := opts.String(key); err == nil {
			r.Args = append(r.Args, arg)
		}
	}
	return c, r, nil
}
