package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/borissey/flatcc/examples/monster"
	"github.com/borissey/flatcc/flatjson"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML Options file")
	identifier := flag.String("id", "", "expected 4-byte file identifier (empty disables the check)")
	flag.Parse()

	opts := flatjson.Options{Indent: 2}
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "flatjson-dump: %s\n", err)
			os.Exit(1)
		}
		opts = loaded
	}

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := dumpOne(arg, *identifier, opts); err != nil {
			fmt.Fprintf(os.Stderr, "flatjson-dump: %s: %s\n", arg, err)
			os.Exit(1)
		}
	}
}

func dumpOne(arg, identifier string, opts flatjson.Options) error {
	var buf []byte
	var err error
	if arg == "-" {
		buf, err = io.ReadAll(os.Stdin)
	} else {
		buf, err = os.ReadFile(arg)
	}
	if err != nil {
		return err
	}
	ctx := flatjson.NewStreamContext(os.Stdout, opts)
	if _, err := flatjson.TableAsRoot(ctx, buf, identifier, monster.MonsterPrinter); err != nil {
		return err
	}
	return nil
}

