package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/exprtree"
)

func main() {
	log.SetFlags(0)
	var (
		flags   config
		cfgname string
	)
	flag.StringVar(&cfgname, "config", "", "YAML config file")
	flag.StringVar(&flags.Fmt, "fmt", "%g", "result formatting string")
	flag.BoolVar(&flags.Echo, "echo", false, "print expression trees")
	flag.BoolVar(&flags.Trace, "trace", false, "trace conversion to postfix on stderr")
	flag.BoolVar(&flags.Strict, "strict", false, "reject characters outside the expression grammar")
	flag.Parse()

	cfg, err := load(defaults(), cfgname)
	if err != nil {
		log.Fatalf("reading config: %v", err)
	}
	cfg = cfg.override(flag.CommandLine, flags)

	srcs := flag.Args()
	if len(srcs) == 0 {
		srcs, err = lines(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
	}

	var opts []exprtree.BuildOption
	if cfg.Strict {
		opts = append(opts, exprtree.Strict())
	}
	if cfg.Trace {
		opts = append(opts, exprtree.Trace(os.Stderr))
	}
	verb := cfg.Fmt + "\n"
	for _, src := range srcs {
		t, err := exprtree.Build(src, opts...)
		if err != nil {
			log.Fatalf("%s: %v", src, err)
		}
		if cfg.Echo {
			fmt.Printf("%v : ", t)
		}
		r, err := t.Eval()
		if err != nil {
			log.Fatalf("%s: %v", src, err)
		}
		fmt.Printf(verb, r)
	}
}

// lines reads the non-empty lines of r as separate expressions.
func lines(r io.Reader) ([]string, error) {
	var srcs []string
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		if s := strings.TrimSpace(scan.Text()); s != "" {
			srcs = append(srcs, s)
		}
	}
	return srcs, scan.Err()
}
