package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"

	"github.com/jyane/inesinfo/ines"
	"github.com/jyane/inesinfo/ui"
)

var (
	path   = flag.String("path", "", "path to NES ROM file, more files can be given as arguments")
	format = flag.String("format", "text", "output format: text, table, json or yaml")
	strict = flag.Bool("strict", false, "fail when the magic or padding bytes are invalid")
)

var (
	errReadFailed = errors.New("some headers could not be read")
	errInvalid    = errors.New("some headers are invalid")
)

// run decodes the header of every file in paths and prints the reports to out.
// Files that cannot be read are logged and skipped.
func run(paths []string, f ui.Format, strict bool, out io.Writer) error {
	var reports []ui.Report
	failed := false
	for _, p := range paths {
		h, err := ines.ReadFile(p)
		if err != nil {
			glog.Errorf("Failed to read header: %v", err)
			failed = true
			continue
		}
		reports = append(reports, ui.NewReport(p, h))
	}
	if err := ui.NewPrinter(out, f).Print(reports...); err != nil {
		return err
	}
	if failed {
		return errReadFailed
	}
	if strict {
		for _, r := range reports {
			if !r.Valid() {
				glog.Warningf("%s: invalid header (magic valid: %v, padding valid: %v)", r.Path, r.MagicValid, r.TailValid)
				return errInvalid
			}
		}
	}
	return nil
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] FILE...\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	defer glog.Flush()
	var paths []string
	if *path != "" {
		paths = append(paths, *path)
	}
	paths = append(paths, flag.Args()...)
	if len(paths) == 0 {
		flag.Usage()
		glog.Flush()
		os.Exit(2)
	}
	f, err := ui.ParseFormat(*format)
	if err != nil {
		glog.Errorln(err)
		glog.Flush()
		os.Exit(2)
	}
	if err := run(paths, f, *strict, os.Stdout); err != nil {
		glog.Errorln(err)
		glog.Flush()
		os.Exit(1)
	}
}
