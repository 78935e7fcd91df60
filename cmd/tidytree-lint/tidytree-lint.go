package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	"github.com/webfolk/tidytree"
	"github.com/webfolk/tidytree/encoding"
	"golang.org/x/term"
)

type cmdopts struct {
	Text     bool   `long:"text"`
	Encoding string `long:"encoding"`
	Trace    bool   `long:"trace"`
	Version  bool   `long:"version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("tidytree-lint: using tidytree version %s\n", tidytree.Version)
}

func showUsage() {
	fmt.Printf(`Usage : tidytree-lint [options] HTMLfiles ...
	Parse the HTML files and print the resulting document tree
	--text      : print the text content instead of the tree outline
	--encoding= : transcode input from the named character set
	--trace     : log parser recovery decisions to stderr
	--version   : display the version of the library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)

	ctx := context.Background()
	if opts.Trace {
		log.SetLevel(logrus.DebugLevel)
		tlog := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		ctx = tidytree.WithTraceLogger(ctx, tlog)
	}

	inputCh := make(chan io.Reader)
	errCh := make(chan error, 1)
	switch {
	case len(args) > 0: // filenames present
		go func() {
			defer close(inputCh)
			for _, f := range args {
				log.WithField("file", f).Debug("reading input")
				fh, err := os.Open(f)
				if err != nil {
					errCh <- err
					return
				}
				inputCh <- fh
			}
		}()
	case !term.IsTerminal(int(os.Stdin.Fd())):
		go func() {
			defer close(inputCh)
			inputCh <- os.Stdin
		}()
	default:
		showUsage()
		return 1
	}

	p := tidytree.NewParser()
	for in := range inputCh {
		buf, err := io.ReadAll(in)
		if fh, ok := in.(*os.File); ok && fh != os.Stdin {
			_ = fh.Close()
		}
		if err != nil {
			log.WithError(err).Error("failed to read input")
			return 1
		}

		if opts.Encoding != "" {
			enc := encoding.Load(opts.Encoding)
			if enc == nil {
				log.WithField("encoding", opts.Encoding).Error("unknown encoding")
				return 1
			}
			buf, err = enc.NewDecoder().Bytes(buf)
			if err != nil {
				log.WithError(err).Error("failed to decode input")
				return 1
			}
		}

		doc, err := p.Parse(ctx, buf)
		if err != nil {
			log.WithError(err).Error("failed to parse input")
			return 1
		}

		if opts.Text {
			fmt.Println(doc.TextContent())
			continue
		}

		d := tidytree.Dumper{}
		if err := d.DumpDoc(os.Stdout, doc); err != nil {
			log.WithError(err).Error("failed to dump document")
			return 1
		}
	}

	select {
	case err := <-errCh:
		log.WithError(err).Error("failed to open input")
		return 1
	default:
	}

	return 0
}
