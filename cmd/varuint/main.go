// Command varuint encodes, decodes and inspects 128 bit varints from the command line.
//
//	varuint encode 0 127 128 345678
//	varuint decode ce8c15 8010
//	varuint peek 8080
//	printf '\x80\x01\x7f' | varuint stream
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"lukechampine.com/frand"

	"varuint.lol/chk"
	"varuint.lol/config"
	"varuint.lol/hex"
	"varuint.lol/log"
	"varuint.lol/varint"
)

// Version is set at link time.
var Version = "v0.0.0-dev"

type EncodeCmd struct {
	Values []string `arg:"positional,required" help:"decimal values to encode"`
}

type DecodeCmd struct {
	Hex []string `arg:"positional,required" help:"hex encodings, each may hold several values"`
}

type PeekCmd struct {
	Hex string `arg:"positional,required" help:"hex bytes to frame"`
}

type StreamCmd struct{}

type BenchCmd struct {
	Count int `arg:"-n,--count" default:"1000000" help:"number of random values to round trip"`
}

type EnvCmd struct{}

type VersionCmd struct{}

type Args struct {
	Encode  *EncodeCmd  `arg:"subcommand:encode" help:"print the hex encoding of decimal values"`
	Decode  *DecodeCmd  `arg:"subcommand:decode" help:"print the decimal values of hex encodings"`
	Peek    *PeekCmd    `arg:"subcommand:peek" help:"print the length of the first encoding in hex bytes"`
	Stream  *StreamCmd  `arg:"subcommand:stream" help:"decode raw varints from stdin, one value per line"`
	Bench   *BenchCmd   `arg:"subcommand:bench" help:"round trip random values and report throughput"`
	Env     *EnvCmd     `arg:"subcommand:env" help:"print the environment configuration as a shell script"`
	Version *VersionCmd `arg:"subcommand:version" help:"print the version"`
}

func main() {
	cfg, err := config.New()
	if chk.E(err) {
		os.Exit(1)
	}
	var args Args
	p := arg.MustParse(&args)
	if p.Subcommand() == nil {
		p.WriteHelp(os.Stderr)
		cfg.PrintUsage(os.Stderr)
		os.Exit(2)
	}
	if err = run(cfg, &args, os.Stdin, os.Stdout); err != nil {
		log.E.F("%s", err)
		os.Exit(1)
	}
}

func run(cfg *config.C, args *Args, in io.Reader, out io.Writer) (err error) {
	switch {
	case args.Encode != nil:
		return encode(args.Encode.Values, out)
	case args.Decode != nil:
		return decode(args.Decode.Hex, out)
	case args.Peek != nil:
		return peek(args.Peek.Hex, out)
	case args.Stream != nil:
		return stream(in, out)
	case args.Bench != nil:
		var stop func()
		if stop, err = cfg.StartProfile(); err != nil {
			return
		}
		defer stop()
		return bench(args.Bench.Count, out)
	case args.Env != nil:
		cfg.PrintEnv(out)
	case args.Version != nil:
		_, err = fmt.Fprintln(out, Version)
	}
	return
}

func encode(values []string, out io.Writer) (err error) {
	var line []byte
	for _, s := range values {
		var v varint.T
		if v, err = varint.Parse(s); err != nil {
			return
		}
		line = hex.EncAppend(line[:0], v.Bytes())
		line = append(line, '\n')
		if _, err = out.Write(line); err != nil {
			return
		}
	}
	return
}

func decode(encodings []string, out io.Writer) (err error) {
	for _, h := range encodings {
		var b []byte
		if b, err = hex.Dec(h); err != nil {
			return errors.Wrapf(err, "decoding %q", h)
		}
		s := bufio.NewScanner(bytes.NewReader(b))
		s.Split(varint.ScanVarints)
		for s.Scan() {
			var v varint.T
			if v, _, err = varint.Decode(s.Bytes()); err != nil {
				return
			}
			if _, err = fmt.Fprintln(out, v); err != nil {
				return
			}
		}
		if err = s.Err(); err != nil {
			return errors.Wrapf(err, "framing %q", h)
		}
	}
	return
}

func peek(h string, out io.Writer) (err error) {
	var b []byte
	if b, err = hex.Dec(h); err != nil {
		return errors.Wrapf(err, "decoding %q", h)
	}
	if n, ok := varint.Peek(b); ok {
		_, err = fmt.Fprintln(out, n)
	} else {
		_, err = fmt.Fprintln(out, "incomplete")
	}
	return
}

func stream(in io.Reader, out io.Writer) (err error) {
	r := bufio.NewReader(in)
	w := bufio.NewWriter(out)
	defer func() { chk.E(w.Flush()) }()
	for {
		var v varint.T
		if v, err = varint.Read(r); err != nil {
			if err == io.EOF {
				err = nil
			}
			return
		}
		if _, err = fmt.Fprintln(w, v); err != nil {
			return
		}
	}
}

func bench(count int, out io.Writer) (err error) {
	values := make([]varint.T, count)
	for i := range values {
		values[i] = varint.FromRaw(frand.Uint64n(1<<63), frand.Uint64n(1<<63)).
			Rsh(uint(frand.Intn(128)))
	}
	buf := make([]byte, 0, count*varint.MaxLen)
	start := time.Now()
	for _, v := range values {
		buf = v.Append(buf)
	}
	enc := time.Since(start)
	start = time.Now()
	for i, rem := 0, buf; len(rem) > 0; i++ {
		var v varint.T
		if rem, err = v.Unmarshal(rem); err != nil {
			return
		}
		if !v.Equal(values[i]) {
			return errors.Errorf("value %d: expected %s got %s", i, values[i], v)
		}
	}
	dec := time.Since(start)
	_, err = fmt.Fprintf(out, "%d values, %d bytes, encode %v, decode %v\n",
		count, len(buf), enc, dec)
	return
}
