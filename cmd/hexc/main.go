// Command hexc encodes stdin as uppercase hex, or decodes hex from stdin
// with -d.
//
//	echo -n hi | hexc         # 6869
//	echo 6869 | hexc -d       # hi
//	hexc -max 1024 < blob.bin # refuse inputs over 1 KiB
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/unkn0wn-root/hexcodec"
	"github.com/unkn0wn-root/hexcodec/codec"
	"github.com/unkn0wn-root/hexcodec/handler"
)

var errInputTooLarge = errors.New("input exceeds max message size")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := resolveConfig(args)
	if err != nil {
		fmt.Fprintf(stderr, "hexc: %v\n", err)
		return 2
	}
	log, flush, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "hexc: %v\n", err)
		return 2
	}
	defer flush()

	in, err := readInput(stdin, cfg.Handler)
	if err != nil {
		log.Error("read input failed", hexcodec.Fields{"err": err, "max": cfg.Handler.MaxMessageSize})
		return 1
	}

	var out []byte
	if cfg.Decode {
		out, err = decode(in)
		if err != nil {
			log.Error("decode failed", hexcodec.Fields{"err": err})
			return 1
		}
	} else {
		out = append(hexcodec.AppendEncode(make([]byte, 0, hexcodec.EncodedLen(len(in))+1), in), '\n')
	}

	if _, err := stdout.Write(out); err != nil {
		log.Error("write output failed", hexcodec.Fields{"err": err})
		return 1
	}
	log.Debug("done", hexcodec.Fields{"decode": cfg.Decode, "in": len(in), "out": len(out)})
	return 0
}

// readInput reads all of r, stopping one byte past the handler limit so
// oversized input is detected without buffering it whole. The limit applies
// to the message as received, so in decode mode it bounds the hex text.
func readInput(r io.Reader, m handler.Message) ([]byte, error) {
	if !m.Unlimited() && m.MaxMessageSize < math.MaxInt64 {
		r = io.LimitReader(r, m.MaxMessageSize+1)
	}
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !m.Allows(len(in)) {
		return nil, errInputTooLarge
	}
	return in, nil
}

func decode(in []byte) ([]byte, error) {
	return codec.Hex{}.Decode(bytes.TrimSpace(in))
}
