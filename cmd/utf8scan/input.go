package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/utf8scan/errors"
	"github.com/wippyai/utf8scan/memory"
)

// source describes where the bytes to inspect come from.
type source struct {
	file   string
	text   string
	hex    string
	wasm   string
	ptr    uint
	length uint
	at     int64
	export string

	hasText bool
}

func (s source) count() int {
	n := 0
	for _, set := range []bool{s.file != "", s.hasText, s.hex != "", s.wasm != ""} {
		if set {
			n++
		}
	}
	return n
}

// load returns the selected input. stdin is read for -file -.
func (s source) load(ctx context.Context, stdin io.Reader, log *zap.Logger) ([]byte, error) {
	switch {
	case s.file == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidInput, err, "read stdin")
		}
		return data, nil
	case s.file != "":
		data, err := os.ReadFile(s.file)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseLoad, errors.KindNotFound, err, "read file")
		}
		return data, nil
	case s.hasText:
		return []byte(s.text), nil
	case s.hex != "":
		return parseHex(s.hex)
	case s.wasm != "":
		return s.loadWASM(ctx, log)
	}
	return nil, nil
}

// validate rejects guest addresses and lengths that do not fit in 32 bits.
func (s source) validate() error {
	if s.ptr > math.MaxUint32 {
		return errors.InvalidInput(errors.PhaseConfig, []string{"ptr"}, fmt.Sprintf("%d exceeds the 32-bit address space", s.ptr))
	}
	if s.length > math.MaxUint32 {
		return errors.InvalidInput(errors.PhaseConfig, []string{"len"}, fmt.Sprintf("%d exceeds the 32-bit address space", s.length))
	}
	if s.at < -1 || s.at > math.MaxUint32 {
		return errors.InvalidInput(errors.PhaseConfig, []string{"at"}, fmt.Sprintf("%d is not a 32-bit address", s.at))
	}
	return nil
}

func (s source) loadWASM(ctx context.Context, log *zap.Logger) ([]byte, error) {
	bin, err := os.ReadFile(s.wasm)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindNotFound, err, "read module")
	}

	mod, err := memory.Open(ctx, bin, s.export)
	if err != nil {
		return nil, err
	}
	defer mod.Close(ctx)

	ptr, length := uint32(s.ptr), uint32(s.length)
	if s.at >= 0 {
		if ptr, length, err = memory.ReadPair(mod.Memory, uint32(s.at)); err != nil {
			return nil, err
		}
	}

	log.Debug("reading guest memory",
		zap.String("module", s.wasm),
		zap.Uint32("ptr", ptr),
		zap.Uint32("len", length))

	region, err := memory.ReadRegion(mod.Memory, ptr, length)
	if err != nil {
		return nil, err
	}
	// the view dies with the module
	return bytes.Clone(region), nil
}

// parseHex decodes hex digits written as "41 e2 89", "41e289" or "\x41\xe2\x89".
func parseHex(s string) ([]byte, error) {
	s = strings.ReplaceAll(s, `\x`, "")
	s = strings.Join(strings.Fields(s), "")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "parse -hex")
	}
	return data, nil
}

// unescape turns \xNN escapes into raw bytes and keeps everything else as
// typed. Malformed escapes are kept literally.
func unescape(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+4 <= len(s) && s[i+1] == 'x' {
			if b, err := hex.DecodeString(s[i+2 : i+4]); err == nil {
				out = append(out, b[0])
				i += 3
				continue
			}
		}
		out = append(out, s[i])
	}
	return out
}
