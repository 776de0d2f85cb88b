package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math/bits"
	"runtime"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/shirou/gopsutil/v3/mem"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

type zstdInfo struct {
	memory        *uint64
	level         zstd.EncoderLevel
	threads       byte
	memoryPercent bool
	forceAuto     bool
}

// parseZstd reads the --zstd option: "auto", or a comma separated list of
// l=low|mid|high, t=<threads> and m=<n>[%|K|M|G][B].
func parseZstd(s string) (*zstdInfo, error) {
	if len(s) == 0 || s == "auto" {
		return &zstdInfo{forceAuto: true}, nil
	}
	i := &zstdInfo{
		level:   zstd.SpeedDefault,
		threads: 1,
	}
	expected := func(value, after string) error {
		return fmt.Errorf("expected %s after %s", value, after)
	}
	for _, opt := range strings.Split(s, ",") {
		if opt == "auto" {
			i.forceAuto = true
			return i, nil
		}
		name, value, ok := strings.Cut(opt, "=")
		switch {
		case name != "l" && name != "t" && name != "m":
			return nil, expected("'l', 't', 'm' or 'auto'", "'--zstd='")
		case !ok:
			return nil, expected("'='", fmt.Sprintf("'%s'", name))
		}
		switch name {
		case "l":
			switch value {
			case "low":
				i.level = zstd.SpeedFastest
			case "mid":
				i.level = zstd.SpeedDefault
			case "high":
				i.level = zstd.SpeedBetterCompression
			default:
				return nil, expected("'low', 'mid' or 'high'", "'l='")
			}
		case "t":
			n, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return nil, expected("number", "'t='")
			}
			i.threads = byte(min(255, n))
		case "m":
			if err := i.parseMemory(value); err != nil {
				return nil, expected("number", "'m='")
			}
		}
	}
	return i, nil
}

func (i *zstdInfo) parseMemory(value string) error {
	value = strings.TrimSuffix(value, "B")
	shift := 0
	if n := len(value); n > 0 {
		switch value[n-1] {
		case '%':
			i.memoryPercent = true
		case 'G':
			shift = 30
		case 'M':
			shift = 20
		case 'K':
			shift = 10
		}
		if i.memoryPercent || shift != 0 {
			value = value[:n-1]
		}
	}
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return err
	}
	v <<= shift
	i.memory = &v
	return nil
}

// validateParameters fills in threads and memory from the available RAM.
// size is the number of bytes to compress, or 0 when decoding.
func (i *zstdInfo) validateParameters(size uint64, isWrite bool) error {
	freeMem, err := mem.VirtualMemory()
	if err != nil {
		return err
	}
	if i.forceAuto {
		maxThreadsByMem := max(1, int(freeMem.Available/(10<<20))) // 10MB per thread
		maxThreadsBySize := 1
		switch {
		case size > 64<<20:
			maxThreadsBySize = 8
		case size > 8<<20:
			maxThreadsBySize = 4
		case size > 1<<20:
			maxThreadsBySize = 2
		}
		if !isWrite {
			maxThreadsBySize = 4
		}
		i.threads = byte(min(runtime.NumCPU(), maxThreadsByMem, maxThreadsBySize, 255))

		if isWrite {
			switch {
			case size < 1<<20:
				i.level = zstd.SpeedFastest
			case size < 10<<20:
				i.level = zstd.SpeedDefault
			default:
				i.level = zstd.SpeedBetterCompression
			}
		}
		i.memory = new(uint64)
		*i.memory = uint64(float64(freeMem.Available) * 0.7)
	} else {
		if i.threads == 0 {
			i.threads = byte(min(runtime.NumCPU(), 255))
		} else {
			i.threads = byte(min(runtime.NumCPU(), int(i.threads)))
		}
		if i.memoryPercent {
			i.memoryPercent = false
			*i.memory = uint64(float64(freeMem.Available) / 100 * min(float64(*i.memory), 100))
		}
	}
	if i.memory == nil {
		i.memory = new(uint64)
		*i.memory = 4 << 30 // 4GB
	}
	if isWrite {
		// The window is a power of two no larger than the input needs.
		var n uint64
		if m := *i.memory; m != 0 {
			n = uint64(1) << (bits.Len64(m) - 1)
		}
		if size > 0 {
			n = min(n, uint64(1)<<bits.Len64(size-1))
		}
		*i.memory = min(zstd.MaxWindowSize, max(zstd.MinWindowSize, n))
	} else {
		i.threads = min(i.threads, 4)
		*i.memory = min(1<<63, max(1<<10, *i.memory))
	}
	return nil
}

func (i *zstdInfo) wrapWriter(w io.Writer, size uint64) (io.Writer, io.Closer, error) {
	if i == nil {
		return w, nil, nil
	}
	if err := i.validateParameters(size, true); err != nil {
		return nil, nil, err
	}
	zw, err := zstd.NewWriter(
		w,
		zstd.WithWindowSize(int(*i.memory)),
		zstd.WithEncoderLevel(i.level),
		zstd.WithEncoderConcurrency(int(i.threads)),
	)
	if err != nil {
		return nil, nil, err
	}
	return zw, zw, nil
}

// wrapReader decodes zstd when asked to, or when the input starts with the
// zstd frame magic. Shorter inputs pass through untouched.
func (i *zstdInfo) wrapReader(r io.Reader) (io.Reader, io.Closer, error) {
	br := bufio.NewReader(r)
	if i == nil {
		magic, err := br.Peek(len(zstdMagic))
		if err != nil && err != io.EOF {
			return nil, nil, err
		}
		if !bytes.Equal(magic, zstdMagic) {
			return br, nil, nil
		}
		i = &zstdInfo{
			forceAuto: true,
		}
	}
	if err := i.validateParameters(0, false); err != nil {
		return nil, nil, err
	}
	zr, err := zstd.NewReader(
		br,
		zstd.WithDecoderConcurrency(int(i.threads)),
		zstd.WithDecoderMaxMemory(*i.memory),
	)
	if err != nil {
		return nil, nil, err
	}
	rc := zr.IOReadCloser()
	return rc, rc, nil
}
