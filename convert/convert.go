package convert

import (
	"bufio"
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/zochwar/n64swap/rom"
)

var ErrUnrecognizedFormat = errors.New("rom header does not match any known format")
var ErrTruncatedHeader = errors.New("input ended before a full rom header")

var gzipMagic = []byte{0x1f, 0x8b}

// Options controls how the destination encoding is resolved. An explicit
// Target wins, then the extension of OutputName, then BigEndian.
type Options struct {
	Target     *rom.Encoding
	OutputName string
}

// Conversion holds a stream whose header has been consumed and identified,
// positioned at the start of the body.
type Conversion struct {
	source rom.Encoding
	target rom.Encoding
	input  *bufio.Reader
}

type Result struct {
	Source  rom.Encoding
	Target  rom.Encoding
	Words   int64
	Dropped int
}

func resolveTarget(opts Options) rom.Encoding {
	if opts.Target != nil {
		return *opts.Target
	}

	if ext, ok := rom.DetectExt(opts.OutputName); ok {
		if encoding, ok := rom.GuessType(ext); ok {
			return encoding
		}
	}

	return rom.BigEndian
}

// Begin reads and identifies the rom header from r and resolves the
// destination encoding. Gzip compressed input is decompressed
// transparently. The caller owns r and any output stream; when the
// result reports NoOp no output should be opened at all.
func Begin(r io.Reader, opts Options) (*Conversion, error) {
	var input = bufio.NewReader(r)

	magic, err := input.Peek(2)

	if err == nil && bytes.Equal(magic, gzipMagic) {
		gz, err := gzip.NewReader(input)

		if err != nil {
			return nil, errors.Wrap(err, "opening gzip input")
		}

		klog.V(1).Info("input is gzip compressed")
		input = bufio.NewReader(gz)
	}

	var header [4]byte

	if _, err := io.ReadFull(input, header[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrTruncatedHeader
		}

		return nil, errors.Wrap(err, "reading rom header")
	}

	source, ok := rom.IdentifyHeader(header[:])

	if !ok {
		return nil, ErrUnrecognizedFormat
	}

	var target = resolveTarget(opts)

	klog.V(1).Infof("source %v target %v", source, target)

	return &Conversion{
		source: source,
		target: target,
		input:  input,
	}, nil
}

func (conversion *Conversion) Source() rom.Encoding {
	return conversion.source
}

func (conversion *Conversion) Target() rom.Encoding {
	return conversion.target
}

// NoOp reports whether the stream is already in the destination encoding.
func (conversion *Conversion) NoOp() bool {
	return conversion.source == conversion.target
}

// Run writes the destination header to w, then reorders the body into w
// one word at a time. The original header bytes are discarded, never
// transformed. Trailing bytes short of a full word are dropped and
// counted in the result.
func (conversion *Conversion) Run(w io.Writer) (Result, error) {
	var result = Result{
		Source: conversion.source,
		Target: conversion.target,
	}

	if _, err := w.Write(conversion.target.Signature()); err != nil {
		return result, errors.Wrap(err, "writing rom header")
	}

	var swap = rom.Swapper(conversion.source, conversion.target)
	var word [4]byte

	for {
		n, err := io.ReadFull(conversion.input, word[:])

		if err == io.EOF {
			break
		} else if err == io.ErrUnexpectedEOF {
			result.Dropped = n
			klog.V(1).Infof("dropped %d trailing bytes", n)
			break
		} else if err != nil {
			return result, errors.Wrap(err, "reading rom body")
		}

		swap(word[:])

		if _, err := w.Write(word[:]); err != nil {
			return result, errors.Wrap(err, "writing rom body")
		}

		result.Words++
	}

	return result, nil
}
