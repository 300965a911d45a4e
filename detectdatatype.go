package radtidy

import (
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"

	"github.com/carbocation/pfx"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZ
	DataTypeBZip2
)

var byteCodeSigs = map[DataType][]byte{
	DataTypeGzip:  {0x1f, 0x8b, 0x08},
	DataTypeZip:   {0x50, 0x4b, 0x03, 0x04},
	DataTypeXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	DataTypeZ:     {0x1f, 0x9d},
	DataTypeBZip2: {0x42, 0x5a, 0x68},
}

// DetectDataType checks the leading bytes of a stream against the signatures
// of the compression formats we know how to unwrap. Streams that are too short
// to carry any signature are treated as uncompressed.
func DetectDataType(r io.Reader) (DataType, error) {
	buff := make([]byte, 6)
	n, err := io.ReadFull(r, buff)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return DataTypeNoCompression, nil
	} else if err != nil {
		return DataTypeInvalid, err
	}

Outer:
	for dt, sig := range byteCodeSigs {
		if len(sig) > n {
			continue
		}
		for position := range sig {
			if buff[position] != sig[position] {
				continue Outer
			}
		}
		return dt, nil
	}

	return DataTypeNoCompression, nil
}

// MaybeDecompress wraps src in the matching decompressor, if any. src is
// rewound before being wrapped. Closing the returned reader closes src.
func MaybeDecompress(src ReadSeekCloser) (io.ReadCloser, error) {
	dt, err := DetectDataType(src)
	if err != nil {
		return nil, pfx.Err(err)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, pfx.Err(err)
	}

	switch dt {
	case DataTypeGzip:
		r, err := gzip.NewReader(src)
		if err != nil {
			return nil, err
		}
		return &stackedCloser{Reader: r, closers: []io.Closer{r, src}}, nil
	case DataTypeZip:
		// Only the first entry of an archive is read
		zr := zipstream.NewReader(src)
		if _, err := zr.Next(); err != nil {
			return nil, pfx.Err(err)
		}
		return &stackedCloser{Reader: zr, closers: []io.Closer{src}}, nil
	case DataTypeBZip2:
		return &stackedCloser{Reader: bzip2.NewReader(src), closers: []io.Closer{src}}, nil
	case DataTypeXZ:
		reader, err := xz.NewReader(src, 0)
		if err != nil {
			return nil, err
		}
		return &stackedCloser{Reader: reader, closers: []io.Closer{src}}, nil
	case DataTypeZ:
		r, err := zlib.NewReader(src)
		if err != nil {
			return nil, err
		}
		return &stackedCloser{Reader: r, closers: []io.Closer{r, src}}, nil
	}

	return src, nil
}

// stackedCloser closes the decompressor (when it has a Close) and then the
// underlying source.
type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func (c *stackedCloser) Close() error {
	var first error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}
