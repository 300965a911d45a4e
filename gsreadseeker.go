package radtidy

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

type ReadSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// Decorates a Google Storage object handle with io.Reader, io.Seeker and
// io.Closer. Only rewinding to the start of the object is supported, which is
// all the compression sniffing needs. Derived from
// https://github.com/googleapis/google-cloud-go/issues/1124#issuecomment-419070541
type GSReadSeekCloser struct {
	*storage.ObjectHandle
	Context context.Context
	r       *storage.Reader
	pos     int64
}

func (s *GSReadSeekCloser) Read(buf []byte) (int, error) {
	var err error
	if s.r == nil {
		s.r, err = s.NewRangeReader(s.Context, 0, -1)
		if err != nil {
			return 0, err
		}
	}
	n, err := s.r.Read(buf)
	s.pos += int64(n)

	return n, err
}

func (s *GSReadSeekCloser) Seek(offset int64, whence int) (int64, error) {
	if whence == io.SeekCurrent && offset == 0 {
		return s.pos, nil
	}
	if whence != io.SeekStart || offset != 0 {
		return 0, fmt.Errorf("GSReadSeekCloser can only seek to the start of the object (got offset %d whence %d)", offset, whence)
	}

	// Seeking is not actually possible. As a proxy, we close the current
	// connection so the next Read opens a fresh one.
	if s.r != nil {
		s.r.Close()
		s.r = nil
	}
	s.pos = 0

	return 0, nil
}

func (s *GSReadSeekCloser) Close() error {
	if s.r == nil {
		return nil
	}
	err := s.r.Close()
	s.r = nil

	return err
}

// OpenSource opens a local file or, if a storage client is provided and the
// path begins with gs://, an object in Google Storage. Local paths beginning
// with ~/ are expanded.
func OpenSource(path string, client *storage.Client) (ReadSeekCloser, error) {
	if strings.HasPrefix(path, "gs://") {
		if client == nil {
			return nil, fmt.Errorf("%s: a Google Storage client is required to read gs:// paths", path)
		}

		// Detect the bucket and the path to the actual file
		pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
		if len(pathParts) != 2 {
			return nil, fmt.Errorf("Tried to split your google storage path into 2 parts, but got %d: %v", len(pathParts), pathParts)
		}

		handle := client.Bucket(pathParts[0]).Object(pathParts[1])
		wrappedHandle := &GSReadSeekCloser{
			ObjectHandle: handle,
			Context:      context.Background(),
		}

		// Fail early on objects that do not exist
		if _, err := wrappedHandle.ObjectHandle.Attrs(wrappedHandle.Context); err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %s", path, err))
		}

		return wrappedHandle, nil
	}

	f, err := os.Open(ExpandHome(path))
	if err != nil {
		return nil, err
	}

	return f, nil
}
