package logbus

import (
	"io"
	"unicode/utf8"
)

// readChunkSize is the maximum number of bytes read per Publish (spec
// §4.7: "Reads up to 1024 bytes at a time").
const readChunkSize = 1024

// Forward is the log forwarder task (spec §4.7 Writer): one goroutine per
// container, reading from r until EOF and broadcasting each
// successfully-read valid-UTF-8 chunk on b. Invalid UTF-8 reads are
// dropped silently (acknowledged lossiness in spec §4.7). Forward returns
// once r reaches EOF or a read error occurs; it does not close b, since
// the broadcaster's lifetime is tied to the container record, not to the
// pipe.
func Forward(r io.Reader, b *Broadcaster) {
	buf := make([]byte, readChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			if utf8.Valid(chunk) {
				b.Publish(string(chunk))
			}
			// invalid UTF-8: dropped silently, per spec
		}
		if err != nil {
			return
		}
	}
}
