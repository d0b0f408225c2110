/*
 * ckpt.go, part of gocsa.
 *
 * Copyright 2026 The gocsa authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package ckpt

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"compress/lzw"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

const (
	lzwLitwidth int = 8
)

//Writer writes a checkpoint file.
type Writer struct {
	f         *os.File
	h         io.WriteCloser
	b         *bufio.Writer
	nrecords  int
	written   int
	filename  string
	writeable bool
}

//NewWriter creates the checkpoint file name, which will contain nrecords records, and writes
//header to it. The compression is chosen from the extension of name: ".gz" (gzip), ".flate",
//".lzw", anything else is compressed with zstd. header can be nil.
func NewWriter(name string, nrecords int, header map[string]string) (*Writer, error) {
	W := new(Writer)
	W.filename = name
	var err error
	W.f, err = os.Create(name)
	if err != nil {
		return nil, err
	}
	W.h, err = newCompressor(W.f, name)
	if err != nil {
		W.f.Close()
		return nil, Error{"Can't set up compression: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	W.b = bufio.NewWriter(W.h)
	W.nrecords = nrecords
	W.writeable = true
	if header != nil {
		keys := make([]string, 0, len(header))
		for k := range header {
			if strings.ContainsAny(k, "=\n") || strings.Contains(header[k], "\n") || strings.HasPrefix(k, "**") {
				W.Close()
				return nil, Error{fmt.Sprintf("Invalid header entry %q", k), name, []string{"NewWriter"}, true}
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(W.b, "%s=%s\n", k, header[k])
		}
	}
	fmt.Fprintf(W.b, "** %d\n", nrecords)
	return W, nil
}

func newCompressor(w io.Writer, name string) (io.WriteCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case ".flate":
		return flate.NewWriter(w, flate.BestCompression)
	case ".lzw":
		return lzw.NewWriter(w, lzw.MSB, lzwLitwidth), nil
	}
	return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
}

//Len returns the number of records the file is to contain.
func (W *Writer) Len() int {
	return W.nrecords
}

//WNext writes the next record. A record is one line of text.
func (W *Writer) WNext(record string) error {
	if !W.writeable {
		return Error{UnIniWrite, W.filename, []string{"WNext"}, true}
	}
	if strings.Contains(record, "\n") || strings.HasPrefix(record, "**") {
		return Error{fmt.Sprintf("Invalid record %q", record), W.filename, []string{"WNext"}, true}
	}
	if W.written >= W.nrecords {
		return Error{fmt.Sprintf("Only %d records declared", W.nrecords), W.filename, []string{"WNext"}, true}
	}
	if _, err := W.b.WriteString(record + "\n"); err != nil {
		return Error{err.Error(), W.filename, []string{"WNext"}, true}
	}
	W.written++
	return nil
}

//Close flushes and closes the file. It is an error to close it before all declared records
//have been written, though the file is closed anyway.
func (W *Writer) Close() error {
	if W == nil || !W.writeable {
		return nil
	}
	W.writeable = false
	err := W.b.Flush()
	if err2 := W.h.Close(); err == nil {
		err = err2
	}
	if err2 := W.f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return Error{err.Error(), W.filename, []string{"Close"}, true}
	}
	if W.written != W.nrecords {
		return Error{fmt.Sprintf("%d records written, %d declared", W.written, W.nrecords), W.filename, []string{"Close"}, true}
	}
	return nil
}

//Reader reads a checkpoint file.
type Reader struct {
	f        *os.File
	z        io.ReadCloser
	h        *bufio.Reader
	nrecords int
	read     int
	filename string
	readable bool
}

//zstd.Decoder's Close returns nothing, so it doesn't implement io.ReadCloser.
type zstdql struct {
	*zstd.Decoder
}

//Close Closes the decoder. It can not be used after this call
func (s zstdql) Close() error {
	s.Decoder.Close()
	return nil
}

func newDecompressor(r io.Reader, name string) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return gzip.NewReader(r)
	case ".flate":
		return flate.NewReader(r), nil
	case ".lzw":
		return lzw.NewReader(r, lzw.MSB, lzwLitwidth), nil
	}
	d, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return zstdql{d}, nil
}

//New opens the checkpoint file name for reading, and returns a pointer to the
//handle, a map with the header (empty if the file has no header) and error or nil.
func New(name string) (*Reader, map[string]string, error) {
	R := new(Reader)
	R.filename = name
	var err error
	R.f, err = os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	R.z, err = newDecompressor(bufio.NewReader(R.f), name)
	if err != nil {
		R.f.Close()
		return nil, nil, Error{"Can't read header " + err.Error(), name, []string{"New"}, true}
	}
	R.h = bufio.NewReader(R.z)
	m := make(map[string]string)
	for {
		str, err := R.h.ReadString('\n')
		if err != nil {
			R.Close()
			return nil, nil, Error{"Can't read header: " + err.Error(), name, []string{"New"}, true}
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.HasPrefix(str, "**") {
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(str, "**")))
			if err != nil {
				R.Close()
				return nil, nil, Error{fmt.Sprintf("Can't read record number from '%s'", str), name, []string{"New"}, true}
			}
			R.nrecords = n
			break
		}
		k, v, ok := strings.Cut(str, "=")
		if !ok {
			R.Close()
			return nil, nil, Error{fmt.Sprintf("Malformed header line '%s'", str), name, []string{"New"}, true}
		}
		m[k] = v
	}
	R.readable = true
	return R, m, nil
}

//Len returns the number of records in the file.
func (R *Reader) Len() int {
	return R.nrecords
}

//Readable returns true if the handle is readable (if it is possible to call Next on it)
func (R *Reader) Readable() bool {
	return R.readable
}

//Next returns the next record. After the last record, it returns io.EOF.
func (R *Reader) Next() (string, error) {
	if !R.readable {
		return "", Error{UnIniRead, R.filename, []string{"Next"}, true}
	}
	if R.read >= R.nrecords {
		return "", io.EOF
	}
	str, err := R.h.ReadString('\n')
	if err != nil {
		return "", Error{fmt.Sprintf("%s %d of %d: %s", ReadError, R.read+1, R.nrecords, err.Error()), R.filename, []string{"Next"}, true}
	}
	R.read++
	return strings.TrimSuffix(str, "\n"), nil
}

//Close closes the file. The handle can not be used after this call.
func (R *Reader) Close() error {
	if R == nil {
		return nil
	}
	R.readable = false
	var err error
	if R.z != nil {
		err = R.z.Close()
	}
	if err2 := R.f.Close(); err == nil {
		err = err2
	}
	return err
}

//Errors

//Error is the error type of this package. It has the same methods
//as csa.Error, so it can be decorated the same way.
type Error struct {
	message  string
	filename string //the checkpoint file that has problems
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("checkpoint file %s error: %s", err.filename, err.message)
}

//Decorate returns the callers the error went through, with deco added if not empty.
func (err Error) Decorate(deco string) []string {
	ret := make([]string, len(err.deco), len(err.deco)+1)
	copy(ret, err.deco)
	if deco != "" {
		ret = append(ret, deco)
	}
	return ret
}

//FileName returns the file to which the error was associated
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	UnIniRead  = "Checkpoint uninitialized to read"
	UnIniWrite = "Checkpoint uninitialized to write"
	ReadError  = "Error reading record"
)
