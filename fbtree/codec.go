package fbtree

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
)

// Wire formats.
//
// Binary: node count as uint64 little-endian, then a pre-order dump where
// each position is a one-byte marker (0 = present, 1 = absent); a present
// node is marker, raw little-endian payload, left subtree, right subtree.
// Only defined for fixed-size payload types (int32, uint64, float64, arrays
// and structs of such); encoding/binary rejects int and string at runtime.
//
// Text: node count on one line, then the same pre-order walk with
// whitespace-separated tokens and the literal "null" for an absent child.
// Works for any payload with a whitespace-free text round trip.

const (
	markerPresent byte = 0
	markerAbsent  byte = 1

	nullToken = "null"
)

// MarshalBinaryTo writes the binary form of the tree to w.
func (t *Tree[T]) MarshalBinaryTo(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, uint64(t.size)); err != nil {
		return fmt.Errorf("write size: %w", err)
	}
	return marshalBinaryNode(w, t.root)
}

func marshalBinaryNode[T any](w io.Writer, n *node[T]) error {
	if n == nil {
		_, err := w.Write([]byte{markerAbsent})
		return err
	}
	if _, err := w.Write([]byte{markerPresent}); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, n.data); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	if err := marshalBinaryNode(w, n.left); err != nil {
		return err
	}
	return marshalBinaryNode(w, n.right)
}

// UnmarshalBinaryFrom clears the tree and rebuilds it from the binary form.
// On a truncated or unreadable stream the tree is left cleared and the error
// returned. Fullness is not validated on read; call IsFull if the source is
// untrusted.
func (t *Tree[T]) UnmarshalBinaryFrom(r io.Reader) error {
	t.Clear()

	var size uint64
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return fmt.Errorf("read size: %w", err)
	}
	root, err := unmarshalBinaryNode[T](r)
	if err != nil {
		return err
	}
	t.root = root
	t.size = int(size)
	return nil
}

func unmarshalBinaryNode[T any](r io.Reader) (*node[T], error) {
	var marker [1]byte
	if _, err := io.ReadFull(r, marker[:]); err != nil {
		return nil, fmt.Errorf("read marker: %w", err)
	}
	if marker[0] == markerAbsent {
		return nil, nil
	}

	n := &node[T]{}
	if err := binary.Read(r, binary.LittleEndian, &n.data); err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	var err error
	if n.left, err = unmarshalBinaryNode[T](r); err != nil {
		return nil, err
	}
	if n.right, err = unmarshalBinaryNode[T](r); err != nil {
		return nil, err
	}
	return n, nil
}

// MarshalTextTo writes the text form of the tree to w.
func (t *Tree[T]) MarshalTextTo(w io.Writer) error {
	if _, err := fmt.Fprintln(w, t.size); err != nil {
		return fmt.Errorf("write size: %w", err)
	}
	if err := marshalTextNode(w, t.root); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func marshalTextNode[T any](w io.Writer, n *node[T]) error {
	if n == nil {
		_, err := fmt.Fprint(w, nullToken, " ")
		return err
	}
	if _, err := fmt.Fprintf(w, "%v ", n.data); err != nil {
		return err
	}
	if err := marshalTextNode(w, n.left); err != nil {
		return err
	}
	return marshalTextNode(w, n.right)
}

// UnmarshalTextFrom clears the tree and rebuilds it from the text form. On a
// truncated stream or an unparsable token the tree is left cleared and the
// error returned.
func (t *Tree[T]) UnmarshalTextFrom(r io.Reader) error {
	t.Clear()

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	tok, err := nextToken(sc)
	if err != nil {
		return fmt.Errorf("read size: %w", err)
	}
	size, err := strconv.Atoi(tok)
	if err != nil {
		return fmt.Errorf("parse size %q: %w", tok, err)
	}
	if size < 0 {
		return fmt.Errorf("negative size %d", size)
	}
	root, err := unmarshalTextNode[T](sc)
	if err != nil {
		return err
	}
	t.root = root
	t.size = size
	return nil
}

func nextToken(sc *bufio.Scanner) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return sc.Text(), nil
}

func unmarshalTextNode[T comparable](sc *bufio.Scanner) (*node[T], error) {
	tok, err := nextToken(sc)
	if err != nil {
		return nil, err
	}
	if tok == nullToken {
		return nil, nil
	}

	n := &node[T]{}
	if _, err := fmt.Sscan(tok, &n.data); err != nil {
		return nil, fmt.Errorf("parse payload %q: %w", tok, err)
	}
	if n.left, err = unmarshalTextNode[T](sc); err != nil {
		return nil, err
	}
	if n.right, err = unmarshalTextNode[T](sc); err != nil {
		return nil, err
	}
	return n, nil
}
