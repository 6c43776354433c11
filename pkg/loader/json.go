package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// jsonDecoder walks the token stream of a single JSON document so object
// members come out in the order they were written.
type jsonDecoder struct {
	*json.Decoder
}

func decodeJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	d := &jsonDecoder{Decoder: dec}

	t, err := d.Token()
	if errors.Is(err, io.EOF) {
		return Value{}, ErrEmptyInput
	}
	if err != nil {
		return Value{}, jsonError(data, d.InputOffset(), err)
	}
	v, err := d.value(t)
	if err != nil {
		return Value{}, jsonError(data, d.InputOffset(), err)
	}

	// Anything but EOF after the first value is trailing data.
	if t, err := d.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return Value{}, jsonError(data, d.InputOffset(), err)
		}
		return Value{}, jsonError(data, d.InputOffset(), fmt.Errorf("unexpected %v after top-level value", t))
	}
	return v, nil
}

// token reads the next token where the document cannot legally end.
func (d *jsonDecoder) token() (json.Token, error) {
	t, err := d.Token()
	if errors.Is(err, io.EOF) {
		return nil, io.ErrUnexpectedEOF
	}
	return t, err
}

func (d *jsonDecoder) value(t json.Token) (Value, error) {
	switch tv := t.(type) {
	case json.Delim:
		switch tv {
		case '{':
			return d.object()
		case '[':
			return d.array()
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", rune(tv))
		}
	case string:
		return String(tv), nil
	case json.Number:
		return Number(tv.String()), nil
	case bool:
		return Bool(tv), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", t)
	}
}

func (d *jsonDecoder) object() (Value, error) {
	var members []Member
	for d.More() {
		t, err := d.token()
		if err != nil {
			return Value{}, err
		}
		key, ok := t.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key %v is not a string", t)
		}
		t, err = d.token()
		if err != nil {
			return Value{}, err
		}
		val, err := d.value(t)
		if err != nil {
			return Value{}, err
		}
		members = append(members, Member{Key: key, Value: val})
	}
	if err := d.closing('}'); err != nil {
		return Value{}, err
	}
	return Object(members...), nil
}

func (d *jsonDecoder) array() (Value, error) {
	var items []Value
	for d.More() {
		t, err := d.token()
		if err != nil {
			return Value{}, err
		}
		val, err := d.value(t)
		if err != nil {
			return Value{}, err
		}
		items = append(items, val)
	}
	if err := d.closing(']'); err != nil {
		return Value{}, err
	}
	return Array(items...), nil
}

func (d *jsonDecoder) closing(want json.Delim) error {
	t, err := d.token()
	if err != nil {
		return err
	}
	if got, ok := t.(json.Delim); !ok || got != want {
		return fmt.Errorf("expected %q, found %v", rune(want), t)
	}
	return nil
}

// jsonError converts a decoder failure into a *SyntaxError positioned at the
// decoder's input offset. json.SyntaxError offsets from Decode are relative
// to the value being read, so the stream offset is used instead.
func jsonError(data []byte, offset int64, err error) error {
	msg := err.Error()
	if errors.Is(err, io.ErrUnexpectedEOF) {
		msg = "unexpected end of input"
		offset = int64(len(data))
	}
	line, col := position(data, offset)
	return &SyntaxError{Format: FormatJSON, Offset: offset, Line: line, Column: col, Msg: msg}
}

// position maps a byte offset to a 1-based line and column.
func position(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	if offset < 0 {
		offset = 0
	}
	head := data[:offset]
	line := bytes.Count(head, []byte{'\n'}) + 1
	col := len(head) - bytes.LastIndexByte(head, '\n')
	return line, col
}
