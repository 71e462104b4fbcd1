package urlencoded

import (
	"bytes"

	"github.com/minihttp/minihttp/http/status"
)

type Mode uint8

const (
	// Query permits bare keys (they get an empty value), but rejects keys consisting
	// of whitespace only.
	Query Mode = iota
	// Form requires every pair to contain the = sign and a non-empty key.
	Form
)

// Walk splits data by & into key=value pairs, decodes them and yields owned copies
// of keys and values. The value is everything after the first =, so any further = is
// kept as a part of the value. Empty pairs are skipped. Walking stops at the first
// malformed pair or once yield returns an error.
func Walk(data []byte, mode Mode, yield func(key, value string) error) error {
	var buff []byte

	for len(data) > 0 {
		var pair []byte
		if amp := bytes.IndexByte(data, '&'); amp == -1 {
			pair, data = data, nil
		} else {
			pair, data = data[:amp], data[amp+1:]
		}

		if len(pair) == 0 {
			continue
		}

		key, value, hasValue := bytes.Cut(pair, []byte("="))

		var err error
		buff = buff[:0]
		key, buff, err = ExtendedDecode(key, buff)
		if err != nil {
			return err
		}

		keyLen := len(buff)
		value, buff, err = ExtendedDecode(value, buff)
		if err != nil {
			return err
		}

		// if the key was decoded into the buffer, decoding the value might have moved it
		if keyLen > 0 {
			key = buff[:keyLen]
		}

		if err = validate(key, hasValue, mode); err != nil {
			return err
		}

		if err = yield(string(key), string(value)); err != nil {
			return err
		}
	}

	return nil
}

func validate(key []byte, hasValue bool, mode Mode) error {
	switch mode {
	case Form:
		if !hasValue || len(key) == 0 {
			return status.ErrBadForm
		}
	default:
		if len(bytes.TrimSpace(key)) == 0 {
			return status.ErrBadParams
		}
	}

	return nil
}
