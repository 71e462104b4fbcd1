package server

import (
	"context"

	"github.com/minihttp/minihttp/transport"
)

// Serve feeds the driver with everything received from the client until the peer
// goes away, a read fails or times out, a response can't be written or ctx is done.
// The returned error is the one that terminated the connection.
func Serve(ctx context.Context, client transport.Client, driver *Driver) error {
	for ctx.Err() == nil {
		data, err := client.Read()
		if len(data) > 0 {
			if ferr := driver.Feed(data); ferr != nil {
				return ferr
			}
		}

		if err != nil {
			return err
		}
	}

	return ctx.Err()
}
