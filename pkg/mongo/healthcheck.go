package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Pinger is implemented by *mongo.Client.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// Healthcheck returns a health check function suitable for readiness or
// liveness probes. It performs a lightweight Ping against the server.
func Healthcheck(p Pinger) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := p.Ping(ctx, nil); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
