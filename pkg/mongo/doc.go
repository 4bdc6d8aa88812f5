// Package mongo opens MongoDB driver clients from environment-driven
// configuration.
//
// It wraps the official driver (go.mongodb.org/mongo-driver/v2) with a retry
// loop that verifies every new client with a Ping before handing it out, and
// exposes a ping-based health check. mongostrict.Client uses it to open its
// connection; it can also be used directly.
//
// # Usage
//
//	var cfg mongo.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	client, err := mongo.New(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Disconnect(context.Background())
//
//	health := mongo.Healthcheck(client)
//	if err := health(ctx); err != nil {
//		log.Println("mongo is unavailable:", err)
//	}
//
// # Configuration
//
// Config fields are tagged for github.com/caarlos0/env. MONGODB_URL is
// required; everything else has a default tuned for small deployments.
//
// # Error Handling
//
// Failures are joined with ErrFailedToConnectToMongo or ErrHealthcheckFailed,
// so callers can branch with errors.Is while the driver error stays in the
// chain.
package mongo
