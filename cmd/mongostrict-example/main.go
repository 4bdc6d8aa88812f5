package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/mongostrict"
	"github.com/dmitrymomot/mongostrict/pkg/config"
	"github.com/dmitrymomot/mongostrict/pkg/logger"
	"github.com/dmitrymomot/mongostrict/pkg/mongo"
)

type appConfig struct {
	Env   string `env:"APP_ENV" envDefault:"development"`
	Mongo mongo.Config
}

type Reservation struct {
	ID         string    `bson:"id" validate:"required,uuid"`
	OnBehalf   string    `bson:"onBehalf" validate:"required"`
	Access     string    `bson:"access" validate:"required,oneof=VIP NORMAL"`
	Accepted   bool      `bson:"accepted"`
	Seats      int       `bson:"seats" validate:"min=1"`
	GroupNames []string  `bson:"groupNames" validate:"dive,required"`
	CreatedAt  time.Time `bson:"createdAt" validate:"required"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(logger.WithEnvironment(cfg.Env, "mongostrict-example"))

	client := mongostrict.NewClient(mongostrict.WithLogger(log))
	if err := client.Connect(ctx, cfg.Mongo); err != nil {
		log.ErrorContext(ctx, "failed to connect", logger.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.WithoutCancel(ctx)); err != nil {
			log.ErrorContext(ctx, "failed to disconnect", logger.Error(err))
		}
	}()

	reservations := mongostrict.NewModel(client, mongostrict.NewSchema[Reservation](
		mongostrict.WithIndexes(mongostrict.Index{
			Keys:   bson.D{{Key: "id", Value: 1}},
			Name:   "reservation_id",
			Unique: true,
		}),
	))

	doc, err := reservations.Insert(ctx, Reservation{
		ID:         uuid.NewString(),
		OnBehalf:   "Karmak",
		Access:     "NORMAL",
		Accepted:   true,
		Seats:      6,
		GroupNames: []string{"Pedrito", "Juanito"},
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		log.ErrorContext(ctx, "insert failed", logger.Error(err))
		return
	}
	log.InfoContext(ctx, "reservation stored", logger.DocumentID(doc.ID))

	found, err := reservations.Find(ctx, bson.M{"onBehalf": "Karmak"})
	if err != nil {
		log.ErrorContext(ctx, "find failed", logger.Error(err))
		return
	}
	log.InfoContext(ctx, "reservations found", logger.Count(int64(len(found))))
}
