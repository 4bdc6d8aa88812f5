// Package mongostrict adds schema validation to MongoDB collection
// operations.
//
// A Schema describes one document type: struct tags evaluated by
// go-playground/validator, optional custom checks, and storage options such
// as the version key, the collection name and indexes. A Model binds a schema
// to a collection and exposes CRUD operations that validate payloads before
// they are written and documents after they are read.
//
// Every stored document is normalized to a Doc: the payload inlined next to
// an "_id" ObjectID and, unless disabled, a "__v" counter that starts at 0
// and is incremented by every update.
//
// Basic Usage:
//
//	type Reservation struct {
//		OnBehalf string `bson:"onBehalf" validate:"required,uuid"`
//		Access   string `bson:"access" validate:"required,oneof=VIP NORMAL"`
//	}
//
//	client := mongostrict.NewClient(mongostrict.WithLogger(log))
//	if err := client.Connect(ctx, cfg); err != nil {
//		return err
//	}
//	defer client.Disconnect(context.Background())
//
//	reservations := mongostrict.NewModel(client, mongostrict.NewSchema[Reservation]())
//
//	doc, err := reservations.Insert(ctx, Reservation{OnBehalf: id, Access: "VIP"})
//	found, err := reservations.Find(ctx, bson.M{"access": "VIP"})
//	_, err = reservations.UpdateByID(ctx, doc.ID, mongostrict.Set(bson.M{"access": "NORMAL"}))
//
// The collection name is derived from the schema name: "Reservation" is
// stored in "reservations", "HTTPRequestLog" in "http_request_logs".
//
// Errors:
//
// Every Model method returns failures as *OperationError, naming the
// operation (find, insert, update, delete) and wrapping the cause. Failures
// while preparing the collection are nested as collection or index
// operations. Validation failures unwrap to validator.ValidationErrors:
//
//	_, err := reservations.Insert(ctx, Reservation{})
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		for _, field := range verrs.Fields() {
//			...
//		}
//	}
//
// Lookups that match nothing return a nil document and a nil error.
package mongostrict
