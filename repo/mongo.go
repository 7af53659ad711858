package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperr "github.com/phillip/volunteerease-go/apperr"
	models "github.com/phillip/volunteerease-go/models"
)

const (
	usersCollection      = "users"
	eventsCollection     = "events"
	volunteersCollection = "volunteers"
)

// ---------------- ACCOUNTS ----------------

type MongoAccounts struct {
	db *mongo.Database
}

func NewMongoAccounts(db *mongo.Database) *MongoAccounts {
	return &MongoAccounts{db: db}
}

func (r *MongoAccounts) Put(ctx context.Context, acct models.Account) error {
	col := r.db.Collection(usersCollection)
	opts := options.Replace().SetUpsert(true)
	if _, err := col.ReplaceOne(ctx, bson.M{"_id": acct.ID}, acct, opts); err != nil {
		return apperr.Wrap(apperr.RemoteWrite, "could not write account record", err)
	}
	return nil
}

func (r *MongoAccounts) Get(ctx context.Context, id string) (models.Account, error) {
	var acct models.Account
	err := r.db.Collection(usersCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&acct)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Account{}, ErrNotFound
	}
	if err != nil {
		return models.Account{}, apperr.Wrap(apperr.RemoteRead, "could not read account record", err)
	}
	return acct, nil
}

// ---------------- EVENTS ----------------

type MongoEvents struct {
	db *mongo.Database
}

func NewMongoEvents(db *mongo.Database) *MongoEvents {
	return &MongoEvents{db: db}
}

func (r *MongoEvents) Insert(ctx context.Context, ev models.Event) (string, error) {
	if ev.ID.IsZero() {
		ev.ID = primitive.NewObjectID()
	}
	col := r.db.Collection(eventsCollection)
	if _, err := col.InsertOne(ctx, ev); err != nil {
		return "", apperr.Wrap(apperr.RemoteWrite, "could not create event", err)
	}
	return ev.ID.Hex(), nil
}

func (r *MongoEvents) List(ctx context.Context) ([]models.Event, error) {
	col := r.db.Collection(eventsCollection)

	// created_at is RFC3339, so a lexicographic sort is a time sort
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperr.Wrap(apperr.RemoteRead, "could not fetch events", err)
	}

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, apperr.Wrap(apperr.RemoteRead, "could not decode events", err)
	}
	return events, nil
}

func (r *MongoEvents) Get(ctx context.Context, id string) (models.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Event{}, ErrNotFound
	}
	var ev models.Event
	err = r.db.Collection(eventsCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&ev)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Event{}, ErrNotFound
	}
	if err != nil {
		return models.Event{}, apperr.Wrap(apperr.RemoteRead, "could not read event", err)
	}
	return ev, nil
}

// ---------------- VOLUNTEERS ----------------

type MongoVolunteers struct {
	db *mongo.Database
}

func NewMongoVolunteers(db *mongo.Database) *MongoVolunteers {
	return &MongoVolunteers{db: db}
}

func (r *MongoVolunteers) Insert(ctx context.Context, app models.VolunteerApplication) (string, error) {
	if app.ID.IsZero() {
		app.ID = primitive.NewObjectID()
	}
	col := r.db.Collection(volunteersCollection)
	if _, err := col.InsertOne(ctx, app); err != nil {
		return "", apperr.Wrap(apperr.RemoteWrite, "could not submit application", err)
	}
	return app.ID.Hex(), nil
}
