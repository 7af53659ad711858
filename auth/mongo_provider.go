package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	apperr "github.com/phillip/volunteerease-go/apperr"
)

const (
	credentialsCollection = "credentials"
	sessionsCollection    = "sessions"
)

type credentialDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	DisplayName  string             `bson:"display_name,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
}

type sessionDoc struct {
	ID           string    `bson:"_id"`
	CredentialID string    `bson:"credential_id"`
	CreatedAt    time.Time `bson:"created_at"`
}

// MongoProvider implements IdentityProvider on top of two collections:
// bcrypt-hashed credentials and uuid-keyed provider sessions.
type MongoProvider struct {
	db *mongo.Database
}

func NewMongoProvider(db *mongo.Database) *MongoProvider {
	return &MongoProvider{db: db}
}

func (p *MongoProvider) Create(ctx context.Context, email, password string) (Credential, string, error) {
	col := p.db.Collection(credentialsCollection)

	// one credential per email
	err := col.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return Credential{}, "", apperr.New(apperr.Auth, "email already in use")
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return Credential{}, "", apperr.Wrap(apperr.Auth, "could not check email", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Credential{}, "", apperr.Wrap(apperr.Auth, "could not hash password", err)
	}

	doc := credentialDoc{
		ID:           primitive.NewObjectID(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := col.InsertOne(ctx, doc); err != nil {
		return Credential{}, "", apperr.Wrap(apperr.Auth, "could not create credential", err)
	}

	cred := Credential{ID: doc.ID.Hex(), Email: email}
	sid, err := p.openSession(ctx, cred.ID)
	if err != nil {
		return Credential{}, "", err
	}
	return cred, sid, nil
}

func (p *MongoProvider) Verify(ctx context.Context, email, password string) (Credential, string, error) {
	var doc credentialDoc
	err := p.db.Collection(credentialsCollection).
		FindOne(ctx, bson.M{"email": email}).
		Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Credential{}, "", apperr.New(apperr.Auth, "invalid credentials")
	}
	if err != nil {
		return Credential{}, "", apperr.Wrap(apperr.Auth, "could not read credential", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(doc.PasswordHash), []byte(password)) != nil {
		return Credential{}, "", apperr.New(apperr.Auth, "invalid credentials")
	}

	cred := Credential{ID: doc.ID.Hex(), Email: doc.Email, DisplayName: doc.DisplayName}
	sid, err := p.openSession(ctx, cred.ID)
	if err != nil {
		return Credential{}, "", err
	}
	return cred, sid, nil
}

func (p *MongoProvider) SignOut(ctx context.Context, sessionID string) error {
	_, err := p.db.Collection(sessionsCollection).DeleteOne(ctx, bson.M{"_id": sessionID})
	if err != nil {
		return apperr.Wrap(apperr.Auth, "could not sign out", err)
	}
	return nil
}

func (p *MongoProvider) UpdateDisplayName(ctx context.Context, credentialID, name string) error {
	oid, err := primitive.ObjectIDFromHex(credentialID)
	if err != nil {
		return apperr.Wrap(apperr.Auth, "invalid credential id", err)
	}
	_, err = p.db.Collection(credentialsCollection).
		UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"display_name": name}})
	if err != nil {
		return apperr.Wrap(apperr.Auth, "could not update display name", err)
	}
	return nil
}

func (p *MongoProvider) Delete(ctx context.Context, credentialID string) error {
	oid, err := primitive.ObjectIDFromHex(credentialID)
	if err != nil {
		return apperr.Wrap(apperr.Auth, "invalid credential id", err)
	}
	if _, err := p.db.Collection(credentialsCollection).DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return apperr.Wrap(apperr.Auth, "could not delete credential", err)
	}
	_, err = p.db.Collection(sessionsCollection).DeleteMany(ctx, bson.M{"credential_id": credentialID})
	if err != nil {
		return apperr.Wrap(apperr.Auth, "could not delete sessions", err)
	}
	return nil
}

func (p *MongoProvider) Active(ctx context.Context, sessionID string) (bool, error) {
	err := p.db.Collection(sessionsCollection).FindOne(ctx, bson.M{"_id": sessionID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, apperr.Wrap(apperr.RemoteRead, "could not check session", err)
	}
	return true, nil
}

func (p *MongoProvider) openSession(ctx context.Context, credentialID string) (string, error) {
	doc := sessionDoc{
		ID:           uuid.NewString(),
		CredentialID: credentialID,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := p.db.Collection(sessionsCollection).InsertOne(ctx, doc); err != nil {
		return "", apperr.Wrap(apperr.Auth, "could not open session", err)
	}
	return doc.ID, nil
}
