package service

import (
	"context"
	"time"

	usermodel "github.com/ankit-singh26/Whiteboard-Project/module/user/model"
	"github.com/ankit-singh26/Whiteboard-Project/tools/errs"
	"github.com/ankit-singh26/Whiteboard-Project/tools/ids"
	jwtlib "github.com/ankit-singh26/Whiteboard-Project/tools/security"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type SignupParams struct {
	Username string
	Email    string
	Password string
}

// AuthResult is what both signup and login hand back to the HTTP layer.
type AuthResult struct {
	Token    string
	Username string
	UserID   string
}

func Signup(ctx context.Context, db *mongo.Database, opts jwtlib.Options, in SignupParams) (AuthResult, error) {
	users := db.Collection(usermodel.UserCollection)

	err := users.FindOne(ctx, bson.M{"email": in.Email}).Err()
	if err == nil {
		return AuthResult{}, errs.ErrUserExists.Wrap()
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return AuthResult{}, errs.Wrap(err)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return AuthResult{}, errs.Wrap(err)
	}

	now := time.Now()
	u := usermodel.User{
		UserID:     ids.GenerateString(),
		Username:   in.Username,
		Email:      in.Email,
		Password:   hash,
		CreateTime: now,
		UpdateTime: now,
	}
	if _, err := users.InsertOne(ctx, u); err != nil {
		return AuthResult{}, errs.Wrap(err)
	}

	token, _, err := jwtlib.Generate(opts, u.UserID, u.Username)
	if err != nil {
		return AuthResult{}, errs.Wrap(err)
	}
	return AuthResult{Token: token, Username: u.Username, UserID: u.UserID}, nil
}

// Login verifies credentials and issues a fresh token. A missing account
// and a wrong password produce the same error so the response does not leak
// which emails exist.
func Login(ctx context.Context, db *mongo.Database, opts jwtlib.Options, email, password string) (AuthResult, error) {
	users := db.Collection(usermodel.UserCollection)

	var u usermodel.User
	err := users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return AuthResult{}, errs.ErrInvalidCredentials.Wrap()
	}
	if err != nil {
		return AuthResult{}, errs.Wrap(err)
	}

	if !MatchPassword(u.Password, password) {
		return AuthResult{}, errs.ErrInvalidCredentials.Wrap()
	}

	token, _, err := jwtlib.Generate(opts, u.UserID, u.Username)
	if err != nil {
		return AuthResult{}, errs.Wrap(err)
	}
	return AuthResult{Token: token, Username: u.Username, UserID: u.UserID}, nil
}

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func MatchPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
