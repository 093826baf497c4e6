// Package mongodb implements the domain repositories on MongoDB.
package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "github.com/Luuchoh/Propiedades-premium/pkg/errors"
)

// wrapError maps driver errors onto application error codes.
func wrapError(err error, message string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return apperrors.NewAppError(apperrors.ErrNotFound, message, err)
	case errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err):
		return apperrors.NewAppError(apperrors.ErrTimeout, message, err)
	case mongo.IsNetworkError(err):
		return apperrors.NewAppError(apperrors.ErrUnavailable, message, err)
	case mongo.IsDuplicateKeyError(err):
		return apperrors.NewAppError(apperrors.ErrConflict, message, err)
	default:
		return apperrors.NewAppError(apperrors.ErrInternal, message, err)
	}
}

func notFound(message string) error {
	return apperrors.NewAppError(apperrors.ErrNotFound, message, nil)
}

// parseID converts a hex id. ok is false for anything that is not an ObjectID.
func parseID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
