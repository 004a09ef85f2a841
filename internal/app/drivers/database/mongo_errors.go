package database

import (
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/mongo"
)

var duplicateKeyIndexPattern = regexp.MustCompile(constvars.RegexMongoDuplicateKeyIndex)

// AsDuplicateKeyError converts a unique index violation into
// *exceptions.DuplicateKeyError. Any other error is returned as nil.
func AsDuplicateKeyError(err error) *exceptions.DuplicateKeyError {
	if err == nil || !mongo.IsDuplicateKeyError(err) {
		return nil
	}
	return exceptions.NewDuplicateKeyError(duplicateKeyIndex(err), err)
}

func duplicateKeyIndex(err error) string {
	var writeException mongo.WriteException
	if errors.As(err, &writeException) {
		for _, writeErr := range writeException.WriteErrors {
			if match := duplicateKeyIndexPattern.FindStringSubmatch(writeErr.Message); len(match) == 2 {
				return match[1]
			}
		}
	}
	if match := duplicateKeyIndexPattern.FindStringSubmatch(err.Error()); len(match) == 2 {
		return match[1]
	}
	return ""
}
