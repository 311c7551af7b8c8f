package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// containsIgnoreCase builds a case-insensitive substring match. The value is
// quoted so user input cannot inject regex metacharacters.
func containsIgnoreCase(value string) bson.M {
	return bson.M{"$regex": primitive.Regex{
		Pattern: regexp.QuoteMeta(value),
		Options: "i",
	}}
}

// applyTimeBounds adds the slot-time conditions to filter. With both bounds
// present it matches every record overlapping [start, end); with a single
// bound it matches records whose slot contains that instant.
func applyTimeBounds(filter bson.M, start, end string) {
	switch {
	case start != "" && end != "":
		filter["start_time"] = bson.M{"$lt": end}
		filter["end_time"] = bson.M{"$gt": start}
	case start != "":
		filter["start_time"] = bson.M{"$lte": start}
		filter["end_time"] = bson.M{"$gt": start}
	case end != "":
		filter["start_time"] = bson.M{"$lte": end}
		filter["end_time"] = bson.M{"$gt": end}
	}
}
