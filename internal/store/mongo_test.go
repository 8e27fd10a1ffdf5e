package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFromBSONUnwrapsDriverTypes(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	doc := fromBSON(bson.M{
		"_id":       oid,
		"title":     "Standard Package",
		"price":     int32(999),
		"features":  primitive.A{"Online Gallery", "One Photographer"},
		"meta":      bson.D{{Key: "source", Value: "seed"}},
		"createdAt": primitive.NewDateTimeFromTime(created),
	})

	assert.Equal(t, oid.Hex(), doc.ID)
	assert.NotContains(t, doc.Fields, "_id")
	assert.InDelta(t, 999, doc.Fields.Float("price", 0), 0.0001)
	assert.Equal(t, []string{"Online Gallery", "One Photographer"}, doc.Fields.Strings("features"))
	assert.Equal(t, map[string]any{"source": "seed"}, doc.Fields["meta"])
	assert.True(t, created.Equal(doc.Fields["createdAt"].(time.Time)))
}

func TestFromBSONStringID(t *testing.T) {
	doc := fromBSON(bson.M{"_id": "legacy-1", "label": "Office"})
	assert.Equal(t, "legacy-1", doc.ID)
	assert.Equal(t, "Office", doc.Fields.String("label", ""))
}
