package mongo

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"inventory-management/internal/item"
	repo "inventory-management/internal/item/repository"
)

func TestBuildListFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, buildListFilter(repo.ListItemsOptions{}))

	archived := false
	f := buildListFilter(repo.ListItemsOptions{IsArchived: &archived, Search: "a.b"})
	assert.Equal(t, false, f["isArchived"])
	re := primitive.Regex{Pattern: `a\.b`, Options: "i"}
	assert.Equal(t, bson.A{bson.M{"code": re}, bson.M{"name": re}}, f["$or"])
}

func TestBuildConflictFilter(t *testing.T) {
	_, ok := buildConflictFilter(repo.FindConflictsOptions{})
	assert.False(t, ok)

	oid := primitive.NewObjectID()
	f, ok := buildConflictFilter(repo.FindConflictsOptions{Name: "Apple", ExcludeID: oid.Hex()})
	assert.True(t, ok)
	assert.Equal(t, bson.A{bson.M{"name": "Apple"}}, f["$or"])
	assert.Equal(t, bson.M{"$ne": oid}, f["_id"])
}

func TestDuplicateField(t *testing.T) {
	dupErr := func(index string) error {
		return mongo.WriteException{WriteErrors: []mongo.WriteError{{
			Code:    11000,
			Message: "E11000 duplicate key error collection: inventory.items index: " + index + " dup key",
		}}}
	}

	field, ok := duplicateField(dupErr(codeIndexName))
	assert.True(t, ok)
	assert.Equal(t, item.FieldCode, field)

	field, ok = duplicateField(dupErr(nameIndexName))
	assert.True(t, ok)
	assert.Equal(t, item.FieldName, field)

	_, ok = duplicateField(errors.New("boom"))
	assert.False(t, ok)
}

func TestDuplicateFieldIgnoresValue(t *testing.T) {
	err := mongo.WriteException{WriteErrors: []mongo.WriteError{{
		Code:    11000,
		Message: `E11000 duplicate key error collection: inventory.items index: name_unique dup key: { name: "x code_unique" }`,
	}}}

	field, ok := duplicateField(err)
	assert.True(t, ok)
	assert.Equal(t, item.FieldName, field)
}

func TestDuplicateFieldFromKeyPattern(t *testing.T) {
	raw, err := bson.Marshal(bson.D{
		{Key: "code", Value: 11000},
		{Key: "keyPattern", Value: bson.D{{Key: "code", Value: 1}}},
		{Key: "keyValue", Value: bson.D{{Key: "code", Value: "name_unique"}}},
	})
	require.NoError(t, err)

	cmdErr := mongo.CommandError{
		Code:    11000,
		Message: "E11000 duplicate key error",
		Raw:     raw,
	}

	field, ok := duplicateField(cmdErr)
	require.True(t, ok)
	assert.Equal(t, item.FieldCode, field)
}

func TestItemDocToItem(t *testing.T) {
	now := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	d := itemDoc{
		ID:        primitive.NewObjectID(),
		Name:      "Apple",
		Converter: []converterDoc{{Name: "box", Multiply: 6}},
		CreatedAt: now,
	}

	it := d.toItem()
	assert.Equal(t, d.ID.Hex(), it.ID)
	assert.Equal(t, []item.Converter{{Name: "box", Multiply: 6}}, it.Converter)
	assert.Nil(t, it.UpdatedAt)
}
