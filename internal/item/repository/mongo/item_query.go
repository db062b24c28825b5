package mongo

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"inventory-management/internal/item"
	repo "inventory-management/internal/item/repository"
)

type converterDoc struct {
	Name     string  `bson:"name"`
	Multiply float64 `bson:"multiply"`
}

type itemDoc struct {
	ID                  primitive.ObjectID `bson:"_id"`
	Code                string             `bson:"code"`
	Name                string             `bson:"name"`
	ChartOfAccount      string             `bson:"chartOfAccount"`
	HasProductionNumber bool               `bson:"hasProductionNumber"`
	HasExpiryDate       bool               `bson:"hasExpiryDate"`
	Unit                string             `bson:"unit"`
	Converter           []converterDoc     `bson:"converter"`
	IsArchived          bool               `bson:"isArchived"`
	CreatedAt           time.Time          `bson:"createdAt"`
	CreatedByID         string             `bson:"createdBy_id"`
	UpdatedAt           *time.Time         `bson:"updatedAt,omitempty"`
	UpdatedByID         string             `bson:"updatedBy_id,omitempty"`
}

func (d itemDoc) toItem() item.Item {
	it := item.Item{
		ID:                  d.ID.Hex(),
		Code:                d.Code,
		Name:                d.Name,
		ChartOfAccount:      d.ChartOfAccount,
		HasProductionNumber: d.HasProductionNumber,
		HasExpiryDate:       d.HasExpiryDate,
		Unit:                d.Unit,
		Converter:           make([]item.Converter, 0, len(d.Converter)),
		IsArchived:          d.IsArchived,
		CreatedAt:           d.CreatedAt.UTC(),
		CreatedByID:         d.CreatedByID,
		UpdatedByID:         d.UpdatedByID,
	}
	for _, c := range d.Converter {
		it.Converter = append(it.Converter, item.Converter{Name: c.Name, Multiply: c.Multiply})
	}
	if d.UpdatedAt != nil {
		t := d.UpdatedAt.UTC()
		it.UpdatedAt = &t
	}
	return it
}

func toConverterDocs(cs []item.Converter) []converterDoc {
	docs := make([]converterDoc, 0, len(cs))
	for _, c := range cs {
		docs = append(docs, converterDoc{Name: c.Name, Multiply: c.Multiply})
	}
	return docs
}

func buildListFilter(opt repo.ListItemsOptions) bson.M {
	filter := bson.M{}
	if opt.IsArchived != nil {
		filter["isArchived"] = *opt.IsArchived
	}
	if opt.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(opt.Search), Options: "i"}
		filter["$or"] = bson.A{bson.M{"code": re}, bson.M{"name": re}}
	}
	return filter
}

// buildConflictFilter reports ok=false when neither code nor name is set.
func buildConflictFilter(opt repo.FindConflictsOptions) (bson.M, bool) {
	var or bson.A
	if opt.Code != "" {
		or = append(or, bson.M{"code": opt.Code})
	}
	if opt.Name != "" {
		or = append(or, bson.M{"name": opt.Name})
	}
	if len(or) == 0 {
		return nil, false
	}

	filter := bson.M{"$or": or}
	if opt.ExcludeID != "" {
		if oid, err := primitive.ObjectIDFromHex(opt.ExcludeID); err == nil {
			filter["_id"] = bson.M{"$ne": oid}
		}
	}
	return filter, true
}

// duplicateField maps an E11000 error to the field guarded by the violated index.
// The server's keyPattern is preferred; otherwise the index name is read from
// the token after "index:" so the duplicated value never takes part.
func duplicateField(err error) (string, bool) {
	if !mongo.IsDuplicateKeyError(err) {
		return "", false
	}
	for _, d := range duplicateDetails(err) {
		if field, ok := fieldFromKeyPattern(d.raw); ok {
			return field, true
		}
		if field, ok := fieldFromIndexName(d.message); ok {
			return field, true
		}
	}
	return "", false
}

type duplicateDetail struct {
	raw     bson.Raw
	message string
}

func duplicateDetails(err error) []duplicateDetail {
	var out []duplicateDetail

	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == duplicateKeyCode {
				out = append(out, duplicateDetail{raw: e.Raw, message: e.Message})
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == duplicateKeyCode {
		out = append(out, duplicateDetail{raw: ce.Raw, message: ce.Message})
	}
	return out
}

func fieldFromKeyPattern(raw bson.Raw) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	val, err := raw.LookupErr("keyPattern")
	if err != nil {
		return "", false
	}
	pattern, ok := val.DocumentOK()
	if !ok {
		return "", false
	}
	elems, err := pattern.Elements()
	if err != nil || len(elems) != 1 {
		return "", false
	}
	switch elems[0].Key() {
	case "code":
		return item.FieldCode, true
	case "name":
		return item.FieldName, true
	}
	return "", false
}

func fieldFromIndexName(msg string) (string, bool) {
	i := strings.Index(msg, "index: ")
	if i < 0 {
		return "", false
	}
	name, _, _ := strings.Cut(msg[i+len("index: "):], " ")
	switch name {
	case codeIndexName:
		return item.FieldCode, true
	case nameIndexName:
		return item.FieldName, true
	}
	return "", false
}
