package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inventory-management/internal/item"
	repo "inventory-management/internal/item/repository"
)

// CreateItem inserts a new Item document and returns the stored entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	doc := itemDoc{
		ID:                  primitive.NewObjectID(),
		Code:                opt.Code,
		Name:                opt.Name,
		ChartOfAccount:      opt.ChartOfAccount,
		HasProductionNumber: opt.HasProductionNumber,
		HasExpiryDate:       opt.HasExpiryDate,
		Unit:                opt.Unit,
		Converter:           toConverterDocs(opt.Converter),
		CreatedAt:           opt.CreatedAt.UTC(),
		CreatedByID:         opt.CreatedByID,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if field, ok := duplicateField(err); ok {
			return item.Item{}, &repo.DuplicateKeyError{Field: field}
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return item.Item{}, repo.ErrFailedToInsert
	}
	return doc.toItem(), nil
}

// GetOneItem returns a zero Item when the id is unknown or not an ObjectID.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	id, err := primitive.ObjectIDFromHex(opt.ID)
	if err != nil {
		return item.Item{}, nil
	}

	var doc itemDoc
	err = r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return item.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return item.Item{}, repo.ErrFailedToGet
	}
	return doc.toItem(), nil
}

// ListItems returns one page of Items, newest first, and the filtered total.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, int64, error) {
	filter := buildListFilter(opt)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(opt.Offset))
	if opt.Limit > 0 {
		findOpts.SetLimit(int64(opt.Limit))
	}

	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	var docs []itemDoc
	if err := cur.All(ctx, &docs); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	items := make([]item.Item, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toItem())
	}
	return items, total, nil
}

// UpdateItem replaces the mutable fields of an Item. A zero Item is returned
// when the id no longer exists.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	id, err := primitive.ObjectIDFromHex(opt.ID)
	if err != nil {
		return item.Item{}, nil
	}

	update := bson.M{"$set": bson.M{
		"code":                opt.Code,
		"name":                opt.Name,
		"chartOfAccount":      opt.ChartOfAccount,
		"hasProductionNumber": opt.HasProductionNumber,
		"hasExpiryDate":       opt.HasExpiryDate,
		"unit":                opt.Unit,
		"converter":           toConverterDocs(opt.Converter),
		"isArchived":          opt.IsArchived,
		"updatedAt":           opt.UpdatedAt.UTC(),
		"updatedBy_id":        opt.UpdatedByID,
	}}

	var doc itemDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return item.Item{}, nil
	}
	if err != nil {
		if field, ok := duplicateField(err); ok {
			return item.Item{}, &repo.DuplicateKeyError{Field: field}
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	}
	return doc.toItem(), nil
}

// DeleteItem removes an Item by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return false, repo.ErrFailedToDelete
	}
	return res.DeletedCount > 0, nil
}

// FindConflicts returns other Items holding the given code or name.
func (r *implRepository) FindConflicts(ctx context.Context, opt repo.FindConflictsOptions) ([]item.Item, error) {
	filter, ok := buildConflictFilter(opt)
	if !ok {
		return nil, nil
	}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindConflicts"), err)
		return nil, repo.ErrFailedToGet
	}

	var docs []itemDoc
	if err := cur.All(ctx, &docs); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("FindConflicts"), err)
		return nil, repo.ErrFailedToGet
	}

	items := make([]item.Item, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toItem())
	}
	return items, nil
}
