package orders

import (
	"context"
	"math"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tallerapp/internal/models"
)

type mongoRepository struct {
	db *mongo.Database
}

// NewMongoRepository returns the MongoDB-backed order repository.
func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{db: db}
}

func (r *mongoRepository) orders() *mongo.Collection {
	return r.db.Collection("orders")
}

// nextOrderNumber increments the persistent counter and returns the new
// value. The upsert makes the very first order start the sequence at 1.
func (r *mongoRepository) nextOrderNumber(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Value int64 `bson:"value"`
	}
	err := r.db.Collection("counters").FindOneAndUpdate(
		ctx,
		bson.M{"_id": "orderNumber"},
		bson.M{"$inc": bson.M{"value": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Value, nil
}

func (r *mongoRepository) Insert(ctx context.Context, o *models.Order) error {
	number, err := r.nextOrderNumber(ctx)
	if err != nil {
		return err
	}
	o.OrderNumber = number

	res, err := r.orders().InsertOne(ctx, o)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		o.ID = id
	}
	return nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := r.orders().FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, NotFoundError{Resource: "order", ID: id.Hex()}
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *mongoRepository) GetByNumber(ctx context.Context, number int64) (*models.Order, error) {
	var order models.Order
	err := r.orders().FindOne(ctx, bson.M{"orderNumber": number}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, NotFoundError{Resource: "order", ID: strconv.FormatInt(number, 10)}
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *mongoRepository) List(ctx context.Context, filter ListFilter) ([]models.Order, int64, error) {
	query := bson.M{}
	if filter.Status != nil {
		query["status"] = *filter.Status
	}
	if filter.BranchID != nil {
		query["branchId"] = *filter.BranchID
	}
	if filter.ClientID != nil {
		query["clientId"] = *filter.ClientID
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	total, err := r.orders().CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSkip((page - 1) * limit).
		SetLimit(limit).
		SetSort(bson.D{{Key: "entryDate", Value: -1}})

	cursor, err := r.orders().Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var results []models.Order
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// mutableOrderFields builds the $set document for an update. The write-once
// fields (orderNumber, entryDate, legalText, createdAt) are deliberately
// absent: no update path may touch them.
func mutableOrderFields(o *models.Order) bson.M {
	return bson.M{
		"assignedTechnicianId":  o.AssignedTechnicianID,
		"previousOrderId":       o.PreviousOrderID,
		"deviceBrand":           o.DeviceBrand,
		"deviceModel":           o.DeviceModel,
		"imei":                  o.IMEI,
		"imeiNotVisible":        o.IMEINotVisible,
		"declaredFault":         o.DeclaredFault,
		"commonFaults":          o.CommonFaults,
		"unlockPatternProvided": o.UnlockPatternProvided,
		"unlockCode":            o.UnlockCode,
		"checklist":             o.Checklist,
		"partsUsed":             o.PartsUsed,
		"costSparePart":         o.CostSparePart,
		"costLabor":             o.CostLabor,
		"costPending":           o.CostPending,
		"hasWarranty":           o.HasWarranty,
		"warrantyType":          o.WarrantyType,
		"warrantyStartDate":     o.WarrantyStartDate,
		"warrantyEndDate":       o.WarrantyEndDate,
		"warrantyCoveredItem":   o.WarrantyCoveredItem,
		"warrantyNotes":         o.WarrantyNotes,
		"readyForPickupDate":    o.ReadyForPickupDate,
		"deliveryDate":          o.DeliveryDate,
		"status":                o.Status,
		"updatedAt":             o.UpdatedAt,
		"lastUpdatedBy":         o.LastUpdatedBy,
	}
}

func (r *mongoRepository) Update(ctx context.Context, o *models.Order) error {
	res, err := r.orders().UpdateOne(
		ctx,
		bson.M{"_id": o.ID},
		bson.M{"$set": mutableOrderFields(o)},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return NotFoundError{Resource: "order", ID: o.ID.Hex()}
	}
	return nil
}

func (r *mongoRepository) AppendComment(ctx context.Context, id primitive.ObjectID, comment models.OrderComment) error {
	res, err := r.orders().UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"commentsHistory": comment},
			"$set": bson.M{
				"updatedAt":     comment.Timestamp,
				"lastUpdatedBy": comment.UserName,
			},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return NotFoundError{Resource: "order", ID: id.Hex()}
	}
	return nil
}

func (r *mongoRepository) UpdatePartsWithStock(ctx context.Context, o *models.Order, deltas []StockDelta) error {
	session, err := r.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		parts := r.db.Collection("parts")

		for _, delta := range deltas {
			if delta.Delta == 0 {
				continue
			}

			if delta.Delta < 0 {
				need := -delta.Delta
				filter := bson.M{
					"_id":       delta.PartID,
					"isDeleted": bson.M{"$ne": true},
					"stock":     bson.M{"$gte": need},
				}
				res, err := parts.UpdateOne(sessCtx, filter, bson.M{"$inc": bson.M{"stock": -need}})
				if err != nil {
					return nil, err
				}
				if res.MatchedCount == 0 {
					var part models.Part
					findErr := parts.FindOne(sessCtx, bson.M{
						"_id":       delta.PartID,
						"isDeleted": bson.M{"$ne": true},
					}).Decode(&part)
					if findErr == mongo.ErrNoDocuments {
						return nil, NotFoundError{Resource: "part", ID: delta.PartID.Hex()}
					}
					if findErr != nil {
						return nil, findErr
					}
					return nil, StockConflictError{
						PartID:    delta.PartID,
						Available: part.Stock,
						Requested: need,
					}
				}
			} else {
				// Returned stock never fails; the floor only applies on the
				// way down.
				_, err := parts.UpdateOne(
					sessCtx,
					bson.M{"_id": delta.PartID},
					bson.M{"$inc": bson.M{"stock": delta.Delta}},
				)
				if err != nil {
					return nil, err
				}
			}
		}

		res, err := r.orders().UpdateOne(
			sessCtx,
			bson.M{"_id": o.ID},
			bson.M{"$set": bson.M{
				"partsUsed":     o.PartsUsed,
				"costSparePart": o.CostSparePart,
				"updatedAt":     o.UpdatedAt,
				"lastUpdatedBy": o.LastUpdatedBy,
			}},
		)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, NotFoundError{Resource: "order", ID: o.ID.Hex()}
		}
		return nil, nil
	})
	return err
}

// DiffPartLines computes the stock deltas a parts edit implies, comparing
// the stored lines against the proposed ones part by part.
func DiffPartLines(before, after []models.OrderPartItem) []StockDelta {
	consumed := make(map[primitive.ObjectID]int)
	for _, line := range before {
		consumed[line.PartID] += line.Quantity
	}
	wanted := make(map[primitive.ObjectID]int)
	for _, line := range after {
		wanted[line.PartID] += line.Quantity
	}

	seen := make(map[primitive.ObjectID]struct{})
	deltas := make([]StockDelta, 0, int(math.Max(float64(len(before)), float64(len(after)))))

	for _, line := range after {
		if _, ok := seen[line.PartID]; ok {
			continue
		}
		seen[line.PartID] = struct{}{}
		if d := wanted[line.PartID] - consumed[line.PartID]; d != 0 {
			deltas = append(deltas, StockDelta{PartID: line.PartID, Delta: -d})
		}
	}
	for _, line := range before {
		if _, ok := seen[line.PartID]; ok {
			continue
		}
		seen[line.PartID] = struct{}{}
		if d := wanted[line.PartID] - consumed[line.PartID]; d != 0 {
			deltas = append(deltas, StockDelta{PartID: line.PartID, Delta: -d})
		}
	}
	return deltas
}
