package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/havenly/havenly-api/internal/core/domain"
	"github.com/havenly/havenly-api/internal/core/ports"
)

const roomsCollection = "rooms"

type RoomRepository struct {
	coll *mongo.Collection
	// properties is consulted to resolve city filters to property ids.
	properties *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{
		coll:       db.Collection(roomsCollection),
		properties: db.Collection(propertiesCollection),
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := *room
	doc.ID = ""
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert room: %w", err)
	}

	created := *room
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRoomNotFound
	}

	var room domain.Room
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&room); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}
	return &room, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(room.ID)
	if err != nil {
		return domain.ErrRoomNotFound
	}

	update := bson.M{"$set": bson.M{
		"number":       room.Number,
		"type":         room.Type,
		"rent_monthly": room.RentMonthly,
		"capacity":     room.Capacity,
		"status":       room.Status,
		"updated_at":   room.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update room: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *RoomRepository) List(ctx context.Context, f ports.ListRoomsFilter) ([]*domain.Room, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.MaxRent > 0 {
		filter["rent_monthly"] = bson.M{"$lte": f.MaxRent}
	}
	if f.Search != "" {
		pattern := searchRegex(f.Search)
		filter["$or"] = bson.A{
			bson.M{"number": pattern},
			bson.M{"type": pattern},
		}
	}

	ids, constrained, err := r.propertyScope(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	if constrained {
		if len(ids) == 0 {
			return nil, 0, nil
		}
		filter["property_id"] = bson.M{"$in": ids}
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count rooms: %w", err)
	}

	opts := options.Find().
		SetSkip(int64((f.Page - 1) * f.Limit)).
		SetLimit(int64(f.Limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []*domain.Room
	for cursor.Next(ctx) {
		var room domain.Room
		if err := cursor.Decode(&room); err != nil {
			return nil, 0, fmt.Errorf("decode room: %w", err)
		}
		rooms = append(rooms, &room)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate rooms: %w", err)
	}

	return rooms, total, nil
}

// DeleteByProperty removes every room of a property. Zero deletions is not an
// error, a property may simply have no rooms yet.
func (r *RoomRepository) DeleteByProperty(ctx context.Context, propertyID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"property_id": propertyID})
	if err != nil {
		return 0, fmt.Errorf("delete rooms of property: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *RoomRepository) CountByStatus(ctx context.Context, status domain.RoomStatus) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"status": status})
}

// propertyScope resolves the filter's property-side constraints (explicit id
// scope, city, parent property status) into one list of allowed property ids.
// constrained reports whether any constraint applies at all; an empty id list
// with constrained=true means the listing matches nothing.
func (r *RoomRepository) propertyScope(ctx context.Context, f ports.ListRoomsFilter) (ids []string, constrained bool, err error) {
	switch {
	case f.PropertyID != "":
		ids, constrained = []string{f.PropertyID}, true
	case len(f.PropertyIDs) > 0:
		ids, constrained = f.PropertyIDs, true
	}

	if f.City == "" && f.PropertyStatus == "" {
		return ids, constrained, nil
	}

	query := bson.M{}
	if f.City != "" {
		query["city"] = exactRegex(f.City)
	}
	if f.PropertyStatus != "" {
		query["status"] = f.PropertyStatus
	}

	resolved, err := r.resolvePropertyIDs(ctx, query)
	if err != nil {
		return nil, false, err
	}
	if !constrained {
		return resolved, true, nil
	}
	return intersectIDs(ids, resolved), true, nil
}

// resolvePropertyIDs returns the ids of properties matching query.
func (r *RoomRepository) resolvePropertyIDs(ctx context.Context, query bson.M) ([]string, error) {
	cursor, err := r.properties.Find(ctx, query,
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("resolve property filter: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode property id: %w", err)
		}
		ids = append(ids, doc.ID.Hex())
	}
	return ids, cursor.Err()
}

func intersectIDs(a, b []string) []string {
	allowed := make(map[string]struct{}, len(b))
	for _, id := range b {
		allowed[id] = struct{}{}
	}
	var out []string
	for _, id := range a {
		if _, ok := allowed[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// EnsureIndexes creates the supporting indexes on the rooms collection.
func (r *RoomRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "property_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "rent_monthly", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
