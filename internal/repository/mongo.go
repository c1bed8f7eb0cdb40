package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"grotto/internal/domain"
)

const (
	collCafeItems    = "cafe_items"
	collBarGames     = "bar_games"
	collGameSessions = "game_sessions"
	collCustomers    = "customers"
	collMemberships  = "memberships"
	collOrders       = "orders"
)

// MongoStore документное хранилище с явным жизненным циклом connect/close.
// _id каждого документа — строковый uuid, назначаемый при создании.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	// mu сериализует критические секции в пределах процесса; см. MongoTx
	mu sync.Mutex
}

// ConnectMongo подключается и проверяет доступность сервера
func ConnectMongo(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return &MongoStore{client: client, db: client.Database(dbName)}, nil
}

func (m *MongoStore) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Repositories собирает полный набор репозиториев поверх этого хранилища
func (m *MongoStore) Repositories() *Set {
	return &Set{
		CafeItems:    &MongoCafeItems{store: m},
		BarGames:     &MongoBarGames{store: m},
		GameSessions: &MongoGameSessions{store: m},
		Customers:    &MongoCustomers{store: m},
		Memberships:  &MongoMemberships{store: m},
		Orders:       &MongoOrders{store: m},
		Tx:           &MongoTx{store: m},
	}
}

// common document helpers

func (m *MongoStore) insertOne(ctx context.Context, coll string, doc any) error {
	_, err := m.db.Collection(coll).InsertOne(ctx, doc)
	return err
}

func (m *MongoStore) findByID(ctx context.Context, coll, id string, out any) error {
	err := m.db.Collection(coll).FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (m *MongoStore) replaceByID(ctx context.Context, coll, id string, doc any) error {
	res, err := m.db.Collection(coll).ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoStore) deleteByID(ctx context.Context, coll, id string) error {
	res, err := m.db.Collection(coll).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func findAll[T any](ctx context.Context, m *MongoStore, coll string, filter bson.M) ([]T, error) {
	cur, err := m.db.Collection(coll).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MongoCafeItems реализация CafeItemRepository
type MongoCafeItems struct{ store *MongoStore }

var _ CafeItemRepository = (*MongoCafeItems)(nil)

func (r *MongoCafeItems) Create(ctx context.Context, it *domain.CafeItem) error {
	it.ID = uuid.NewString()
	it.CreatedAt = time.Now().UTC()
	it.UpdatedAt = it.CreatedAt
	return r.store.insertOne(ctx, collCafeItems, it)
}

func (r *MongoCafeItems) GetByID(ctx context.Context, id string) (*domain.CafeItem, error) {
	var it domain.CafeItem
	if err := r.store.findByID(ctx, collCafeItems, id, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *MongoCafeItems) Update(ctx context.Context, it *domain.CafeItem) error {
	var cur domain.CafeItem
	if err := r.store.findByID(ctx, collCafeItems, it.ID, &cur); err != nil {
		return err
	}
	it.CreatedAt = cur.CreatedAt
	it.UpdatedAt = time.Now().UTC()
	return r.store.replaceByID(ctx, collCafeItems, it.ID, it)
}

func (r *MongoCafeItems) Delete(ctx context.Context, id string) error {
	return r.store.deleteByID(ctx, collCafeItems, id)
}

func (r *MongoCafeItems) List(ctx context.Context, f CafeItemFilter) ([]domain.CafeItem, error) {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.LowStock {
		filter["$or"] = []bson.M{
			{"quantity": bson.M{"$lt": LowStockThreshold}},
			{"inStock": false},
		}
	}
	return findAll[domain.CafeItem](ctx, r.store, collCafeItems, filter)
}

// MongoBarGames реализация BarGameRepository
type MongoBarGames struct{ store *MongoStore }

var _ BarGameRepository = (*MongoBarGames)(nil)

func (r *MongoBarGames) Create(ctx context.Context, g *domain.BarGame) error {
	g.ID = uuid.NewString()
	g.CreatedAt = time.Now().UTC()
	g.UpdatedAt = g.CreatedAt
	return r.store.insertOne(ctx, collBarGames, g)
}

func (r *MongoBarGames) GetByID(ctx context.Context, id string) (*domain.BarGame, error) {
	var g domain.BarGame
	if err := r.store.findByID(ctx, collBarGames, id, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *MongoBarGames) Update(ctx context.Context, g *domain.BarGame) error {
	var cur domain.BarGame
	if err := r.store.findByID(ctx, collBarGames, g.ID, &cur); err != nil {
		return err
	}
	g.CreatedAt = cur.CreatedAt
	g.UpdatedAt = time.Now().UTC()
	return r.store.replaceByID(ctx, collBarGames, g.ID, g)
}

func (r *MongoBarGames) Delete(ctx context.Context, id string) error {
	return r.store.deleteByID(ctx, collBarGames, id)
}

func (r *MongoBarGames) List(ctx context.Context) ([]domain.BarGame, error) {
	return findAll[domain.BarGame](ctx, r.store, collBarGames, bson.M{})
}

// MongoGameSessions реализация GameSessionRepository
type MongoGameSessions struct{ store *MongoStore }

var _ GameSessionRepository = (*MongoGameSessions)(nil)

func (r *MongoGameSessions) Create(ctx context.Context, s *domain.GameSession) error {
	s.ID = uuid.NewString()
	s.CreatedAt = time.Now().UTC()
	s.UpdatedAt = s.CreatedAt
	return r.store.insertOne(ctx, collGameSessions, s)
}

func (r *MongoGameSessions) GetByID(ctx context.Context, id string) (*domain.GameSession, error) {
	var s domain.GameSession
	if err := r.store.findByID(ctx, collGameSessions, id, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *MongoGameSessions) Update(ctx context.Context, s *domain.GameSession) error {
	var cur domain.GameSession
	if err := r.store.findByID(ctx, collGameSessions, s.ID, &cur); err != nil {
		return err
	}
	s.CreatedAt = cur.CreatedAt
	s.UpdatedAt = time.Now().UTC()
	return r.store.replaceByID(ctx, collGameSessions, s.ID, s)
}

func (r *MongoGameSessions) Delete(ctx context.Context, id string) error {
	return r.store.deleteByID(ctx, collGameSessions, id)
}

func (r *MongoGameSessions) List(ctx context.Context, f SessionFilter) ([]domain.GameSession, error) {
	filter := bson.M{}
	if f.CustomerID != "" {
		filter["customerId"] = f.CustomerID
	}
	if f.Active != nil {
		if *f.Active {
			filter["endTime"] = nil
		} else {
			filter["endTime"] = bson.M{"$ne": nil}
		}
	}
	return findAll[domain.GameSession](ctx, r.store, collGameSessions, filter)
}

func (r *MongoGameSessions) FindActiveByCustomer(ctx context.Context, customerID string) (*domain.GameSession, error) {
	var s domain.GameSession
	err := r.store.db.Collection(collGameSessions).
		FindOne(ctx, bson.M{"customerId": customerID, "endTime": nil}).
		Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// MongoCustomers реализация CustomerRepository
type MongoCustomers struct{ store *MongoStore }

var _ CustomerRepository = (*MongoCustomers)(nil)

func (r *MongoCustomers) Create(ctx context.Context, c *domain.Customer) error {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	return r.store.insertOne(ctx, collCustomers, c)
}

func (r *MongoCustomers) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	var c domain.Customer
	if err := r.store.findByID(ctx, collCustomers, id, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MongoCustomers) Update(ctx context.Context, c *domain.Customer) error {
	var cur domain.Customer
	if err := r.store.findByID(ctx, collCustomers, c.ID, &cur); err != nil {
		return err
	}
	c.CreatedAt = cur.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	return r.store.replaceByID(ctx, collCustomers, c.ID, c)
}

func (r *MongoCustomers) Delete(ctx context.Context, id string) error {
	return r.store.deleteByID(ctx, collCustomers, id)
}

func (r *MongoCustomers) List(ctx context.Context, f CustomerFilter) ([]domain.Customer, error) {
	filter := bson.M{}
	if f.Query != "" {
		rx := bson.M{"$regex": f.Query, "$options": "i"}
		filter["$or"] = []bson.M{{"name": rx}, {"email": rx}, {"phone": rx}}
	}
	return findAll[domain.Customer](ctx, r.store, collCustomers, filter)
}

// MongoMemberships реализация MembershipRepository
type MongoMemberships struct{ store *MongoStore }

var _ MembershipRepository = (*MongoMemberships)(nil)

func (r *MongoMemberships) Create(ctx context.Context, m *domain.Membership) error {
	m.ID = uuid.NewString()
	m.CreatedAt = time.Now().UTC()
	m.UpdatedAt = m.CreatedAt
	return r.store.insertOne(ctx, collMemberships, m)
}

func (r *MongoMemberships) GetByID(ctx context.Context, id string) (*domain.Membership, error) {
	var m domain.Membership
	if err := r.store.findByID(ctx, collMemberships, id, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MongoMemberships) Update(ctx context.Context, m *domain.Membership) error {
	var cur domain.Membership
	if err := r.store.findByID(ctx, collMemberships, m.ID, &cur); err != nil {
		return err
	}
	m.CreatedAt = cur.CreatedAt
	m.UpdatedAt = time.Now().UTC()
	return r.store.replaceByID(ctx, collMemberships, m.ID, m)
}

func (r *MongoMemberships) Delete(ctx context.Context, id string) error {
	return r.store.deleteByID(ctx, collMemberships, id)
}

func (r *MongoMemberships) List(ctx context.Context) ([]domain.Membership, error) {
	return findAll[domain.Membership](ctx, r.store, collMemberships, bson.M{})
}

// MongoOrders реализация OrderRepository
type MongoOrders struct{ store *MongoStore }

var _ OrderRepository = (*MongoOrders)(nil)

func (r *MongoOrders) Create(ctx context.Context, o *domain.Order) error {
	o.ID = uuid.NewString()
	o.CreatedAt = time.Now().UTC()
	o.UpdatedAt = o.CreatedAt
	return r.store.insertOne(ctx, collOrders, o)
}

func (r *MongoOrders) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	if err := r.store.findByID(ctx, collOrders, id, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *MongoOrders) Update(ctx context.Context, o *domain.Order) error {
	var cur domain.Order
	if err := r.store.findByID(ctx, collOrders, o.ID, &cur); err != nil {
		return err
	}
	o.CreatedAt = cur.CreatedAt
	o.UpdatedAt = time.Now().UTC()
	return r.store.replaceByID(ctx, collOrders, o.ID, o)
}

func (r *MongoOrders) List(ctx context.Context, f OrderFilter) ([]domain.Order, error) {
	filter := bson.M{}
	if f.CustomerID != "" {
		filter["customer"] = f.CustomerID
	}
	return findAll[domain.Order](ctx, r.store, collOrders, filter)
}

// MongoTx сериализует критические секции мьютексом процесса. Узел обслуживания
// один (распределённая согласованность вне задач системы), поэтому блокировки
// процесса достаточно для check-then-act последовательностей склада и сессий.
type MongoTx struct{ store *MongoStore }

var _ TxManager = (*MongoTx)(nil)

func (tx *MongoTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	return fn(ctx)
}
