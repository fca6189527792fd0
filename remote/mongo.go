package remote

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/pcgops/cscrm_end/utils"
)

// MongoStore 托管表存储的MongoDB实现，集合即表
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect 连接托管存储
func Connect(uri, dbName string) (*MongoStore, error) {
	// 设置连接超时
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("连接存储服务失败: %w", err)
	}

	// 检查连接
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping存储服务失败: %w", err)
	}

	db := client.Database(dbName)
	utils.Logger.Info().Str("database", dbName).Msg("已连接到托管表存储")

	return &MongoStore{client: client, db: db}, nil
}

// Close 断开连接
func (s *MongoStore) Close() {
	if s.client != nil {
		if err := s.client.Disconnect(context.Background()); err != nil {
			utils.Logger.Error().Err(err).Msg("断开存储服务连接失败")
			return
		}
		utils.Logger.Info().Msg("已断开存储服务连接")
	}
}

// Select 查询表中满足条件的全部行
func (s *MongoStore) Select(ctx context.Context, table string, opts ...SelectOption) ([]Row, error) {
	query := SelectQuery{}
	for _, opt := range opts {
		opt(&query)
	}

	filter := bson.M{}
	for field, value := range query.Filters {
		if field == "id" {
			objID, err := primitive.ObjectIDFromHex(fmt.Sprintf("%v", value))
			if err != nil {
				return nil, fmt.Errorf("无效的ID格式: %w", err)
			}
			filter["_id"] = objID
			continue
		}
		filter[field] = value
	}

	findOpts := options.Find()
	if query.OrderBy != "" {
		direction := 1
		if query.Descending {
			direction = -1
		}
		findOpts.SetSort(bson.M{query.OrderBy: direction})
	}

	cursor, err := s.collection(table).Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(docs))
	for _, doc := range docs {
		rows = append(rows, rowFromDoc(doc))
	}

	utils.LogStoreOperation("select", table, filter, len(rows))
	return rows, nil
}

// Insert 插入一行并返回存储后的行
func (s *MongoStore) Insert(ctx context.Context, table string, row Row) (Row, error) {
	doc := docFromRow(row)
	result, err := s.collection(table).InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	stored := Row{}
	for k, v := range row {
		stored[k] = v
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		stored["id"] = oid.Hex()
	}

	utils.LogStoreOperation("insert", table, stored["id"], 1)
	return stored, nil
}

// UpdateByID 按id整行更新并返回更新后的行
// 无乐观并发检查：两个会话并发编辑同一行时后写静默覆盖先写
func (s *MongoStore) UpdateByID(ctx context.Context, table string, id string, row Row) (Row, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("无效的ID格式: %w", err)
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var updated bson.M
	err = s.collection(table).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": docFromRow(row)},
		opts,
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("行不存在: %s/%s", table, id)
		}
		return nil, err
	}

	utils.LogStoreOperation("update", table, id, 1)
	return rowFromDoc(updated), nil
}

// DeleteByID 按id删除行
func (s *MongoStore) DeleteByID(ctx context.Context, table string, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("无效的ID格式: %w", err)
	}

	result, err := s.collection(table).DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("行不存在: %s/%s", table, id)
	}

	utils.LogStoreOperation("delete", table, id, result.DeletedCount)
	return nil
}

// DeleteBy 按列等值删除行
func (s *MongoStore) DeleteBy(ctx context.Context, table string, field string, value interface{}) error {
	result, err := s.collection(table).DeleteMany(ctx, bson.M{field: value})
	if err != nil {
		return err
	}

	utils.LogStoreOperation("delete", table, bson.M{field: value}, result.DeletedCount)
	return nil
}

func (s *MongoStore) collection(table string) *mongo.Collection {
	return s.db.Collection(table)
}

// rowFromDoc 把BSON文档转换为Row：_id还原为id列，嵌套类型归一化
func rowFromDoc(doc bson.M) Row {
	row := Row{}
	for k, v := range doc {
		if k == "_id" {
			if oid, ok := v.(primitive.ObjectID); ok {
				row["id"] = oid.Hex()
			} else {
				row["id"] = fmt.Sprintf("%v", v)
			}
			continue
		}
		row[k] = normalizeValue(v)
	}
	return row
}

// normalizeValue BSON解码出的primitive.M/primitive.A递归转换为普通map/slice
func normalizeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.M:
		m := map[string]interface{}{}
		for k, item := range t {
			m[k] = normalizeValue(item)
		}
		return m
	case primitive.A:
		s := make([]interface{}, 0, len(t))
		for _, item := range t {
			s = append(s, normalizeValue(item))
		}
		return s
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().Format("2006-01-02T15:04:05")
	case int32:
		return int(t)
	case int64:
		return int(t)
	default:
		return v
	}
}

// docFromRow 把Row转换为待写入的BSON文档，id列不落库
func docFromRow(row Row) bson.M {
	doc := bson.M{}
	for k, v := range row {
		if k == "id" {
			continue
		}
		doc[k] = v
	}
	return doc
}

// InitializeTables 初始化全部表（集合）
func (s *MongoStore) InitializeTables() error {
	ctx := context.Background()
	tables := []string{
		CustomersTable,
		ProductsTable,
		EmployeesTable,
		LeadsTable,
		ProfilesTable,
		DocActivitiesTable,
		SchedulerActivityTable,
		OperationLogsTable,
	}

	existing, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("检查表失败: %w", err)
	}
	existingSet := map[string]bool{}
	for _, name := range existing {
		existingSet[name] = true
	}

	for _, table := range tables {
		if existingSet[table] {
			utils.Logger.Info().Str("table", table).Msg("表已存在")
			continue
		}
		if err := s.db.CreateCollection(ctx, table); err != nil {
			return fmt.Errorf("创建表失败: %w", err)
		}
		utils.Logger.Info().Str("table", table).Msg("创建表成功")
	}

	return nil
}

// Status 返回各表的行数与样本，用于db-status检查
func (s *MongoStore) Status() (map[string]interface{}, error) {
	ctx := context.Background()
	tables := []string{
		CustomersTable,
		ProductsTable,
		EmployeesTable,
		LeadsTable,
		ProfilesTable,
		DocActivitiesTable,
		SchedulerActivityTable,
		OperationLogsTable,
	}

	result := make(map[string]interface{})
	for _, table := range tables {
		coll := s.collection(table)
		count, err := coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			utils.Logger.Error().Err(err).Str("table", table).Msg("获取表计数失败")
			result[table] = map[string]interface{}{
				"count": 0,
				"error": err.Error(),
			}
			continue
		}

		entry := map[string]interface{}{"count": count}
		if count > 0 {
			var sample bson.M
			if err := coll.FindOne(ctx, bson.M{}).Decode(&sample); err == nil {
				// 移除敏感字段
				delete(sample, "password_hash")
				entry["sample"] = rowFromDoc(sample)
			}
		}
		result[table] = entry
	}

	return result, nil
}
