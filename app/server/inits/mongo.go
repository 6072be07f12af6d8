package inits

import (
	"climate-solutions/app/server/constants"
	"context"
	"fmt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

func Mongo(ctx context.Context, conn string) (*mongo.Client, *mongo.Collection, error) {
	cs, err := connstring.ParseAndValidate(conn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse mongodb connection string: %w", err)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(conn))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Connect 不会真正建立连接，需要 ping 一次确认
	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	dbName := cs.Database
	if dbName == "" {
		dbName = constants.MongoDefaultDatabase
	}
	users := client.Database(dbName).Collection(constants.MongoUsersCollection)

	// 用户名唯一
	if _, err = users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userName", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("failed to ensure users index: %w", err)
	}

	return client, users, nil
}
