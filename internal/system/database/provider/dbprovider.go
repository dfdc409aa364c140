/*
 * Copyright (c) 2026, Vendra Labs Pvt Ltd. (https://www.vendra.io).
 *
 * Vendra Labs licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package provider

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/vendra/commerce-storefront-service/internal/system/config"
	"github.com/vendra/commerce-storefront-service/internal/system/log"
)

var (
	client   *mongo.Client
	database *mongo.Database
	mutex    sync.Mutex
)

// Init connects to the configured MongoDB deployment and verifies the
// connection with a bounded ping. Must be called once at startup before any
// store is constructed.
func Init(cfg config.MongoConfig) error {
	mutex.Lock()
	defer mutex.Unlock()

	if client != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	client = c
	database = c.Database(cfg.Database)
	log.GetLogger().Info("Connected to MongoDB", log.String("database", cfg.Database))
	return nil
}

// GetDatabase returns the shared database handle. Panics when Init was not
// called; stores are only constructed after startup wiring.
func GetDatabase() *mongo.Database {
	if database == nil {
		panic("database provider not initialized")
	}
	return database
}

// Close disconnects the shared client.
func Close() error {
	mutex.Lock()
	defer mutex.Unlock()

	if client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := client.Disconnect(ctx)
	client = nil
	database = nil
	return err
}
