/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
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
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wso2/financial-insights-service/internal/system/config"
	errors2 "github.com/wso2/financial-insights-service/internal/system/errors"
	"github.com/wso2/financial-insights-service/internal/system/log"
)

// DocStore holds the client and database handle for the optional MongoDB
// backend. Recommendation and persona documents are written here when the
// document store is enabled in configuration.
type DocStore struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var (
	docStoreInstance *DocStore
	docStoreOnce     sync.Once
	docStoreErr      error
)

// GetDocStore initializes and returns the shared MongoDB connection.
func GetDocStore() (*DocStore, error) {

	docStoreOnce.Do(func() {
		conf := config.GetFISRuntime().Config.DocumentStore

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		clientOptions := options.Client().ApplyURI(conf.URI)
		client, err := mongo.Connect(ctx, clientOptions)
		if err != nil {
			docStoreErr = errors2.NewServerError(errors2.DOC_STORE_INIT, err)
			return
		}

		if err := client.Ping(ctx, nil); err != nil {
			docStoreErr = errors2.NewServerError(errors2.DOC_STORE_INIT, err)
			return
		}

		log.GetLogger().Info("Connected to document store",
			log.String("database", conf.Database))

		docStoreInstance = &DocStore{
			Client:   client,
			Database: client.Database(conf.Database),
		}
	})

	if docStoreErr != nil {
		return nil, docStoreErr
	}
	return docStoreInstance, nil
}

// DocumentStoreEnabled reports whether the MongoDB backend is configured.
func DocumentStoreEnabled() bool {
	return config.GetFISRuntime().Config.DocumentStore.Enabled
}
