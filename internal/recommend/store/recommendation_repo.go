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

package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/wso2/financial-insights-service/internal/recommend/model"
	"github.com/wso2/financial-insights-service/internal/system/database/provider"
)

const recommendationCollection = "recommendations"

// mirrorRecommendations replaces the user's recommendation documents for
// the window in the document store.
func mirrorRecommendations(userId, timeWindow string, recommendations []model.Recommendation) error {

	docStore, err := provider.GetDocStore()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := docStore.Database.Collection(recommendationCollection)
	filter := bson.M{"user_id": userId, "time_window": timeWindow}
	if _, err := collection.DeleteMany(ctx, filter); err != nil {
		return err
	}
	if len(recommendations) == 0 {
		return nil
	}

	docs := make([]interface{}, len(recommendations))
	for i, rec := range recommendations {
		docs[i] = rec
	}
	_, err = collection.InsertMany(ctx, docs)
	return err
}
