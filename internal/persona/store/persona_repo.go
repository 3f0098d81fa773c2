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
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wso2/financial-insights-service/internal/persona/model"
	"github.com/wso2/financial-insights-service/internal/system/database/provider"
)

const personaCollection = "persona_assignments"

// mirrorAssignment upserts the assignment into the document store keyed by
// user and window.
func mirrorAssignment(assignment model.PersonaAssignment) error {

	docStore, err := provider.GetDocStore()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"user_id": assignment.UserId, "time_window": assignment.TimeWindow}
	_, err = docStore.Database.Collection(personaCollection).
		ReplaceOne(ctx, filter, assignment, options.Replace().SetUpsert(true))
	return err
}
