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

package model

import "time"

// PersonaAssignment is the outcome of classifying one user for one window.
// It is replaced wholesale on recomputation, never partially updated.
type PersonaAssignment struct {
	UserId         string             `json:"user_id" bson:"user_id"`
	TimeWindow     string             `json:"time_window" bson:"time_window"`
	PrimaryPersona string             `json:"primary_persona" bson:"primary_persona"`
	MatchScores    map[string]float64 `json:"match_scores" bson:"match_scores"`
	CriteriaMet    []string           `json:"criteria_met" bson:"criteria_met"`
	AssignedAt     time.Time          `json:"assigned_at" bson:"assigned_at"`
}
