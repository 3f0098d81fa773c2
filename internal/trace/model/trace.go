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

import (
	"time"

	personamodel "github.com/wso2/financial-insights-service/internal/persona/model"
	recommendmodel "github.com/wso2/financial-insights-service/internal/recommend/model"
	signalmodel "github.com/wso2/financial-insights-service/internal/signal/model"
)

// RecommendationTrace pairs a stored recommendation with its decision
// trace for audit listings.
type RecommendationTrace struct {
	RecommendationId string                       `json:"recommendation_id"`
	Type             string                       `json:"type"`
	ContentId        string                       `json:"content_id"`
	Rationale        string                       `json:"rationale"`
	DecisionTrace    recommendmodel.DecisionTrace `json:"decision_trace"`
}

// AuditTrail is the full decision history for one user and window: the
// computed feature set, the persona assignment with its criteria, and the
// decision trace of every stored recommendation.
type AuditTrail struct {
	UserId            string                           `json:"user_id"`
	TimeWindow        string                           `json:"time_window"`
	GeneratedAt       time.Time                        `json:"generated_at"`
	FeatureSet        *signalmodel.FeatureSet          `json:"feature_set,omitempty"`
	PersonaAssignment *personamodel.PersonaAssignment  `json:"persona_assignment,omitempty"`
	Recommendations   []RecommendationTrace            `json:"recommendations"`
}
