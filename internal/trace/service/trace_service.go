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

package service

import (
	"fmt"
	"net/http"
	"time"

	personastore "github.com/wso2/financial-insights-service/internal/persona/store"
	recommendstore "github.com/wso2/financial-insights-service/internal/recommend/store"
	signalstore "github.com/wso2/financial-insights-service/internal/signal/store"
	"github.com/wso2/financial-insights-service/internal/system/cache"
	"github.com/wso2/financial-insights-service/internal/system/constants"
	errors2 "github.com/wso2/financial-insights-service/internal/system/errors"
	"github.com/wso2/financial-insights-service/internal/system/log"
	"github.com/wso2/financial-insights-service/internal/trace/model"
)

const traceCacheTTL = 60 * time.Second

// traceCache holds assembled audit trails. Entries are invalidated when a
// user's pipeline output is regenerated and expire on their own otherwise.
var traceCache = cache.NewCache(traceCacheTTL)

// TraceServiceInterface defines the audit trail read side.
type TraceServiceInterface interface {
	GetAuditTrail(userId, timeWindow string) (*model.AuditTrail, error)
}

// TraceService is the default implementation.
type TraceService struct{}

// GetTraceService returns a new instance.
func GetTraceService() TraceServiceInterface {
	return &TraceService{}
}

// GetAuditTrail assembles the decision history for a user and window from
// the stored feature set, persona assignment and recommendations.
func (ts *TraceService) GetAuditTrail(userId, timeWindow string) (*model.AuditTrail, error) {

	if userId == "" {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.USER_ID_REQUIRED.Code,
			Message:     errors2.USER_ID_REQUIRED.Message,
			Description: "A user id must be provided.",
		}, http.StatusBadRequest)
	}
	if !constants.AllowedTimeWindows[timeWindow] {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_TIME_WINDOW.Code,
			Message:     errors2.INVALID_TIME_WINDOW.Message,
			Description: fmt.Sprintf("Unsupported time window: %s", timeWindow),
		}, http.StatusBadRequest)
	}

	cacheKey := traceCacheKey(userId, timeWindow)
	if cached, found := traceCache.Get(cacheKey); found {
		if trail, ok := cached.(*model.AuditTrail); ok {
			return trail, nil
		}
	}

	featureSet, err := signalstore.GetFeatureSet(userId, timeWindow)
	if err != nil {
		return nil, err
	}
	assignment, err := personastore.GetPersonaAssignment(userId, timeWindow)
	if err != nil {
		return nil, err
	}
	recommendations, err := recommendstore.GetRecommendations(userId, timeWindow)
	if err != nil {
		return nil, err
	}

	trail := &model.AuditTrail{
		UserId:            userId,
		TimeWindow:        timeWindow,
		GeneratedAt:       time.Now().UTC(),
		FeatureSet:        featureSet,
		PersonaAssignment: assignment,
		Recommendations:   make([]model.RecommendationTrace, 0, len(recommendations)),
	}
	for _, rec := range recommendations {
		trail.Recommendations = append(trail.Recommendations, model.RecommendationTrace{
			RecommendationId: rec.RecommendationId,
			Type:             rec.Type,
			ContentId:        rec.ContentId,
			Rationale:        rec.Rationale,
			DecisionTrace:    rec.DecisionTrace,
		})
	}

	traceCache.Set(cacheKey, trail)
	log.GetLogger().Debug(fmt.Sprintf("Assembled audit trail for user: %s window: %s", userId, timeWindow))
	return trail, nil
}

// InvalidateTraces drops every cached trail for the user, across windows.
func InvalidateTraces(userId string) {
	traceCache.Invalidate("traces:" + userId + ":")
}

func traceCacheKey(userId, timeWindow string) string {
	return "traces:" + userId + ":" + timeWindow
}
