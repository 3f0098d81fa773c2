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
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/wso2/financial-insights-service/internal/recommend/model"
	"github.com/wso2/financial-insights-service/internal/system/database/provider"
	errors2 "github.com/wso2/financial-insights-service/internal/system/errors"
	"github.com/wso2/financial-insights-service/internal/system/log"
)

// ReplaceRecommendations replaces the stored recommendation set for the
// user and window in one transaction. Regeneration always produces a
// fresh set; stale recommendations never survive a recompute. When the
// document store is enabled the set is mirrored there as well.
func ReplaceRecommendations(userId, timeWindow string, recommendations []model.Recommendation) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		return writeError(userId, "Failed to get db client for writing recommendations", err)
	}
	defer dbClient.Close()

	tx, err := dbClient.BeginTx()
	if err != nil {
		return writeError(userId, "Failed to begin transaction for writing recommendations", err)
	}

	deleteQuery := `DELETE FROM recommendations WHERE user_id = $1 AND time_window = $2`
	insertQuery := `INSERT INTO recommendations (recommendation_id, user_id, time_window, type, content_id,
						title, rationale, decision_trace, shown_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = tx.Exec(deleteQuery, userId, timeWindow)
	for _, rec := range recommendations {
		if err != nil {
			break
		}
		var traceJson []byte
		traceJson, err = json.Marshal(rec.DecisionTrace)
		if err != nil {
			err = fmt.Errorf("failed to marshal decision trace of recommendation %s: %w", rec.RecommendationId, err)
			break
		}
		_, err = tx.Exec(insertQuery, rec.RecommendationId, rec.UserId, rec.TimeWindow, rec.Type,
			rec.ContentId, rec.Title, rec.Rationale, string(traceJson), rec.ShownAt)
	}
	if err != nil {
		if errRollback := tx.Rollback(); errRollback != nil {
			logger.Debug("Failed to rollback recommendation write", log.Error(errRollback))
		}
		return writeError(userId, "Failed to execute query for writing recommendations", err)
	}
	if err = tx.Commit(); err != nil {
		return writeError(userId, "Failed to commit recommendations", err)
	}

	if provider.DocumentStoreEnabled() {
		if err := mirrorRecommendations(userId, timeWindow, recommendations); err != nil {
			// The relational write is authoritative; a mirror failure is logged
			// and does not fail the generation.
			logger.Warn(fmt.Sprintf("Failed to mirror recommendations of user: %s", userId), log.Error(err))
		}
	}

	logger.Debug(fmt.Sprintf("Stored %d recommendations for user: %s window: %s",
		len(recommendations), userId, timeWindow))
	return nil
}

// GetRecommendations retrieves the stored recommendations for a user and
// window, in stored order.
func GetRecommendations(userId, timeWindow string) ([]model.Recommendation, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		return nil, fetchError(userId, "Failed to get db client for fetching recommendations", err)
	}
	defer dbClient.Close()

	query := `SELECT recommendation_id, type, content_id, title, rationale, decision_trace, shown_at
				FROM recommendations WHERE user_id = $1 AND time_window = $2 ORDER BY shown_at, recommendation_id`
	results, err := dbClient.ExecuteQuery(query, userId, timeWindow)
	if err != nil {
		return nil, fetchError(userId, "Failed to execute query for fetching recommendations", err)
	}

	recommendations := make([]model.Recommendation, 0, len(results))
	for _, row := range results {
		rec := model.Recommendation{
			UserId:     userId,
			TimeWindow: timeWindow,
		}
		rec.RecommendationId, _ = row["recommendation_id"].(string)
		rec.Type, _ = row["type"].(string)
		rec.ContentId, _ = row["content_id"].(string)
		rec.Title, _ = row["title"].(string)
		rec.Rationale, _ = row["rationale"].(string)
		if shownAt, ok := row["shown_at"].(time.Time); ok {
			rec.ShownAt = shownAt
		}
		if raw := rawJson(row["decision_trace"]); len(raw) > 0 {
			if err := json.Unmarshal(raw, &rec.DecisionTrace); err != nil {
				errorMsg := fmt.Sprintf("Failed to unmarshal decision trace of recommendation %s", rec.RecommendationId)
				logger.Debug(errorMsg, log.Error(err))
				return nil, errors2.NewServerError(errors2.ErrorMessage{
					Code:        errors2.UNMARSHAL_JSON.Code,
					Message:     errors2.UNMARSHAL_JSON.Message,
					Description: errorMsg,
				}, err)
			}
		}
		recommendations = append(recommendations, rec)
	}
	return recommendations, nil
}

func rawJson(raw interface{}) []byte {
	switch v := raw.(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	default:
		return nil
	}
}

func writeError(userId, message string, err error) error {
	errorMsg := fmt.Sprintf("%s of user: %s", message, userId)
	log.GetLogger().Debug(errorMsg, log.Error(err))
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.WRITE_RECOMMENDATION.Code,
		Message:     errors2.WRITE_RECOMMENDATION.Message,
		Description: errorMsg,
	}, err)
}

func fetchError(userId, message string, err error) error {
	errorMsg := fmt.Sprintf("%s of user: %s", message, userId)
	log.GetLogger().Debug(errorMsg, log.Error(err))
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.FETCH_RECOMMENDATIONS.Code,
		Message:     errors2.FETCH_RECOMMENDATIONS.Message,
		Description: errorMsg,
	}, err)
}
