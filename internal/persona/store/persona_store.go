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
	"github.com/wso2/financial-insights-service/internal/persona/model"
	"github.com/wso2/financial-insights-service/internal/system/database/provider"
	errors2 "github.com/wso2/financial-insights-service/internal/system/errors"
	"github.com/wso2/financial-insights-service/internal/system/log"
)

// ReplacePersonaAssignment replaces the stored assignment for the user and
// window in one transaction. When the document store is enabled the
// assignment is mirrored there as well.
func ReplacePersonaAssignment(assignment model.PersonaAssignment) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for writing persona assignment of user: %s", assignment.UserId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.WRITE_PERSONA_ASSIGNMENT.Code,
			Message:     errors2.WRITE_PERSONA_ASSIGNMENT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	criteriaJson, err := json.Marshal(assignment.CriteriaMet)
	if err != nil {
		return marshalError("criteria_met", assignment.UserId, err)
	}
	scoresJson, err := json.Marshal(assignment.MatchScores)
	if err != nil {
		return marshalError("match_scores", assignment.UserId, err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for writing persona assignment of user: %s", assignment.UserId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.WRITE_PERSONA_ASSIGNMENT.Code,
			Message:     errors2.WRITE_PERSONA_ASSIGNMENT.Message,
			Description: errorMsg,
		}, err)
	}

	deleteQuery := `DELETE FROM persona_assignments WHERE user_id = $1 AND time_window = $2`
	insertQuery := `INSERT INTO persona_assignments (user_id, time_window, persona, match_scores, criteria_met, assigned_at)
					VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err = tx.Exec(deleteQuery, assignment.UserId, assignment.TimeWindow); err == nil {
		_, err = tx.Exec(insertQuery, assignment.UserId, assignment.TimeWindow, assignment.PrimaryPersona,
			string(scoresJson), string(criteriaJson), assignment.AssignedAt)
	}
	if err != nil {
		if errRollback := tx.Rollback(); errRollback != nil {
			logger.Debug("Failed to rollback persona assignment write", log.Error(errRollback))
		}
		errorMsg := fmt.Sprintf("Failed to execute query for writing persona assignment of user: %s", assignment.UserId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.WRITE_PERSONA_ASSIGNMENT.Code,
			Message:     errors2.WRITE_PERSONA_ASSIGNMENT.Message,
			Description: errorMsg,
		}, err)
	}
	if err = tx.Commit(); err != nil {
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.WRITE_PERSONA_ASSIGNMENT.Code,
			Message:     errors2.WRITE_PERSONA_ASSIGNMENT.Message,
			Description: fmt.Sprintf("Failed to commit persona assignment of user: %s", assignment.UserId),
		}, err)
	}

	if provider.DocumentStoreEnabled() {
		if err := mirrorAssignment(assignment); err != nil {
			// The relational write is authoritative; a mirror failure is logged
			// and does not fail the assignment.
			logger.Warn(fmt.Sprintf("Failed to mirror persona assignment of user: %s", assignment.UserId),
				log.Error(err))
		}
	}

	logger.Info(fmt.Sprintf("Stored persona assignment %s for user: %s window: %s",
		assignment.PrimaryPersona, assignment.UserId, assignment.TimeWindow))
	return nil
}

// GetPersonaAssignment retrieves the assignment for a user and window, or
// nil when none exists.
func GetPersonaAssignment(userId, timeWindow string) (*model.PersonaAssignment, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for fetching persona assignment of user: %s", userId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_PERSONA_ASSIGNMENT.Code,
			Message:     errors2.FETCH_PERSONA_ASSIGNMENT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT persona, match_scores, criteria_met, assigned_at FROM persona_assignments
				WHERE user_id = $1 AND time_window = $2`
	results, err := dbClient.ExecuteQuery(query, userId, timeWindow)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to execute query for fetching persona assignment of user: %s", userId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_PERSONA_ASSIGNMENT.Code,
			Message:     errors2.FETCH_PERSONA_ASSIGNMENT.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		logger.Debug(fmt.Sprintf("No persona assignment found for user: %s window: %s", userId, timeWindow))
		return nil, nil
	}

	row := results[0]
	assignment := model.PersonaAssignment{
		UserId:     userId,
		TimeWindow: timeWindow,
	}
	assignment.PrimaryPersona, _ = row["persona"].(string)
	if assignedAt, ok := row["assigned_at"].(time.Time); ok {
		assignment.AssignedAt = assignedAt
	}
	if raw := rawJson(row["match_scores"]); len(raw) > 0 {
		if err := json.Unmarshal(raw, &assignment.MatchScores); err != nil {
			return nil, unmarshalError("match_scores", userId, err)
		}
	}
	if raw := rawJson(row["criteria_met"]); len(raw) > 0 {
		if err := json.Unmarshal(raw, &assignment.CriteriaMet); err != nil {
			return nil, unmarshalError("criteria_met", userId, err)
		}
	}
	return &assignment, nil
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

func marshalError(field, userId string, err error) error {
	errorMsg := fmt.Sprintf("Failed to marshal %s for persona assignment of user: %s", field, userId)
	log.GetLogger().Debug(errorMsg, log.Error(err))
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.MARSHAL_JSON.Code,
		Message:     errors2.MARSHAL_JSON.Message,
		Description: errorMsg,
	}, err)
}

func unmarshalError(field, userId string, err error) error {
	errorMsg := fmt.Sprintf("Failed to unmarshal %s for persona assignment of user: %s", field, userId)
	log.GetLogger().Debug(errorMsg, log.Error(err))
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.UNMARSHAL_JSON.Code,
		Message:     errors2.UNMARSHAL_JSON.Message,
		Description: errorMsg,
	}, err)
}
