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
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/wso2/financial-insights-service/internal/signal/model"
	"github.com/wso2/financial-insights-service/internal/system/constants"
	"github.com/wso2/financial-insights-service/internal/system/database/provider"
	errors2 "github.com/wso2/financial-insights-service/internal/system/errors"
	"github.com/wso2/financial-insights-service/internal/system/log"
)

// WriteFeatureSet replaces all stored signals for the user and window in a
// single transaction. Recomputation is idempotent: the previous rows are
// deleted before the new ones are inserted.
func WriteFeatureSet(featureSet model.FeatureSet) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for writing signals of user: %s", featureSet.UserId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.WRITE_SIGNALS.Code,
			Message:     errors2.WRITE_SIGNALS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	payloads := map[string]interface{}{
		constants.SignalSubscriptions:     featureSet.Subscriptions,
		constants.SignalCreditUtilization: featureSet.Credit,
		constants.SignalSavingsBehavior:   featureSet.Savings,
		constants.SignalIncomeStability:   featureSet.Income,
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for writing signals of user: %s", featureSet.UserId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.WRITE_SIGNALS.Code,
			Message:     errors2.WRITE_SIGNALS.Message,
			Description: errorMsg,
		}, err)
	}

	deleteQuery := `DELETE FROM computed_features WHERE user_id = $1 AND time_window = $2`
	insertQuery := `INSERT INTO computed_features (user_id, time_window, signal_type, signal_data, computed_at)
					VALUES ($1, $2, $3, $4, $5)`

	if _, err = tx.Exec(deleteQuery, featureSet.UserId, featureSet.TimeWindow); err != nil {
		return rollbackSignalWrite(tx, featureSet.UserId, err)
	}

	for _, signalType := range constants.AllSignalTypes {
		payloadJson, err := json.Marshal(payloads[signalType])
		if err != nil {
			errorMsg := fmt.Sprintf("Failed to marshal %s signal for user: %s", signalType, featureSet.UserId)
			logger.Debug(errorMsg, log.Error(err))
			if errRollback := tx.Rollback(); errRollback != nil {
				logger.Debug("Failed to rollback signal write", log.Error(errRollback))
			}
			return errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.MARSHAL_JSON.Code,
				Message:     errors2.MARSHAL_JSON.Message,
				Description: errorMsg,
			}, err)
		}
		if _, err = tx.Exec(insertQuery, featureSet.UserId, featureSet.TimeWindow, signalType,
			string(payloadJson), featureSet.ComputedAt); err != nil {
			return rollbackSignalWrite(tx, featureSet.UserId, err)
		}
	}

	logger.Info(fmt.Sprintf("Stored %d signals for user: %s window: %s",
		len(constants.AllSignalTypes), featureSet.UserId, featureSet.TimeWindow))
	return tx.Commit()
}

// GetFeatureSet retrieves the stored signals for a user and window. Returns
// nil when no signals have been computed yet.
func GetFeatureSet(userId string, timeWindow string) (*model.FeatureSet, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for fetching signals of user: %s", userId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_SIGNALS.Code,
			Message:     errors2.FETCH_SIGNALS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT signal_type, signal_data, computed_at FROM computed_features
				WHERE user_id = $1 AND time_window = $2`
	results, err := dbClient.ExecuteQuery(query, userId, timeWindow)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to execute query for fetching signals of user: %s", userId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_SIGNALS.Code,
			Message:     errors2.FETCH_SIGNALS.Message,
			Description: errorMsg,
		}, err)
	}

	if len(results) == 0 {
		logger.Debug(fmt.Sprintf("No signals found for user: %s window: %s", userId, timeWindow))
		return nil, nil
	}

	featureSet := model.FeatureSet{UserId: userId, TimeWindow: timeWindow}
	for _, row := range results {
		signalType, _ := row["signal_type"].(string)
		payload := rawJson(row["signal_data"])
		if computedAt, ok := row["computed_at"].(time.Time); ok {
			featureSet.ComputedAt = computedAt
		}
		if err := unmarshalSignal(&featureSet, signalType, payload); err != nil {
			errorMsg := fmt.Sprintf("Failed to unmarshal %s signal for user: %s", signalType, userId)
			logger.Debug(errorMsg, log.Error(err))
			return nil, errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.UNMARSHAL_JSON.Code,
				Message:     errors2.UNMARSHAL_JSON.Message,
				Description: errorMsg,
			}, err)
		}
	}
	return &featureSet, nil
}

func unmarshalSignal(featureSet *model.FeatureSet, signalType string, payload []byte) error {

	if len(payload) == 0 {
		return nil
	}
	switch signalType {
	case constants.SignalSubscriptions:
		featureSet.Subscriptions = &model.SubscriptionSignal{}
		return json.Unmarshal(payload, featureSet.Subscriptions)
	case constants.SignalCreditUtilization:
		featureSet.Credit = &model.CreditSignal{}
		return json.Unmarshal(payload, featureSet.Credit)
	case constants.SignalSavingsBehavior:
		featureSet.Savings = &model.SavingsSignal{}
		return json.Unmarshal(payload, featureSet.Savings)
	case constants.SignalIncomeStability:
		featureSet.Income = &model.IncomeSignal{}
		return json.Unmarshal(payload, featureSet.Income)
	}
	return nil
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

func rollbackSignalWrite(tx *sql.Tx, userId string, err error) error {

	logger := log.GetLogger()
	if errRollback := tx.Rollback(); errRollback != nil {
		logger.Debug("Failed to rollback signal write", log.Error(errRollback))
	}
	errorMsg := fmt.Sprintf("Failed to execute query for writing signals of user: %s", userId)
	logger.Debug(errorMsg, log.Error(err))
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.WRITE_SIGNALS.Code,
		Message:     errors2.WRITE_SIGNALS.Message,
		Description: errorMsg,
	}, err)
}
