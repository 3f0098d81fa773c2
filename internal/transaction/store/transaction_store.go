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
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/wso2/financial-insights-service/internal/system/database/provider"
	errors2 "github.com/wso2/financial-insights-service/internal/system/errors"
	"github.com/wso2/financial-insights-service/internal/system/log"
	"github.com/wso2/financial-insights-service/internal/transaction/model"
)

// ListTransactions retrieves all non-pending transactions for a user dated
// on or after the given time, ordered oldest first. Detectors rely on the
// date ordering for interval calculations.
func ListTransactions(userId string, since time.Time) ([]model.Transaction, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for fetching transactions of user: %s", userId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_TRANSACTIONS.Code,
			Message:     errors2.FETCH_TRANSACTIONS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT transaction_id, account_id, user_id, txn_date, amount, merchant_name, category,
				payment_channel, pending
				FROM transactions WHERE user_id = $1 AND txn_date >= $2 AND pending = FALSE
				ORDER BY txn_date ASC`
	results, err := dbClient.ExecuteQuery(query, userId, since)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to execute query for fetching transactions of user: %s", userId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_TRANSACTIONS.Code,
			Message:     errors2.FETCH_TRANSACTIONS.Message,
			Description: errorMsg,
		}, err)
	}

	transactions := make([]model.Transaction, 0, len(results))
	for _, row := range results {
		transactions = append(transactions, model.Transaction{
			TransactionId:  asString(row["transaction_id"]),
			AccountId:      asString(row["account_id"]),
			UserId:         asString(row["user_id"]),
			Date:           asTime(row["txn_date"]),
			Amount:         asFloat(row["amount"]),
			MerchantName:   asString(row["merchant_name"]),
			Category:       parseStringArray(row["category"]),
			PaymentChannel: asString(row["payment_channel"]),
			Pending:        asBool(row["pending"]),
		})
	}
	logger.Debug(fmt.Sprintf("Fetched %d transactions for user: %s", len(transactions), userId))
	return transactions, nil
}

// ListAccounts retrieves all accounts for a user.
func ListAccounts(userId string) ([]model.Account, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for fetching accounts of user: %s", userId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_ACCOUNTS.Code,
			Message:     errors2.FETCH_ACCOUNTS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT account_id, user_id, account_type, account_subtype, balance, credit_limit, mask
				FROM accounts WHERE user_id = $1`
	results, err := dbClient.ExecuteQuery(query, userId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to execute query for fetching accounts of user: %s", userId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_ACCOUNTS.Code,
			Message:     errors2.FETCH_ACCOUNTS.Message,
			Description: errorMsg,
		}, err)
	}

	accounts := make([]model.Account, 0, len(results))
	for _, row := range results {
		account := model.Account{
			AccountId: asString(row["account_id"]),
			UserId:    asString(row["user_id"]),
			Type:      asString(row["account_type"]),
			Subtype:   asString(row["account_subtype"]),
			Balance:   asFloat(row["balance"]),
			Mask:      asString(row["mask"]),
		}
		if row["credit_limit"] != nil {
			limit := asFloat(row["credit_limit"])
			account.CreditLimit = &limit
		}
		accounts = append(accounts, account)
	}
	logger.Debug(fmt.Sprintf("Fetched %d accounts for user: %s", len(accounts), userId))
	return accounts, nil
}

func asString(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

// asFloat converts a row value to float64. lib/pq returns NUMERIC columns
// as []byte.
func asFloat(raw interface{}) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case []byte:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func asBool(raw interface{}) bool {
	b, ok := raw.(bool)
	return ok && b
}

func asTime(raw interface{}) time.Time {
	if t, ok := raw.(time.Time); ok {
		return t
	}
	return time.Time{}
}

func parseStringArray(raw interface{}) []string {
	if raw == nil {
		return nil
	}

	var rawStr string
	switch v := raw.(type) {
	case []byte:
		rawStr = string(v)
	case string:
		rawStr = v
	default:
		return nil
	}

	rawStr = strings.Trim(rawStr, "{}")
	if rawStr == "" {
		return nil
	}

	items := strings.Split(rawStr, ",")
	var result []string
	for _, item := range items {
		clean := strings.TrimSpace(item)
		clean = strings.Trim(clean, `"`)
		result = append(result, clean)
	}

	return result
}
