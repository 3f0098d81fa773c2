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

	"github.com/wso2/financial-insights-service/internal/signal/detect"
	"github.com/wso2/financial-insights-service/internal/signal/model"
	"github.com/wso2/financial-insights-service/internal/signal/store"
	"github.com/wso2/financial-insights-service/internal/system/constants"
	errors2 "github.com/wso2/financial-insights-service/internal/system/errors"
	"github.com/wso2/financial-insights-service/internal/system/log"
	txstore "github.com/wso2/financial-insights-service/internal/transaction/store"
)

// SignalServiceInterface defines the feature computation service.
type SignalServiceInterface interface {
	ComputeAllFeatures(userId, timeWindow string) (*model.FeatureSet, error)
	GetFeatureSet(userId, timeWindow string) (*model.FeatureSet, error)
}

// SignalService is the default implementation.
type SignalService struct{}

// GetSignalService returns a new instance.
func GetSignalService() SignalServiceInterface {
	return &SignalService{}
}

// ComputeAllFeatures runs every detector over the user's transactions and
// accounts for the window, and stores the four resulting signals atomically.
func (ss *SignalService) ComputeAllFeatures(userId, timeWindow string) (*model.FeatureSet, error) {

	if err := validateRequest(userId, timeWindow); err != nil {
		return nil, err
	}

	windowDays := constants.WindowDays[timeWindow]
	since := time.Now().UTC().AddDate(0, 0, -windowDays)

	transactions, err := txstore.ListTransactions(userId, since)
	if err != nil {
		return nil, err
	}
	accounts, err := txstore.ListAccounts(userId)
	if err != nil {
		return nil, err
	}

	subscriptions := detect.DetectSubscriptions(transactions)
	credit := detect.DetectCreditUtilization(accounts, transactions)
	savings := detect.DetectSavingsBehavior(accounts, transactions, windowDays)
	income := detect.DetectIncomeStability(accounts, transactions, windowDays)

	featureSet := model.FeatureSet{
		UserId:        userId,
		TimeWindow:    timeWindow,
		ComputedAt:    time.Now().UTC(),
		Subscriptions: &subscriptions,
		Credit:        &credit,
		Savings:       &savings,
		Income:        &income,
	}

	if err := store.WriteFeatureSet(featureSet); err != nil {
		return nil, err
	}
	log.GetLogger().Info(fmt.Sprintf("Computed features for user: %s window: %s", userId, timeWindow))
	return &featureSet, nil
}

// GetFeatureSet returns the stored signals for a user and window, or nil
// when nothing has been computed.
func (ss *SignalService) GetFeatureSet(userId, timeWindow string) (*model.FeatureSet, error) {

	if err := validateRequest(userId, timeWindow); err != nil {
		return nil, err
	}
	return store.GetFeatureSet(userId, timeWindow)
}

func validateRequest(userId, timeWindow string) error {

	if userId == "" {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.USER_ID_REQUIRED.Code,
			Message:     errors2.USER_ID_REQUIRED.Message,
			Description: "A user id must be provided.",
		}, http.StatusBadRequest)
	}
	if !constants.AllowedTimeWindows[timeWindow] {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_TIME_WINDOW.Code,
			Message:     errors2.INVALID_TIME_WINDOW.Message,
			Description: fmt.Sprintf("Unsupported time window: %s", timeWindow),
		}, http.StatusBadRequest)
	}
	return nil
}
