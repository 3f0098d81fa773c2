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

	"github.com/wso2/financial-insights-service/internal/insight/model"
	signalstore "github.com/wso2/financial-insights-service/internal/signal/store"
	"github.com/wso2/financial-insights-service/internal/system/constants"
	errors2 "github.com/wso2/financial-insights-service/internal/system/errors"
)

// InsightServiceInterface defines the financial calculators backing the
// education surface.
type InsightServiceInterface interface {
	ProjectBalanceTransfer(input model.BalanceTransferInput) model.BalanceTransferProjection
	SubscriptionSavings(userId, timeWindow string, selected []int) (*model.SubscriptionSavings, error)
	SavingsGoalTimeline(currentSavings, goalAmount, monthlyRate float64) model.SavingsGoalTimeline
}

// InsightService is the default implementation.
type InsightService struct{}

// GetInsightService returns a new instance.
func GetInsightService() InsightServiceInterface {
	return &InsightService{}
}

// ProjectBalanceTransfer runs the balance transfer projection.
func (is *InsightService) ProjectBalanceTransfer(input model.BalanceTransferInput) model.BalanceTransferProjection {
	return ProjectBalanceTransfer(input)
}

// SubscriptionSavings computes cancellation savings against the user's
// detected recurring merchants for the window.
func (is *InsightService) SubscriptionSavings(userId, timeWindow string, selected []int) (*model.SubscriptionSavings, error) {

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

	featureSet, err := signalstore.GetFeatureSet(userId, timeWindow)
	if err != nil {
		return nil, err
	}

	savings := model.SubscriptionSavings{}
	if featureSet != nil && featureSet.Subscriptions != nil {
		savings = CalculateSubscriptionSavings(featureSet.Subscriptions.RecurringMerchants, selected)
	}
	return &savings, nil
}

// SavingsGoalTimeline runs the savings goal projection.
func (is *InsightService) SavingsGoalTimeline(currentSavings, goalAmount, monthlyRate float64) model.SavingsGoalTimeline {
	return CalculateSavingsGoalTimeline(currentSavings, goalAmount, monthlyRate)
}
