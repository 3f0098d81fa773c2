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

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wso2/financial-insights-service/internal/insight/model"
	"github.com/wso2/financial-insights-service/internal/insight/provider"
	"github.com/wso2/financial-insights-service/internal/system/authn"
	"github.com/wso2/financial-insights-service/internal/system/constants"
	"github.com/wso2/financial-insights-service/internal/system/errors"
	"github.com/wso2/financial-insights-service/internal/system/utils"
)

type InsightHandler struct{}

func NewInsightHandler() *InsightHandler {
	return &InsightHandler{}
}

// ProjectBalanceTransfer handles POST /insights/balance-transfer
func (h *InsightHandler) ProjectBalanceTransfer(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.ValidateRequest(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	var input model.BalanceTransferInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.HandleError(w, badRequest("Malformed balance transfer request body."))
		return
	}
	if input.CurrentBalance <= 0 {
		utils.HandleError(w, badRequest("current_balance must be positive."))
		return
	}

	service := provider.NewInsightProvider().GetInsightService()
	utils.WriteJSONResponse(w, http.StatusOK, service.ProjectBalanceTransfer(input))
}

type subscriptionSavingsRequest struct {
	UserId     string `json:"user_id"`
	TimeWindow string `json:"time_window"`
	Selected   []int  `json:"selected"`
}

// SubscriptionSavings handles POST /insights/subscription-savings
func (h *InsightHandler) SubscriptionSavings(w http.ResponseWriter, r *http.Request) {

	var request subscriptionSavingsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.HandleError(w, badRequest("Malformed subscription savings request body."))
		return
	}
	if request.TimeWindow == "" {
		request.TimeWindow = constants.Window30d
	}

	if _, err := authn.AuthorizeUserAccess(r, request.UserId); err != nil {
		utils.HandleError(w, err)
		return
	}

	service := provider.NewInsightProvider().GetInsightService()
	savings, err := service.SubscriptionSavings(request.UserId, request.TimeWindow, request.Selected)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, savings)
}

type savingsGoalRequest struct {
	CurrentSavings float64 `json:"current_savings"`
	GoalAmount     float64 `json:"goal_amount"`
	MonthlyRate    float64 `json:"monthly_savings_rate"`
}

// SavingsGoalTimeline handles POST /insights/savings-goal
func (h *InsightHandler) SavingsGoalTimeline(w http.ResponseWriter, r *http.Request) {

	if _, err := authn.ValidateRequest(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	var request savingsGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.HandleError(w, badRequest("Malformed savings goal request body."))
		return
	}

	service := provider.NewInsightProvider().GetInsightService()
	timeline := service.SavingsGoalTimeline(request.CurrentSavings, request.GoalAmount, request.MonthlyRate)
	utils.WriteJSONResponse(w, http.StatusOK, timeline)
}

func badRequest(description string) error {
	return errors.NewClientError(errors.ErrorMessage{
		Code:        errors.BAD_REQUEST.Code,
		Message:     errors.BAD_REQUEST.Message,
		Description: description,
	}, http.StatusBadRequest)
}
