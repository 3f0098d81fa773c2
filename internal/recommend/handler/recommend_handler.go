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

	"github.com/wso2/financial-insights-service/internal/recommend/provider"
	"github.com/wso2/financial-insights-service/internal/system/authn"
	"github.com/wso2/financial-insights-service/internal/system/constants"
	"github.com/wso2/financial-insights-service/internal/system/errors"
	"github.com/wso2/financial-insights-service/internal/system/utils"
	"github.com/wso2/financial-insights-service/internal/system/workers"
)

type RecommendHandler struct{}

func NewRecommendHandler() *RecommendHandler {
	return &RecommendHandler{}
}

type generateRecommendationsRequest struct {
	UserId     string `json:"user_id"`
	TimeWindow string `json:"time_window"`
}

// GenerateRecommendations handles POST /recommendations/generate
func (h *RecommendHandler) GenerateRecommendations(w http.ResponseWriter, r *http.Request) {

	var request generateRecommendationsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: "Malformed recommendation generation request body.",
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}
	if request.TimeWindow == "" {
		request.TimeWindow = constants.Window30d
	}

	if _, err := authn.AuthorizeUserAccess(r, request.UserId); err != nil {
		utils.HandleError(w, err)
		return
	}

	service := provider.NewRecommendProvider().GetRecommendationService()
	recommendations, err := service.GenerateRecommendations(request.UserId, request.TimeWindow)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, recommendations)
}

// GetRecommendations handles GET /recommendations
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {

	userId := r.URL.Query().Get("user_id")
	timeWindow := r.URL.Query().Get("time_window")
	if timeWindow == "" {
		timeWindow = constants.Window30d
	}

	if _, err := authn.AuthorizeUserAccess(r, userId); err != nil {
		utils.HandleError(w, err)
		return
	}

	service := provider.NewRecommendProvider().GetRecommendationService()
	recommendations, err := service.GetRecommendations(userId, timeWindow)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, recommendations)
}

type refreshPipelineRequest struct {
	UserIds    []string `json:"user_ids"`
	TimeWindow string   `json:"time_window"`
}

// RefreshPipeline handles POST /pipeline/refresh. Operator-only: enqueues a
// full pipeline run (features, persona, recommendations) per user.
func (h *RecommendHandler) RefreshPipeline(w http.ResponseWriter, r *http.Request) {

	principal, err := authn.ValidateRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if !principal.IsOperator() {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.UNAUTHORIZED.Code,
			Message:     errors.UNAUTHORIZED.Message,
			Description: "Pipeline refresh requires the operator role.",
		}, http.StatusForbidden))
		return
	}

	var request refreshPipelineRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: "Malformed pipeline refresh request body.",
		}, http.StatusBadRequest))
		return
	}
	if len(request.UserIds) == 0 {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.USER_ID_REQUIRED.Code,
			Message:     errors.USER_ID_REQUIRED.Message,
			Description: "At least one user id must be provided.",
		}, http.StatusBadRequest))
		return
	}
	if request.TimeWindow == "" {
		request.TimeWindow = constants.Window30d
	}
	if !constants.AllowedTimeWindows[request.TimeWindow] {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.INVALID_TIME_WINDOW.Code,
			Message:     errors.INVALID_TIME_WINDOW.Message,
			Description: "Unsupported time window: " + request.TimeWindow,
		}, http.StatusBadRequest))
		return
	}

	for _, userId := range request.UserIds {
		workers.EnqueueRefresh(workers.RefreshJob{UserID: userId, TimeWindow: request.TimeWindow})
	}
	utils.WriteJSONResponse(w, http.StatusAccepted, map[string]int{"enqueued": len(request.UserIds)})
}
