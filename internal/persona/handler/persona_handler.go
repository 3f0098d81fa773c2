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

	"github.com/wso2/financial-insights-service/internal/persona/provider"
	"github.com/wso2/financial-insights-service/internal/system/authn"
	"github.com/wso2/financial-insights-service/internal/system/constants"
	"github.com/wso2/financial-insights-service/internal/system/errors"
	"github.com/wso2/financial-insights-service/internal/system/utils"
)

type PersonaHandler struct{}

func NewPersonaHandler() *PersonaHandler {
	return &PersonaHandler{}
}

type assignPersonaRequest struct {
	UserId     string `json:"user_id"`
	TimeWindow string `json:"time_window"`
}

// AssignPersona handles POST /personas/assign
func (h *PersonaHandler) AssignPersona(w http.ResponseWriter, r *http.Request) {

	var request assignPersonaRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: "Malformed persona assignment request body.",
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

	service := provider.NewPersonaProvider().GetPersonaService()
	assignment, err := service.AssignPersona(request.UserId, request.TimeWindow)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, assignment)
}

// GetPersona handles GET /personas
func (h *PersonaHandler) GetPersona(w http.ResponseWriter, r *http.Request) {

	userId := r.URL.Query().Get("user_id")
	timeWindow := r.URL.Query().Get("time_window")
	if timeWindow == "" {
		timeWindow = constants.Window30d
	}

	if _, err := authn.AuthorizeUserAccess(r, userId); err != nil {
		utils.HandleError(w, err)
		return
	}

	service := provider.NewPersonaProvider().GetPersonaService()
	assignment, err := service.GetPersonaAssignment(userId, timeWindow)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, assignment)
}
