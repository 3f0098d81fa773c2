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
	"net/http"

	"github.com/wso2/financial-insights-service/internal/system/authn"
	"github.com/wso2/financial-insights-service/internal/system/constants"
	"github.com/wso2/financial-insights-service/internal/system/utils"
	"github.com/wso2/financial-insights-service/internal/trace/provider"
)

type TraceHandler struct{}

func NewTraceHandler() *TraceHandler {
	return &TraceHandler{}
}

// GetTraces handles GET /traces
func (h *TraceHandler) GetTraces(w http.ResponseWriter, r *http.Request) {

	userId := r.URL.Query().Get("user_id")
	timeWindow := r.URL.Query().Get("time_window")
	if timeWindow == "" {
		timeWindow = constants.Window30d
	}

	if _, err := authn.AuthorizeUserAccess(r, userId); err != nil {
		utils.HandleError(w, err)
		return
	}

	service := provider.NewTraceProvider().GetTraceService()
	trail, err := service.GetAuditTrail(userId, timeWindow)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, trail)
}
