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

package managers

import (
	"net/http"

	insighthandler "github.com/wso2/financial-insights-service/internal/insight/handler"
	personahandler "github.com/wso2/financial-insights-service/internal/persona/handler"
	recommendhandler "github.com/wso2/financial-insights-service/internal/recommend/handler"
	signalhandler "github.com/wso2/financial-insights-service/internal/signal/handler"
	"github.com/wso2/financial-insights-service/internal/system/database/provider"
	tracehandler "github.com/wso2/financial-insights-service/internal/trace/handler"
)

type ServiceManagerInterface interface {
	RegisterServices(apiBasePath string) error
}

type ServiceManager struct {
	mux *http.ServeMux
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux) ServiceManagerInterface {

	return &ServiceManager{
		mux: mux,
	}
}

// RegisterServices mounts every API handler under the given base path.
func (sm *ServiceManager) RegisterServices(apiBasePath string) error {

	signalH := signalhandler.NewSignalHandler()
	personaH := personahandler.NewPersonaHandler()
	recommendH := recommendhandler.NewRecommendHandler()
	traceH := tracehandler.NewTraceHandler()
	insightH := insighthandler.NewInsightHandler()

	sm.mux.HandleFunc("POST "+apiBasePath+"/features/compute", signalH.ComputeFeatures)
	sm.mux.HandleFunc("GET "+apiBasePath+"/features", signalH.GetFeatures)

	sm.mux.HandleFunc("POST "+apiBasePath+"/personas/assign", personaH.AssignPersona)
	sm.mux.HandleFunc("GET "+apiBasePath+"/personas", personaH.GetPersona)

	sm.mux.HandleFunc("POST "+apiBasePath+"/recommendations/generate", recommendH.GenerateRecommendations)
	sm.mux.HandleFunc("GET "+apiBasePath+"/recommendations", recommendH.GetRecommendations)
	sm.mux.HandleFunc("POST "+apiBasePath+"/pipeline/refresh", recommendH.RefreshPipeline)

	sm.mux.HandleFunc("GET "+apiBasePath+"/traces", traceH.GetTraces)

	sm.mux.HandleFunc("POST "+apiBasePath+"/insights/balance-transfer", insightH.ProjectBalanceTransfer)
	sm.mux.HandleFunc("POST "+apiBasePath+"/insights/subscription-savings", insightH.SubscriptionSavings)
	sm.mux.HandleFunc("POST "+apiBasePath+"/insights/savings-goal", insightH.SavingsGoalTimeline)

	sm.mux.HandleFunc("GET /healthz", healthCheck)

	return nil
}

// healthCheck reports liveness and verifies database connectivity.
func healthCheck(w http.ResponseWriter, r *http.Request) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		http.Error(w, `{"status":"unhealthy"}`, http.StatusServiceUnavailable)
		return
	}
	defer dbClient.Close()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}
