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

package workers

import (
	"fmt"
	"sync"

	personaProvider "github.com/wso2/financial-insights-service/internal/persona/provider"
	recommendProvider "github.com/wso2/financial-insights-service/internal/recommend/provider"
	signalProvider "github.com/wso2/financial-insights-service/internal/signal/provider"
	"github.com/wso2/financial-insights-service/internal/system/config"
	"github.com/wso2/financial-insights-service/internal/system/constants"
	"github.com/wso2/financial-insights-service/internal/system/log"
)

// RefreshJob asks the worker to run the full pipeline for one user:
// feature computation, persona assignment and recommendation generation.
type RefreshJob struct {
	UserID     string
	TimeWindow string
}

var RefreshQueue chan RefreshJob
var refreshOnce sync.Once

// StartRefreshWorker starts the background pipeline worker. A failing job
// never stops the worker; the next user's refresh proceeds regardless.
func StartRefreshWorker() {

	refreshOnce.Do(func() {
		queueSize := config.GetFISRuntime().Config.Worker.QueueSize
		if queueSize <= 0 {
			queueSize = constants.DefaultQueueSize
		}
		RefreshQueue = make(chan RefreshJob, queueSize)

		go func() {
			for job := range RefreshQueue {
				runRefresh(job)
			}
		}()
	})
}

// EnqueueRefresh schedules a pipeline run for a user. It is a no-op when the
// worker has not been started, so handlers can call it unconditionally.
func EnqueueRefresh(job RefreshJob) {
	if RefreshQueue != nil {
		RefreshQueue <- job
	}
}

func runRefresh(job RefreshJob) {

	logger := log.GetLogger()
	logger.Info(fmt.Sprintf("Starting pipeline refresh for user: %s", job.UserID))

	timeWindow := job.TimeWindow
	if timeWindow == "" {
		timeWindow = constants.Window180d
	}

	signalService := signalProvider.NewSignalProvider().GetSignalService()
	if _, err := signalService.ComputeAllFeatures(job.UserID, timeWindow); err != nil {
		logger.Error(fmt.Sprintf("Feature computation failed for user: %s", job.UserID), log.Error(err))
		return
	}

	personaService := personaProvider.NewPersonaProvider().GetPersonaService()
	if _, err := personaService.AssignPersona(job.UserID, timeWindow); err != nil {
		logger.Error(fmt.Sprintf("Persona assignment failed for user: %s", job.UserID), log.Error(err))
		return
	}

	recommendationService := recommendProvider.NewRecommendProvider().GetRecommendationService()
	if _, err := recommendationService.GenerateRecommendations(job.UserID, timeWindow); err != nil {
		logger.Error(fmt.Sprintf("Recommendation generation failed for user: %s", job.UserID), log.Error(err))
		return
	}

	logger.Info(fmt.Sprintf("Pipeline refresh completed for user: %s", job.UserID))
}
