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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/financial-insights-service/internal/insight/model"
	signalmodel "github.com/wso2/financial-insights-service/internal/signal/model"
)

func TestProjectBalanceTransfer(t *testing.T) {

	t.Run("TypicalBalance", func(t *testing.T) {
		projection := ProjectBalanceTransfer(model.BalanceTransferInput{
			CurrentBalance:        5000,
			CurrentAPR:            24.99,
			CurrentMonthlyPayment: 500,
		})

		assert.Equal(t, 250.0, projection.TransferFee)
		assert.Equal(t, 5250.0, projection.NewBalance)
		assert.Equal(t, 500.0, projection.MonthlyPaymentNeeded)
		// ceil(5250 / 500) = 11 months, inside the 18 month intro period.
		assert.Equal(t, 11, projection.PayoffMonths)
		assert.Equal(t, 0.0, projection.TotalInterestNew)
		assert.Greater(t, projection.TotalInterestCurrent, 0.0)
		assert.InDelta(t, projection.TotalInterestCurrent-projection.TotalInterestNew-projection.TransferFee,
			projection.TotalSavings, 0.011)
	})

	t.Run("MinimumPaymentFallback", func(t *testing.T) {
		projection := ProjectBalanceTransfer(model.BalanceTransferInput{
			CurrentBalance: 500,
			CurrentAPR:     18,
		})
		// 2% of $525 is below the $25 floor.
		assert.Equal(t, 25.0, projection.MonthlyPaymentNeeded)
	})

	t.Run("PaymentCoversBalance", func(t *testing.T) {
		projection := ProjectBalanceTransfer(model.BalanceTransferInput{
			CurrentBalance:        1000,
			CurrentAPR:            20,
			CurrentMonthlyPayment: 2000,
		})
		assert.Equal(t, 1, projection.PayoffMonths)
	})

	t.Run("BalanceOutlastsIntroPeriod", func(t *testing.T) {
		projection := ProjectBalanceTransfer(model.BalanceTransferInput{
			CurrentBalance:        20000,
			CurrentAPR:            24,
			CurrentMonthlyPayment: 400,
			IntroPeriodMonths:     12,
		})
		assert.Equal(t, 12, projection.PayoffMonths)
		assert.Greater(t, projection.TotalInterestNew, 0.0)
	})
}

func TestCalculateSubscriptionSavings(t *testing.T) {

	merchants := []signalmodel.RecurringMerchant{
		{MerchantName: "Streamly", MonthlyAmount: 15.99},
		{MerchantName: "Gym Co", MonthlyAmount: 45.00},
		{MerchantName: "Cloud Storage", MonthlyAmount: 9.99},
	}

	t.Run("SelectedSubset", func(t *testing.T) {
		savings := CalculateSubscriptionSavings(merchants, []int{0, 2})
		assert.Equal(t, 25.98, savings.MonthlySavings)
		assert.Equal(t, 311.76, savings.YearlySavings)
		assert.Equal(t, 2, savings.CanceledCount)
	})

	t.Run("OutOfRangeIndicesIgnored", func(t *testing.T) {
		savings := CalculateSubscriptionSavings(merchants, []int{1, 7, -1})
		assert.Equal(t, 45.0, savings.MonthlySavings)
		assert.Equal(t, 1, savings.CanceledCount)
	})

	t.Run("NothingSelected", func(t *testing.T) {
		savings := CalculateSubscriptionSavings(merchants, nil)
		assert.Equal(t, 0.0, savings.MonthlySavings)
		assert.Equal(t, 0, savings.CanceledCount)
	})
}

func TestCalculateSavingsGoalTimeline(t *testing.T) {

	t.Run("Achievable", func(t *testing.T) {
		timeline := CalculateSavingsGoalTimeline(2000, 5000, 250)
		require.True(t, timeline.IsAchievable)
		require.NotNil(t, timeline.MonthsNeeded)
		assert.Equal(t, 12, *timeline.MonthsNeeded)
		assert.Equal(t, 1.0, *timeline.YearsNeeded)
		assert.Equal(t, 3000.0, timeline.AmountNeeded)
	})

	t.Run("GoalAlreadyReached", func(t *testing.T) {
		timeline := CalculateSavingsGoalTimeline(6000, 5000, 100)
		require.True(t, timeline.IsAchievable)
		assert.Equal(t, 0, *timeline.MonthsNeeded)
		assert.Equal(t, 0.0, timeline.AmountNeeded)
	})

	t.Run("ZeroRateNotAchievable", func(t *testing.T) {
		timeline := CalculateSavingsGoalTimeline(1000, 5000, 0)
		assert.False(t, timeline.IsAchievable)
		assert.Nil(t, timeline.MonthsNeeded)
		assert.Nil(t, timeline.YearsNeeded)
		assert.Equal(t, 4000.0, timeline.AmountNeeded)
	})
}
