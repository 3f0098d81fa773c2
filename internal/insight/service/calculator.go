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
	"math"

	"github.com/wso2/financial-insights-service/internal/insight/model"
	signalmodel "github.com/wso2/financial-insights-service/internal/signal/model"
)

const (
	defaultTransferFeePercent = 5.0
	defaultIntroPeriodMonths  = 18
	// Regular APR assumed once an introductory period ends.
	postIntroAPR = 20.0
	// Payoff simulations are capped at ten years.
	maxSimulationMonths = 120

	minPaymentBalanceRate = 0.02
	minPaymentFloor       = 25.0
)

// ProjectBalanceTransfer simulates paying off the balance on the current
// card versus transferring it to a 0% introductory APR card, month by
// month, and reports the interest saved.
func ProjectBalanceTransfer(input model.BalanceTransferInput) model.BalanceTransferProjection {

	feePercent := input.TransferFeePercent
	if feePercent <= 0 {
		feePercent = defaultTransferFeePercent
	}
	introMonths := input.IntroPeriodMonths
	if introMonths <= 0 {
		introMonths = defaultIntroPeriodMonths
	}

	transferFee := input.CurrentBalance * (feePercent / 100.0)
	newBalance := input.CurrentBalance + transferFee

	monthlyPayment := input.CurrentMonthlyPayment + input.AdditionalMonthlyPayment
	if monthlyPayment <= 0 {
		monthlyPayment = math.Max(newBalance*minPaymentBalanceRate, minPaymentFloor)
	}

	payoffMonths := 1
	if monthlyPayment < newBalance {
		payoffMonths = int(math.Ceil(newBalance / monthlyPayment))
	}
	payoffMonthsAtIntro := payoffMonths
	if payoffMonthsAtIntro > introMonths {
		payoffMonthsAtIntro = introMonths
	}
	remainingBalance := math.Max(0, newBalance-monthlyPayment*float64(payoffMonthsAtIntro))

	totalInterestCurrent, monthsCurrent := simulatePayoff(input.CurrentBalance, input.CurrentAPR, monthlyPayment)

	totalInterestNew := 0.0
	if remainingBalance > 0 {
		totalInterestNew, _ = simulatePayoff(remainingBalance, postIntroAPR, monthlyPayment)
	}

	monthlySavings := 0.0
	if payoffMonthsAtIntro > 0 {
		monthlySavings = input.CurrentBalance * monthlyAPR(input.CurrentAPR)
	}

	return model.BalanceTransferProjection{
		TransferFee:          round2(transferFee),
		NewBalance:           round2(newBalance),
		MonthlyPaymentNeeded: round2(monthlyPayment),
		PayoffMonths:         payoffMonthsAtIntro,
		PayoffMonthsCurrent:  monthsCurrent,
		TotalInterestCurrent: round2(totalInterestCurrent),
		TotalInterestNew:     round2(totalInterestNew),
		TotalSavings:         round2(totalInterestCurrent - totalInterestNew - transferFee),
		MonthlySavings:       round2(monthlySavings),
	}
}

// CalculateSubscriptionSavings sums the monthly and yearly savings from
// canceling the selected recurring merchants. Indices outside the list are
// ignored.
func CalculateSubscriptionSavings(merchants []signalmodel.RecurringMerchant, selected []int) model.SubscriptionSavings {

	monthly := 0.0
	canceled := 0
	for _, index := range selected {
		if index < 0 || index >= len(merchants) {
			continue
		}
		monthly += merchants[index].MonthlyAmount
		canceled++
	}

	return model.SubscriptionSavings{
		MonthlySavings: round2(monthly),
		YearlySavings:  round2(monthly * 12),
		CanceledCount:  canceled,
	}
}

// CalculateSavingsGoalTimeline projects the months needed to reach a goal
// from the current balance at a steady monthly savings rate.
func CalculateSavingsGoalTimeline(currentSavings, goalAmount, monthlyRate float64) model.SavingsGoalTimeline {

	amountNeeded := math.Max(0, goalAmount-currentSavings)

	if monthlyRate <= 0 {
		return model.SavingsGoalTimeline{
			AmountNeeded: round2(amountNeeded),
			IsAchievable: false,
		}
	}

	months := int(math.Ceil(amountNeeded / monthlyRate))
	years := round2(float64(months) / 12.0)
	return model.SavingsGoalTimeline{
		MonthsNeeded: &months,
		YearsNeeded:  &years,
		AmountNeeded: round2(amountNeeded),
		IsAchievable: true,
	}
}

// simulatePayoff walks a balance month by month at the given APR and
// payment, returning the interest accrued and the months taken.
func simulatePayoff(balance, apr, monthlyPayment float64) (float64, int) {

	rate := monthlyAPR(apr)
	totalInterest := 0.0
	months := 0

	for balance > 0.01 && months < maxSimulationMonths {
		interest := balance * rate
		totalInterest += interest
		balance = balance + interest - monthlyPayment
		if balance < 0 {
			balance = 0
		}
		months++
	}
	return totalInterest, months
}

func monthlyAPR(apr float64) float64 {
	return apr / 12.0 / 100.0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
