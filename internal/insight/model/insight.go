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

package model

// BalanceTransferInput parameterizes a balance transfer projection.
// Rates are percentages, for example 24.99 for 24.99% APR.
type BalanceTransferInput struct {
	CurrentBalance           float64 `json:"current_balance"`
	CurrentAPR               float64 `json:"current_apr"`
	TransferFeePercent       float64 `json:"transfer_fee_percent"`
	IntroPeriodMonths        int     `json:"intro_period_months"`
	CurrentMonthlyPayment    float64 `json:"current_monthly_payment"`
	AdditionalMonthlyPayment float64 `json:"additional_monthly_payment"`
}

// BalanceTransferProjection compares paying down a balance on the current
// card against transferring it to an introductory 0% APR card.
type BalanceTransferProjection struct {
	TransferFee          float64 `json:"transfer_fee"`
	NewBalance           float64 `json:"new_balance"`
	MonthlyPaymentNeeded float64 `json:"monthly_payment_needed"`
	PayoffMonths         int     `json:"payoff_months"`
	PayoffMonthsCurrent  int     `json:"payoff_months_current"`
	TotalInterestCurrent float64 `json:"total_interest_current"`
	TotalInterestNew     float64 `json:"total_interest_new"`
	TotalSavings         float64 `json:"total_savings"`
	MonthlySavings       float64 `json:"monthly_savings"`
}

// SubscriptionSavings summarizes the effect of canceling a set of
// recurring subscriptions.
type SubscriptionSavings struct {
	MonthlySavings float64 `json:"monthly_savings"`
	YearlySavings  float64 `json:"yearly_savings"`
	CanceledCount  int     `json:"canceled_count"`
}

// SavingsGoalTimeline projects how long reaching a savings goal takes at
// a steady monthly rate. MonthsNeeded and YearsNeeded are nil when the
// goal is not achievable at the given rate.
type SavingsGoalTimeline struct {
	MonthsNeeded *int     `json:"months_needed"`
	YearsNeeded  *float64 `json:"years_needed"`
	AmountNeeded float64  `json:"amount_needed"`
	IsAchievable bool     `json:"is_achievable"`
}
