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

import "time"

// RecurringMerchant is one detected recurring payment series.
type RecurringMerchant struct {
	MerchantName    string  `json:"merchant_name"`
	Occurrences     int     `json:"occurrences"`
	AvgAmount       float64 `json:"avg_amount"`
	AvgIntervalDays float64 `json:"avg_interval_days"`
	Cadence         string  `json:"cadence"`
	MonthlyAmount   float64 `json:"monthly_amount"`
}

// SubscriptionSignal summarizes recurring merchant spend for a user.
// HasData is false when the window held no transactions at all.
type SubscriptionSignal struct {
	HasData               bool                `json:"has_data"`
	RecurringMerchants    []RecurringMerchant `json:"recurring_merchants,omitempty"`
	SubscriptionCount     int                 `json:"subscription_count"`
	MonthlyRecurringSpend float64             `json:"monthly_recurring_spend"`
	TotalSpend            float64             `json:"total_spend"`
	SubscriptionShare     float64             `json:"subscription_share"`
}

// AccountUtilization is the utilization picture for one credit account.
// Subtype and Mask are carried through so rationales can name the card.
type AccountUtilization struct {
	AccountId          string  `json:"account_id"`
	Subtype            string  `json:"subtype,omitempty"`
	Mask               string  `json:"mask,omitempty"`
	Balance            float64 `json:"balance"`
	CreditLimit        float64 `json:"credit_limit"`
	Utilization        float64 `json:"utilization"`
	UtilizationLevel   string  `json:"utilization_level"`
	MinimumPaymentOnly bool    `json:"minimum_payment_only"`
}

// CreditSignal summarizes credit card utilization and payment behavior.
// Applicable is false when the user has no credit accounts.
type CreditSignal struct {
	Applicable         bool                 `json:"applicable"`
	Accounts           []AccountUtilization `json:"accounts,omitempty"`
	TotalBalance       float64              `json:"total_balance"`
	TotalLimit         float64              `json:"total_limit"`
	TotalUtilization   float64              `json:"total_utilization"`
	UtilizationLevel   string               `json:"utilization_level,omitempty"`
	MinimumPaymentOnly bool                 `json:"minimum_payment_only"`
	InterestCharged    float64              `json:"interest_charged"`
	IsOverdue          bool                 `json:"is_overdue"`
}

// SavingsSignal summarizes savings balances, growth and emergency coverage.
type SavingsSignal struct {
	HasData               bool    `json:"has_data"`
	SavingsBalance        float64 `json:"savings_balance"`
	NetInflow             float64 `json:"net_inflow"`
	BalanceStartOfWindow  float64 `json:"balance_start_of_window"`
	GrowthRate            float64 `json:"growth_rate"`
	AvgMonthlyExpenses    float64 `json:"avg_monthly_expenses"`
	EmergencyFundMonths   float64 `json:"emergency_fund_months"`
	EmergencyFundAdequacy string  `json:"emergency_fund_adequacy"`
}

// IncomeSignal summarizes payroll deposit patterns in the user's checking
// account.
type IncomeSignal struct {
	HasData                bool    `json:"has_data"`
	DepositCount           int     `json:"deposit_count"`
	Frequency              string  `json:"frequency"`
	MedianPayGapDays       float64 `json:"median_pay_gap_days"`
	AvgDepositAmount       float64 `json:"avg_deposit_amount"`
	CoefficientOfVariation float64 `json:"coefficient_of_variation"`
	CashFlowBuffer         float64 `json:"cash_flow_buffer"`
}

// FeatureSet bundles every signal computed for one user over one window.
type FeatureSet struct {
	UserId        string              `json:"user_id"`
	TimeWindow    string              `json:"time_window"`
	ComputedAt    time.Time           `json:"computed_at"`
	Subscriptions *SubscriptionSignal `json:"subscriptions,omitempty"`
	Credit        *CreditSignal       `json:"credit_utilization,omitempty"`
	Savings       *SavingsSignal      `json:"savings_behavior,omitempty"`
	Income        *IncomeSignal       `json:"income_stability,omitempty"`
}

// Signal is the stored envelope around one detector payload.
type Signal struct {
	UserId     string      `json:"user_id"`
	SignalType string      `json:"signal_type"`
	TimeWindow string      `json:"time_window"`
	ComputedAt time.Time   `json:"computed_at"`
	Payload    interface{} `json:"payload"`
}
