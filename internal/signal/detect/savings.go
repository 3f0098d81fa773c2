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

package detect

import (
	"math"
	"strings"

	"github.com/wso2/financial-insights-service/internal/signal/model"
	"github.com/wso2/financial-insights-service/internal/system/constants"
	txmodel "github.com/wso2/financial-insights-service/internal/transaction/model"
)

const (
	coverageExcellentMonths = 6.0
	coverageGoodMonths      = 3.0
)

// DetectSavingsBehavior measures savings balances and growth over the window.
// The window-start balance is estimated as the current balance minus the net
// transaction inflow of the window; balance history is not tracked.
func DetectSavingsBehavior(accounts []txmodel.Account, transactions []txmodel.Transaction, windowDays int) model.SavingsSignal {

	var savingsAccounts []txmodel.Account
	for _, account := range accounts {
		if isSavingsAccount(account) {
			savingsAccounts = append(savingsAccounts, account)
		}
	}
	if len(savingsAccounts) == 0 {
		return model.SavingsSignal{EmergencyFundAdequacy: "low"}
	}

	savingsAccountIds := make(map[string]bool, len(savingsAccounts))
	totalSavings := 0.0
	for _, account := range savingsAccounts {
		savingsAccountIds[account.AccountId] = true
		totalSavings += account.Balance
	}

	checkingAccountIds := make(map[string]bool)
	for _, account := range accounts {
		if account.Subtype == constants.SubtypeChecking {
			checkingAccountIds[account.AccountId] = true
		}
	}

	netInflow := 0.0
	checkingSpend := 0.0
	for _, txn := range transactions {
		if savingsAccountIds[txn.AccountId] {
			netInflow += txn.Amount
		}
		if checkingAccountIds[txn.AccountId] && txn.IsDebit() {
			checkingSpend += math.Abs(txn.Amount)
		}
	}

	balanceStart := totalSavings - netInflow
	var growthRate float64
	if balanceStart > 0 {
		growthRate = (totalSavings - balanceStart) / balanceStart * 100
	} else if totalSavings > 0 {
		growthRate = 100.0
	}

	monthsInWindow := float64(windowDays) / 30.0
	avgMonthlyExpenses := 0.0
	if monthsInWindow > 0 {
		avgMonthlyExpenses = checkingSpend / monthsInWindow
	}

	coverage := 0.0
	if avgMonthlyExpenses > 0 {
		coverage = totalSavings / avgMonthlyExpenses
	}

	return model.SavingsSignal{
		HasData:               true,
		SavingsBalance:        round2(totalSavings),
		NetInflow:             round2(netInflow),
		BalanceStartOfWindow:  round2(balanceStart),
		GrowthRate:            round2(growthRate),
		AvgMonthlyExpenses:    round2(avgMonthlyExpenses),
		EmergencyFundMonths:   round2(coverage),
		EmergencyFundAdequacy: coverageLevel(coverage),
	}
}

func isSavingsAccount(account txmodel.Account) bool {
	if constants.SavingsSubtypes[account.Subtype] {
		return true
	}
	return account.Type == constants.AccountTypeDepository &&
		strings.Contains(strings.ToLower(account.Subtype), "savings")
}

func coverageLevel(months float64) string {
	switch {
	case months >= coverageExcellentMonths:
		return "excellent"
	case months >= coverageGoodMonths:
		return "good"
	case months > 0:
		return "building"
	default:
		return "low"
	}
}
