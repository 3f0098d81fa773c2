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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	txmodel "github.com/wso2/financial-insights-service/internal/transaction/model"
)

func depositSeries(accountId string, start time.Time, intervalDays int, count int, amount float64) []txmodel.Transaction {
	txns := make([]txmodel.Transaction, 0, count)
	for i := 0; i < count; i++ {
		txns = append(txns, txmodel.Transaction{
			TransactionId: "dep-" + string(rune('a'+i)),
			AccountId:     accountId,
			Date:          start.AddDate(0, 0, i*intervalDays),
			Amount:        amount,
			MerchantName:  "Acme Corp Payroll",
		})
	}
	return txns
}

func TestDetectIncomeStabilityNoCheckingAccount(t *testing.T) {

	accounts := []txmodel.Account{
		{AccountId: "acc_sav", Type: "depository", Subtype: "savings", Balance: 500},
	}

	signal := DetectIncomeStability(accounts, nil, 180)

	assert.False(t, signal.HasData)
	assert.Equal(t, "unknown", signal.Frequency)
}

func TestDetectIncomeStabilitySingleDeposit(t *testing.T) {

	accounts := []txmodel.Account{
		{AccountId: "acc_chk", Type: "depository", Subtype: "checking", Balance: 800},
	}
	txns := depositSeries("acc_chk", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 14, 1, 2000)

	signal := DetectIncomeStability(accounts, txns, 180)

	assert.False(t, signal.HasData)
	assert.Equal(t, "unknown", signal.Frequency)
	assert.Equal(t, 1, signal.DepositCount)
}

func TestDetectIncomeStabilityFrequencies(t *testing.T) {

	tests := []struct {
		name         string
		intervalDays int
		frequency    string
	}{
		{"weekly cadence", 7, "weekly"},
		{"biweekly cadence", 14, "biweekly"},
		{"monthly cadence", 30, "monthly"},
		{"irregular cadence", 21, "irregular"},
	}

	start := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			accounts := []txmodel.Account{
				{AccountId: "acc_chk", Type: "depository", Subtype: "checking", Balance: 2500},
			}
			txns := depositSeries("acc_chk", start, tc.intervalDays, 5, 2000)
			signal := DetectIncomeStability(accounts, txns, 180)
			assert.True(t, signal.HasData)
			assert.Equal(t, tc.frequency, signal.Frequency)
		})
	}
}

func TestDetectIncomeStabilitySteadyIncomeHasZeroVariation(t *testing.T) {

	accounts := []txmodel.Account{
		{AccountId: "acc_chk", Type: "depository", Subtype: "checking", Balance: 2500},
	}
	txns := depositSeries("acc_chk", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), 14, 6, 2000)

	signal := DetectIncomeStability(accounts, txns, 180)

	assert.InDelta(t, 14.0, signal.MedianPayGapDays, 0.01)
	assert.InDelta(t, 0.0, signal.CoefficientOfVariation, 0.01)
	assert.InDelta(t, 2000.0, signal.AvgDepositAmount, 0.01)
}

func TestDetectIncomeStabilityCashFlowBuffer(t *testing.T) {

	accounts := []txmodel.Account{
		{AccountId: "acc_chk", Type: "depository", Subtype: "checking", Balance: 1000},
	}
	txns := depositSeries("acc_chk", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), 14, 4, 2000)
	// 12000 spend over 180 days = 2000/month; buffer = 1000 / 2000.
	txns = append(txns, txmodel.Transaction{
		TransactionId: "spend",
		AccountId:     "acc_chk",
		Date:          time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Amount:        -12000,
	})

	signal := DetectIncomeStability(accounts, txns, 180)

	assert.InDelta(t, 0.5, signal.CashFlowBuffer, 0.01)
}

func TestDetectIncomeStabilityKeywordDepositBelowAmountFloor(t *testing.T) {

	accounts := []txmodel.Account{
		{AccountId: "acc_chk", Type: "depository", Subtype: "checking", Balance: 500},
	}
	start := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	txns := []txmodel.Transaction{
		{TransactionId: "d1", AccountId: "acc_chk", Date: start, Amount: 300, MerchantName: "Gig Payroll Services"},
		{TransactionId: "d2", AccountId: "acc_chk", Date: start.AddDate(0, 0, 14), Amount: 310, MerchantName: "Gig Payroll Services"},
	}

	signal := DetectIncomeStability(accounts, txns, 180)

	assert.True(t, signal.HasData)
	assert.Equal(t, 2, signal.DepositCount)
}

func TestDetectIncomeStabilityNonPayrollDepositsIgnored(t *testing.T) {

	accounts := []txmodel.Account{
		{AccountId: "acc_chk", Type: "depository", Subtype: "checking", Balance: 500},
	}
	start := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	txns := []txmodel.Transaction{
		{TransactionId: "d1", AccountId: "acc_chk", Date: start, Amount: 40, MerchantName: "Venmo"},
		{TransactionId: "d2", AccountId: "acc_chk", Date: start.AddDate(0, 0, 3), Amount: 25, MerchantName: "Venmo"},
	}

	signal := DetectIncomeStability(accounts, txns, 180)

	assert.False(t, signal.HasData)
	assert.Equal(t, 0, signal.DepositCount)
}
