package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNoise(t *testing.T) {
	noise := []string{
		"Payment Thank You",
		"PAYMENT  THANK  YOU",
		"payment thank you - web",
		"Electronic Payment Received",
		"BILL PAYMENT",
		"Online Transfer to Savings",
		"CREDIT BALANCE REFUND",
		"DIVIDEND REINVESTMENT",
		"IRS TREAS 310 TAX REF",
		"items",
		"Items",
	}
	for _, desc := range noise {
		assert.True(t, IsNoise(desc), "expected noise: %q", desc)
	}

	keep := []string{
		"Restaurant",
		"FIRST BANK DEPOSIT", // contains "irs" as a substring
		"Items R Us",         // "items" only drops the exact literal
		"type: billpay comcast",
		"Refund",
	}
	for _, desc := range keep {
		assert.False(t, IsNoise(desc), "expected kept: %q", desc)
	}
}
