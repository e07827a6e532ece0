package ofx

import (
	"strings"
	"testing"
	"time"

	"github.com/aclindsa/ofxgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aureusfin/aureus/internal/model"
)

// Sample OFX data for testing.
const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20260815120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20260801120000[0:GMT]
<DTEND>20260831120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260805120000[0:GMT]
<TRNAMT>-25.50
<FITID>2026080501
<NAME>STARBUCKS STORE #1234
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260810120000[0:GMT]
<TRNAMT>-125.00
<FITID>2026081001
<NAME>POS PURCHASE WHOLE FOODS MARKET
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20260814120000[0:GMT]
<TRNAMT>2400.00
<FITID>2026081401
<NAME>ACME CORP PAYROLL
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20260831120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

const sampleCreditCardOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>Info
</STATUS>
<DTSERVER>20260815120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<CREDITCARDMSGSRSV1>
<CCSTMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>Info
</STATUS>
<CCSTMTRS>
<CURDEF>USD
<CCACCTFROM>
<ACCTID>4111111111111111
</CCACCTFROM>
<BANKTRANLIST>
<DTSTART>20260801120000[0:GMT]
<DTEND>20260831120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260803120000[0:GMT]
<TRNAMT>-15.00
<FITID>CC2026080301
<NAME>NETFLIX.COM
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260807120000[0:GMT]
<TRNAMT>-45.99
<FITID>CC2026080701
<NAME>DEBIT
<MEMO>AMAZON.COM ORDER 112-334
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>-500.00
<DTASOF>20260831120000[0:GMT]
</LEDGERBAL>
</CCSTMTRS>
</CCSTMTTRNRS>
</CREDITCARDMSGSRSV1>
</OFX>`

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		ofxData   string
		wantCount int
		wantErr   bool
	}{
		{name: "bank statement", ofxData: sampleBankOFX, wantCount: 3},
		{name: "credit card statement", ofxData: sampleCreditCardOFX, wantCount: 2},
		{name: "not OFX at all", ofxData: "hello world", wantErr: true},
		{name: "empty input", ofxData: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := NewParser().Parse(strings.NewReader(tt.ofxData))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, entries, tt.wantCount)
		})
	}
}

func TestParseBankEntries(t *testing.T) {
	entries, err := NewParser().Parse(strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	coffee := entries[0]
	assert.Equal(t, model.Expense, coffee.Kind)
	assert.Equal(t, 25.50, coffee.Amount, "amounts are normalized to positive")
	assert.Equal(t, "STARBUCKS STORE #1234", coffee.Description)
	assert.Equal(t, "2026080501", coffee.FitID)
	assert.Equal(t, "1234567890", coffee.AccountID)
	assert.Equal(t, 2026, coffee.Date.Year())
	assert.Equal(t, time.August, coffee.Date.Month())

	groceries := entries[1]
	assert.Equal(t, "WHOLE FOODS MARKET", groceries.Description, "processor prefix stripped")

	payroll := entries[2]
	assert.Equal(t, model.Income, payroll.Kind)
	assert.Equal(t, 2400.00, payroll.Amount)
}

func TestParseCreditCardEntries(t *testing.T) {
	entries, err := NewParser().Parse(strings.NewReader(sampleCreditCardOFX))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "NETFLIX.COM", entries[0].Description)
	assert.Equal(t, "4111111111111111", entries[0].AccountID)

	// Generic NAME falls back to the memo.
	assert.Equal(t, "AMAZON.COM ORDER 112-334", entries[1].Description)
}

func TestCleanDescription(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain name untouched", in: "LOCAL BAKERY", want: "LOCAL BAKERY"},
		{name: "pos prefix", in: "POS PURCHASE TRADER JOES", want: "TRADER JOES"},
		{name: "check card prefix", in: "CHECK CARD SHELL OIL 5742", want: "SHELL OIL 5742"},
		{name: "date stamp", in: "08/14 CORNER DELI", want: "CORNER DELI"},
		{name: "trim whitespace", in: "  AMAZON.COM  ", want: "AMAZON.COM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := ofxgo.Transaction{Name: ofxgo.String(tt.in)}
			assert.Equal(t, tt.want, p.cleanDescription(tx))
		})
	}
}

func TestPreprocessSeverity(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "closed tag", in: "<SEVERITY>Info</SEVERITY>", want: "<SEVERITY>INFO</SEVERITY>"},
		{name: "bare sgml tag", in: "<SEVERITY>Info\n", want: "<SEVERITY>INFO\n"},
		{name: "bare warn", in: "<SEVERITY>Warn\n<DTSERVER>x\n", want: "<SEVERITY>WARN\n<DTSERVER>x\n"},
		{name: "already uppercase", in: "<SEVERITY>ERROR\n", want: "<SEVERITY>ERROR\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.preprocess(tt.in))
		})
	}
}

func TestIsGeneric(t *testing.T) {
	assert.True(t, isGeneric("DEBIT"))
	assert.True(t, isGeneric("purchase"))
	assert.False(t, isGeneric("STARBUCKS"))
}
