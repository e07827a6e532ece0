package model

import "time"

// BillStatus is the stored lifecycle state of a payable.
// Overdue is derived from the due date while a bill is pending; it is
// never written to the record.
type BillStatus string

const (
	// BillPending marks a bill that still needs to be paid.
	BillPending BillStatus = "pending"
	// BillPaid marks a bill that has been settled.
	BillPaid BillStatus = "paid"
)

// Bill represents a scheduled future expense obligation tracked until paid.
type Bill struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	DueDate     time.Time  `json:"due_date"`
	CategoryID  string     `json:"category_id"`
	WalletID    string     `json:"wallet_id"`
	Status      BillStatus `json:"status"`
	RemindDays  int        `json:"remind_days"`
	Notes       string     `json:"notes,omitempty"`
}

// Overdue reports whether a pending bill's due date has passed.
func (b Bill) Overdue(now time.Time) bool {
	return b.Status == BillPending && b.DueDate.Before(now)
}
