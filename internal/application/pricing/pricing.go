package pricing

// TaxMode selects how an order's tax is computed and how the bill splits it.
type TaxMode string

const (
	// TaxModeFlat applies a single rate on the discounted subtotal at order
	// time. Bills copy the order tax and carry zero CGST/SGST.
	TaxModeFlat TaxMode = "flat"
	// TaxModeSplit defers tax to billing: CGST and SGST are each computed
	// on the undiscounted subtotal and rounded independently.
	TaxModeSplit TaxMode = "split"
)

// Policy holds the tax configuration used for order and bill pricing.
// All money values are in paise.
type Policy struct {
	Mode     TaxMode
	FlatRate float64
	CGSTRate float64
	SGSTRate float64
}

// DefaultPolicy mirrors standard Indian restaurant GST (2.5% + 2.5%).
func DefaultPolicy() Policy {
	return Policy{
		Mode:     TaxModeSplit,
		FlatRate: 0.05,
		CGSTRate: 0.025,
		SGSTRate: 0.025,
	}
}

// roundPaise rounds a fractional paise amount half-up to the nearest paisa.
func roundPaise(v float64) int64 {
	if v < 0 {
		return -int64(-v + 0.5)
	}
	return int64(v + 0.5)
}

// ToPaise converts a decimal rupee amount to paise, rounding half-up so
// 2-decimal inputs survive the float conversion exactly.
func ToPaise(v float64) int64 {
	return roundPaise(v * 100)
}

// LineTotal returns the subtotal for a line item.
func LineTotal(unitPrice int64, quantity int) int64 {
	return unitPrice * int64(quantity)
}

// OrderTotals holds the computed money fields for an order.
type OrderTotals struct {
	SubTotal    int64
	Tax         int64
	Discount    int64
	TotalAmount int64
}

// OrderTotals computes an order's money fields from its line subtotals.
// Discounts are clamped at zero but may exceed the subtotal; the total is
// allowed to go negative in that case.
func (p Policy) OrderTotals(lineSubTotals []int64, discount int64) OrderTotals {
	if discount < 0 {
		discount = 0
	}
	var subTotal int64
	for _, s := range lineSubTotals {
		subTotal += s
	}
	var tax int64
	if p.Mode == TaxModeFlat {
		tax = roundPaise(float64(subTotal-discount) * p.FlatRate)
	}
	return OrderTotals{
		SubTotal:    subTotal,
		Tax:         tax,
		Discount:    discount,
		TotalAmount: subTotal + tax - discount,
	}
}

// BillTotals holds the computed money fields for a bill.
type BillTotals struct {
	SubTotal    int64
	CGST        int64
	SGST        int64
	Tax         int64
	Discount    int64
	TotalAmount int64
}

// BillTotals computes a bill's money fields from the order it settles.
// In split mode CGST and SGST are rounded independently on the undiscounted
// subtotal, so their sum can differ by a paisa from a combined-rate figure.
func (p Policy) BillTotals(order OrderTotals) BillTotals {
	if p.Mode == TaxModeFlat {
		return BillTotals{
			SubTotal:    order.SubTotal,
			Tax:         order.Tax,
			Discount:    order.Discount,
			TotalAmount: order.TotalAmount,
		}
	}
	cgst := roundPaise(float64(order.SubTotal) * p.CGSTRate)
	sgst := roundPaise(float64(order.SubTotal) * p.SGSTRate)
	return BillTotals{
		SubTotal:    order.SubTotal,
		CGST:        cgst,
		SGST:        sgst,
		Tax:         cgst + sgst,
		Discount:    order.Discount,
		TotalAmount: order.SubTotal + cgst + sgst - order.Discount,
	}
}

// ChangeAmount returns the change due for a cash payment, never negative.
func ChangeAmount(paid, total int64) int64 {
	if paid <= total {
		return 0
	}
	return paid - total
}
