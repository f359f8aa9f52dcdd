package core

// TaxState is the mutable session state read by "tax" and written by "taxset".
type TaxState interface {
	TaxRate() float64
	SetTaxRate(rate float64)
}
