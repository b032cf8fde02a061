package interfaces

// IReconciliationMetrics records pipeline outcomes.
type IReconciliationMetrics interface {
	CallbackProcessed(outcome string)
	TypeConstraintFallback()
	OrdersCreated(n int)
	BackfillOutcome(outcome string)
	NotificationFailed()
}

// NopMetrics discards every observation.
type NopMetrics struct{}

func (NopMetrics) CallbackProcessed(string) {}
func (NopMetrics) TypeConstraintFallback()  {}
func (NopMetrics) OrdersCreated(int)        {}
func (NopMetrics) BackfillOutcome(string)   {}
func (NopMetrics) NotificationFailed()      {}
