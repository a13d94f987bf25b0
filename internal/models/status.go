package models

// OrderStatus is the lifecycle state of a service order. The values are the
// exact wire strings the shop front-end and printed documents use.
type OrderStatus string

const (
	StatusReceived       OrderStatus = "Recibido"
	StatusDiagnosing     OrderStatus = "En Diagnóstico"
	StatusQuoted         OrderStatus = "Presupuestado"
	StatusQuoteApproved  OrderStatus = "Presupuesto Aprobado"
	StatusAwaitingParts  OrderStatus = "En Espera de Repuestos"
	StatusRepairing      OrderStatus = "En Reparación"
	StatusRepaired       OrderStatus = "Reparado"
	StatusQualityCheck   OrderStatus = "En Control de Calidad"
	StatusReadyForPickup OrderStatus = "Listo para Entrega"
	StatusDelivered      OrderStatus = "Entregado"
	StatusQuoteRejected  OrderStatus = "Presupuesto Rechazado"
	StatusNotRepaired    OrderStatus = "Sin Reparación"
)

// AllStatuses lists every valid status in workflow order.
var AllStatuses = []OrderStatus{
	StatusReceived,
	StatusDiagnosing,
	StatusQuoted,
	StatusQuoteApproved,
	StatusAwaitingParts,
	StatusRepairing,
	StatusRepaired,
	StatusQualityCheck,
	StatusReadyForPickup,
	StatusDelivered,
	StatusQuoteRejected,
	StatusNotRepaired,
}

// Valid reports whether s is one of the enumerated statuses.
func (s OrderStatus) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the order reached a final state. Terminal
// orders are kept for audit and warranty lookups and never alert.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusQuoteRejected || s == StatusNotRepaired
}
