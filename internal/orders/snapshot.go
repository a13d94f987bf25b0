package orders

import "tallerapp/internal/models"

// System-wide fallback texts, used when a branch never filled in its own
// policy. An order must always carry printable terms, so a missing setting
// is not an error.
const (
	DefaultDisclaimer = "El equipo se recibe para diagnóstico y reparación. " +
		"El taller no se responsabiliza por fallas ocultas no declaradas al momento del ingreso."
	DefaultPrivacyNotice = "Los datos personales registrados se utilizan únicamente " +
		"para la gestión de la orden de servicio."
	DefaultWarrantyVoidConditions = "La garantía queda sin efecto si el equipo presenta " +
		"golpes, humedad o intervención de terceros posteriores a la entrega."
	DefaultPickupConditions = "El retiro del equipo requiere la presentación de este comprobante. " +
		"Equipos no retirados dentro del plazo informado se consideran abandonados."
)

// Default abandonment thresholds in days (risk tier / final tier).
const (
	DefaultAbandonmentRiskDays  = 15
	DefaultAbandonmentFinalDays = 30
)

func textOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// SnapshotLegalText copies the branch's current policy into an immutable
// per-order record. Called exclusively from the order creation path; no
// update path writes to the snapshot. A nil settings document falls back to
// the system defaults entirely.
func SnapshotLegalText(settings *models.BranchSettings) models.LegalSnapshot {
	if settings == nil {
		settings = &models.BranchSettings{}
	}

	snapshot := models.LegalSnapshot{
		Disclaimer:             textOrDefault(settings.Disclaimer, DefaultDisclaimer),
		PrivacyNotice:          textOrDefault(settings.PrivacyNotice, DefaultPrivacyNotice),
		WarrantyVoidConditions: textOrDefault(settings.WarrantyVoidConditions, DefaultWarrantyVoidConditions),
		PickupConditions:       textOrDefault(settings.PickupConditions, DefaultPickupConditions),
		AbandonmentRiskDays:    settings.AbandonmentRiskDays,
		AbandonmentFinalDays:   settings.AbandonmentFinalDays,
	}
	if snapshot.AbandonmentRiskDays <= 0 {
		snapshot.AbandonmentRiskDays = DefaultAbandonmentRiskDays
	}
	if snapshot.AbandonmentFinalDays <= 0 {
		snapshot.AbandonmentFinalDays = DefaultAbandonmentFinalDays
	}
	return snapshot
}
